package domain

import "time"

type Story struct {
	ID          string
	PerformerID string
	ImageRef    string
	Caption     string // empty when the story has no caption
	Timestamp   time.Time
}

func (s Story) HasCaption() bool {
	return s.Caption != ""
}
