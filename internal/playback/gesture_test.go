package playback

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	th := DefaultThresholds()

	tests := []struct {
		name   string
		dx, dy float64
		want   Action
	}{
		{name: "swipe down closes", dx: 0, dy: 71, want: ActionClose},
		{name: "close wins over horizontal swipe", dx: -120, dy: 80, want: ActionClose},
		{name: "exactly at close threshold does not close", dx: 0, dy: 70, want: ActionResume},
		{name: "swipe right retreats", dx: 51, dy: 0, want: ActionRetreat},
		{name: "swipe left advances", dx: -60, dy: 0, want: ActionAdvance},
		{name: "swipe left with upward drift advances", dx: -60, dy: -200, want: ActionAdvance},
		{name: "exactly at swipe threshold resumes", dx: 50, dy: 0, want: ActionResume},
		{name: "small drag resumes", dx: 10, dy: 5, want: ActionResume},
		{name: "plain tap resumes", dx: 0, dy: 0, want: ActionResume},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.dx, tt.dy, th))
		})
	}
}

func TestClassifyCustomThresholds(t *testing.T) {
	th := Thresholds{Close: 10, Swipe: 5}

	assert.Equal(t, ActionClose, Classify(0, 11, th))
	assert.Equal(t, ActionRetreat, Classify(6, 0, th))
	assert.Equal(t, ActionAdvance, Classify(-6, 0, th))
}
