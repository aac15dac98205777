package domain

// Performer is a nail technician that publishes stories.
type Performer struct {
	ID        string
	Name      string
	AvatarRef string
}
