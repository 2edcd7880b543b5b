package core

// Mood is the three-way categorical verdict of a panel discussion.
type Mood string

const (
	// MoodHappy indicates a positive overall sentiment.
	MoodHappy Mood = "happy"
	// MoodNeutral indicates a mixed or balanced sentiment.
	MoodNeutral Mood = "neutral"
	// MoodSad indicates a negative overall sentiment.
	MoodSad Mood = "sad"
)

// String returns the mood as a plain string.
func (m Mood) String() string { return string(m) }

// Valid reports whether the mood is one of the three recognized categories.
func (m Mood) Valid() bool {
	switch m {
	case MoodHappy, MoodNeutral, MoodSad:
		return true
	default:
		return false
	}
}
