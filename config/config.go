// Package config holds the panel's seat definitions and run defaults. All
// constructors return fresh values, so callers can tweak a persona without
// affecting later discussions.
package config

// DefaultMaxRounds bounds a discussion when the caller does not say
// otherwise: one opening analysis round plus up to four debate rounds.
const DefaultMaxRounds = 5

// DefaultTopic frames a discussion when the caller names none.
const DefaultTopic = "Current mood analysis"

// Persona describes one seat on the panel: the speaker name that appears in
// the transcript and the standing instruction that shapes the seat's
// responses.
type Persona struct {
	Role        string
	Instruction string
}

// Roles projects the personas onto their role names, preserving order. The
// result is the panel's roster as the moderator sees it.
func Roles(personas []Persona) []string {
	roles := make([]string, 0, len(personas))
	for _, p := range personas {
		roles = append(roles, p.Role)
	}
	return roles
}
