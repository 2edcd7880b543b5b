package core

import "time"

// Turn is a single transcript entry. After being returned from
// Transcript.Append it should be treated as immutable. It captures:
//   - Correlation (ID, Speaker)
//   - Conversational content
//   - Ordering (Order, assigned exactly once by the transcript at append time)
//   - Round association (Round, 0 for phase-level turns)
//   - High precision UTC timestamp
//
// Round 0 marks phase-level turns (introduction, voting call, vote
// statements, conclusion); analysis and debate turns carry the round they
// belong to, starting at 1.
type Turn struct {
	ID        string    `json:"id"`
	Speaker   string    `json:"speaker"`
	Content   string    `json:"content"`
	Round     int       `json:"round_number,omitempty"`
	Order     int       `json:"turn_order"`
	Timestamp time.Time `json:"timestamp"`
}

// IsPhase reports whether this turn is a phase-level turn rather than part of
// an analysis or debate round.
func (t Turn) IsPhase() bool { return t.Round == 0 }

// UnixSeconds returns the timestamp as fractional seconds since Unix epoch.
// Useful for metrics & numeric serialization paths.
func (t Turn) UnixSeconds() float64 { return float64(t.Timestamp.UnixNano()) / 1e9 }
