package core

import "time"

// Result is the complete, immutable outcome of one panel discussion. It is
// handed to the caller by value semantics: Clone produces deep copies of all
// slices so stored or shared results can never alias the engine's buffers.
//
// Invariants:
//   - TotalTurns == len(Transcript)
//   - 1 <= DebateRounds <= the run's configured maximum
type Result struct {
	SubjectID    string     `json:"subject_id"`
	Topic        string     `json:"topic"`
	FinalMood    Mood       `json:"final_mood"`
	FinalScore   float64    `json:"final_score"`
	Introduction string     `json:"introduction"`
	Conclusion   string     `json:"conclusion"`
	Date         time.Time  `json:"discussion_date"`
	TotalTurns   int        `json:"total_turns"`
	DebateRounds int        `json:"debate_rounds"`
	Analyses     []Analysis `json:"analyses"`
	Votes        []Vote     `json:"votes"`
	Transcript   []Turn     `json:"transcripts"`
}

// Clone returns a deep copy of the result safe for independent use.
func (r *Result) Clone() *Result {
	clone := &Result{
		SubjectID:    r.SubjectID,
		Topic:        r.Topic,
		FinalMood:    r.FinalMood,
		FinalScore:   r.FinalScore,
		Introduction: r.Introduction,
		Conclusion:   r.Conclusion,
		Date:         r.Date,
		TotalTurns:   r.TotalTurns,
		DebateRounds: r.DebateRounds,
		Analyses:     make([]Analysis, len(r.Analyses)),
		Votes:        make([]Vote, len(r.Votes)),
		Transcript:   make([]Turn, len(r.Transcript)),
	}
	copy(clone.Analyses, r.Analyses)
	copy(clone.Votes, r.Votes)
	copy(clone.Transcript, r.Transcript)
	return clone
}
