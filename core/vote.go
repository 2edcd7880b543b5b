package core

// Analysis is one panelist's contribution to an analysis or debate round.
type Analysis struct {
	Role  string `json:"expert_role"`
	Text  string `json:"analysis_text"`
	Round int    `json:"round_number"`
}

// Vote is a panelist's final assessment. Confidence is normalized to [0,1]
// and is applied as the weight of the vote during score aggregation.
type Vote struct {
	Role       string  `json:"expert_role"`
	Mood       Mood    `json:"vote_mood"`
	Confidence float64 `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
}
