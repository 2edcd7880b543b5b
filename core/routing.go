package core

// RoutingDecision is the moderator's per-round continuation verdict. It is
// ephemeral: produced once per decision point, consumed by the debate loop
// and never persisted in the final Result.
//
// Targets holds canonical roster roles in roster order without duplicates. An
// empty target set with Continue true means every panelist should respond.
// Reason is informational only and never affects control flow.
type RoutingDecision struct {
	Continue bool     `json:"continue"`
	Targets  []string `json:"targets"`
	Reason   string   `json:"reason,omitempty"`
}
