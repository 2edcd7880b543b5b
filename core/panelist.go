package core

// Panelist defines the interface every discussion participant implements.
//
// Panelists are the processing units of a panel discussion. They receive a
// prompt through a RunContext, produce a natural-language response, and must
// isolate failures of the underlying completion capability: Respond never
// returns an error and never panics. On failure it yields a sentinel string
// identifying the failing role so downstream parsing degrades to defaults
// instead of aborting the deliberation.
//
// Implementations must:
//   - Be stateless apart from their fixed role and persona
//   - Respect context cancellation exposed via the RunContext
//   - Be safe for reuse across consecutive discussions
type Panelist interface {
	Role() string
	Respond(rc *RunContext, prompt string) string
}
