// Package runner implements the execution layer around the discussion
// orchestrator.
//
// A Runner turns a Request into a finished, persisted discussion. It fills
// in request defaults, fetches briefing material through an optional
// BackgroundProvider, bounds how many discussions run at once, streams live
// transcript turns to the caller, saves every completed result to the
// configured ResultStore and fires lifecycle callbacks along the way.
//
// # Responsibilities (abridged)
//   - Run lifecycle management: async streaming via Run, blocking via
//     RunSync, cancellation by run id
//   - Turn delivery with configurable buffering
//   - Result persistence on completion
//   - Callback execution at before/turn/after/error points
//
// See runner.go for the operational implementation details.
package runner
