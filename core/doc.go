// Package core provides the foundational domain types, interfaces and execution
// contexts used by MoodPanel. It defines the core abstractions for:
//
//   - Panelists (stateless, failure-isolating discussion participants)
//   - Transcripts (append-only ordered turn logs with strict ordering)
//   - Votes, Analyses and RoutingDecisions (structured discussion records)
//   - The immutable discussion Result aggregate
//   - RunContext (scoped per-run execution state and turn streaming)
//   - Pluggable result persistence and background material supply
//
// The package intentionally keeps implementation concerns (model providers,
// orchestration, concrete stores) out of scope, exposing small interfaces to
// enable custom backends and extensions.
package core
