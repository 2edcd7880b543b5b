// Package discussion implements the panel orchestration layer for MoodPanel.
//
// The Orchestrator walks one discussion through a fixed phase sequence and
// turns free-form model text into a structured verdict:
//
//	Introduction      moderator frames subject, topic and briefing material
//	Opening analyses  round 1, every expert gives an opening take
//	Debate rounds     rounds 2..max, the moderator routes follow-up questions
//	Voting            each expert casts a mood vote with a confidence weight
//	Scoring           votes reduce to a mood verdict and a 0-100 score
//	Conclusion        moderator closes against the computed verdict
//
// # Flow control
//
// Between debate rounds the moderator is asked, off the record, whether the
// panel should keep going and which seats should speak next. That routing
// exchange never enters the transcript; its decoded decision alone steers
// the loop. The debate ends early when the moderator reports convergence,
// otherwise it runs until the round budget is spent.
//
// # Ordering
//
// Every spoken turn flows through the run's transcript, which hands out a
// contiguous order number per turn. Experts answer in roster order; in
// concurrent mode replies are computed in parallel from one snapshot but
// still appended in roster order, so transcripts stay deterministic for a
// given set of responses.
//
// The Orchestrator holds no state between runs. Everything a run touches
// (transcript, call limiter, logger, live turn channel) travels in the
// core.RunContext, so one Orchestrator can serve many runs, including
// concurrently.
package discussion
