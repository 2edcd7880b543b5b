package core

import (
	"context"

	"github.com/hupe1980/moodpanel/logging"
)

// RunContext carries execution state & helpers for one discussion run.
// It encapsulates the per-invocation scope handed to panelists and phases.
// It aggregates:
//   - The ambient cancellation Context
//   - Identifiers (RunID, SubjectID) and discussion inputs (Topic, Background)
//   - The run's private Transcript (fresh per run, never shared across runs)
//   - An optional Emit channel streaming turns to an observer
//   - A ModelLimiter bounding completion calls for the whole run
//
// Every turn flows through AppendTurn so ordering, streaming and logging stay
// in one place.
type RunContext struct {
	Context    context.Context
	RunID      string
	SubjectID  string
	Topic      string
	Background string
	MaxRounds  int
	Transcript *Transcript
	Limiter    *ModelLimiter
	Emit       chan<- Turn

	*loggerAdapter
}

// NewRunContext constructs a RunContext with a fresh, empty transcript. A
// maxModelCalls of 0 leaves the limiter unbounded. Emit may be nil when no
// observer wants live turns.
func NewRunContext(
	ctx context.Context,
	runID, subjectID, topic, background string,
	maxRounds int,
	maxModelCalls int,
	emit chan<- Turn,
	logger logging.Logger,
) *RunContext {
	return &RunContext{
		Context:       ctx,
		RunID:         runID,
		SubjectID:     subjectID,
		Topic:         topic,
		Background:    background,
		MaxRounds:     maxRounds,
		Transcript:    NewTranscript(),
		Limiter:       NewModelLimiter(maxModelCalls),
		Emit:          emit,
		loggerAdapter: newLoggerAdapter(logger),
	}
}

// Done returns a channel closed when the underlying context is cancelled.
func (rc *RunContext) Done() <-chan struct{} { return rc.Context.Done() }

// Err returns the cancellation error (if any) from the underlying context.
func (rc *RunContext) Err() error { return rc.Context.Err() }

// AppendTurn appends a turn to the transcript and forwards it to the Emit
// channel when one is configured. The populated Turn is returned. The error
// is non-nil only when emission is aborted by context cancellation; the turn
// has already been appended at that point.
func (rc *RunContext) AppendTurn(speaker, content string, round int) (Turn, error) {
	turn := rc.Transcript.Append(speaker, content, round)

	rc.LogDebug("turn appended", "run_id", rc.RunID, "speaker", speaker, "turn_order", turn.Order, "round", round)

	if rc.Emit == nil {
		return turn, nil
	}

	select {
	case <-rc.Context.Done():
		return turn, rc.Context.Err()
	case rc.Emit <- turn:
		return turn, nil
	}
}

// Recent returns the last n transcript turns.
func (rc *RunContext) Recent(n int) []Turn { return rc.Transcript.Recent(n) }
