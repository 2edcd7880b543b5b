// Package moodpanel provides a high-level façade over the discussion
// orchestrator and its services (panel seats, result storage, background
// collection & logging) enabling rapid construction of expert-panel mood
// assessments. Most applications interact with this package by:
//  1. Creating a MoodPanel via New() with a chat model (optionally overriding the default roster or services)
//  2. Running discussions asynchronously (DiscussStream) or synchronously (Discuss)
//  3. Reading persisted verdicts back via Results()
//
// The façade delegates orchestration to discussion.Orchestrator and run
// management to runner.Runner while keeping setup and usage ergonomics
// concise. All defaults are safe for local development and testing;
// production deployments typically supply a durable result store and a
// structured logger.
package moodpanel

import (
	"context"

	"github.com/hupe1980/moodpanel/config"
	"github.com/hupe1980/moodpanel/core"
	"github.com/hupe1980/moodpanel/discussion"
	"github.com/hupe1980/moodpanel/logging"
	"github.com/hupe1980/moodpanel/model"
	"github.com/hupe1980/moodpanel/panelist"
	"github.com/hupe1980/moodpanel/runner"
	"github.com/hupe1980/moodpanel/store"
)

// Options configures the MoodPanel instance.
type Options struct {
	// Moderator is the persona chairing the panel.
	Moderator config.Persona

	// Experts are the personas seated on the panel, in speaking order.
	Experts []config.Persona

	// MaxRounds caps debate rounds for requests that do not set their own
	// limit. Must be at least 1.
	MaxRounds int

	// ConcurrentRounds lets expert seats answer each round in parallel.
	// Replies are recorded in roster order either way.
	ConcurrentRounds bool

	// EnableStreaming requests incremental deltas from the model. The
	// orchestrator only records full turns, so this mainly exercises
	// streaming transports end to end.
	EnableStreaming bool

	// MaxConcurrentRuns limits the number of discussions that can execute
	// simultaneously. This prevents resource exhaustion and provides
	// backpressure.
	MaxConcurrentRuns int

	// TurnBufferSize sets the channel buffer size for turn delivery. Larger
	// buffers reduce blocking but increase memory usage.
	TurnBufferSize int

	// MaxModelCalls caps model invocations per discussion as a runaway guard.
	MaxModelCalls int

	// Stores & services (default to in-memory / no-op implementations)
	ResultStore        core.ResultStore
	BackgroundProvider core.BackgroundProvider

	// Callbacks observe run lifecycle events (before/after discussion, per
	// turn, on error).
	Callbacks *runner.CallbackManager

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger
}

// MoodPanel is the high-level façade aggregating the orchestrator and its services.
type MoodPanel struct {
	opts   Options
	panel  *discussion.Orchestrator
	runner *runner.Runner
}

// New assembles a panel around the given chat model with optional overrides.
// Every seat shares the model; any unset service is initialized with an
// in-memory implementation.
func New(llm model.Model, optFns ...func(o *Options)) *MoodPanel {
	opts := Options{
		Moderator:         config.DefaultModerator(),
		Experts:           config.DefaultExperts(),
		MaxRounds:         config.DefaultMaxRounds,
		MaxConcurrentRuns: 10,
		TurnBufferSize:    100,
		MaxModelCalls:     100,
		ResultStore:       store.NewInMemoryStore(),
		Callbacks:         runner.NewCallbackManager(),
		Logger:            logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	seat := func(p config.Persona) core.Panelist {
		return panelist.New(p, llm, func(o *panelist.Options) {
			o.EnableStreaming = opts.EnableStreaming
		})
	}

	experts := make([]core.Panelist, 0, len(opts.Experts))
	for _, p := range opts.Experts {
		experts = append(experts, seat(p))
	}

	panel := discussion.New(seat(opts.Moderator), experts, func(o *discussion.Options) {
		o.ConcurrentRounds = opts.ConcurrentRounds
	})

	r := runner.New(panel, func(o *runner.Options) {
		o.MaxConcurrentRuns = opts.MaxConcurrentRuns
		o.TurnBufferSize = opts.TurnBufferSize
		o.MaxModelCalls = opts.MaxModelCalls
		o.MaxRounds = opts.MaxRounds
		o.ResultStore = opts.ResultStore
		o.BackgroundProvider = opts.BackgroundProvider
		o.Callbacks = opts.Callbacks
		o.Logger = opts.Logger
	})

	return &MoodPanel{opts: opts, panel: panel, runner: r}
}

// Roster returns the expert roles seated on the panel, in speaking order.
func (m *MoodPanel) Roster() []string { return m.panel.Roster() }

// Results exposes the store discussion verdicts are saved to.
func (m *MoodPanel) Results() core.ResultStore { return m.runner.Results() }

// DiscussStream starts an asynchronous discussion returning turn & error channels.
func (m *MoodPanel) DiscussStream(
	ctx context.Context,
	req runner.Request,
) (string, <-chan core.Turn, <-chan error, error) {
	return m.runner.Run(ctx, req)
}

// Discuss is a synchronous helper that runs the discussion to completion and
// returns the final verdict.
func (m *MoodPanel) Discuss(ctx context.Context, req runner.Request) (*core.Result, error) {
	return m.runner.RunSync(ctx, req)
}

// Cancel aborts an in-flight discussion started with DiscussStream.
func (m *MoodPanel) Cancel(runID string) error { return m.runner.Cancel(runID) }
