package runner

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/moodpanel/config"
	"github.com/hupe1980/moodpanel/core"
	"github.com/hupe1980/moodpanel/discussion"
	"github.com/hupe1980/moodpanel/logging"
	"github.com/hupe1980/moodpanel/store"
)

// Options holds dependency + configuration overrides passed to New().
type Options struct {
	// MaxConcurrentRuns limits discussions running at the same time.
	MaxConcurrentRuns int
	// TurnBufferSize sets channel buffering for live turns.
	TurnBufferSize int
	// MaxModelCalls limits the number of model calls per run.
	MaxModelCalls int
	// MaxRounds is the round budget applied when a request leaves it unset.
	MaxRounds int
	// ResultStore receives every completed result.
	ResultStore core.ResultStore
	// BackgroundProvider supplies briefing material for requests without any.
	BackgroundProvider core.BackgroundProvider
	// Callbacks hook into the run lifecycle.
	Callbacks *CallbackManager
	// Logging services.
	Logger logging.Logger
}

// Request describes one discussion to run. SubjectID is required; Topic,
// Background and MaxRounds fall back to defaults when unset.
type Request struct {
	SubjectID  string
	Topic      string
	Background string
	MaxRounds  int
}

// Runner coordinates discussion execution: it resolves request defaults,
// fetches briefing material, creates run contexts, streams turns, persists
// results and fires lifecycle callbacks. Public methods are safe for
// concurrent use.
type Runner struct {
	orchestrator *discussion.Orchestrator

	turnBufferSize int
	maxModelCalls  int
	maxRounds      int

	resultStore        core.ResultStore
	backgroundProvider core.BackgroundProvider
	callbacks          *CallbackManager
	logger             logging.Logger

	sem        chan struct{}
	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
}

// New constructs a Runner around an orchestrator with optional overrides.
func New(orchestrator *discussion.Orchestrator, optFns ...func(o *Options)) *Runner {
	opts := Options{
		MaxConcurrentRuns: 10,
		TurnBufferSize:    100,
		MaxModelCalls:     100,
		MaxRounds:         config.DefaultMaxRounds,
		ResultStore:       store.NewInMemoryStore(),
		Callbacks:         NewCallbackManager(),
		Logger:            logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var sem chan struct{}
	if opts.MaxConcurrentRuns > 0 {
		sem = make(chan struct{}, opts.MaxConcurrentRuns)
	}

	return &Runner{
		orchestrator:       orchestrator,
		turnBufferSize:     opts.TurnBufferSize,
		maxModelCalls:      opts.MaxModelCalls,
		maxRounds:          opts.MaxRounds,
		resultStore:        opts.ResultStore,
		backgroundProvider: opts.BackgroundProvider,
		callbacks:          opts.Callbacks,
		logger:             opts.Logger,
		sem:                sem,
		activeRuns:         make(map[string]context.CancelFunc),
	}
}

// Results returns the store completed discussions are saved to.
func (r *Runner) Results() core.ResultStore {
	return r.resultStore
}

// Run starts an asynchronous discussion. It returns the run id, a channel of
// live transcript turns and an error channel. Both channels close when the
// run finishes; the completed result goes to the result store and the
// AfterDiscussion callbacks. Consumers should drain the turn channel, then
// check the error channel.
func (r *Runner) Run(ctx context.Context, req Request) (string, <-chan core.Turn, <-chan error, error) {
	req, err := r.prepare(req)
	if err != nil {
		return "", nil, nil, err
	}

	runID := core.NewID()

	turnsCh := make(chan core.Turn, r.turnBufferSize)
	errorsCh := make(chan error, 1)
	emit := make(chan core.Turn, r.turnBufferSize)

	ctx, cancel := context.WithCancel(ctx)
	r.mu.Lock()
	r.activeRuns[runID] = cancel
	r.mu.Unlock()

	go func() {
		// Deregister before closing emit: once the turn stream ends the run
		// is guaranteed to be gone from the registry.
		defer func() {
			r.mu.Lock()
			delete(r.activeRuns, runID)
			r.mu.Unlock()
			close(emit)
		}()

		if _, err := r.execute(ctx, runID, req, emit); err != nil {
			select {
			case <-ctx.Done():
			case errorsCh <- err:
			}
		}
	}()

	go func() {
		// Cancel only after the backlog is delivered, so a finished run
		// still streams its tail.
		defer func() { close(turnsCh); close(errorsCh); cancel() }()

		r.forwardTurns(ctx, runID, req.SubjectID, emit, turnsCh)
	}()

	return runID, turnsCh, errorsCh, nil
}

// RunSync executes a discussion and blocks until its result is ready. Turn
// callbacks still fire while the run progresses.
func (r *Runner) RunSync(ctx context.Context, req Request) (*core.Result, error) {
	req, err := r.prepare(req)
	if err != nil {
		return nil, err
	}

	runID := core.NewID()
	emit := make(chan core.Turn, r.turnBufferSize)

	done := make(chan struct{})
	go func() {
		defer close(done)
		r.forwardTurns(ctx, runID, req.SubjectID, emit, nil)
	}()

	result, runErr := r.execute(ctx, runID, req, emit)
	close(emit)
	<-done

	return result, runErr
}

// Cancel aborts a running discussion by run id.
func (r *Runner) Cancel(runID string) error {
	r.mu.Lock()
	cancel, exists := r.activeRuns[runID]
	r.mu.Unlock()

	if !exists {
		return fmt.Errorf("run %s not found", runID)
	}

	cancel()

	return nil
}

// prepare validates the request and fills in runner defaults.
func (r *Runner) prepare(req Request) (Request, error) {
	if req.SubjectID == "" {
		return req, fmt.Errorf("subject id must not be empty")
	}
	if req.Topic == "" {
		req.Topic = config.DefaultTopic
	}
	if req.MaxRounds == 0 {
		req.MaxRounds = r.maxRounds
	}
	return req, nil
}

// execute runs one discussion end to end: acquire a slot, gather briefing
// material, fire lifecycle callbacks, orchestrate, persist.
func (r *Runner) execute(ctx context.Context, runID string, req Request, emit chan<- core.Turn) (*core.Result, error) {
	if r.sem != nil {
		select {
		case r.sem <- struct{}{}:
			defer func() { <-r.sem }()
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if req.Background == "" && r.backgroundProvider != nil {
		background, err := r.backgroundProvider.Background(ctx, req.SubjectID)
		if err != nil {
			return nil, r.fail(ctx, runID, req, fmt.Errorf("background collection failed: %w", err))
		}
		req.Background = background
	}

	cc := &CallbackContext{RunID: runID, SubjectID: req.SubjectID, CallbackType: CallbackBeforeDiscussion}
	if err := r.callbacks.Execute(ctx, CallbackBeforeDiscussion, cc); err != nil {
		return nil, r.fail(ctx, runID, req, fmt.Errorf("before discussion callback failed: %w", err))
	}

	rc := core.NewRunContext(ctx, runID, req.SubjectID, req.Topic, req.Background, req.MaxRounds, r.maxModelCalls, emit, r.logger)

	result, err := r.orchestrator.Run(rc)
	if err != nil {
		return nil, r.fail(ctx, runID, req, fmt.Errorf("discussion failed: %w", err))
	}

	if r.resultStore != nil {
		discussionID, err := r.resultStore.Save(ctx, req.SubjectID, result)
		if err != nil {
			return nil, r.fail(ctx, runID, req, fmt.Errorf("failed to save result: %w", err))
		}
		r.logger.Info("runner.result.saved", "run_id", runID, "subject_id", req.SubjectID, "discussion_id", discussionID)
	}

	after := &CallbackContext{RunID: runID, SubjectID: req.SubjectID, CallbackType: CallbackAfterDiscussion, Result: result}
	if err := r.callbacks.Execute(ctx, CallbackAfterDiscussion, after); err != nil {
		r.logger.Warn("runner.callback.after_discussion_failed", "run_id", runID, "error", err.Error())
	}

	return result, nil
}

// fail runs the OnError callbacks and hands the error back for propagation.
func (r *Runner) fail(ctx context.Context, runID string, req Request, err error) error {
	r.logger.Error("runner.run.failed", "run_id", runID, "subject_id", req.SubjectID, "error", err.Error())

	cc := &CallbackContext{RunID: runID, SubjectID: req.SubjectID, CallbackType: CallbackOnError, Err: err}
	if cbErr := r.callbacks.Execute(ctx, CallbackOnError, cc); cbErr != nil {
		r.logger.Warn("runner.callback.on_error_failed", "run_id", runID, "error", cbErr.Error())
	}

	return err
}

// forwardTurns drains emitted turns, fires the OnTurn callbacks and, when an
// output channel is given, republishes each turn to it.
func (r *Runner) forwardTurns(ctx context.Context, runID, subjectID string, emit <-chan core.Turn, out chan<- core.Turn) {
	for turn := range emit {
		cc := &CallbackContext{RunID: runID, SubjectID: subjectID, CallbackType: CallbackOnTurn, Turn: &turn}
		if err := r.callbacks.Execute(ctx, CallbackOnTurn, cc); err != nil {
			r.logger.Warn("runner.callback.on_turn_failed", "run_id", runID, "error", err.Error())
		}

		if out == nil {
			continue
		}

		select {
		case <-ctx.Done():
			// Keep draining so the producer can finish; the consumer is gone.
			continue
		case out <- turn:
		}
	}
}
