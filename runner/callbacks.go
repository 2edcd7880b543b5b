package runner

import (
	"context"
	"fmt"

	"github.com/hupe1980/moodpanel/core"
)

// CallbackType defines the lifecycle points where callbacks can be executed.
//
// Callbacks hook into the runner's pipeline without modifying orchestration
// logic. They run synchronously: a BeforeDiscussion callback returning an
// error aborts the run, while errors from the other types are logged and the
// run continues.
type CallbackType string

const (
	// CallbackBeforeDiscussion is triggered before a discussion starts.
	// Use for setup, validation, or instrumentation.
	CallbackBeforeDiscussion CallbackType = "before_discussion"

	// CallbackAfterDiscussion is triggered after a discussion completes,
	// with the final result attached. Use for metrics, notifications, or
	// post-processing.
	CallbackAfterDiscussion CallbackType = "after_discussion"

	// CallbackOnTurn is triggered for every transcript turn as it is
	// spoken. Use for live display or auditing.
	CallbackOnTurn CallbackType = "on_turn"

	// CallbackOnError is triggered when a run fails.
	CallbackOnError CallbackType = "on_error"
)

// CallbackContext carries the information a callback might need. Turn is set
// for OnTurn, Result for AfterDiscussion, Err for OnError; the other fields
// are always populated.
type CallbackContext struct {
	RunID        string
	SubjectID    string
	CallbackType CallbackType
	Turn         *core.Turn
	Result       *core.Result
	Err          error

	// Metadata provides extensible storage for custom callback data.
	Metadata map[string]any
}

// Callback is a runner lifecycle hook. Implementations should be fast, they
// run on the discussion's critical path.
type Callback interface {
	// Type returns the callback type this implementation handles.
	Type() CallbackType

	// Execute performs the callback logic with the provided context.
	Execute(ctx context.Context, cc *CallbackContext) error
}

// FunctionCallback wraps a plain function as a Callback.
//
// Example:
//
//	logTurns := runner.NewFunctionCallback(runner.CallbackOnTurn,
//	    func(ctx context.Context, cc *runner.CallbackContext) error {
//	        fmt.Printf("%s: %s\n", cc.Turn.Speaker, cc.Turn.Content)
//	        return nil
//	    })
type FunctionCallback struct {
	callbackType CallbackType
	fn           func(ctx context.Context, cc *CallbackContext) error
}

// NewFunctionCallback creates a new function-based callback for the given
// lifecycle point.
func NewFunctionCallback(
	callbackType CallbackType,
	fn func(ctx context.Context, cc *CallbackContext) error,
) *FunctionCallback {
	return &FunctionCallback{
		callbackType: callbackType,
		fn:           fn,
	}
}

// Type returns the callback type this function handles.
func (c *FunctionCallback) Type() CallbackType {
	return c.callbackType
}

// Execute calls the wrapped function with the provided context.
func (c *FunctionCallback) Execute(ctx context.Context, cc *CallbackContext) error {
	return c.fn(ctx, cc)
}

// CallbackManager holds registered callbacks and executes them per type in
// registration order. Registration is not thread-safe; register everything
// before handing the manager to a runner. Execution is safe for concurrent
// use once registration is done.
type CallbackManager struct {
	callbacks map[CallbackType][]Callback
}

// NewCallbackManager creates an empty callback manager.
func NewCallbackManager() *CallbackManager {
	return &CallbackManager{
		callbacks: make(map[CallbackType][]Callback),
	}
}

// Register adds a callback under its own declared type.
func (m *CallbackManager) Register(cb Callback) {
	m.callbacks[cb.Type()] = append(m.callbacks[cb.Type()], cb)
}

// Execute runs all callbacks of the given type in registration order. The
// first error stops the chain and is returned.
func (m *CallbackManager) Execute(ctx context.Context, callbackType CallbackType, cc *CallbackContext) error {
	for _, cb := range m.callbacks[callbackType] {
		if err := cb.Execute(ctx, cc); err != nil {
			return err
		}
	}
	return nil
}

// LoggingCallback forwards lifecycle events to a logging function. Useful for
// debugging, monitoring, and audit trails.
//
// Example:
//
//	logger := func(message string) {
//	    log.Printf("[PANEL] %s", message)
//	}
//	callback := runner.NewLoggingCallback(runner.CallbackOnTurn, logger)
type LoggingCallback struct {
	callbackType CallbackType
	logger       func(message string)
}

// NewLoggingCallback creates a logging callback for the given lifecycle point.
func NewLoggingCallback(callbackType CallbackType, logger func(message string)) *LoggingCallback {
	return &LoggingCallback{
		callbackType: callbackType,
		logger:       logger,
	}
}

// Type returns the callback type this logger handles.
func (c *LoggingCallback) Type() CallbackType {
	return c.callbackType
}

// Execute logs the lifecycle event with its most relevant detail. If no
// logger function is configured, the callback silently succeeds.
func (c *LoggingCallback) Execute(ctx context.Context, cc *CallbackContext) error {
	if c.logger == nil {
		return nil
	}
	switch {
	case cc.Turn != nil:
		c.logger(fmt.Sprintf("[%s] run: %s, subject: %s, speaker: %s",
			c.callbackType, cc.RunID, cc.SubjectID, cc.Turn.Speaker))
	case cc.Result != nil:
		c.logger(fmt.Sprintf("[%s] run: %s, subject: %s, verdict: %s (%.1f)",
			c.callbackType, cc.RunID, cc.SubjectID, cc.Result.FinalMood, cc.Result.FinalScore))
	case cc.Err != nil:
		c.logger(fmt.Sprintf("[%s] run: %s, subject: %s, error: %v",
			c.callbackType, cc.RunID, cc.SubjectID, cc.Err))
	default:
		c.logger(fmt.Sprintf("[%s] run: %s, subject: %s",
			c.callbackType, cc.RunID, cc.SubjectID))
	}
	return nil
}
