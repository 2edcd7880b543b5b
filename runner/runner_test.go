package runner

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/moodpanel/config"
	"github.com/hupe1980/moodpanel/core"
	"github.com/hupe1980/moodpanel/discussion"
	"github.com/hupe1980/moodpanel/store"
)

// seat is a scripted panelist for runner tests.
type seat struct {
	role    string
	respond func(rc *core.RunContext, prompt string) string
}

func (s *seat) Role() string { return s.role }

func (s *seat) Respond(rc *core.RunContext, prompt string) string {
	return s.respond(rc, prompt)
}

func quickModerator() core.Panelist {
	return &seat{role: "Moderator", respond: func(rc *core.RunContext, prompt string) string {
		switch {
		case strings.Contains(prompt, "introduce this panel discussion"):
			return "Welcome."
		case strings.Contains(prompt, "Continue: [Yes/No]"):
			return "Continue: No\nTarget Experts: None\nReason: converged"
		case strings.Contains(prompt, "concluding statement"):
			return "Goodbye."
		default:
			return "Any further thoughts?"
		}
	}}
}

func quickExpert(role, mood string, confidence int) core.Panelist {
	return &seat{role: role, respond: func(rc *core.RunContext, prompt string) string {
		if strings.Contains(prompt, "Cast your final vote") {
			return fmt.Sprintf("Vote: %s\nConfidence: %d\nReasoning: because of the data", mood, confidence)
		}
		return fmt.Sprintf("%s view.", role)
	}}
}

func quickOrchestrator(extraSeats ...core.Panelist) *discussion.Orchestrator {
	experts := []core.Panelist{
		quickExpert("Economic Analyst", "Happy", 80),
		quickExpert("Social Welfare Specialist", "Neutral", 60),
	}
	experts = append(experts, extraSeats...)
	return discussion.New(quickModerator(), experts)
}

func TestRunner_RunSync(t *testing.T) {
	results := store.NewInMemoryStore()
	r := New(quickOrchestrator(), func(o *Options) {
		o.ResultStore = results
	})

	result, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "JP", result.SubjectID)
	assert.Equal(t, config.DefaultTopic, result.Topic)
	assert.Equal(t, 1, result.DebateRounds)

	saved, err := results.List("JP")
	require.NoError(t, err)
	require.Len(t, saved, 1)
	assert.Equal(t, result.FinalScore, saved[0].FinalScore)
}

func TestRunner_RunStreamsTurnsThenCloses(t *testing.T) {
	r := New(quickOrchestrator())

	runID, turns, errs, err := r.Run(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	var streamed []core.Turn
	for turn := range turns {
		streamed = append(streamed, turn)
	}
	require.NoError(t, <-errs)

	// Introduction, opening call, two analyses, voting call, two vote
	// statements, conclusion.
	assert.Len(t, streamed, 8)
	for i, turn := range streamed {
		assert.Equal(t, i+1, turn.Order)
	}

	latest, err := r.Results().(*store.InMemoryStore).Latest("JP")
	require.NoError(t, err)
	assert.Equal(t, len(streamed), latest.TotalTurns)
}

func TestRunner_DefaultsApplyWhenRequestIsBare(t *testing.T) {
	r := New(quickOrchestrator(), func(o *Options) {
		o.MaxRounds = 4
	})

	result, err := r.RunSync(context.Background(), Request{SubjectID: "JP"})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultTopic, result.Topic)
	// The default-round budget allowed debate, but the moderator stopped at
	// the first routing check.
	assert.Equal(t, 1, result.DebateRounds)
}

func TestRunner_RejectsEmptySubject(t *testing.T) {
	r := New(quickOrchestrator())

	_, err := r.RunSync(context.Background(), Request{})
	assert.Error(t, err)

	_, _, _, err = r.Run(context.Background(), Request{})
	assert.Error(t, err)
}

func TestRunner_InvalidMaxRoundsSurfaces(t *testing.T) {
	r := New(quickOrchestrator())

	_, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: -1})
	assert.ErrorIs(t, err, discussion.ErrInvalidMaxRounds)
}

func TestRunner_BackgroundProviderFillsMissingBriefing(t *testing.T) {
	var askedFor string
	provider := core.BackgroundProviderFunc(func(ctx context.Context, subjectID string) (string, error) {
		askedFor = subjectID
		return "Recent News Headlines:\n- Markets rally", nil
	})

	var sawBackground bool
	expert := &seat{role: "Environmental Scientist", respond: func(rc *core.RunContext, prompt string) string {
		if strings.Contains(prompt, "Markets rally") {
			sawBackground = true
		}
		if strings.Contains(prompt, "Cast your final vote") {
			return "Vote: Neutral\nConfidence: 50\nReasoning: unsure"
		}
		return "A view."
	}}

	r := New(quickOrchestrator(expert), func(o *Options) {
		o.BackgroundProvider = provider
	})

	_, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
	require.NoError(t, err)

	assert.Equal(t, "JP", askedFor)
	assert.True(t, sawBackground, "collected background should reach expert prompts")
}

func TestRunner_BackgroundProviderFailureFailsTheRun(t *testing.T) {
	provider := core.BackgroundProviderFunc(func(ctx context.Context, subjectID string) (string, error) {
		return "", errors.New("collector is down")
	})

	var onError error
	callbacks := NewCallbackManager()
	callbacks.Register(NewFunctionCallback(CallbackOnError, func(ctx context.Context, cc *CallbackContext) error {
		onError = cc.Err
		return nil
	}))

	r := New(quickOrchestrator(), func(o *Options) {
		o.BackgroundProvider = provider
		o.Callbacks = callbacks
	})

	_, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "background collection failed")
	assert.ErrorContains(t, onError, "collector is down")
}

func TestRunner_SuppliedBackgroundSkipsProvider(t *testing.T) {
	provider := core.BackgroundProviderFunc(func(ctx context.Context, subjectID string) (string, error) {
		return "", errors.New("should not be called")
	})

	r := New(quickOrchestrator(), func(o *Options) {
		o.BackgroundProvider = provider
	})

	_, err := r.RunSync(context.Background(), Request{SubjectID: "JP", Background: "already briefed", MaxRounds: 1})
	assert.NoError(t, err)
}

func TestRunner_Callbacks(t *testing.T) {
	var (
		mu         sync.Mutex
		turnCount  int
		afterMood  core.Mood
		beforeSeen bool
	)

	callbacks := NewCallbackManager()
	callbacks.Register(NewFunctionCallback(CallbackBeforeDiscussion, func(ctx context.Context, cc *CallbackContext) error {
		beforeSeen = true
		return nil
	}))
	callbacks.Register(NewFunctionCallback(CallbackOnTurn, func(ctx context.Context, cc *CallbackContext) error {
		mu.Lock()
		turnCount++
		mu.Unlock()
		return nil
	}))
	callbacks.Register(NewFunctionCallback(CallbackAfterDiscussion, func(ctx context.Context, cc *CallbackContext) error {
		afterMood = cc.Result.FinalMood
		return nil
	}))

	r := New(quickOrchestrator(), func(o *Options) {
		o.Callbacks = callbacks
	})

	result, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
	require.NoError(t, err)

	assert.True(t, beforeSeen)
	assert.Equal(t, result.TotalTurns, turnCount)
	assert.Equal(t, result.FinalMood, afterMood)
}

func TestRunner_BeforeCallbackCanAbort(t *testing.T) {
	callbacks := NewCallbackManager()
	callbacks.Register(NewFunctionCallback(CallbackBeforeDiscussion, func(ctx context.Context, cc *CallbackContext) error {
		return errors.New("not allowed today")
	}))

	results := store.NewInMemoryStore()
	r := New(quickOrchestrator(), func(o *Options) {
		o.Callbacks = callbacks
		o.ResultStore = results
	})

	_, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not allowed today")

	saved, _ := results.List("JP")
	assert.Empty(t, saved)
}

type mockResultStore struct {
	mock.Mock
}

func (m *mockResultStore) Save(ctx context.Context, subjectID string, result *core.Result) (string, error) {
	args := m.Called(ctx, subjectID, result)
	return args.String(0), args.Error(1)
}

func TestRunner_SavesThroughConfiguredStore(t *testing.T) {
	resultStore := new(mockResultStore)
	resultStore.On("Save", mock.Anything, "JP", mock.MatchedBy(func(result *core.Result) bool {
		return result.SubjectID == "JP" && result.TotalTurns == len(result.Transcript)
	})).Return("disc-1", nil).Once()

	r := New(quickOrchestrator(), func(o *Options) {
		o.ResultStore = resultStore
	})

	_, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
	require.NoError(t, err)

	resultStore.AssertExpectations(t)
}

func TestRunner_CancelAbortsRun(t *testing.T) {
	started := make(chan struct{})
	expert := &seat{role: "Economic Analyst", respond: func(rc *core.RunContext, prompt string) string {
		select {
		case started <- struct{}{}:
		default:
		}
		<-rc.Done()
		return "[Error from Economic Analyst]"
	}}

	results := store.NewInMemoryStore()
	orchestrator := discussion.New(quickModerator(), []core.Panelist{expert})
	r := New(orchestrator, func(o *Options) {
		o.ResultStore = results
	})

	runID, turns, errs, err := r.Run(context.Background(), Request{SubjectID: "JP", MaxRounds: 3})
	require.NoError(t, err)

	<-started
	require.NoError(t, r.Cancel(runID))

	for range turns {
	}
	<-errs

	saved, _ := results.List("JP")
	assert.Empty(t, saved, "a cancelled run must not persist a result")

	assert.Error(t, r.Cancel(runID), "completed runs are no longer cancellable")
	assert.Error(t, r.Cancel("unknown"))
}

func TestRunner_ConcurrentRunsAreBounded(t *testing.T) {
	var active, maxActive int32

	expert := &seat{role: "Economic Analyst", respond: func(rc *core.RunContext, prompt string) string {
		cur := atomic.AddInt32(&active, 1)
		for {
			seen := atomic.LoadInt32(&maxActive)
			if cur <= seen || atomic.CompareAndSwapInt32(&maxActive, seen, cur) {
				break
			}
		}
		time.Sleep(2 * time.Millisecond)
		atomic.AddInt32(&active, -1)

		if strings.Contains(prompt, "Cast your final vote") {
			return "Vote: Neutral\nConfidence: 50\nReasoning: steady"
		}
		return "A view."
	}}

	orchestrator := discussion.New(quickModerator(), []core.Panelist{expert})
	r := New(orchestrator, func(o *Options) {
		o.MaxConcurrentRuns = 1
	})

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.RunSync(context.Background(), Request{SubjectID: "JP", MaxRounds: 1})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxActive), "expert seats of different runs overlapped")
}
