package discussion

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/hupe1980/moodpanel/core"
	"github.com/hupe1980/moodpanel/score"
)

// Context window sizes, in transcript turns, for each phase. Later phases
// see more history so closing statements rest on the whole debate rather
// than the last exchange.
const (
	routingWindow        = 12
	debateQuestionWindow = 10
	debateReplyWindow    = 8
	votingWindow         = 15
	conclusionWindow     = 12
)

var (
	// ErrInvalidMaxRounds signals a round budget below one.
	ErrInvalidMaxRounds = errors.New("max rounds must be at least 1")

	// ErrNoModerator signals a panel without a moderator seat.
	ErrNoModerator = errors.New("discussion requires a moderator")

	// ErrNoPanelists signals an empty expert roster.
	ErrNoPanelists = errors.New("discussion requires at least one expert panelist")
)

// Options configures an Orchestrator instance.
//
// Use functional options with New to override defaults.
type Options struct {
	// ConcurrentRounds answers each round's experts in parallel instead of
	// one after another. All experts of a concurrent round build their reply
	// from the same transcript snapshot, so none of them sees a seatmate's
	// reply from the round in flight; replies still land in the transcript
	// in roster order.
	ConcurrentRounds bool
}

// Orchestrator drives one panel discussion through its fixed phase sequence:
// introduction, opening analyses, moderator-routed debate rounds, voting,
// scoring and conclusion. It is stateless between runs; all per-run state
// lives in the core.RunContext.
type Orchestrator struct {
	moderator        core.Panelist
	experts          []core.Panelist
	roster           []string
	concurrentRounds bool
}

// New assembles an orchestrator from a moderator seat and an expert roster.
// Roster order is authoritative: it decides who opens round one and the
// order replies land in the transcript.
func New(moderator core.Panelist, experts []core.Panelist, optFns ...func(o *Options)) *Orchestrator {
	opts := Options{
		ConcurrentRounds: false,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	roster := make([]string, 0, len(experts))
	for _, p := range experts {
		roster = append(roster, p.Role())
	}

	return &Orchestrator{
		moderator:        moderator,
		experts:          experts,
		roster:           roster,
		concurrentRounds: opts.ConcurrentRounds,
	}
}

// Roster returns the expert role names in seat order.
func (o *Orchestrator) Roster() []string {
	return append([]string{}, o.roster...)
}

// Run executes the full discussion and assembles its result. The transcript,
// analyses and votes all come from rc, which must be fresh for this run.
// Configuration problems surface immediately as errors; a cancelled context
// aborts between phases with the context's error.
func (o *Orchestrator) Run(rc *core.RunContext) (*core.Result, error) {
	if rc.MaxRounds < 1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidMaxRounds, rc.MaxRounds)
	}
	if o.moderator == nil {
		return nil, ErrNoModerator
	}
	if len(o.experts) == 0 {
		return nil, ErrNoPanelists
	}

	if rc.Background == "" {
		rc.Background = defaultBackground(rc.SubjectID)
	}

	rc.LogInfo("discussion.started",
		"run_id", rc.RunID,
		"subject_id", rc.SubjectID,
		"topic", rc.Topic,
		"max_rounds", rc.MaxRounds,
		"experts", len(o.experts),
	)

	introduction, err := o.introduce(rc)
	if err != nil {
		return nil, err
	}

	analyses, err := o.openingAnalyses(rc)
	if err != nil {
		return nil, err
	}

	debateAnalyses, debateRounds, err := o.debate(rc)
	if err != nil {
		return nil, err
	}
	analyses = append(analyses, debateAnalyses...)

	votes, err := o.voting(rc)
	if err != nil {
		return nil, err
	}

	finalMood, finalScore := score.Aggregate(votes)

	conclusion, err := o.conclude(rc, finalMood, finalScore)
	if err != nil {
		return nil, err
	}

	result := &core.Result{
		SubjectID:    rc.SubjectID,
		Topic:        rc.Topic,
		FinalMood:    finalMood,
		FinalScore:   finalScore,
		Introduction: introduction,
		Conclusion:   conclusion,
		Date:         time.Now().UTC(),
		TotalTurns:   rc.Transcript.Len(),
		DebateRounds: debateRounds,
		Analyses:     analyses,
		Votes:        votes,
		Transcript:   rc.Transcript.Turns(),
	}

	rc.LogInfo("discussion.completed",
		"run_id", rc.RunID,
		"final_mood", finalMood.String(),
		"final_score", finalScore,
		"debate_rounds", debateRounds,
		"total_turns", result.TotalTurns,
	)

	return result, nil
}

// panelistsFor resolves role names back to seats, keeping the given order.
// Unknown names are skipped.
func (o *Orchestrator) panelistsFor(roles []string) []core.Panelist {
	var selected []core.Panelist
	for _, role := range roles {
		for _, p := range o.experts {
			if p.Role() == role {
				selected = append(selected, p)
				break
			}
		}
	}
	return selected
}

// fanOut collects one reply per panelist and hands each to handle in seat
// order. Sequential mode builds every prompt just in time, so each expert's
// window already contains the replies of those before them. Concurrent mode
// builds all prompts first, answers in parallel, then handles results in
// seat order, so appends stay deterministic.
func (o *Orchestrator) fanOut(
	rc *core.RunContext,
	panelists []core.Panelist,
	buildPrompt func(role string) string,
	handle func(role, text string) error,
) error {
	if !o.concurrentRounds {
		for _, p := range panelists {
			text := p.Respond(rc, buildPrompt(p.Role()))
			if err := handle(p.Role(), text); err != nil {
				return err
			}
		}
		return nil
	}

	prompts := make([]string, len(panelists))
	for i, p := range panelists {
		prompts[i] = buildPrompt(p.Role())
	}

	texts := make([]string, len(panelists))

	var wg sync.WaitGroup
	for i, p := range panelists {
		wg.Add(1)
		go func(i int, p core.Panelist) {
			defer wg.Done()
			texts[i] = p.Respond(rc, prompts[i])
		}(i, p)
	}
	wg.Wait()

	for i, p := range panelists {
		if err := handle(p.Role(), texts[i]); err != nil {
			return err
		}
	}
	return nil
}
