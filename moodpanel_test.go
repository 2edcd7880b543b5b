package moodpanel

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/moodpanel/config"
	"github.com/hupe1980/moodpanel/core"
	"github.com/hupe1980/moodpanel/model"
	"github.com/hupe1980/moodpanel/runner"
	"github.com/hupe1980/moodpanel/store"
)

// scriptedModel returns a mock that can play every seat of a default panel:
// phase is recognized from the prompt, the voting persona from the system
// instructions.
func scriptedModel() *model.MockModel {
	llm := model.NewMockModel("mock-panelist", "mock")
	llm.SetResponder(func(req model.Request) string {
		prompt := req.Messages[len(req.Messages)-1].Text
		switch {
		case strings.Contains(prompt, "introduce this panel discussion"):
			return "Welcome to the panel."
		case strings.Contains(prompt, "Continue: [Yes/No]"):
			return "Continue: No\nTarget Experts: None\nReason: all perspectives heard"
		case strings.Contains(prompt, "Cast your final vote"):
			switch {
			case strings.Contains(req.Instructions, "Economic Analyst"):
				return "Vote: Happy\nConfidence: 80\nReasoning: strong fundamentals"
			case strings.Contains(req.Instructions, "Social Welfare Specialist"):
				return "Vote: Happy\nConfidence: 70\nReasoning: welfare is improving"
			default:
				return "Vote: Sad\nConfidence: 60\nReasoning: emissions keep rising"
			}
		case strings.Contains(prompt, "concluding statement"):
			return "In conclusion, the outlook is positive."
		case strings.Contains(prompt, "opening analysis"):
			return "Indicators look stable."
		}
		return ""
	})
	return llm
}

func TestMoodPanel_DiscussWithDefaultRoster(t *testing.T) {
	panel := New(scriptedModel())

	assert.Equal(t, []string{
		"Economic Analyst",
		"Social Welfare Specialist",
		"Environmental Scientist",
	}, panel.Roster())

	result, err := panel.Discuss(context.Background(), runner.Request{
		SubjectID:  "JP",
		Topic:      "How is Japan doing?",
		Background: "Recent News Headlines:\n- Markets rally",
		MaxRounds:  1,
	})
	require.NoError(t, err)

	// Weighted vote: (100*0.8 + 100*0.7 + 0*0.6) / 2.1
	assert.Equal(t, core.MoodHappy, result.FinalMood)
	assert.InDelta(t, 71.43, result.FinalScore, 0.01)

	assert.Equal(t, "Welcome to the panel.", result.Introduction)
	assert.Equal(t, "In conclusion, the outlook is positive.", result.Conclusion)
	assert.Equal(t, 1, result.DebateRounds)
	assert.Equal(t, 10, result.TotalTurns)
	assert.Len(t, result.Votes, 3)
	assert.Len(t, result.Analyses, 3)

	latest, err := panel.Results().(*store.InMemoryStore).Latest("JP")
	require.NoError(t, err)
	assert.Equal(t, result.FinalScore, latest.FinalScore)
}

func TestMoodPanel_DiscussStream(t *testing.T) {
	panel := New(scriptedModel())

	runID, turns, errs, err := panel.DiscussStream(context.Background(), runner.Request{
		SubjectID:  "JP",
		Background: "Recent News Headlines:\n- Markets rally",
		MaxRounds:  1,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, runID)

	var speakers []string
	for turn := range turns {
		speakers = append(speakers, turn.Speaker)
	}
	require.NoError(t, <-errs)

	assert.Equal(t, []string{
		"Moderator",
		"Moderator",
		"Economic Analyst",
		"Social Welfare Specialist",
		"Environmental Scientist",
		"Moderator",
		"Economic Analyst",
		"Social Welfare Specialist",
		"Environmental Scientist",
		"Moderator",
	}, speakers)
}

func TestMoodPanel_CustomRoster(t *testing.T) {
	llm := model.NewMockModel("mock-panelist", "mock")
	llm.SetResponder(func(req model.Request) string {
		prompt := req.Messages[len(req.Messages)-1].Text
		switch {
		case strings.Contains(prompt, "Continue: [Yes/No]"):
			return "Continue: No\nTarget Experts: None\nReason: enough"
		case strings.Contains(prompt, "Cast your final vote"):
			return "Vote: Neutral\nConfidence: 55\nReasoning: mixed signals"
		}
		return ""
	})

	panel := New(llm, func(o *Options) {
		o.Experts = []config.Persona{config.WeatherAnalyst(), config.FortuneTeller()}
	})

	assert.Equal(t, []string{"Weather Analyst", "Fortune Teller"}, panel.Roster())

	result, err := panel.Discuss(context.Background(), runner.Request{
		SubjectID:  "IN",
		Background: "Monsoon arrived two weeks early.",
		MaxRounds:  1,
	})
	require.NoError(t, err)

	assert.Equal(t, core.MoodNeutral, result.FinalMood)
	assert.InDelta(t, 50.0, result.FinalScore, 0.01)
	require.Len(t, result.Votes, 2)
	assert.Equal(t, "Weather Analyst", result.Votes[0].Role)
	assert.Equal(t, "Fortune Teller", result.Votes[1].Role)
}

func TestMoodPanel_StreamingModelYieldsIdenticalTurns(t *testing.T) {
	buffered, err := New(scriptedModel()).Discuss(context.Background(), runner.Request{
		SubjectID: "JP", Background: "b", MaxRounds: 1,
	})
	require.NoError(t, err)

	streamed, err := New(scriptedModel(), func(o *Options) {
		o.EnableStreaming = true
	}).Discuss(context.Background(), runner.Request{
		SubjectID: "JP", Background: "b", MaxRounds: 1,
	})
	require.NoError(t, err)

	require.Equal(t, len(buffered.Transcript), len(streamed.Transcript))
	for i := range buffered.Transcript {
		assert.Equal(t, buffered.Transcript[i].Content, streamed.Transcript[i].Content)
	}
}

func TestMoodPanel_BackgroundProviderIsConsulted(t *testing.T) {
	var sawBriefing bool
	llm := model.NewMockModel("mock-panelist", "mock")
	llm.SetResponder(func(req model.Request) string {
		prompt := req.Messages[len(req.Messages)-1].Text
		if strings.Contains(prompt, "Tourism numbers at record high") {
			sawBriefing = true
		}
		switch {
		case strings.Contains(prompt, "Continue: [Yes/No]"):
			return "Continue: No\nTarget Experts: None\nReason: enough"
		case strings.Contains(prompt, "Cast your final vote"):
			return "Vote: Happy\nConfidence: 90\nReasoning: thriving"
		}
		return ""
	})

	panel := New(llm, func(o *Options) {
		o.BackgroundProvider = core.StaticBackground("Tourism numbers at record high.")
	})

	_, err := panel.Discuss(context.Background(), runner.Request{SubjectID: "JP", MaxRounds: 1})
	require.NoError(t, err)
	assert.True(t, sawBriefing, "provider briefing should reach the prompts")
}
