package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/moodpanel/core"
)

func TestVote_WellFormedResponse(t *testing.T) {
	raw := "Vote: Happy\nConfidence: 85\nReasoning: strong growth"

	vote := Vote("Economic Analyst", raw)

	assert.Equal(t, "Economic Analyst", vote.Role)
	assert.Equal(t, core.MoodHappy, vote.Mood)
	assert.InDelta(t, 0.85, vote.Confidence, 1e-9)
	assert.Equal(t, "strong growth", vote.Reasoning)
}

func TestVote_MoodDecoding(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected core.Mood
	}{
		{"plain happy", "Vote: Happy", core.MoodHappy},
		{"plain sad", "Vote: Sad", core.MoodSad},
		{"plain neutral", "Vote: Neutral", core.MoodNeutral},
		{"mood embedded in a sentence", "Vote: I'd say happy overall", core.MoodHappy},
		{"happy wins when both moods appear", "Vote: happy, though others are sad", core.MoodHappy},
		{"uppercase label and value", "VOTE: SAD", core.MoodSad},
		{"unknown value falls back to neutral", "Vote: optimistic", core.MoodNeutral},
		{"no vote line falls back to neutral", "I refuse to commit.", core.MoodNeutral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vote := Vote("role", tt.raw)
			assert.Equal(t, tt.expected, vote.Mood)
		})
	}
}

func TestVote_ConfidenceDecoding(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{"integer percentage", "Confidence: 70", 0.70},
		{"percent sign and prose", "Confidence: around 85%, give or take", 0.85},
		{"decimal percentage", "Confidence: 72.5", 0.725},
		{"clamped above hundred", "Confidence: 250", 1.0},
		{"no digits keeps default", "Confidence: high", 0.5},
		{"missing line keeps default", "Vote: Happy", 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vote := Vote("role", tt.raw)
			assert.InDelta(t, tt.expected, vote.Confidence, 1e-9)
		})
	}
}

func TestVote_ReasoningDecoding(t *testing.T) {
	t.Run("remainder after first colon survives verbatim", func(t *testing.T) {
		vote := Vote("role", "Reasoning: risks remain: debt, inflation")
		assert.Equal(t, "risks remain: debt, inflation", vote.Reasoning)
	})

	t.Run("missing reasoning falls back to the raw response", func(t *testing.T) {
		raw := "Vote: Sad\nConfidence: 40"
		vote := Vote("role", raw)
		assert.Equal(t, raw, vote.Reasoning)
	})

	t.Run("empty reasoning value falls back to the raw response", func(t *testing.T) {
		raw := "Vote: Sad\nReasoning:"
		vote := Vote("role", raw)
		assert.Equal(t, raw, vote.Reasoning)
	})
}

func TestVote_UnstructuredResponseUsesDefaults(t *testing.T) {
	raw := "The committee was unable to reach any conclusion today."

	vote := Vote("Social Welfare Specialist", raw)

	assert.Equal(t, core.MoodNeutral, vote.Mood)
	assert.InDelta(t, 0.5, vote.Confidence, 1e-9)
	assert.Equal(t, raw, vote.Reasoning)
}

func TestVote_IndentedAndSpacedLabels(t *testing.T) {
	vote := Vote("role", "  vote:  Sad  \n\tconfidence: 33\n reasoning:  slow decline ")

	assert.Equal(t, core.MoodSad, vote.Mood)
	assert.InDelta(t, 0.33, vote.Confidence, 1e-9)
	assert.Equal(t, "slow decline", vote.Reasoning)
}
