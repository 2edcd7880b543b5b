package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var testRoster = []string{"Economic Analyst", "Social Welfare Specialist", "Environmental Scientist"}

func TestRouting_ContinueWithMatchedTargets(t *testing.T) {
	raw := "Continue: Yes\nTarget Experts: economic, environmental\nReason: fiscal and climate angles need depth"

	decision := Routing(raw, testRoster)

	assert.True(t, decision.Continue)
	assert.Equal(t, []string{"Economic Analyst", "Environmental Scientist"}, decision.Targets)
	assert.Equal(t, "fiscal and climate angles need depth", decision.Reason)
}

func TestRouting_TargetsComeBackInRosterOrder(t *testing.T) {
	raw := "Continue: Yes\nTarget Experts: environmental, economic"

	decision := Routing(raw, testRoster)

	assert.Equal(t, []string{"Economic Analyst", "Environmental Scientist"}, decision.Targets)
}

func TestRouting_AllSelectsWholeRoster(t *testing.T) {
	decision := Routing("Continue: Yes\nTarget Experts: All", testRoster)

	assert.True(t, decision.Continue)
	assert.Equal(t, testRoster, decision.Targets)
}

func TestRouting_NoneStopsTheDebate(t *testing.T) {
	raw := "Continue: No\nTarget Experts: None\nReason: consensus reached"

	decision := Routing(raw, testRoster)

	assert.False(t, decision.Continue)
	assert.Empty(t, decision.Targets)
	assert.Equal(t, "consensus reached", decision.Reason)
}

func TestRouting_NoneOverridesYes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"none after yes", "Continue: Yes\nTarget Experts: None"},
		{"none before yes", "Target Experts: None\nContinue: Yes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := Routing(tt.raw, testRoster)
			assert.False(t, decision.Continue)
			assert.Empty(t, decision.Targets)
		})
	}
}

func TestRouting_MatchingIsBidirectional(t *testing.T) {
	t.Run("mention contained in role", func(t *testing.T) {
		decision := Routing("Continue: Yes\nTarget Experts: welfare", testRoster)
		assert.Equal(t, []string{"Social Welfare Specialist"}, decision.Targets)
	})

	t.Run("role contained in mention", func(t *testing.T) {
		decision := Routing("Continue: Yes\nTarget Experts: the economic analyst in particular", testRoster)
		assert.Equal(t, []string{"Economic Analyst"}, decision.Targets)
	})
}

func TestRouting_DuplicateMentionsYieldOneTarget(t *testing.T) {
	decision := Routing("Continue: Yes\nTarget Experts: economic, Economic Analyst", testRoster)

	assert.Equal(t, []string{"Economic Analyst"}, decision.Targets)
}

func TestRouting_UnmatchedMentionsLeaveTargetsEmpty(t *testing.T) {
	decision := Routing("Continue: Yes\nTarget Experts: quantum physicist", testRoster)

	assert.True(t, decision.Continue)
	assert.Empty(t, decision.Targets)
}

func TestRouting_EmptyTokenFromTrailingCommaMatchesEveryRole(t *testing.T) {
	decision := Routing("Continue: Yes\nTarget Experts: economic,", testRoster)

	assert.Equal(t, testRoster, decision.Targets)
}

func TestRouting_UnstructuredResponseStopsConservatively(t *testing.T) {
	decision := Routing("I really could not say.", testRoster)

	assert.False(t, decision.Continue)
	assert.Empty(t, decision.Targets)
	assert.Empty(t, decision.Reason)
}

func TestRouting_CaseInsensitiveLabels(t *testing.T) {
	decision := Routing("CONTINUE: YES\nTARGET EXPERTS: ALL", testRoster)

	assert.True(t, decision.Continue)
	assert.Equal(t, testRoster, decision.Targets)
}
