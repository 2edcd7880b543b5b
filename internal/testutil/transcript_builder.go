package testutil

import (
	"github.com/hupe1980/moodpanel/core"
)

// TranscriptBuilder helps construct transcripts with fluent chaining for tests.
// Example:
//
//	tr := NewTranscriptBuilder().Say("Moderator", "Welcome.").Round(1, "Economic Analyst", "Growth is up.").Build()
type TranscriptBuilder struct {
	turns []turnSpec
}

type turnSpec struct {
	speaker string
	content string
	round   int
}

// NewTranscriptBuilder creates a new builder for an empty transcript.
// Use chainable methods (Say, Round) then call Build.
func NewTranscriptBuilder() *TranscriptBuilder {
	return &TranscriptBuilder{}
}

// Say appends a phase-level turn with no round tag (chainable).
func (b *TranscriptBuilder) Say(speaker, content string) *TranscriptBuilder {
	b.turns = append(b.turns, turnSpec{speaker: speaker, content: content})
	return b
}

// Round appends a turn tagged with the given round number (chainable).
func (b *TranscriptBuilder) Round(round int, speaker, content string) *TranscriptBuilder {
	b.turns = append(b.turns, turnSpec{speaker: speaker, content: content, round: round})
	return b
}

// Build returns a *core.Transcript with the recorded turns appended in order.
func (b *TranscriptBuilder) Build() *core.Transcript {
	tr := core.NewTranscript()

	for _, t := range b.turns {
		tr.Append(t.speaker, t.content, t.round)
	}

	return tr
}
