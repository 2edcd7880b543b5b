// Package panelist adapts a language model into a panel seat. A Panelist
// owns one persona and answers moderator prompts with plain text, shielding
// the discussion from model failures.
package panelist

import (
	"fmt"
	"time"

	"github.com/hupe1980/moodpanel/config"
	"github.com/hupe1980/moodpanel/core"
	"github.com/hupe1980/moodpanel/internal/util"
	"github.com/hupe1980/moodpanel/model"
)

// Options configures a Panelist instance.
//
// Use functional options with New to override defaults.
type Options struct {
	// EnableStreaming requests partial responses from the model. The final
	// text is the same either way; streaming only changes how it arrives.
	EnableStreaming bool
}

// Panelist is the standard core.Panelist implementation: one seat, one
// standing instruction, one language model.
type Panelist struct {
	role            string
	instruction     string
	llm             model.Model
	enableStreaming bool
}

// New creates a panelist for the given persona. Streaming is off unless
// requested, matching the turn-by-turn cadence of a panel.
func New(persona config.Persona, llm model.Model, optFns ...func(o *Options)) *Panelist {
	opts := Options{
		EnableStreaming: false,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Panelist{
		role:            persona.Role,
		instruction:     persona.Instruction,
		llm:             llm,
		enableStreaming: opts.EnableStreaming,
	}
}

// Role returns the seat's transcript name.
func (p *Panelist) Role() string {
	return p.role
}

// Respond sends the prompt to the model and returns its reply. Any failure,
// whether from the per-run call limiter or the model itself, is absorbed
// into the bracketed error sentinel so one broken seat cannot sink the
// discussion.
func (p *Panelist) Respond(rc *core.RunContext, prompt string) string {
	if err := rc.Limiter.Increment(); err != nil {
		rc.LogWarn("panelist.call_budget_exhausted", "role", p.role, "error", err.Error())
		return p.errorSentinel()
	}

	// Personas may reference run state, e.g. "You are advising on {{.subject}}".
	instructions, err := util.RenderTemplate(p.instruction, map[string]any{
		"subject":    rc.SubjectID,
		"topic":      rc.Topic,
		"background": rc.Background,
	})
	if err != nil {
		rc.LogWarn("panelist.instruction_template_error", "role", p.role, "error", err.Error())
		instructions = p.instruction
	}

	req := model.Request{
		Instructions: instructions,
		Messages:     []core.Message{core.NewUserMessage(prompt)},
		Stream:       p.enableStreaming,
	}

	start := time.Now()

	respCh, errCh := p.llm.Generate(rc.Context, req)

	var (
		text     string
		modelErr error
	)

	// Drain both channels to closure so a terminal error buffered behind an
	// already-closed response channel is still observed.
	for respCh != nil || errCh != nil {
		select {
		case resp, ok := <-respCh:
			if !ok {
				respCh = nil
				continue
			}
			if !resp.Partial {
				text = resp.Text
			}
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				continue
			}
			if err != nil {
				modelErr = err
			}
		}
	}

	if modelErr != nil {
		rc.LogError("panelist.model_error", "role", p.role, "model", p.llm.Info().Name, "error", modelErr.Error())
		return p.errorSentinel()
	}

	rc.LogDebug("panelist.responded",
		"role", p.role,
		"model", p.llm.Info().Name,
		"duration_ms", time.Since(start).Milliseconds(),
		"chars", len(text),
	)

	return text
}

func (p *Panelist) errorSentinel() string {
	return fmt.Sprintf("[Error from %s]", p.role)
}
