package model

import (
	"context"
	"fmt"
	"sync"

	"github.com/hupe1980/moodpanel/core"
)

// Request captures the normalized model input produced by panelists.
type Request struct {
	Instructions string         `json:"instructions"` // System persona for the model
	Messages     []core.Message `json:"messages"`     // Conversation handed to the provider
	Stream       bool           `json:"stream,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is a (partial or final) chunk emitted by a streaming model.
type Response struct {
	ID           string      `json:"id"`
	Partial      bool        `json:"partial"` // Indicates if this is a partial response
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason"` // "stop", "length", etc.
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model implementation.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "openai", "anthropic", "mock", etc.
}

// Model is the minimal interface required to drive text generation for a
// panel discussion. Providers stream zero or more partial responses followed
// by one final response, or deliver a terminal error on the error channel.
type Model interface {
	Generate(ctx context.Context, req Request) (<-chan Response, <-chan error)

	// Info returns information about the model implementation.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
// Responses resolve in order: a scripted responder function, then canned
// responses registered per prompt, then a deterministic fallback.
type MockModel struct {
	info      Info
	mu        sync.Mutex
	responses map[string]string
	responder func(req Request) string
}

// NewMockModel constructs a MockModel.
func NewMockModel(name, provider string) *MockModel {
	return &MockModel{
		info: Info{
			Name:     name,
			Provider: provider,
		},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an input prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// SetResponder installs a function consulted before canned responses. A
// returned empty string falls through to canned lookup. Useful for scripting
// whole discussions from prompt content.
func (m *MockModel) SetResponder(fn func(req Request) string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responder = fn
}

// Generate implements Model; emits optional streaming char chunks then final response.
func (m *MockModel) Generate(ctx context.Context, req Request) (<-chan Response, <-chan error) {
	respCh := make(chan Response, 16)
	errCh := make(chan error, 1)

	go func() {
		defer close(respCh)
		defer close(errCh)
		if len(req.Messages) == 0 {
			errCh <- fmt.Errorf("no messages provided")
			return
		}
		inputText := req.Messages[len(req.Messages)-1].Text

		m.mu.Lock()
		var full string
		if m.responder != nil {
			full = m.responder(req)
		}
		if full == "" {
			full = m.responses[inputText]
		}
		m.mu.Unlock()

		if full == "" {
			full = fmt.Sprintf("Mock response to: %s", inputText)
		}
		if req.Stream {
			for _, r := range full {
				select {
				case <-ctx.Done():
					errCh <- ctx.Err()
					return
				case respCh <- Response{
					Partial: true,
					Text:    string(r),
				}:
				}
			}
		}
		respCh <- Response{
			Partial:      false,
			Text:         full,
			FinishReason: "stop",
		}
	}()
	return respCh, errCh
}

// Info implements Model interface.
func (m *MockModel) Info() Info { return m.info }
