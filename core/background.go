package core

import "context"

// BackgroundProvider supplies the opaque background material for a subject
// (news headlines, current conditions, prior findings). The engine never
// parses or validates the returned string beyond using it verbatim in
// prompts; sourcing the facts is an upstream concern.
type BackgroundProvider interface {
	Background(ctx context.Context, subjectID string) (string, error)
}

// BackgroundProviderFunc adapts a plain function to the BackgroundProvider
// interface.
type BackgroundProviderFunc func(ctx context.Context, subjectID string) (string, error)

// Background implements BackgroundProvider.
func (f BackgroundProviderFunc) Background(ctx context.Context, subjectID string) (string, error) {
	return f(ctx, subjectID)
}

// StaticBackground returns a provider that always yields the same material,
// regardless of subject. Useful for tests and fixed-context discussions.
func StaticBackground(material string) BackgroundProvider {
	return BackgroundProviderFunc(func(context.Context, string) (string, error) {
		return material, nil
	})
}
