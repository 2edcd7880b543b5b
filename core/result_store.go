package core

import "context"

// ResultStore persists completed discussion results keyed by an opaque
// identifier chosen by the store. The engine never depends on a concrete
// backend; the returned identifier is the only contract.
type ResultStore interface {
	// Save stores the result for the owning subject and returns the opaque
	// identifier under which it was filed.
	Save(ctx context.Context, subjectID string, result *Result) (string, error)
}
