// Package store provides persistence for completed discussion results.
package store

import (
	"context"
	"errors"
	"sync"

	"github.com/hupe1980/moodpanel/core"
)

// ErrNotFound signals a lookup for a discussion or subject with no stored
// result.
var ErrNotFound = errors.New("discussion not found")

// InMemoryStore is a volatile core.ResultStore implementation keeping
// results in a process-local map, indexed by discussion id with a
// per-subject history. It is safe for concurrent access and best suited for
// tests or ephemeral demo setups. Every result crossing the store boundary
// is cloned, so callers can never mutate stored state.
type InMemoryStore struct {
	mu        sync.RWMutex
	results   map[string]*core.Result
	bySubject map[string][]string // subjectID -> discussion ids in save order
}

// NewInMemoryStore constructs an empty in-memory result store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		results:   make(map[string]*core.Result),
		bySubject: make(map[string][]string),
	}
}

// Save stores a clone of the result and returns its generated discussion id.
func (s *InMemoryStore) Save(ctx context.Context, subjectID string, result *core.Result) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id := core.NewID()
	s.results[id] = result.Clone()
	s.bySubject[subjectID] = append(s.bySubject[subjectID], id)

	return id, nil
}

// Get returns a clone of the stored result for the given discussion id.
func (s *InMemoryStore) Get(discussionID string) (*core.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result, ok := s.results[discussionID]
	if !ok {
		return nil, ErrNotFound
	}
	return result.Clone(), nil
}

// List returns clones of all results stored for a subject, oldest first.
func (s *InMemoryStore) List(subjectID string) ([]*core.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.bySubject[subjectID]
	results := make([]*core.Result, 0, len(ids))
	for _, id := range ids {
		if result, ok := s.results[id]; ok {
			results = append(results, result.Clone())
		}
	}
	return results, nil
}

// Latest returns a clone of the most recently saved result for a subject.
func (s *InMemoryStore) Latest(subjectID string) (*core.Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.bySubject[subjectID]
	for i := len(ids) - 1; i >= 0; i-- {
		if result, ok := s.results[ids[i]]; ok {
			return result.Clone(), nil
		}
	}
	return nil, ErrNotFound
}

// Delete removes a stored result by discussion id.
func (s *InMemoryStore) Delete(discussionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.results[discussionID]; !ok {
		return ErrNotFound
	}
	delete(s.results, discussionID)

	for subjectID, ids := range s.bySubject {
		for i, id := range ids {
			if id == discussionID {
				s.bySubject[subjectID] = append(ids[:i], ids[i+1:]...)
				break
			}
		}
	}
	return nil
}
