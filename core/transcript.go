package core

import (
	"sync"
	"time"
)

// Transcript is the append-only ordered record of a single discussion. It is
// safe for concurrent access.
//
// Contract:
//   - Append assigns the next turn order inside a single critical section, so
//     no two turns ever receive the same order value
//   - Orders form the contiguous sequence 1..Len() with no gaps
//   - Recent and Turns return defensive copies and never mutate state
type Transcript struct {
	mu    sync.RWMutex
	turns []Turn
	next  int
}

// NewTranscript creates an empty transcript with the turn counter at zero.
func NewTranscript() *Transcript {
	return &Transcript{turns: []Turn{}}
}

// Append records a new turn, assigning the next turn order. Round 0 tags the
// turn as phase-level. The fully populated Turn is returned.
func (t *Transcript) Append(speaker, content string, round int) Turn {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	turn := Turn{
		ID:        NewID(),
		Speaker:   speaker,
		Content:   content,
		Round:     round,
		Order:     t.next,
		Timestamp: time.Now().UTC(),
	}
	t.turns = append(t.turns, turn)

	return turn
}

// Recent returns a copy of the last n turns in order. If fewer than n turns
// exist, all turns are returned. n <= 0 yields an empty slice.
func (t *Transcript) Recent(n int) []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if n <= 0 {
		return []Turn{}
	}
	start := len(t.turns) - n
	if start < 0 {
		start = 0
	}
	recent := make([]Turn, len(t.turns)-start)
	copy(recent, t.turns[start:])
	return recent
}

// Turns returns a defensive copy of the full turn slice.
func (t *Transcript) Turns() []Turn {
	t.mu.RLock()
	defer t.mu.RUnlock()

	turns := make([]Turn, len(t.turns))
	copy(turns, t.turns)
	return turns
}

// Len returns the number of turns appended so far.
func (t *Transcript) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.turns)
}
