package core

import (
	"sync"
	"testing"
)

func TestTranscript_AppendAssignsContiguousOrders(t *testing.T) {
	tr := NewTranscript()

	first := tr.Append("Moderator", "welcome", 0)
	if first.Order != 1 {
		t.Fatalf("expected first turn order 1, got %d", first.Order)
	}
	if first.ID == "" || first.Timestamp.IsZero() {
		t.Fatalf("Append did not initialize fields correctly: %+v", first)
	}
	if !first.IsPhase() {
		t.Error("round 0 turn should be phase-level")
	}

	second := tr.Append("Economic Analyst", "opening analysis", 1)
	if second.Order != 2 {
		t.Fatalf("expected second turn order 2, got %d", second.Order)
	}
	if second.IsPhase() {
		t.Error("round 1 turn should not be phase-level")
	}

	turns := tr.Turns()
	if len(turns) != tr.Len() {
		t.Fatalf("Turns length %d != Len %d", len(turns), tr.Len())
	}
	for i, turn := range turns {
		if turn.Order != i+1 {
			t.Fatalf("orders not contiguous: index %d has order %d", i, turn.Order)
		}
	}
}

func TestTranscript_TurnsIsDefensiveCopy(t *testing.T) {
	tr := NewTranscript()
	tr.Append("Moderator", "welcome", 0)

	turns := tr.Turns()
	orig := turns[0].Speaker
	turns[0].Speaker = "changed"
	if tr.Turns()[0].Speaker != orig {
		t.Error("turns slice should be copied on read")
	}
}

func TestTranscript_RecentWindows(t *testing.T) {
	tr := NewTranscript()
	speakers := []string{"a", "b", "c", "d"}
	for _, s := range speakers {
		tr.Append(s, "content", 0)
	}

	recent := tr.Recent(2)
	if len(recent) != 2 || recent[0].Speaker != "c" || recent[1].Speaker != "d" {
		t.Fatalf("expected last two turns c,d got %+v", recent)
	}

	all := tr.Recent(10)
	if len(all) != 4 {
		t.Fatalf("expected all 4 turns when n exceeds length, got %d", len(all))
	}

	if got := tr.Recent(0); len(got) != 0 {
		t.Fatalf("expected empty slice for n=0, got %d turns", len(got))
	}

	// Recent must not mutate state.
	if tr.Len() != 4 {
		t.Fatalf("Recent mutated the transcript: len %d", tr.Len())
	}
}

func TestTranscript_ConcurrentAppendsKeepOrdersUnique(t *testing.T) {
	tr := NewTranscript()

	var wg sync.WaitGroup
	const n = 50
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tr.Append("speaker", "content", 2)
		}()
	}
	wg.Wait()

	seen := make(map[int]bool, n)
	for _, turn := range tr.Turns() {
		if seen[turn.Order] {
			t.Fatalf("duplicate turn order %d", turn.Order)
		}
		seen[turn.Order] = true
	}
	for order := 1; order <= n; order++ {
		if !seen[order] {
			t.Fatalf("missing turn order %d", order)
		}
	}
}
