package gameplay

import "testing"

func TestCoinFieldCompactSwapRemove(t *testing.T) {
	f := NewCoinField(100)
	for i := 1; i <= 5; i++ {
		f.Add(Coin{ID: uint64(i)})
	}
	f.markCollected(0, OutcomeCaptured)
	f.markCollected(2, OutcomeMissed)
	f.markCollected(2, OutcomeCaptured) // already collected, ignored

	if f.Dead() != 2 || f.Live() != 3 {
		t.Fatalf("dead=%d live=%d, want 2 and 3", f.Dead(), f.Live())
	}
	if f.Coins()[2].Outcome != OutcomeMissed {
		t.Error("second mark overwrote the outcome")
	}

	if n := f.Compact(); n != 2 {
		t.Errorf("Compact() removed %d, want 2", n)
	}
	if f.Len() != 3 || f.Dead() != 0 {
		t.Fatalf("after compact len=%d dead=%d", f.Len(), f.Dead())
	}
	seen := map[uint64]bool{}
	for _, c := range f.Coins() {
		if c.Collected {
			t.Errorf("collected coin %d survived compaction", c.ID)
		}
		seen[c.ID] = true
	}
	for _, id := range []uint64{2, 4, 5} {
		if !seen[id] {
			t.Errorf("live coin %d lost", id)
		}
	}
}

func TestCoinFieldThreshold(t *testing.T) {
	tests := []struct {
		threshold int
		dead      int
		compacts  bool
	}{
		{0, 1, true},
		{3, 2, false},
		{3, 3, true},
	}
	for _, tt := range tests {
		f := NewCoinField(tt.threshold)
		for i := 0; i < 5; i++ {
			f.Add(Coin{ID: uint64(i + 1)})
		}
		for i := 0; i < tt.dead; i++ {
			f.markCollected(i, OutcomeMissed)
		}
		got := f.maybeCompact() > 0
		if got != tt.compacts {
			t.Errorf("threshold %d with %d dead: compacted=%v, want %v", tt.threshold, tt.dead, got, tt.compacts)
		}
	}
}

func TestOutcomeString(t *testing.T) {
	if OutcomeCaptured.String() != "captured" || OutcomeMissed.String() != "missed" || OutcomeNone.String() != "live" {
		t.Error("unexpected outcome names")
	}
}
