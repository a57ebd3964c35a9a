package mixer

import (
	"testing"
	"time"
)

func TestHistory_AppendOrder(t *testing.T) {
	var h History

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		h.Append(HistoryEntry{
			At:     base.Add(time.Duration(i) * time.Minute),
			Inputs: []Color{Yellow},
			Result: Yellow,
		})
	}

	if h.Len() != 3 {
		t.Fatalf("Len: got %d, want 3", h.Len())
	}
	entries := h.All()
	for i, e := range entries {
		want := base.Add(time.Duration(i) * time.Minute)
		if !e.At.Equal(want) {
			t.Errorf("entry %d: got timestamp %v, want %v", i, e.At, want)
		}
	}
}

func TestHistory_AllIsACopy(t *testing.T) {
	var h History
	h.Append(HistoryEntry{Result: Yellow})

	entries := h.All()
	entries[0].Result = Blue

	if !h.All()[0].Result.Equal(Yellow) {
		t.Error("mutating the returned slice affected the log")
	}
}

func TestHistory_Empty(t *testing.T) {
	var h History
	if h.Len() != 0 {
		t.Errorf("Len: got %d, want 0", h.Len())
	}
	if got := h.All(); len(got) != 0 {
		t.Errorf("All: got %d entries, want 0", len(got))
	}
}
