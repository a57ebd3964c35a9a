package mixer

import "time"

// HistoryEntry records one saved mix: when it was computed, a snapshot of the
// mixer's contents at that moment, and the resulting color.
type HistoryEntry struct {
	At     time.Time `json:"timestamp"` // Wall-clock time of the save
	Inputs []Color   `json:"inputs"`    // Snapshot of mixer contents, insertion order
	Result Color     `json:"result"`    // The mix computed from Inputs
}

// History is an append-only log of saved mixes. It grows without bound for
// the life of the process; there is no rotation or pruning.
//
// History does not lock; the owning Mixer serializes access to it.
type History struct {
	entries []HistoryEntry
}

// Append adds one entry to the end of the log.
func (h *History) Append(e HistoryEntry) {
	h.entries = append(h.entries, e)
}

// All returns the entries in insertion order. The slice is a copy; mutating
// it does not affect the log.
func (h *History) All() []HistoryEntry {
	out := make([]HistoryEntry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *History) Len() int {
	return len(h.entries)
}
