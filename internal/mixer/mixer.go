package mixer

import (
	"fmt"
	"strings"
	"sync"
	"time"
)

// DefaultMaxColors is the capacity bound used when none is configured.
const DefaultMaxColors = 1000

// Mixer holds an ordered, bounded collection of colors and computes one
// deterministic blend from the current contents.
//
// Mixer is safe for concurrent use by multiple goroutines. A single
// reader/writer lock guards the collection. Note that MixedColor takes the
// write lock even though it looks like a read: computing a mix populates the
// result cache, so it is not a pure read.
//
// # Capacity
//
// The collection never exceeds its configured maximum. An add that would
// cross the bound fails as a whole; the collection is left untouched. Colors
// are only ever removed in bulk via Clear.
type Mixer struct {
	mu        sync.RWMutex
	colors    []Color
	maxColors int
	cache     *Cache // nil when caching is disabled
	history   History
}

// NewMixer creates an empty mixer.
//
// Parameters:
//   - maxColors: capacity bound. Values below 1 fall back to
//     DefaultMaxColors.
//   - cacheSize: result cache capacity. 0 disables caching entirely;
//     negative values fall back to DefaultCacheSize.
func NewMixer(maxColors, cacheSize int) *Mixer {
	if maxColors < 1 {
		maxColors = DefaultMaxColors
	}
	var cache *Cache
	if cacheSize != 0 {
		cache = NewCache(cacheSize)
	}
	return &Mixer{
		maxColors: maxColors,
		cache:     cache,
	}
}

// MaxColors returns the configured capacity bound.
func (m *Mixer) MaxColors() int {
	return m.maxColors
}

// Add appends one color to the collection.
//
// Returns ErrMaxColorsReached if the collection is already at capacity; the
// collection is unchanged on failure.
func (m *Mixer) Add(c Color) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.colors)+1 > m.maxColors {
		return ErrMaxColorsReached
	}
	m.colors = append(m.colors, c)
	return nil
}

// AddMany resolves a color spec and appends quantity copies of it.
//
// The spec is resolved before anything is checked or added, so an
// unresolvable spec fails without mutation. The capacity check covers the
// whole batch: either every copy is added or none is.
//
// Returns ErrInvalidColorFormat / ErrUnsupportedColor from spec resolution,
// ErrInvalidColorFormat for quantity < 1, and ErrMaxColorsReached when the
// batch would exceed capacity.
func (m *Mixer) AddMany(spec, shade string, quantity int) error {
	c, err := ParseSpec(spec, shade)
	if err != nil {
		return err
	}
	if quantity < 1 {
		return fmt.Errorf("%w: quantity must be greater than zero", ErrInvalidColorFormat)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.colors)+quantity > m.maxColors {
		return ErrMaxColorsReached
	}
	for i := 0; i < quantity; i++ {
		m.colors = append(m.colors, c)
	}
	return nil
}

// Clear empties the collection. It never fails. The result cache and the
// history are left alone: cached entries stay valid (keys encode the inputs)
// and the history is append-only by design.
func (m *Mixer) Clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.colors = m.colors[:0]
}

// Len returns the number of colors currently held.
func (m *Mixer) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.colors)
}

// Snapshot returns a copy of the current contents in insertion order.
func (m *Mixer) Snapshot() []Color {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

func (m *Mixer) snapshotLocked() []Color {
	out := make([]Color, len(m.colors))
	copy(out, m.colors)
	return out
}

// Signature returns the cache key for the current contents: the ordered
// hex strings of every entry, comma-joined. Insertion order matters, so two
// mixers holding the same multiset in different order have different
// signatures.
func (m *Mixer) Signature() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.signatureLocked()
}

func (m *Mixer) signatureLocked() string {
	hexes := make([]string, len(m.colors))
	for i, c := range m.colors {
		hexes[i] = c.Hex()
	}
	return strings.Join(hexes, ",")
}

// MixedColor computes the blend of the current contents.
//
// The computation proceeds in a fixed order:
//
//  1. An empty mixer fails with ErrNoColors. Never cached.
//  2. The result cache is consulted with the current signature. A hit
//     short-circuits everything below, including the shortcuts.
//  3. A single entry is returned unchanged.
//  4. Entries are counted per family; anything outside the two recognized
//     families is skipped. If only one family is present the family's pure
//     reference color is returned, not an average of its shades, so repeated
//     same-family adds never drift the output.
//  5. Otherwise each family's shade members are averaged, and the two family
//     averages are blended with count-ratio weights. Each channel is
//     truncated toward zero after the weighted sum.
//
// The truncation (rather than rounding) is a compatibility requirement: the
// documented 50/50 yellow/blue blend is exactly #7F9A55 → (127, 154, 85).
func (m *Mixer) MixedColor() (Color, error) {
	// Write lock: a miss populates the cache.
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mixedColorLocked()
}

func (m *Mixer) mixedColorLocked() (Color, error) {
	if len(m.colors) == 0 {
		return Color{}, ErrNoColors
	}

	var key string
	if m.cache != nil {
		key = m.signatureLocked()
		if c, ok := m.cache.Get(key); ok {
			return c, nil
		}
	}

	c, err := blend(m.colors)
	if err != nil {
		return Color{}, err
	}

	if m.cache != nil {
		m.cache.Put(key, c)
	}
	return c, nil
}

// blend implements steps 3-5 of the MixedColor contract for a non-empty
// slice of colors.
func blend(colors []Color) (Color, error) {
	if len(colors) == 1 {
		return colors[0], nil
	}

	var (
		yellowCount, blueCount int
		yr, yg, yb             float64
		br, bg, bb             float64
	)
	for _, c := range colors {
		switch {
		case c.isYellowFamily():
			yellowCount++
			yr += float64(c.R)
			yg += float64(c.G)
			yb += float64(c.B)
		case c.isBlueFamily():
			blueCount++
			br += float64(c.R)
			bg += float64(c.G)
			bb += float64(c.B)
		default:
			// Unrecognized families are skipped. Not reachable through
			// ParseSpec; tolerated if it ever happens internally.
		}
	}

	switch {
	case yellowCount == 0 && blueCount == 0:
		return Color{}, ErrNoColors
	case blueCount == 0:
		return Yellow, nil
	case yellowCount == 0:
		return Blue, nil
	}

	// Per-family shade average blended with count-ratio weights:
	// (sum/count)*(count/total) cancels to sum/total, which divides exactly
	// in floating point and keeps the truncation identical to integer
	// division. The naive two-step form can land a hair below an exact
	// integer (255*(2/3) -> 169.999...) and truncate one unit low.
	total := float64(yellowCount + blueCount)
	r := (yr + br) / total
	g := (yg + bg) / total
	b := (yb + bb) / total

	// Conversion truncates toward zero; all inputs are convex combinations
	// of 8-bit values, so no clamping is needed.
	return Color{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// CurrentMix computes the blend and returns it together with a snapshot of
// the inputs that produced it, taken under one lock so the two cannot drift
// apart under concurrent adds.
func (m *Mixer) CurrentMix() (Color, []Color, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result, err := m.mixedColorLocked()
	if err != nil {
		return Color{}, nil, err
	}
	return result, m.snapshotLocked(), nil
}

// SaveToHistory computes the current mix and appends a history record with
// the wall-clock time and a snapshot of the current inputs. Errors from the
// mix computation propagate unchanged and nothing is recorded.
func (m *Mixer) SaveToHistory() (HistoryEntry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result, err := m.mixedColorLocked()
	if err != nil {
		return HistoryEntry{}, err
	}

	entry := HistoryEntry{
		At:     time.Now(),
		Inputs: m.snapshotLocked(),
		Result: result,
	}
	m.history.Append(entry)
	return entry, nil
}

// History returns all saved mix records in insertion order.
func (m *Mixer) History() []HistoryEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.history.All()
}
