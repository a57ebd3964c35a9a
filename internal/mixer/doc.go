// Package mixer implements the color-mixing core: a bounded collection of
// recognized colors and the deterministic blend computed from it.
//
// # Colors
//
// Only a closed enumeration of colors exists: the yellow and blue families,
// each with standard, light, and dark shades, addressable by name ("yellow",
// "light-blue") or by their exact hex codes. ParseSpec is the single entry
// point for user input; arbitrary RGB values cannot enter a mixer.
//
// # Mixing
//
// Mixer.MixedColor partitions the contents into the two families and blends
// the per-family shade averages with count-ratio weights, truncating each
// channel toward zero. Degenerate states short-circuit: an empty mixer is an
// error, a single entry is returned as-is, and a single-family mixer returns
// the family's pure reference color rather than a shade average.
//
// # Cache and history
//
// An optional LRU cache memoizes results under the mixer's signature (the
// ordered hex strings of its contents), and an optional append-only history
// records explicitly saved mixes with timestamps and input snapshots. The
// history is unbounded; callers that save on every request accept the
// memory growth.
//
// # Concurrency
//
// A Mixer is safe for concurrent use. One reader/writer lock guards the
// collection; computing a mix takes the write lock because it may populate
// the cache.
package mixer
