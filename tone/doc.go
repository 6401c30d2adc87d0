// Package tone models the pitch pattern of one syllable as a vector of
// three pitches, each in [-2, 2] (negative = low, positive = high),
// read in chronological order across the syllable.
//
// What:
//
//   - Tone - the three-pitch vector. The zero value is the level tone
//     {0 0 0}. Every write path (construction, Set, Assign) bounds-checks
//     its pitches.
//   - Incr/Decr - odometer enumeration: the vector is treated as a
//     three-digit base-5 counter with digit domain {-2..2}, rightmost
//     digit fastest. After the maximum state {2 2 2}, Incr wraps to the
//     minimum {-2 -2 -2}; Decr is the exact inverse. 125 steps from any
//     start return to it, visiting every pattern exactly once.
//   - Cursor - a positional view over the three pitches with
//     bounds-checked movement, offset reads and write-through Set.
//
// Errors (shared kinds from the root package):
//
//   - phonetics.ErrImpossibleArticulation - a pitch outside [-2, 2].
//   - phonetics.ErrInvalidValue - a pitch list of length other than 3.
//   - phonetics.ErrIndexOutOfRange - a position outside the three slots.
//
// Cursors are invalidated only by nothing: a Tone never changes length.
// They do observe later writes to the Tone they point at.
package tone
