// Package syllable assembles validated segments into syllables: three
// ordered sub-sequences (onset, nucleus, coda) plus one tone pattern.
//
// What:
//
//   - Syllable - owns clones of the segments it is built from, so no
//     caller can invalidate it from outside. The nucleus is never empty.
//   - Unified indexing - At addresses the logical concatenation
//     onset + nucleus + coda; negative positions count from the end.
//     Insertion and removal target exactly one named sub-sequence, with
//     the same negative-position rule scoped to that sub-sequence.
//   - Cursor - a positional view over the unified sequence with eight
//     boundary markers (overall begin/end plus begin/end of each
//     sub-sequence) so callers can walk a sub-range without re-deriving
//     offsets. Any length-changing mutation invalidates open cursors.
//   - PhoneticSequence - an ordered list of syllables; sequencing
//     beyond the alias is left to callers.
//
// Errors (shared kinds from the root package):
//
//   - phonetics.ErrImpossibleArticulation - constructing with, or
//     reducing to, an empty nucleus.
//   - phonetics.ErrIndexOutOfRange - a position outside the addressed
//     sequence.
//   - phonetics.ErrInvalidValue - a nil segment, or use of an
//     invalidated cursor.
//
// Instances are not synchronized; a syllable assumes a single writer.
package syllable
