// Package phone holds the machinery shared by every phonetic segment:
// the Segment capability, the feature record common to vowels and
// consonants (nasalization, phonation, length), cyclic ordinal
// arithmetic for categorical features and bounded scalar arithmetic for
// continuous ones.
//
// What:
//
//   - Segment - the capability every concrete phone (vowel or consonant)
//     must supply: read access to shared features, a prose Description,
//     Clone and structural Equal.
//   - Features - the embedded record of nasalization, phonation and
//     length, with all-or-nothing mutators. Phonation changes are routed
//     through a per-variant validity hook before commit.
//   - Cycle - true-modulo stepping over any fixed-size enumeration;
//     wraparound is total and never errors.
//   - Bound - a closed (or left-open) interval whose Add rejects, never
//     clamps, out-of-range results.
//   - Phonation (10 states) and Nasalization (3 states) enumerations with
//     name tables and cyclic Shift.
//
// Why:
//
//   - Both segment variants share the same three features and the same
//     strong-exception-safety discipline: validate the whole candidate
//     state first, write second. Centralizing that here keeps the
//     variants small and the guarantee uniform.
//
// Errors (shared kinds from the root package):
//
//   - phonetics.ErrInvalidValue - non-positive length, out-of-range scalar.
//   - phonetics.ErrImpossibleArticulation - a phonation rejected by the
//     variant's validity hook.
package phone
