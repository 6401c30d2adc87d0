// Package consonant implements the consonant variant of the phonetic
// Segment and the articulatory validator that guards it.
//
// What:
//
//   - Consonant - manner (10 states), place (25 states), an optional
//     secondary place, voice-onset time (7 states) and airstream
//     mechanism (4 states), plus the shared features embedded from
//     package phone. Every categorical field steps cyclically.
//   - Validator - a pure predicate over the five-field articulation
//     (manner, place, phonation, VOT, mechanism). It is an explicit
//     table of physiological exclusions: any combination not excluded by
//     a rule is valid. Rules are data and round-trip through YAML, so
//     documented impossibilities can be added without code changes.
//
// Why:
//
//   - Consonant features interact: a glottal stop cannot be voiced, a
//     fully voiced VOT contradicts voiceless phonation. Each mutator
//     therefore builds the full candidate articulation, asks the
//     validator, and commits only on approval - a rejected call leaves
//     every field exactly as it was.
//
// Errors:
//
//   - phonetics.ErrImpossibleArticulation - the validator rejected the
//     candidate articulation (also raised through phonation mutators).
//   - phonetics.ErrInvalidValue - non-positive length, unknown enum name
//     in a YAML rule table.
//
// The default consonant (Default) is a voiceless apical-alveolar stop
// with moderate aspiration, pulmonic egressive, oral, no secondary
// articulation, length 1.0.
package consonant
