// Package vowel implements the vowel variant of the phonetic Segment.
//
// What:
//
//   - Vowel - continuous height [0,6] and backness [0,4], categorical
//     roundedness, an r-coloring flag, plus the shared features
//     (nasalization, phonation, length) embedded from package phone.
//   - Height and Backness preset ordinals for the IPA-recognized
//     positions; presets convert to the continuous scale via Pos and can
//     be stepped cyclically like every other categorical feature.
//
// Why:
//
//   - Vowel quality is genuinely continuous: raising a vowel by half a
//     height is meaningful, so height and backness are bounded scalars,
//     not enums. The presets exist only as convenient anchor points.
//
// Invariants:
//
//   - height ∈ [0, 6], backness ∈ [0, 4], length > 0 at all times; a
//     mutator that would violate a bound fails and changes nothing.
//   - Phonation is never GlottalClosure: the glottis cannot be fully
//     closed while a vowel resonates, independent of any consonantal
//     articulatory rule.
//
// The default vowel (Default) is the schwa: mid central unrounded, oral,
// modal, not r-colored, length 1.0.
package vowel
