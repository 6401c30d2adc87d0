// Package ipa renders segments, tones and syllables as phonetic
// transcription text in three encodings: Unicode IPA, X-SAMPA and
// Kirschenbaum (ASCII-IPA).
//
// What:
//
//   - Encoding - the output alphabet selector.
//   - Vowel/Consonant/Segment/Tone/Syllable - pure rendering functions
//     over the model's read-only accessors. The model owns no string
//     formatting beyond its Description methods; everything
//     transcription-shaped lives here.
//
// Rendering policy:
//
//   - Vowels snap to the nearest symbol on the IPA vowel chart; every
//     vowel renders.
//   - Consonants render only combinations the chosen alphabet can
//     express; an inexpressible combination reports ErrInvalidValue
//     rather than inventing a symbol. Clicks and implosives are
//     expressible for stop closures only.
//   - Unicode output is NFC-normalized, so combining diacritics
//     compose with their base letter where a precomposed form exists.
//
// The ASCII encodings carry fewer distinctions than Unicode IPA; where
// a scheme lacks a symbol the closest conventional ASCII form is used.
package ipa
