// Package phonetics models articulatory phonetics in memory: vowels,
// consonants, tone patterns and syllables, with every mutation checked
// against what a human vocal tract can actually produce.
//
// 🚀 What is phonetics?
//
//	A small, synchronous, in-memory library that brings together:
//		• Shared phone machinery: cyclic categorical features & bounded scalars
//		• Vowels: continuous height/backness, roundedness, r-coloring
//		• Consonants: manner, place, secondary place, VOT, airstream mechanism
//		• An articulatory validator: an extensible table of physical impossibilities
//		• Tone: three-pitch patterns with a full odometer enumeration
//		• Syllables: onset/nucleus/coda with one unified, negative-capable index
//		• IPA rendering: Unicode, X-SAMPA and Kirschenbaum encodings
//
// ✨ Why choose phonetics?
//
//   - All-or-nothing mutators – validation happens before commit, a failed
//     call never leaves a partially-updated phone
//   - Clear error taxonomy – three sentinel kinds, tested with errors.Is
//   - Pure Go core – deterministic, no I/O, no goroutines, no cgo
//   - Extensible – the impossibility table is data, not code
//
// Everything is organized under six subpackages:
//
//	phone/     — Segment capability, shared features, cyclic & bounded helpers
//	vowel/     — the Vowel variant
//	consonant/ — the Consonant variant + ArticulatoryValidator
//	tone/      — three-pitch tone vectors and their odometer
//	syllable/  — the onset⧺nucleus⧺coda composite and PhoneticSequence
//	ipa/       — renderers (Unicode IPA, X-SAMPA, Kirschenbaum)
//
// The root package carries only this overview and the shared error kinds.
//
//	go get github.com/lingora/phonetics
package phonetics
