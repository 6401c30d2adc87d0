package ipa

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/consonant"
	"github.com/lingora/phonetics/phone"
	"github.com/lingora/phonetics/syllable"
	"github.com/lingora/phonetics/tone"
	"github.com/lingora/phonetics/vowel"
)

// nasalMark is the combining tilde; both nasal grades take the same
// mark, transcription does not distinguish them.
var nasalMark = sym{"̃", "~", "~"}

// phonationMarks covers the phonations with conventional diacritics.
// The remaining registers have none and render unmarked.
var phonationMarks = map[phone.Phonation]sym{
	phone.Breathy: {"̤", "_t", ""},
	phone.Creaky:  {"̰", "_k", ""},
}

func phonationMark(p phone.Phonation, enc Encoding) string {
	return phonationMarks[p].in(enc)
}

// lengthMark maps relative length onto the IPA length marks, mirroring
// the thresholds the Description methods use.
func lengthMark(length float64, enc Encoding) string {
	var s sym
	switch {
	case length >= 3.0:
		s = sym{"ːː", "::", "::"}
	case length >= 2.0:
		s = sym{"ː", ":", ":"}
	case length <= 0.5:
		s = sym{"̆", "_X", ""}
	}

	return s.in(enc)
}

// finish normalizes Unicode output to NFC so combining diacritics
// compose where precomposed forms exist; ASCII encodings pass through.
func finish(out string, enc Encoding) string {
	if enc == Unicode {
		return norm.NFC.String(out)
	}

	return out
}

// Segment renders either segment variant in the chosen encoding.
func Segment(s phone.Segment, enc Encoding) (string, error) {
	switch seg := s.(type) {
	case *vowel.Vowel:
		return Vowel(seg, enc), nil
	case *consonant.Consonant:
		return Consonant(seg, enc)
	default:
		return "", fmt.Errorf("%w: unrenderable segment %T", phonetics.ErrInvalidValue, s)
	}
}

// toneMarks maps each pitch level to its tone letter: Chao letters for
// Unicode, the five X-SAMPA tone suffixes, plain digits 1 (low) to
// 5 (high) for Kirschenbaum.
var toneMarks = map[int]sym{
	-2: {"˩", "_B", "1"},
	-1: {"˨", "_L", "2"},
	0:  {"˧", "_M", "3"},
	1:  {"˦", "_H", "4"},
	2:  {"˥", "_T", "5"},
}

// Tone renders the three-pitch pattern as a tone-letter contour.
func Tone(t tone.Tone, enc Encoding) string {
	var b strings.Builder
	t.Each(func(_, pitch int) {
		b.WriteString(toneMarks[pitch].in(enc))
	})

	return b.String()
}

// Syllable renders the unified segment sequence followed by the tone
// contour.
//
// Errors:
//   - ErrInvalidValue - a segment the alphabet cannot express.
func Syllable(s *syllable.Syllable, enc Encoding) (string, error) {
	var b strings.Builder
	for _, seg := range s.Segments() {
		out, err := Segment(seg, enc)
		if err != nil {
			return "", err
		}
		b.WriteString(out)
	}
	b.WriteString(Tone(s.Tone(), enc))

	return finish(b.String(), enc), nil
}
