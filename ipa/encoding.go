package ipa

import (
	"fmt"

	"github.com/lingora/phonetics"
)

// Encoding selects the output alphabet of the rendering functions.
type Encoding int

const (
	// Unicode - IPA proper, Unicode letters and combining diacritics.
	Unicode Encoding = iota
	// XSAMPA - X-SAMPA, the 7-bit ASCII re-encoding of the full IPA.
	XSAMPA
	// Kirschenbaum - ASCII-IPA as used on Usenet, less complete than
	// X-SAMPA.
	Kirschenbaum
)

var encodingNames = []string{"unicode", "x-sampa", "kirschenbaum"}

// String returns the lowercase name of the encoding.
func (e Encoding) String() string {
	if e < 0 || int(e) >= len(encodingNames) {
		return fmt.Sprintf("Encoding(%d)", int(e))
	}

	return encodingNames[e]
}

// ParseEncoding resolves an encoding name produced by String.
func ParseEncoding(name string) (Encoding, error) {
	for i, n := range encodingNames {
		if n == name {
			return Encoding(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown encoding %q", phonetics.ErrInvalidValue, name)
}

// sym is one symbol spelled in all three encodings.
type sym struct {
	uni, xs, kb string
}

// in returns the spelling of the symbol in the given encoding.
func (s sym) in(enc Encoding) string {
	switch enc {
	case XSAMPA:
		return s.xs
	case Kirschenbaum:
		return s.kb
	default:
		return s.uni
	}
}
