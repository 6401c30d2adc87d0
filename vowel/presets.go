package vowel

import (
	"fmt"

	"github.com/lingora/phonetics/phone"
)

// Height is a preset ordinal for the seven IPA-recognized vowel heights.
// Its integer value equals the corresponding position on the continuous
// height scale, so NearClose.Pos() == 5.0.
type Height int

const (
	// Open - the lowest vowel position (height 0).
	Open Height = iota
	// NearOpen - height 1.
	NearOpen
	// OpenMid - height 2.
	OpenMid
	// Mid - height 3.
	Mid
	// CloseMid - height 4.
	CloseMid
	// NearClose - height 5.
	NearClose
	// Close - the highest vowel position (height 6).
	Close
)

// HeightCount is the cardinality of the Height preset enumeration.
const HeightCount = 7

var heightNames = [HeightCount]string{
	"open", "near-open", "open-mid", "mid", "close-mid", "near-close", "close",
}

// Pos converts the preset to its position on the continuous height scale.
func (h Height) Pos() float64 { return float64(h) }

// Shift steps k presets through the Height enumeration, wrapping at both
// ends. Only the preset ordinal cycles; the continuous scale never wraps.
func (h Height) Shift(k int) Height { return phone.Cycle(h, k, HeightCount) }

// String returns the hyphenated lowercase name of the height preset.
func (h Height) String() string {
	if h < 0 || int(h) >= HeightCount {
		return fmt.Sprintf("Height(%d)", int(h))
	}

	return heightNames[h]
}

// Backness is a preset ordinal for the five IPA-recognized vowel
// backnesses. Its integer value equals the corresponding position on the
// continuous backness scale.
type Backness int

const (
	// Front - the most front vowel position (backness 0).
	Front Backness = iota
	// NearFront - backness 1.
	NearFront
	// Central - backness 2.
	Central
	// NearBack - backness 3.
	NearBack
	// Back - the most back vowel position (backness 4).
	Back
)

// BacknessCount is the cardinality of the Backness preset enumeration.
const BacknessCount = 5

var backnessNames = [BacknessCount]string{
	"front", "near-front", "central", "near-back", "back",
}

// Pos converts the preset to its position on the continuous backness scale.
func (b Backness) Pos() float64 { return float64(b) }

// Shift steps k presets through the Backness enumeration, wrapping at
// both ends.
func (b Backness) Shift(k int) Backness { return phone.Cycle(b, k, BacknessCount) }

// String returns the hyphenated lowercase name of the backness preset.
func (b Backness) String() string {
	if b < 0 || int(b) >= BacknessCount {
		return fmt.Sprintf("Backness(%d)", int(b))
	}

	return backnessNames[b]
}

// Roundedness is the lip posture of a vowel: one unrounded state and two
// distinct kinds of rounding.
type Roundedness int

const (
	// Unrounded - lips spread or neutral.
	Unrounded Roundedness = iota
	// Exolabial - rounded with the outside of the lips (the common kind).
	Exolabial
	// Endolabial - rounded with the inside of the lips, lips compressed.
	Endolabial
)

// RoundednessCount is the cardinality of the Roundedness enumeration.
const RoundednessCount = 3

var roundednessNames = [RoundednessCount]string{
	"unrounded", "exolabial", "endolabial",
}

// Shift steps k positions through the Roundedness enumeration, wrapping
// at both ends.
func (r Roundedness) Shift(k int) Roundedness { return phone.Cycle(r, k, RoundednessCount) }

// String returns the lowercase name of the roundedness state.
func (r Roundedness) String() string {
	if r < 0 || int(r) >= RoundednessCount {
		return fmt.Sprintf("Roundedness(%d)", int(r))
	}

	return roundednessNames[r]
}
