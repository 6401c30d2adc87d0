package ipa

import (
	"github.com/lingora/phonetics/vowel"
)

// vowelCell is one defined point on the IPA vowel chart.
type vowelCell struct {
	height   float64
	backness float64
	rounded  bool
	sym      sym
}

// vowelChart lists the chart's defined symbols. Heights run 0 (open) to
// 6 (close), backnesses 0 (front) to 4 (back). A vowel renders as the
// nearest cell of its roundedness, so off-chart qualities still render.
var vowelChart = []vowelCell{
	{6, 0, false, sym{"i", "i", "i"}},
	{6, 0, true, sym{"y", "y", "y"}},
	{6, 2, false, sym{"ɨ", "1", "i\""}},  // ɨ
	{6, 2, true, sym{"ʉ", "}", "u\""}},   // ʉ
	{6, 4, false, sym{"ɯ", "M", "u-"}},   // ɯ
	{6, 4, true, sym{"u", "u", "u"}},
	{5, 1, false, sym{"ɪ", "I", "I"}},    // ɪ
	{5, 1, true, sym{"ʏ", "Y", "I."}},    // ʏ
	{5, 3, true, sym{"ʊ", "U", "U"}},     // ʊ
	{4, 0, false, sym{"e", "e", "e"}},
	{4, 0, true, sym{"ø", "2", "Y"}},     // ø
	{4, 2, false, sym{"ɘ", "@\\", "@"}},  // ɘ
	{4, 2, true, sym{"ɵ", "8", "@."}},    // ɵ
	{4, 4, false, sym{"ɤ", "7", "o-"}},   // ɤ
	{4, 4, true, sym{"o", "o", "o"}},
	{3, 2, false, sym{"ə", "@", "@"}},    // ə
	{2, 0, false, sym{"ɛ", "E", "E"}},    // ɛ
	{2, 0, true, sym{"œ", "9", "W"}},     // œ
	{2, 2, false, sym{"ɜ", "3", "V\""}},  // ɜ
	{2, 2, true, sym{"ɞ", "3\\", "O\""}}, // ɞ
	{2, 4, false, sym{"ʌ", "V", "V"}},    // ʌ
	{2, 4, true, sym{"ɔ", "O", "O"}},     // ɔ
	{1, 0, false, sym{"æ", "{", "&"}},    // æ
	{1, 2, false, sym{"ɐ", "6", "&"}},    // ɐ
	{0, 0, false, sym{"a", "a", "a"}},
	{0, 0, true, sym{"ɶ", "&", "&."}},    // ɶ
	{0, 4, false, sym{"ɑ", "A", "A"}},    // ɑ
	{0, 4, true, sym{"ɒ", "Q", "A."}},    // ɒ
}

// vowelBase picks the nearest chart cell of the vowel's roundedness by
// squared Euclidean distance in (height, backness) space. Earlier cells
// win ties, so the chart order is part of the contract.
func vowelBase(v *vowel.Vowel) sym {
	best := -1
	bestDist := 0.0
	for i, c := range vowelChart {
		if c.rounded != v.IsRounded() {
			continue
		}
		dh, db := c.height-v.Height(), c.backness-v.Backness()
		d := dh*dh + db*db
		if best == -1 || d < bestDist {
			best, bestDist = i, d
		}
	}

	return vowelChart[best].sym
}

// rhotic precomposed forms exist for two Unicode vowels; everything
// else takes the rhotic hook modifier.
var rhoticPrecomposed = map[string]string{
	"ə": "ɚ", // ə -> ɚ
	"ɜ": "ɝ", // ɜ -> ɝ
}

var rhoticMark = sym{"˞", "`", "R"}

// Vowel renders the vowel in the chosen encoding. Always succeeds: the
// quality snaps to the nearest chart symbol, and features the encoding
// cannot express are dropped.
func Vowel(v *vowel.Vowel, enc Encoding) string {
	out := vowelBase(v).in(enc)
	if v.IsRColored() {
		if enc == Unicode {
			if pre, ok := rhoticPrecomposed[out]; ok {
				out = pre
			} else {
				out += rhoticMark.uni
			}
		} else {
			out += rhoticMark.in(enc)
		}
	}
	out += phonationMark(v.Phonation(), enc)
	if v.IsNasal() {
		out += nasalMark.in(enc)
	}
	out += lengthMark(v.Length(), enc)

	return finish(out, enc)
}
