package ipa

import (
	"fmt"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/consonant"
	"github.com/lingora/phonetics/phone"
)

// col is a column of the IPA consonant table: the broad place a letter
// distinguishes. The model's fine-grained places collapse onto these.
type col int

const (
	colBilabial col = iota
	colLabiodental
	colDental
	colAlveolar
	colPostalveolar
	colRetroflex
	colAlveoloPalatal
	colPalatal
	colVelar
	colUvular
	colPharyngeal
	colEpiglottal
	colGlottal
)

// broadPlace collapses the 25 articulatory places onto table columns.
// Linguolabials have no letters of their own and borrow the dental
// column.
func broadPlace(p consonant.Place) col {
	switch p {
	case consonant.Bilabial:
		return colBilabial
	case consonant.Labiodental, consonant.Dentolabial,
		consonant.ApicalLowerLip, consonant.LaminalLowerLip:
		return colLabiodental
	case consonant.Bidental, consonant.Interdental,
		consonant.ApicalDental, consonant.LaminalDental,
		consonant.ApicalLinguolabial, consonant.LaminalLinguolabial:
		return colDental
	case consonant.ApicalAlveolar, consonant.LaminalAlveolar:
		return colAlveolar
	case consonant.ApicalPalatoAlveolar, consonant.LaminalPalatoAlveolar:
		return colPostalveolar
	case consonant.ApicalRetroflex, consonant.LaminalRetroflex,
		consonant.SubapicalRetroflex:
		return colRetroflex
	case consonant.AlveoloPalatal:
		return colAlveoloPalatal
	case consonant.Palatal:
		return colPalatal
	case consonant.Velar:
		return colVelar
	case consonant.Uvular:
		return colUvular
	case consonant.Pharyngeal:
		return colPharyngeal
	case consonant.Epiglottal:
		return colEpiglottal
	default:
		return colGlottal
	}
}

// pair holds the voiceless and voiced letters of one table cell. An
// empty sym means the alphabet has no letter there.
type pair struct {
	vl, vd sym
}

// voiced reuses one letter for both laryngeal states; sonorant rows are
// voiced by default and take the voiceless ring when devoiced.
func voiced(s sym) pair {
	return pair{
		vl: sym{s.uni + "̥", s.xs + "_0", s.kb},
		vd: s,
	}
}

// pulmonic is the consonant table for the pulmonic egressive mechanism,
// indexed by manner then column.
var pulmonic = map[consonant.Manner]map[col]pair{
	consonant.Stop: {
		colBilabial:     {sym{"p", "p", "p"}, sym{"b", "b", "b"}},
		colLabiodental:  {sym{"p̪", "p_d", ""}, sym{"b̪", "b_d", ""}},
		colDental:       {sym{"t̪", "t_d", "t["}, sym{"d̪", "d_d", "d["}},
		colAlveolar:     {sym{"t", "t", "t"}, sym{"d", "d", "d"}},
		colPostalveolar: {sym{"t", "t", "t"}, sym{"d", "d", "d"}},
		colRetroflex:    {sym{"ʈ", "t`", "t."}, sym{"ɖ", "d`", "d."}},
		colPalatal:      {sym{"c", "c", "c"}, sym{"ɟ", "J\\", "J"}},
		colVelar:        {sym{"k", "k", "k"}, sym{"ɡ", "g", "g"}},
		colUvular:       {sym{"q", "q", "q"}, sym{"ɢ", "G\\", "G"}},
		colEpiglottal:   {vl: sym{"ʡ", ">\\", ""}},
		colGlottal:      {vl: sym{"ʔ", "?", "?"}},
	},
	consonant.Nasal: {
		colBilabial:     voiced(sym{"m", "m", "m"}),
		colLabiodental:  voiced(sym{"ɱ", "F", "M"}),
		colDental:       voiced(sym{"n̪", "n_d", "n["}),
		colAlveolar:     voiced(sym{"n", "n", "n"}),
		colPostalveolar: voiced(sym{"n", "n", "n"}),
		colRetroflex:    voiced(sym{"ɳ", "n`", "n."}),
		colPalatal:      voiced(sym{"ɲ", "J", "n^"}),
		colVelar:        voiced(sym{"ŋ", "N", "N"}),
		colUvular:       voiced(sym{"ɴ", "N\\", "n\""}),
	},
	consonant.Trill: {
		colBilabial: voiced(sym{"ʙ", "B\\", "b<trl>"}),
		colAlveolar: voiced(sym{"r", "r", "r"}),
		colUvular:   voiced(sym{"ʀ", "R\\", "r\""}),
	},
	consonant.Flap: {
		colLabiodental: voiced(sym{"ⱱ", "", ""}),
		colAlveolar:    voiced(sym{"ɾ", "4", "*"}),
		colRetroflex:   voiced(sym{"ɽ", "r`", "*."}),
	},
	consonant.LateralFlap: {
		colAlveolar: voiced(sym{"ɺ", "l\\", "*<lat>"}),
	},
	consonant.SibilantFricative: {
		colAlveolar:       {sym{"s", "s", "s"}, sym{"z", "z", "z"}},
		colPostalveolar:   {sym{"ʃ", "S", "S"}, sym{"ʒ", "Z", "Z"}},
		colRetroflex:      {sym{"ʂ", "s`", "s."}, sym{"ʐ", "z`", "z."}},
		colAlveoloPalatal: {sym{"ɕ", "s\\", ""}, sym{"ʑ", "z\\", ""}},
	},
	consonant.NonsibilantFricative: {
		colBilabial:    {sym{"ɸ", "p\\", "P"}, sym{"β", "B", "B"}},
		colLabiodental: {sym{"f", "f", "f"}, sym{"v", "v", "v"}},
		colDental:      {sym{"θ", "T", "T"}, sym{"ð", "D", "D"}},
		colPalatal:     {sym{"ç", "C", "C"}, sym{"ʝ", "j\\", ""}},
		colVelar:       {sym{"x", "x", "x"}, sym{"ɣ", "G", "Q"}},
		colUvular:      {sym{"χ", "X", "X"}, sym{"ʁ", "R", "g\""}},
		colPharyngeal:  {sym{"ħ", "X\\", "H"}, sym{"ʕ", "?\\", ""}},
		colEpiglottal:  {sym{"ʜ", "H\\", ""}, sym{"ʢ", "<\\", ""}},
		colGlottal:     {sym{"h", "h", "h"}, sym{"ɦ", "h\\", ""}},
	},
	consonant.LateralFricative: {
		colAlveolar: {sym{"ɬ", "K", "s<lat>"}, sym{"ɮ", "K\\", "z<lat>"}},
	},
	consonant.Approximant: {
		colLabiodental: voiced(sym{"ʋ", "v\\", "r<lbd>"}),
		colAlveolar:    voiced(sym{"ɹ", "r\\", "r"}),
		colRetroflex:   voiced(sym{"ɻ", "r\\`", "r."}),
		colPalatal:     voiced(sym{"j", "j", "j"}),
		colVelar:       voiced(sym{"ɰ", "M\\", "j<vel>"}),
	},
	consonant.LateralApproximant: {
		colAlveolar:  voiced(sym{"l", "l", "l"}),
		colRetroflex: voiced(sym{"ɭ", "l`", "l."}),
		colPalatal:   voiced(sym{"ʎ", "L", "l^"}),
		colVelar:     voiced(sym{"ʟ", "L\\", "L"}),
	},
}

// clicks carries the five click letters, keyed by column. Lateral
// clicks key off the manner instead.
var clicks = map[col]sym{
	colBilabial:     {"ʘ", "O\\", "p!"},
	colDental:       {"ǀ", "|\\", "t!"},
	colAlveolar:     {"ǃ", "!\\", "c!"},
	colPostalveolar: {"ǃ", "!\\", "c!"},
	colRetroflex:    {"ǃ", "!\\", "c!"},
	colPalatal:      {"ǂ", "=\\", "c!"},
}

var lateralClick = sym{"ǁ", "|\\|\\", "l!"}

// implosives carries the voiced implosive letters, keyed by column.
var implosives = map[col]sym{
	colBilabial: {"ɓ", "b_<", "b`"},
	colDental:   {"ɗ", "d_<", "d`"},
	colAlveolar: {"ɗ", "d_<", "d`"},
	colPalatal:  {"ʄ", "J\\_<", "J`"},
	colVelar:    {"ɠ", "g_<", "g`"},
	colUvular:   {"ʛ", "G\\_<", "G`"},
}

var ejectiveMark = sym{"ʼ", "_>", "`"}

// isLateral reports whether the manner carries lateral airflow.
func isLateral(m consonant.Manner) bool {
	return m == consonant.LateralFlap ||
		m == consonant.LateralApproximant ||
		m == consonant.LateralFricative
}

// base resolves the consonant's letter, before diacritics.
func base(c *consonant.Consonant, enc Encoding) (string, error) {
	column := broadPlace(c.Place())
	voiceless := c.Phonation() == phone.Voiceless

	var s sym
	switch c.Mechanism() {
	case consonant.Click:
		if isLateral(c.Manner()) {
			s = lateralClick
		} else {
			s = clicks[column]
		}
	case consonant.Implosive:
		if c.Manner() == consonant.Stop {
			s = implosives[column]
		}
	default: // pulmonic and ejective share letters
		p := pulmonic[c.Manner()][column]
		if voiceless || c.Mechanism() == consonant.Ejective {
			s = p.vl
		} else {
			s = p.vd
		}
	}

	out := s.in(enc)
	if out == "" {
		return "", fmt.Errorf("%w: no %s symbol for %s",
			phonetics.ErrInvalidValue, enc, c.Description())
	}
	if c.Mechanism() == consonant.Ejective {
		out += ejectiveMark.in(enc)
	}

	return out, nil
}

// secondaryMarks maps a secondary articulation column to its
// superscript modifier. Columns with no conventional modifier render
// nothing; the feature still shows in Description.
var secondaryMarks = map[col]sym{
	colBilabial:    {"ʷ", "_w", "<w>"},
	colLabiodental: {"ʷ", "_w", "<w>"},
	colPalatal:     {"ʲ", "_j", ";"},
	colVelar:       {"ˠ", "_G", ""},
	colPharyngeal:  {"ˤ", "_?\\", ""},
}

// Consonant renders the consonant in the chosen encoding.
//
// Errors:
//   - ErrInvalidValue - the alphabet has no letter for this combination
//     of manner, place, voicing and mechanism.
func Consonant(c *consonant.Consonant, enc Encoding) (string, error) {
	out, err := base(c, enc)
	if err != nil {
		return "", err
	}
	if c.HasSecondaryArticulation() {
		out += secondaryMarks[broadPlace(c.SecondaryArticulation())].in(enc)
	}
	out += phonationMark(c.Phonation(), enc)
	if c.IsNasal() {
		out += nasalMark.in(enc)
	}
	out += lengthMark(c.Length(), enc)

	return finish(out, enc), nil
}
