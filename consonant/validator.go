package consonant

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/phone"
)

// Articulation is the five-field state the validator judges. Secondary
// articulation is deliberately absent: it never interacts with the
// laryngeal or airstream fields.
type Articulation struct {
	Manner    Manner
	Place     Place
	Phonation phone.Phonation
	VOT       VOT
	Mechanism Mechanism
}

// Rule is one named physiological exclusion. A rule matches an
// articulation when, for every field, the field's value appears in the
// rule's set - an empty set matches any value. A matched rule makes the
// articulation impossible.
//
// Rules are plain data and round-trip through YAML by enum name, so the
// exclusion table can be maintained outside the code.
type Rule struct {
	// Name identifies the rule in error messages, e.g. "voiced glottal stop".
	Name string `yaml:"name"`

	// Manners is the set of manners the rule applies to. Empty = any.
	Manners []Manner `yaml:"manners,omitempty,flow"`

	// Places is the set of places the rule applies to. Empty = any.
	Places []Place `yaml:"places,omitempty,flow"`

	// Phonations is the set of phonations the rule applies to. Empty = any.
	Phonations []phone.Phonation `yaml:"phonations,omitempty,flow"`

	// VOTs is the set of voice-onset times the rule applies to. Empty = any.
	VOTs []VOT `yaml:"vots,omitempty,flow"`

	// Mechanisms is the set of mechanisms the rule applies to. Empty = any.
	Mechanisms []Mechanism `yaml:"mechanisms,omitempty,flow"`
}

// matches reports whether every non-empty field set contains the
// articulation's value for that field.
func (r Rule) matches(a Articulation) bool {
	return containsOrAny(r.Manners, a.Manner) &&
		containsOrAny(r.Places, a.Place) &&
		containsOrAny(r.Phonations, a.Phonation) &&
		containsOrAny(r.VOTs, a.VOT) &&
		containsOrAny(r.Mechanisms, a.Mechanism)
}

func containsOrAny[E comparable](set []E, v E) bool {
	if len(set) == 0 {
		return true
	}
	for _, e := range set {
		if e == v {
			return true
		}
	}

	return false
}

// Validator decides whether an articulation is physically producible.
// It holds an explicit list of exclusion rules; any articulation not
// excluded by a rule is valid (open-world, default-valid).
type Validator struct {
	rules []Rule
}

// NewValidator builds a validator over the given exclusion rules.
// The rule slice is copied.
func NewValidator(rules ...Rule) *Validator {
	v := &Validator{rules: make([]Rule, len(rules))}
	copy(v.rules, rules)

	return v
}

// DefaultRules returns the documented physiological exclusions:
//
//  1. A glottal-place stop cannot carry a phonation other than voiceless:
//     the glottis itself performs the closure, precluding independent
//     laryngeal vibration.
//  2. A completely voiced VOT contradicts voiceless phonation.
//
// No speculative rules are included; extend the table only from
// documented phonetic impossibilities.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:       "voiced glottal stop",
			Manners:    []Manner{Stop},
			Places:     []Place{Glottal},
			Phonations: phone.PhonationsExcept(phone.Voiceless),
		},
		{
			Name:       "completely voiced VOT with voiceless phonation",
			Phonations: []phone.Phonation{phone.Voiceless},
			VOTs:       []VOT{CompletelyVoiced},
		},
	}
}

// defaultValidator backs every consonant that is not given its own.
var defaultValidator = NewValidator(DefaultRules()...)

// Default returns the validator over DefaultRules shared by all
// consonants constructed without WithValidator.
func DefaultValidator() *Validator { return defaultValidator }

// Check returns nil when the articulation is physically producible and
// an ErrImpossibleArticulation-wrapped error naming the violated rule
// otherwise.
func (v *Validator) Check(a Articulation) error {
	for _, r := range v.rules {
		if r.matches(a) {
			return fmt.Errorf("%w: %s", phonetics.ErrImpossibleArticulation, r.Name)
		}
	}

	return nil
}

// Rules returns a copy of the exclusion table.
func (v *Validator) Rules() []Rule {
	out := make([]Rule, len(v.rules))
	copy(out, v.rules)

	return out
}

// LoadRules reads a YAML exclusion table (a sequence of rules keyed by
// enum names) from r.
func LoadRules(r io.Reader) ([]Rule, error) {
	var rules []Rule
	if err := yaml.NewDecoder(r).Decode(&rules); err != nil {
		return nil, fmt.Errorf("consonant: decode rules: %w", err)
	}

	return rules, nil
}

// SaveRules writes the exclusion table to w as YAML, enum values by name.
func SaveRules(w io.Writer, rules []Rule) error {
	enc := yaml.NewEncoder(w)
	if err := enc.Encode(rules); err != nil {
		return fmt.Errorf("consonant: encode rules: %w", err)
	}

	return enc.Close()
}
