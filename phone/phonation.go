package phone

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lingora/phonetics"
)

// Phonation is the laryngeal vibration state of a phone. The order of the
// enumeration roughly corresponds to moving from an open glottis towards a
// closed one, followed by the three common supra-glottal states.
type Phonation int

const (
	// Voiceless - the glottis is open, no vocal-fold vibration.
	Voiceless Phonation = iota

	// Breathy - vibration with audible airflow through a lax glottis.
	Breathy

	// Slack - vocal folds vibrate more loosely than in modal voice.
	Slack

	// Modal - ordinary voiced phonation.
	Modal

	// Stiff - vocal folds vibrate more stiffly than in modal voice.
	Stiff

	// Creaky - slow, irregular vibration of compressed vocal folds.
	Creaky

	// GlottalClosure - the glottis is fully closed; no vibration possible.
	GlottalClosure

	// Faucalized - supra-glottal: widened pharynx ("hollow voice").
	Faucalized

	// Harsh - supra-glottal: constricted pharynx.
	Harsh

	// Strident - supra-glottal: harsh phonation with epiglottal trilling.
	Strident
)

// PhonationCount is the cardinality of the Phonation enumeration.
const PhonationCount = 10

var phonationNames = [PhonationCount]string{
	"voiceless",
	"breathy",
	"slack",
	"modal",
	"stiff",
	"creaky",
	"glottal-closure",
	"faucalized",
	"harsh",
	"strident",
}

// Shift steps k positions through the Phonation enumeration, wrapping at
// both ends. Shift never fails; whether the resulting phonation is
// articulable in context is the variant's concern, not the ordinal's.
func (p Phonation) Shift(k int) Phonation { return Cycle(p, k, PhonationCount) }

// String returns the lowercase name of the phonation state.
func (p Phonation) String() string {
	if p < 0 || int(p) >= PhonationCount {
		return fmt.Sprintf("Phonation(%d)", int(p))
	}

	return phonationNames[p]
}

// ParsePhonation resolves a phonation name produced by String.
func ParsePhonation(name string) (Phonation, error) {
	for i, n := range phonationNames {
		if n == name {
			return Phonation(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown phonation %q", phonetics.ErrInvalidValue, name)
}

// PhonationsExcept returns every phonation state except the listed ones,
// in enumeration order. Handy for building exclusion rules that name the
// single permitted state instead of the nine forbidden ones.
func PhonationsExcept(excluded ...Phonation) []Phonation {
	out := make([]Phonation, 0, PhonationCount)
	for p := Phonation(0); int(p) < PhonationCount; p++ {
		skip := false
		for _, e := range excluded {
			if p == e {
				skip = true
				break
			}
		}
		if !skip {
			out = append(out, p)
		}
	}

	return out
}

// MarshalYAML encodes the phonation by name.
func (p Phonation) MarshalYAML() (interface{}, error) {
	if p < 0 || int(p) >= PhonationCount {
		return nil, fmt.Errorf("%w: phonation ordinal %d", phonetics.ErrInvalidValue, int(p))
	}

	return phonationNames[p], nil
}

// UnmarshalYAML decodes a phonation from its name.
func (p *Phonation) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	parsed, err := ParsePhonation(name)
	if err != nil {
		return err
	}
	*p = parsed

	return nil
}
