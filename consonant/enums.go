package consonant

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/phone"
)

// Manner is how airflow is obstructed. The order follows the rows of the
// standard IPA pulmonic consonant table, bottom to top.
type Manner int

const (
	// LateralFlap - a flap with lateral airflow.
	LateralFlap Manner = iota
	// LateralApproximant - an approximant with lateral airflow.
	LateralApproximant
	// LateralFricative - a fricative with lateral airflow.
	LateralFricative
	// Trill - the articulator vibrates against the place of articulation.
	Trill
	// Flap - a single rapid contact.
	Flap
	// Approximant - articulators approach without turbulence.
	Approximant
	// NonsibilantFricative - turbulent airflow without a sibilant groove.
	NonsibilantFricative
	// SibilantFricative - turbulent airflow directed at the teeth.
	SibilantFricative
	// Stop - complete closure of the oral tract.
	Stop
	// Nasal - complete oral closure with nasal airflow.
	Nasal
)

// MannerCount is the cardinality of the Manner enumeration.
const MannerCount = 10

var mannerNames = []string{
	"lateral-flap",
	"lateral-approximant",
	"lateral-fricative",
	"trill",
	"flap",
	"approximant",
	"nonsibilant-fricative",
	"sibilant-fricative",
	"stop",
	"nasal",
}

// Place is where in the vocal tract the obstruction occurs. The order
// follows the columns of the standard IPA table, front to back.
type Place int

const (
	// Bilabial - both lips.
	Bilabial Place = iota
	// Labiodental - lower lip against upper teeth.
	Labiodental
	// Dentolabial - upper lip against lower teeth.
	Dentolabial
	// Bidental - both rows of teeth.
	Bidental
	// ApicalLinguolabial - tongue tip against the upper lip.
	ApicalLinguolabial
	// LaminalLinguolabial - tongue blade against the upper lip.
	LaminalLinguolabial
	// ApicalLowerLip - tongue tip against the lower lip.
	ApicalLowerLip
	// LaminalLowerLip - tongue blade against the lower lip.
	LaminalLowerLip
	// Interdental - tongue between the teeth.
	Interdental
	// ApicalDental - tongue tip against the upper teeth.
	ApicalDental
	// LaminalDental - tongue blade against the upper teeth.
	LaminalDental
	// ApicalAlveolar - tongue tip at the alveolar ridge.
	ApicalAlveolar
	// LaminalAlveolar - tongue blade at the alveolar ridge.
	LaminalAlveolar
	// ApicalPalatoAlveolar - tongue tip behind the alveolar ridge.
	ApicalPalatoAlveolar
	// LaminalPalatoAlveolar - tongue blade behind the alveolar ridge.
	LaminalPalatoAlveolar
	// ApicalRetroflex - curled tongue tip at the hard palate.
	ApicalRetroflex
	// LaminalRetroflex - tongue blade in retroflex position.
	LaminalRetroflex
	// SubapicalRetroflex - underside of the tongue tip at the palate.
	SubapicalRetroflex
	// AlveoloPalatal - tongue body between alveolar ridge and palate.
	AlveoloPalatal
	// Palatal - tongue body against the hard palate.
	Palatal
	// Velar - tongue body against the soft palate.
	Velar
	// Uvular - tongue body against the uvula.
	Uvular
	// Pharyngeal - tongue root against the pharynx wall.
	Pharyngeal
	// Epiglottal - constriction at the epiglottis.
	Epiglottal
	// Glottal - constriction at the glottis itself.
	Glottal
)

// PlaceCount is the cardinality of the Place enumeration.
const PlaceCount = 25

var placeNames = []string{
	"bilabial",
	"labiodental",
	"dentolabial",
	"bidental",
	"apical-linguolabial",
	"laminal-linguolabial",
	"apical-lower-lip",
	"laminal-lower-lip",
	"interdental",
	"apical-dental",
	"laminal-dental",
	"apical-alveolar",
	"laminal-alveolar",
	"apical-palato-alveolar",
	"laminal-palato-alveolar",
	"apical-retroflex",
	"laminal-retroflex",
	"subapical-retroflex",
	"alveolo-palatal",
	"palatal",
	"velar",
	"uvular",
	"pharyngeal",
	"epiglottal",
	"glottal",
}

// VOT is the voice-onset time: the timing of voicing onset relative to
// the consonant's release, from fully voiced to strongly aspirated.
type VOT int

const (
	// CompletelyVoiced - voicing throughout the closure.
	CompletelyVoiced VOT = iota
	// ModeratelyVoiced - voicing through most of the closure.
	ModeratelyVoiced
	// WeaklyVoiced - voicing begins late in the closure.
	WeaklyVoiced
	// NotAspirated - voicing begins at release.
	NotAspirated
	// WeaklyAspirated - a short voiceless interval after release.
	WeaklyAspirated
	// ModeratelyAspirated - a clear voiceless interval after release.
	ModeratelyAspirated
	// StronglyAspirated - a long voiceless interval after release.
	StronglyAspirated
)

// VOTCount is the cardinality of the VOT enumeration.
const VOTCount = 7

var votNames = []string{
	"completely-voiced",
	"moderately-voiced",
	"weakly-voiced",
	"not-aspirated",
	"weakly-aspirated",
	"moderately-aspirated",
	"strongly-aspirated",
}

// Mechanism is the airstream source driving the articulation.
type Mechanism int

const (
	// PulmonicEgressive - lung air pushed outwards (the default source).
	PulmonicEgressive Mechanism = iota
	// Ejective - glottalic egressive: larynx raised, air compressed.
	Ejective
	// Click - velaric ingressive: tongue-body suction.
	Click
	// Implosive - glottalic ingressive: larynx lowered.
	Implosive
)

// MechanismCount is the cardinality of the Mechanism enumeration.
const MechanismCount = 4

var mechanismNames = []string{
	"pulmonic-egressive",
	"ejective",
	"click",
	"implosive",
}

// Shift steps k positions through the Manner enumeration, wrapping at
// both ends.
func (m Manner) Shift(k int) Manner { return phone.Cycle(m, k, MannerCount) }

// String returns the hyphenated lowercase name of the manner.
func (m Manner) String() string { return enumName(int(m), mannerNames, "Manner") }

// ParseManner resolves a manner name produced by String.
func ParseManner(name string) (Manner, error) { return parseEnum[Manner](name, mannerNames, "manner") }

// Shift steps k positions through the Place enumeration, wrapping at
// both ends.
func (p Place) Shift(k int) Place { return phone.Cycle(p, k, PlaceCount) }

// String returns the hyphenated lowercase name of the place.
func (p Place) String() string { return enumName(int(p), placeNames, "Place") }

// ParsePlace resolves a place name produced by String.
func ParsePlace(name string) (Place, error) { return parseEnum[Place](name, placeNames, "place") }

// Shift steps k positions through the VOT enumeration, wrapping at both
// ends.
func (v VOT) Shift(k int) VOT { return phone.Cycle(v, k, VOTCount) }

// String returns the hyphenated lowercase name of the voice-onset time.
func (v VOT) String() string { return enumName(int(v), votNames, "VOT") }

// ParseVOT resolves a VOT name produced by String.
func ParseVOT(name string) (VOT, error) { return parseEnum[VOT](name, votNames, "vot") }

// Shift steps k positions through the Mechanism enumeration, wrapping at
// both ends.
func (m Mechanism) Shift(k int) Mechanism { return phone.Cycle(m, k, MechanismCount) }

// String returns the hyphenated lowercase name of the mechanism.
func (m Mechanism) String() string { return enumName(int(m), mechanismNames, "Mechanism") }

// ParseMechanism resolves a mechanism name produced by String.
func ParseMechanism(name string) (Mechanism, error) {
	return parseEnum[Mechanism](name, mechanismNames, "mechanism")
}

// MarshalYAML encodes the manner by name.
func (m Manner) MarshalYAML() (interface{}, error) { return yamlName(int(m), mannerNames, "manner") }

// UnmarshalYAML decodes a manner from its name.
func (m *Manner) UnmarshalYAML(value *yaml.Node) error {
	return yamlParse(m, value, mannerNames, "manner")
}

// MarshalYAML encodes the place by name.
func (p Place) MarshalYAML() (interface{}, error) { return yamlName(int(p), placeNames, "place") }

// UnmarshalYAML decodes a place from its name.
func (p *Place) UnmarshalYAML(value *yaml.Node) error {
	return yamlParse(p, value, placeNames, "place")
}

// MarshalYAML encodes the voice-onset time by name.
func (v VOT) MarshalYAML() (interface{}, error) { return yamlName(int(v), votNames, "vot") }

// UnmarshalYAML decodes a voice-onset time from its name.
func (v *VOT) UnmarshalYAML(value *yaml.Node) error {
	return yamlParse(v, value, votNames, "vot")
}

// MarshalYAML encodes the mechanism by name.
func (m Mechanism) MarshalYAML() (interface{}, error) {
	return yamlName(int(m), mechanismNames, "mechanism")
}

// UnmarshalYAML decodes a mechanism from its name.
func (m *Mechanism) UnmarshalYAML(value *yaml.Node) error {
	return yamlParse(m, value, mechanismNames, "mechanism")
}

// enumName looks up a name table, falling back to "Kind(n)" for ordinals
// outside the table (possible because Go integer types are open).
func enumName(i int, names []string, kind string) string {
	if i < 0 || i >= len(names) {
		return fmt.Sprintf("%s(%d)", kind, i)
	}

	return names[i]
}

// parseEnum resolves a name in a table back to its ordinal.
func parseEnum[E ~int](name string, names []string, kind string) (E, error) {
	for i, n := range names {
		if n == name {
			return E(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown %s %q", phonetics.ErrInvalidValue, kind, name)
}

// yamlName encodes an ordinal by name, rejecting out-of-table ordinals.
func yamlName(i int, names []string, kind string) (interface{}, error) {
	if i < 0 || i >= len(names) {
		return nil, fmt.Errorf("%w: %s ordinal %d", phonetics.ErrInvalidValue, kind, i)
	}

	return names[i], nil
}

// yamlParse decodes a scalar YAML node into an ordinal via its name table.
func yamlParse[E ~int](dst *E, value *yaml.Node, names []string, kind string) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}

	parsed, err := parseEnum[E](name, names, kind)
	if err != nil {
		return err
	}
	*dst = parsed

	return nil
}
