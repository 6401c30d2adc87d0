package consonant

import (
	"fmt"
	"strings"

	"github.com/lingora/phonetics/phone"
)

// Consonant represents any articulable consonant, pulmonic or not.
// All categorical mutators build the full candidate articulation, run it
// through the validator, and commit only on approval, so an invariant
// holds at all times: the resting state always passes Check.
//
// The zero value is not usable; construct through Default or New.
type Consonant struct {
	phone.Features

	manner    Manner
	place     Place
	secondary Place // equal to place when there is no secondary articulation
	vot       VOT
	mechanism Mechanism
	validator *Validator
}

// Compile-time check that Consonant satisfies the Segment capability.
var _ phone.Segment = (*Consonant)(nil)

// Option configures optional consonant features at construction.
type Option func(*Consonant)

// WithNasalization sets the consonant's nasalization (default Oral).
func WithNasalization(n phone.Nasalization) Option {
	return func(c *Consonant) { c.SetNasalization(n) }
}

// WithMechanism sets the airstream mechanism (default PulmonicEgressive).
func WithMechanism(m Mechanism) Option {
	return func(c *Consonant) { c.mechanism = m }
}

// WithLength sets the relative length (default 1.0). Must be > 0;
// checked by New.
func WithLength(length float64) Option {
	return func(c *Consonant) {
		c.Features = phone.NewFeatures(c.Nasalization(), c.Phonation(), length)
	}
}

// WithSecondaryArticulation adds a secondary articulation at the given
// place. Passing the primary place is equivalent to no secondary
// articulation.
func WithSecondaryArticulation(p Place) Option {
	return func(c *Consonant) { c.secondary = p }
}

// WithValidator replaces the default articulatory validator, e.g. with
// one extended by rules loaded through LoadRules.
func WithValidator(v *Validator) Option {
	return func(c *Consonant) { c.validator = v }
}

// Default returns the default consonant: a voiceless apical-alveolar
// stop, moderately aspirated, pulmonic egressive, oral, no secondary
// articulation, length 1.0. Valid under DefaultRules by construction.
func Default() *Consonant {
	return &Consonant{
		Features:  phone.NewFeatures(phone.Oral, phone.Voiceless, 1.0),
		manner:    Stop,
		place:     ApicalAlveolar,
		secondary: ApicalAlveolar,
		vot:       ModeratelyAspirated,
		mechanism: PulmonicEgressive,
		validator: defaultValidator,
	}
}

// New constructs a consonant from its four defining features. Optional
// features default to the Default consonant's and are supplied through
// options.
//
// Errors:
//   - ErrImpossibleArticulation - the validator rejected the combination.
//   - ErrInvalidValue - non-positive length.
func New(manner Manner, place Place, phonation phone.Phonation, vot VOT, opts ...Option) (*Consonant, error) {
	c := Default()
	c.manner = manner
	c.place = place
	c.secondary = place
	c.vot = vot
	c.Features = phone.NewFeatures(phone.Oral, phonation, 1.0)
	for _, opt := range opts {
		opt(c)
	}

	if err := phone.LengthBound.Check(c.Length()); err != nil {
		return nil, fmt.Errorf("length: %w", err)
	}
	if err := c.validator.Check(c.Articulation()); err != nil {
		return nil, err
	}

	return c, nil
}

// Articulation returns the five-field state the validator judges.
func (c *Consonant) Articulation() Articulation {
	return Articulation{
		Manner:    c.manner,
		Place:     c.place,
		Phonation: c.Phonation(),
		VOT:       c.vot,
		Mechanism: c.mechanism,
	}
}

// commit validates the candidate articulation and, on approval, runs
// apply. Every categorical mutator funnels through here so that a
// rejected change can never leave a partial update behind.
func (c *Consonant) commit(cand Articulation, apply func()) error {
	if err := c.validator.Check(cand); err != nil {
		return err
	}
	apply()

	return nil
}

// checkPhonation is the consonant's validity hook: the whole candidate
// state, with only the phonation replaced, must pass the validator.
func (c *Consonant) checkPhonation(p phone.Phonation) error {
	cand := c.Articulation()
	cand.Phonation = p

	return c.validator.Check(cand)
}

// SetPhonation replaces the phonation after validating the candidate
// articulation. On rejection the consonant is unchanged.
func (c *Consonant) SetPhonation(p phone.Phonation) error {
	return c.Features.SetPhonation(p, c.checkPhonation)
}

// IncrPhonation steps the phonation k places up the enumeration (towards
// a closed glottis), wrapping at both ends, then validates like
// SetPhonation.
func (c *Consonant) IncrPhonation(k int) error {
	return c.Features.IncrPhonation(k, c.checkPhonation)
}

// DecrPhonation steps the phonation k places down the enumeration
// (towards an open glottis), wrapping at both ends, then validates like
// SetPhonation.
func (c *Consonant) DecrPhonation(k int) error {
	return c.Features.DecrPhonation(k, c.checkPhonation)
}

// Manner returns the manner of articulation.
func (c *Consonant) Manner() Manner { return c.manner }

// SetManner replaces the manner after validation.
func (c *Consonant) SetManner(m Manner) error {
	cand := c.Articulation()
	cand.Manner = m

	return c.commit(cand, func() { c.manner = m })
}

// IncrManner steps the manner k places up the IPA table order, wrapping
// at both ends, then validates like SetManner.
func (c *Consonant) IncrManner(k int) error { return c.SetManner(c.manner.Shift(k)) }

// DecrManner steps the manner k places down the IPA table order,
// wrapping at both ends, then validates like SetManner.
func (c *Consonant) DecrManner(k int) error { return c.SetManner(c.manner.Shift(-k)) }

// Place returns the primary place of articulation.
func (c *Consonant) Place() Place { return c.place }

// SetPlace replaces the primary place after validation. A consonant with
// no secondary articulation keeps having none (the secondary place
// follows the primary).
func (c *Consonant) SetPlace(p Place) error {
	cand := c.Articulation()
	cand.Place = p

	return c.commit(cand, func() {
		if !c.HasSecondaryArticulation() {
			c.secondary = p
		}
		c.place = p
	})
}

// IncrPlace steps the primary place k places rightwards through the IPA
// table order, wrapping at both ends, then validates like SetPlace.
func (c *Consonant) IncrPlace(k int) error { return c.SetPlace(c.place.Shift(k)) }

// DecrPlace steps the primary place k places leftwards through the IPA
// table order, wrapping at both ends, then validates like SetPlace.
func (c *Consonant) DecrPlace(k int) error { return c.SetPlace(c.place.Shift(-k)) }

// HasSecondaryArticulation reports whether a secondary articulation is
// present (the secondary place differs from the primary).
func (c *Consonant) HasSecondaryArticulation() bool { return c.secondary != c.place }

// SecondaryArticulation returns the secondary place of articulation.
// Without a secondary articulation it equals the primary place.
func (c *Consonant) SecondaryArticulation() Place { return c.secondary }

// SetSecondaryArticulation sets the secondary place. Setting it to the
// primary place removes the secondary articulation. The candidate state
// is validated like every other mutation.
func (c *Consonant) SetSecondaryArticulation(p Place) error {
	return c.commit(c.Articulation(), func() { c.secondary = p })
}

// RemoveSecondaryArticulation removes the secondary articulation.
// No-op when there is none.
func (c *Consonant) RemoveSecondaryArticulation() { c.secondary = c.place }

// IncrSecondaryArticulation steps the secondary place k places
// rightwards through the IPA table order, wrapping at both ends.
func (c *Consonant) IncrSecondaryArticulation(k int) error {
	return c.SetSecondaryArticulation(c.secondary.Shift(k))
}

// DecrSecondaryArticulation steps the secondary place k places leftwards
// through the IPA table order, wrapping at both ends.
func (c *Consonant) DecrSecondaryArticulation(k int) error {
	return c.SetSecondaryArticulation(c.secondary.Shift(-k))
}

// VOT returns the voice-onset time.
func (c *Consonant) VOT() VOT { return c.vot }

// SetVOT replaces the voice-onset time after validation.
func (c *Consonant) SetVOT(v VOT) error {
	cand := c.Articulation()
	cand.VOT = v

	return c.commit(cand, func() { c.vot = v })
}

// LaterVOT moves the voice-onset time k places later (towards strong
// aspiration), wrapping at both ends, then validates like SetVOT.
func (c *Consonant) LaterVOT(k int) error { return c.SetVOT(c.vot.Shift(k)) }

// EarlierVOT moves the voice-onset time k places earlier (towards full
// voicing), wrapping at both ends, then validates like SetVOT.
func (c *Consonant) EarlierVOT(k int) error { return c.SetVOT(c.vot.Shift(-k)) }

// Mechanism returns the airstream mechanism.
func (c *Consonant) Mechanism() Mechanism { return c.mechanism }

// SetMechanism replaces the airstream mechanism after validation.
func (c *Consonant) SetMechanism(m Mechanism) error {
	cand := c.Articulation()
	cand.Mechanism = m

	return c.commit(cand, func() { c.mechanism = m })
}

// IncrMechanism steps the mechanism k places through the enumeration,
// wrapping at both ends, then validates like SetMechanism.
func (c *Consonant) IncrMechanism(k int) error { return c.SetMechanism(c.mechanism.Shift(k)) }

// DecrMechanism steps the mechanism k places backwards through the
// enumeration, wrapping at both ends, then validates like SetMechanism.
func (c *Consonant) DecrMechanism(k int) error { return c.SetMechanism(c.mechanism.Shift(-k)) }

// Clone returns an independent copy of the consonant. The validator is
// shared: it is an immutable rule table, not per-instance state.
func (c *Consonant) Clone() phone.Segment {
	cp := *c

	return &cp
}

// Equal reports exact field-wise equality of the articulatory state.
// The validator is configuration, not state, and does not participate.
// A consonant is never equal to a vowel.
func (c *Consonant) Equal(s phone.Segment) bool {
	o, ok := s.(*Consonant)
	if !ok {
		return false
	}

	return c.Features.Equal(&o.Features) &&
		c.manner == o.manner &&
		c.place == o.place &&
		c.secondary == o.secondary &&
		c.vot == o.vot &&
		c.mechanism == o.mechanism
}

// Description renders the consonant's defining characteristics, e.g.
// "voiceless moderately-aspirated apical-alveolar stop".
func (c *Consonant) Description() string {
	terms := make([]string, 0, 8)
	if t := lengthTerm(c.Length()); t != "" {
		terms = append(terms, t)
	}
	if c.IsNasal() {
		terms = append(terms, "nasalized")
	}
	terms = append(terms, c.Phonation().String(), c.vot.String())
	if c.mechanism != PulmonicEgressive {
		terms = append(terms, c.mechanism.String())
	}
	terms = append(terms, c.place.String(), c.manner.String())
	out := strings.Join(terms, " ")
	if c.HasSecondaryArticulation() {
		out += fmt.Sprintf(" with %s secondary articulation", c.secondary)
	}

	return out
}

// lengthTerm maps relative length onto the conventional length terms.
func lengthTerm(length float64) string {
	switch {
	case length >= 3.0:
		return "extra-long"
	case length >= 2.0:
		return "long"
	case length <= 0.5:
		return "short"
	default:
		return ""
	}
}
