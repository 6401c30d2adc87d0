package vowel

import (
	"fmt"
	"math"
	"strings"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/phone"
)

// Vowel represents any articulable vowel. The zero value is not usable;
// construct through Default or New.
type Vowel struct {
	phone.Features

	height      float64
	backness    float64
	roundedness Roundedness
	rColored    bool
}

// Compile-time check that Vowel satisfies the Segment capability.
var _ phone.Segment = (*Vowel)(nil)

// Option configures optional vowel features at construction.
type Option func(*Vowel)

// WithNasalization sets the vowel's nasalization (default Oral).
func WithNasalization(n phone.Nasalization) Option {
	return func(v *Vowel) { v.SetNasalization(n) }
}

// WithPhonation sets the vowel's phonation (default Modal).
// GlottalClosure is rejected by New.
func WithPhonation(p phone.Phonation) Option {
	return func(v *Vowel) { v.Features = phone.NewFeatures(v.Nasalization(), p, v.Length()) }
}

// WithLength sets the vowel's relative length (default 1.0). Must be > 0;
// checked by New.
func WithLength(length float64) Option {
	return func(v *Vowel) {
		v.Features = phone.NewFeatures(v.Nasalization(), v.Phonation(), length)
	}
}

// WithRColor marks the vowel as r-colored.
func WithRColor() Option {
	return func(v *Vowel) { v.rColored = true }
}

// Default returns the schwa: mid central unrounded, oral, modal, not
// r-colored, length 1.0.
func Default() *Vowel {
	return &Vowel{
		Features:    phone.NewFeatures(phone.Oral, phone.Modal, 1.0),
		height:      Mid.Pos(),
		backness:    Central.Pos(),
		roundedness: Unrounded,
	}
}

// New constructs a vowel at the given quality. Height must lie in [0, 6]
// and backness in [0, 4]; preset ordinals convert via Pos. Optional
// features default to the schwa's (oral, modal, length 1.0, no
// r-coloring) and are supplied through options.
//
// Errors:
//   - ErrInvalidValue - height, backness or length outside its bound.
//   - ErrImpossibleArticulation - GlottalClosure phonation.
func New(height, backness float64, roundedness Roundedness, opts ...Option) (*Vowel, error) {
	v := Default()
	v.height = height
	v.backness = backness
	v.roundedness = roundedness
	for _, opt := range opts {
		opt(v)
	}

	if err := phone.HeightBound.Check(v.height); err != nil {
		return nil, fmt.Errorf("height: %w", err)
	}
	if err := phone.BacknessBound.Check(v.backness); err != nil {
		return nil, fmt.Errorf("backness: %w", err)
	}
	if err := phone.LengthBound.Check(v.Length()); err != nil {
		return nil, fmt.Errorf("length: %w", err)
	}
	if err := v.checkPhonation(v.Phonation()); err != nil {
		return nil, err
	}

	return v, nil
}

// checkPhonation is the vowel's validity hook: a vowel may carry any
// phonation except full glottal closure.
func (v *Vowel) checkPhonation(p phone.Phonation) error {
	if p == phone.GlottalClosure {
		return fmt.Errorf("%w: a vowel cannot carry glottal closure",
			phonetics.ErrImpossibleArticulation)
	}

	return nil
}

// SetPhonation replaces the phonation after validating the candidate
// against the vowel's hook. On rejection the vowel is unchanged.
func (v *Vowel) SetPhonation(p phone.Phonation) error {
	return v.Features.SetPhonation(p, v.checkPhonation)
}

// IncrPhonation steps the phonation k places up the enumeration (towards
// a closed glottis), wrapping at both ends, then validates like
// SetPhonation.
func (v *Vowel) IncrPhonation(k int) error {
	return v.Features.IncrPhonation(k, v.checkPhonation)
}

// DecrPhonation steps the phonation k places down the enumeration
// (towards an open glottis), wrapping at both ends, then validates like
// SetPhonation.
func (v *Vowel) DecrPhonation(k int) error {
	return v.Features.DecrPhonation(k, v.checkPhonation)
}

// Height returns the vowel height: 0.0 = open .. 6.0 = close.
func (v *Vowel) Height() float64 { return v.height }

// SetHeight replaces the height. Fails with ErrInvalidValue outside
// [0, 6]; the vowel is then unchanged.
func (v *Vowel) SetHeight(height float64) error {
	if err := phone.HeightBound.Check(height); err != nil {
		return fmt.Errorf("height: %w", err)
	}
	v.height = height

	return nil
}

// Raise increases the height by val. Fails when the result would exceed
// 6.0; the vowel is then unchanged.
func (v *Vowel) Raise(val float64) error {
	sum, err := phone.HeightBound.Add(v.height, val)
	if err != nil {
		return fmt.Errorf("raise: %w", err)
	}
	v.height = sum

	return nil
}

// Lower decreases the height by val. Fails when the result would drop
// below 0.0; the vowel is then unchanged.
func (v *Vowel) Lower(val float64) error {
	sum, err := phone.HeightBound.Add(v.height, -val)
	if err != nil {
		return fmt.Errorf("lower: %w", err)
	}
	v.height = sum

	return nil
}

// Backness returns the vowel backness: 0.0 = front .. 4.0 = back.
func (v *Vowel) Backness() float64 { return v.backness }

// SetBackness replaces the backness. Fails with ErrInvalidValue outside
// [0, 4]; the vowel is then unchanged.
func (v *Vowel) SetBackness(backness float64) error {
	if err := phone.BacknessBound.Check(backness); err != nil {
		return fmt.Errorf("backness: %w", err)
	}
	v.backness = backness

	return nil
}

// MoveBack increases the backness by val. Fails when the result would
// exceed 4.0; the vowel is then unchanged.
func (v *Vowel) MoveBack(val float64) error {
	sum, err := phone.BacknessBound.Add(v.backness, val)
	if err != nil {
		return fmt.Errorf("move back: %w", err)
	}
	v.backness = sum

	return nil
}

// MoveForward decreases the backness by val. Fails when the result would
// drop below 0.0; the vowel is then unchanged.
func (v *Vowel) MoveForward(val float64) error {
	sum, err := phone.BacknessBound.Add(v.backness, -val)
	if err != nil {
		return fmt.Errorf("move forward: %w", err)
	}
	v.backness = sum

	return nil
}

// Roundedness returns the vowel's lip posture.
func (v *Vowel) Roundedness() Roundedness { return v.roundedness }

// SetRoundedness replaces the lip posture. No failure mode: every
// roundedness combines with every other vowel feature.
func (v *Vowel) SetRoundedness(r Roundedness) { v.roundedness = r }

// IsRounded reports whether the vowel is exolabial or endolabial.
func (v *Vowel) IsRounded() bool { return v.roundedness != Unrounded }

// IsRColored reports whether the vowel is r-colored.
func (v *Vowel) IsRColored() bool { return v.rColored }

// RColor makes the vowel r-colored. Idempotent.
func (v *Vowel) RColor() { v.rColored = true }

// DeRColor removes r-coloring. Idempotent.
func (v *Vowel) DeRColor() { v.rColored = false }

// Clone returns an independent copy of the vowel.
func (v *Vowel) Clone() phone.Segment {
	cp := *v

	return &cp
}

// Equal reports exact field-wise equality. A vowel is never equal to a
// consonant.
func (v *Vowel) Equal(s phone.Segment) bool {
	o, ok := s.(*Vowel)
	if !ok {
		return false
	}

	return v.Features.Equal(&o.Features) &&
		v.height == o.height &&
		v.backness == o.backness &&
		v.roundedness == o.roundedness &&
		v.rColored == o.rColored
}

// Description renders the vowel's defining characteristics in standard
// IPA terminology, e.g. "extra-long strongly-nasal r-colored near-open
// near-back endolabial rounded vowel". Continuous height and backness
// report the nearest preset name.
func (v *Vowel) Description() string {
	terms := make([]string, 0, 8)
	if t := lengthTerm(v.Length()); t != "" {
		terms = append(terms, t)
	}
	if v.Phonation() != phone.Modal {
		terms = append(terms, v.Phonation().String())
	}
	if v.IsNasal() {
		terms = append(terms, v.Nasalization().String())
	}
	if v.rColored {
		terms = append(terms, "r-colored")
	}
	terms = append(terms,
		nearestHeight(v.height).String(),
		nearestBackness(v.backness).String(),
		roundednessTerm(v.roundedness),
		"vowel")

	return strings.Join(terms, " ")
}

// lengthTerm maps relative length onto the conventional length terms.
// The standard length 1.0 and its neighborhood carry no term.
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

// roundednessTerm renders roundedness the way IPA prose does: plain
// exolabial rounding is just "rounded", endolabial rounding is called out.
func roundednessTerm(r Roundedness) string {
	switch r {
	case Exolabial:
		return "rounded"
	case Endolabial:
		return "endolabial rounded"
	default:
		return "unrounded"
	}
}

// nearestHeight snaps a continuous height onto the closest preset.
func nearestHeight(h float64) Height {
	i := int(math.Round(h))
	if i < 0 {
		i = 0
	}
	if i >= HeightCount {
		i = HeightCount - 1
	}

	return Height(i)
}

// nearestBackness snaps a continuous backness onto the closest preset.
func nearestBackness(b float64) Backness {
	i := int(math.Round(b))
	if i < 0 {
		i = 0
	}
	if i >= BacknessCount {
		i = BacknessCount - 1
	}

	return Backness(i)
}
