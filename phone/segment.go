package phone

import "fmt"

// Segment is the capability every concrete phone supplies. The two
// variants are vowel.Vowel and consonant.Consonant; a Segment value is
// always a pointer to one of them.
type Segment interface {
	// Nasalization returns the segment's nasalization state.
	Nasalization() Nasalization

	// IsNasal reports whether the segment is nasal or strongly nasal.
	IsNasal() bool

	// Phonation returns the segment's laryngeal state.
	Phonation() Phonation

	// Length returns the segment's relative length (> 0, 1.0 = standard).
	Length() float64

	// Description renders the segment's defining characteristics in
	// standard articulatory terminology, e.g. "mid central unrounded vowel".
	Description() string

	// Clone returns an independent deep copy of the segment.
	Clone() Segment

	// Equal reports exact field-wise equality with another segment.
	// Segments of different variants are never equal.
	Equal(Segment) bool
}

// Features is the record shared by both segment variants: nasalization,
// phonation and relative length. Variants embed it and route phonation
// changes through their own validity hook.
//
// Adjacent similar phones are treated as a single lengthened phone, so
// length is relative to a standard of 1.0 rather than an absolute time.
type Features struct {
	nasalization Nasalization
	phonation    Phonation
	length       float64
}

// NewFeatures returns the shared feature record in its given state.
// Length must satisfy LengthBound; constructors of the variants check it.
func NewFeatures(n Nasalization, p Phonation, length float64) Features {
	return Features{nasalization: n, phonation: p, length: length}
}

// Nasalization returns the nasalization state.
func (f *Features) Nasalization() Nasalization { return f.nasalization }

// SetNasalization replaces the nasalization state. Nasalization has no
// cross-field articulatory constraint, so this cannot fail.
func (f *Features) SetNasalization(n Nasalization) { f.nasalization = n }

// IsNasal reports whether the phone is nasal or strongly nasal.
func (f *Features) IsNasal() bool { return f.nasalization != Oral }

// Phonation returns the laryngeal state.
func (f *Features) Phonation() Phonation { return f.phonation }

// Length returns the relative length of the phone.
func (f *Features) Length() float64 { return f.length }

// SetLength replaces the length. Fails with ErrInvalidValue when the new
// length is not strictly positive; the stored length is then unchanged.
func (f *Features) SetLength(length float64) error {
	if err := LengthBound.Check(length); err != nil {
		return fmt.Errorf("length: %w", err)
	}
	f.length = length

	return nil
}

// Lengthen adds v to the length under LengthBound semantics.
func (f *Features) Lengthen(v float64) error {
	sum, err := LengthBound.Add(f.length, v)
	if err != nil {
		return fmt.Errorf("lengthen: %w", err)
	}
	f.length = sum

	return nil
}

// Shorten subtracts v from the length. Fails when the result would not be
// strictly positive; the stored length is then unchanged.
func (f *Features) Shorten(v float64) error {
	sum, err := LengthBound.Add(f.length, -v)
	if err != nil {
		return fmt.Errorf("shorten: %w", err)
	}
	f.length = sum

	return nil
}

// DoubleLength doubles the length. A positive length stays positive, so
// this cannot fail.
func (f *Features) DoubleLength() { f.length *= 2 }

// HalveLength halves the length. A positive length stays positive, so
// this cannot fail.
func (f *Features) HalveLength() { f.length /= 2 }

// SetPhonation commits p after the variant's validity hook accepts the
// candidate. On rejection the stored phonation is unchanged and the
// hook's error (an ErrImpossibleArticulation kind) is returned.
//
// The hook sees only the candidate phonation; the variant closes over the
// rest of its state to judge the whole prospective articulation.
func (f *Features) SetPhonation(p Phonation, valid func(Phonation) error) error {
	if err := valid(p); err != nil {
		return err
	}
	f.phonation = p

	return nil
}

// IncrPhonation steps the phonation k places up the Phonation enumeration
// (towards a closed glottis), wrapping at both ends, then validates and
// commits like SetPhonation.
func (f *Features) IncrPhonation(k int, valid func(Phonation) error) error {
	return f.SetPhonation(f.phonation.Shift(k), valid)
}

// DecrPhonation steps the phonation k places down the Phonation
// enumeration (towards an open glottis), wrapping at both ends, then
// validates and commits like SetPhonation.
func (f *Features) DecrPhonation(k int, valid func(Phonation) error) error {
	return f.SetPhonation(f.phonation.Shift(-k), valid)
}

// Equal reports exact field-wise equality of the shared features.
func (f *Features) Equal(o *Features) bool {
	return f.nasalization == o.nasalization &&
		f.phonation == o.phonation &&
		f.length == o.length
}
