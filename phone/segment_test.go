package phone_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingora/phonetics/phone"
)

// errNo is a stand-in validity hook that rejects everything.
var errNo = errors.New("no")

// accept is a validity hook that accepts everything.
func accept(phone.Phonation) error { return nil }

// TestFeatures_Length exercises the length mutators against the
// strictly-positive bound.
func TestFeatures_Length(t *testing.T) {
	f := phone.NewFeatures(phone.Oral, phone.Modal, 1.0)

	assert.NoError(t, f.Lengthen(0.5))
	assert.Equal(t, 1.5, f.Length())

	assert.Error(t, f.Shorten(1.5), "shortening to zero must fail")
	assert.Equal(t, 1.5, f.Length(), "failed shorten leaves the length unchanged")

	assert.Error(t, f.SetLength(0), "zero length is not a phone")
	assert.Error(t, f.SetLength(-2), "negative length is not a phone")

	f.DoubleLength()
	assert.Equal(t, 3.0, f.Length())
	f.HalveLength()
	f.HalveLength()
	assert.Equal(t, 0.75, f.Length(), "halving never crosses zero")
}

// TestFeatures_PhonationHook verifies that the hook decides commit or
// reject, and that a rejected change leaves the state untouched.
func TestFeatures_PhonationHook(t *testing.T) {
	f := phone.NewFeatures(phone.Oral, phone.Modal, 1.0)

	err := f.SetPhonation(phone.Creaky, func(phone.Phonation) error { return errNo })
	assert.ErrorIs(t, err, errNo, "the hook's error propagates unchanged")
	assert.Equal(t, phone.Modal, f.Phonation(), "rejected phonation change must not commit")

	assert.NoError(t, f.SetPhonation(phone.Creaky, accept))
	assert.Equal(t, phone.Creaky, f.Phonation())
}

// TestFeatures_PhonationRoundTrip checks Incr then Decr by the same k
// restores the original, including across the wrap.
func TestFeatures_PhonationRoundTrip(t *testing.T) {
	for _, k := range []int{1, 3, 9, 10, 17} {
		f := phone.NewFeatures(phone.Oral, phone.Harsh, 1.0)
		assert.NoError(t, f.IncrPhonation(k, accept))
		assert.NoError(t, f.DecrPhonation(k, accept))
		assert.Equal(t, phone.Harsh, f.Phonation(), "round trip by %d", k)
	}
}

// TestFeatures_Nasalization covers the grade accessors.
func TestFeatures_Nasalization(t *testing.T) {
	f := phone.NewFeatures(phone.Oral, phone.Modal, 1.0)
	assert.False(t, f.IsNasal())

	f.SetNasalization(phone.Nasal)
	assert.True(t, f.IsNasal())

	f.SetNasalization(phone.StronglyNasal)
	assert.True(t, f.IsNasal(), "both nasal grades count as nasal")
	assert.Equal(t, phone.StronglyNasal, f.Nasalization())
}

// TestFeatures_Equal is exact field-wise equality, floats included.
func TestFeatures_Equal(t *testing.T) {
	a := phone.NewFeatures(phone.Nasal, phone.Breathy, 2.0)
	b := phone.NewFeatures(phone.Nasal, phone.Breathy, 2.0)
	assert.True(t, a.Equal(&b))

	c := phone.NewFeatures(phone.Nasal, phone.Breathy, 2.0000001)
	assert.False(t, a.Equal(&c), "length compares exactly, not approximately")
}
