package vowel_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/phone"
	"github.com/lingora/phonetics/vowel"
)

// TestDefault_IsSchwa verifies the default vowel is the schwa: mid
// central unrounded, modal, oral, length 1.0.
func TestDefault_IsSchwa(t *testing.T) {
	v := vowel.Default()

	assert.Equal(t, 3.0, v.Height())
	assert.Equal(t, 2.0, v.Backness())
	assert.Equal(t, vowel.Unrounded, v.Roundedness())
	assert.Equal(t, phone.Modal, v.Phonation())
	assert.Equal(t, 1.0, v.Length())
	assert.False(t, v.IsNasal())
	assert.False(t, v.IsRColored())
	assert.Equal(t, "mid central unrounded vowel", v.Description())
}

// TestNew_Validates covers the constructor's bound checks.
func TestNew_Validates(t *testing.T) {
	_, err := vowel.New(7.0, 2.0, vowel.Unrounded)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue, "height above 6 rejected")

	_, err = vowel.New(3.0, -0.5, vowel.Unrounded)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue, "backness below 0 rejected")

	_, err = vowel.New(3.0, 2.0, vowel.Unrounded, vowel.WithLength(0))
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue, "non-positive length rejected")

	_, err = vowel.New(3.0, 2.0, vowel.Unrounded, vowel.WithPhonation(phone.GlottalClosure))
	assert.ErrorIs(t, err, phonetics.ErrImpossibleArticulation, "glottal closure is no vowel phonation")

	v, err := vowel.New(vowel.Close.Pos(), vowel.Front.Pos(), vowel.Exolabial)
	require.NoError(t, err)
	assert.True(t, v.IsRounded())
}

// TestGlottalClosure_NeverObserved verifies no mutation path can land a
// vowel on glottal closure, and that rejection leaves the state intact.
func TestGlottalClosure_NeverObserved(t *testing.T) {
	v := vowel.Default()

	err := v.SetPhonation(phone.GlottalClosure)
	assert.ErrorIs(t, err, phonetics.ErrImpossibleArticulation)
	assert.Equal(t, phone.Modal, v.Phonation(), "rejected phonation leaves the vowel unchanged")

	// Creaky is one step below glottal closure; a single increment
	// would land exactly on it.
	require.NoError(t, v.SetPhonation(phone.Creaky))
	err = v.IncrPhonation(1)
	assert.ErrorIs(t, err, phonetics.ErrImpossibleArticulation)
	assert.Equal(t, phone.Creaky, v.Phonation())

	// Stepping over it by two is fine.
	assert.NoError(t, v.IncrPhonation(2))
	assert.Equal(t, phone.Faucalized, v.Phonation())
}

// TestPhonation_CyclicRoundTrip checks incr-then-decr restores the
// original when both intermediate states are valid.
func TestPhonation_CyclicRoundTrip(t *testing.T) {
	v := vowel.Default()
	for _, k := range []int{1, 2, 5, 9, 12} {
		if v.IncrPhonation(k) != nil {
			continue // the step landed on glottal closure
		}
		assert.NoError(t, v.DecrPhonation(k))
		assert.Equal(t, phone.Modal, v.Phonation(), "round trip by %d", k)
	}
}

// TestHeight_BoundRejectsNotClamps replays the bound semantics: a raise
// past the close bound fails and the height is untouched.
func TestHeight_BoundRejectsNotClamps(t *testing.T) {
	v := vowel.Default()
	require.NoError(t, v.SetHeight(6.0))

	err := v.Raise(0.5)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue)
	assert.Equal(t, 6.0, v.Height(), "failed raise must not clamp")

	require.NoError(t, v.Lower(2.5))
	assert.Equal(t, 3.5, v.Height())

	err = v.Lower(4.0)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue)
	assert.Equal(t, 3.5, v.Height())
}

// TestBackness_Mutators covers the front/back axis the same way.
func TestBackness_Mutators(t *testing.T) {
	v := vowel.Default()
	require.NoError(t, v.MoveBack(2.0))
	assert.Equal(t, 4.0, v.Backness())

	err := v.MoveBack(0.1)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue)
	assert.Equal(t, 4.0, v.Backness())

	require.NoError(t, v.MoveForward(4.0))
	assert.Equal(t, 0.0, v.Backness())
}

// TestRColor_Idempotent covers the rhotic flag.
func TestRColor_Idempotent(t *testing.T) {
	v := vowel.Default()
	v.RColor()
	v.RColor()
	assert.True(t, v.IsRColored())
	v.DeRColor()
	assert.False(t, v.IsRColored())
}

// TestDescription_TermOrder verifies the fixed term order with every
// optional term present.
func TestDescription_TermOrder(t *testing.T) {
	v, err := vowel.New(vowel.NearOpen.Pos(), vowel.NearBack.Pos(), vowel.Endolabial,
		vowel.WithPhonation(phone.Breathy),
		vowel.WithNasalization(phone.StronglyNasal),
		vowel.WithLength(3.5),
		vowel.WithRColor(),
	)
	require.NoError(t, err)

	assert.Equal(t,
		"extra-long breathy strongly-nasal r-colored near-open near-back endolabial rounded vowel",
		v.Description())
}

// TestDescription_RoundednessTerms checks the three lip postures.
func TestDescription_RoundednessTerms(t *testing.T) {
	v := vowel.Default()
	assert.Contains(t, v.Description(), "unrounded vowel")

	v.SetRoundedness(vowel.Exolabial)
	assert.Equal(t, "mid central rounded vowel", v.Description())

	v.SetRoundedness(vowel.Endolabial)
	assert.Equal(t, "mid central endolabial rounded vowel", v.Description())
}

// TestDescription_LengthTerms checks the conventional thresholds.
func TestDescription_LengthTerms(t *testing.T) {
	v := vowel.Default()

	assert.NoError(t, v.SetLength(2.0))
	assert.Equal(t, "long mid central unrounded vowel", v.Description())

	assert.NoError(t, v.SetLength(3.0))
	assert.Equal(t, "extra-long mid central unrounded vowel", v.Description())

	assert.NoError(t, v.SetLength(0.5))
	assert.Equal(t, "short mid central unrounded vowel", v.Description())

	assert.NoError(t, v.SetLength(1.2))
	assert.Equal(t, "mid central unrounded vowel", v.Description())
}

// TestDescription_SnapsContinuousQuality verifies off-grid height and
// backness report the nearest preset name.
func TestDescription_SnapsContinuousQuality(t *testing.T) {
	v, err := vowel.New(4.4, 0.6, vowel.Unrounded)
	require.NoError(t, err)
	assert.Equal(t, "close-mid near-front unrounded vowel", v.Description())
}

// TestCloneEqual verifies deep copies are equal and independent, and
// that a vowel never equals a non-vowel segment.
func TestCloneEqual(t *testing.T) {
	v, err := vowel.New(vowel.Open.Pos(), vowel.Front.Pos(), vowel.Unrounded,
		vowel.WithNasalization(phone.Nasal))
	require.NoError(t, err)

	cp := v.Clone()
	assert.True(t, v.Equal(cp))

	cpv, ok := cp.(*vowel.Vowel)
	require.True(t, ok)
	require.NoError(t, cpv.Raise(1))
	assert.False(t, v.Equal(cp), "mutating the clone leaves the original alone")
	assert.Equal(t, 0.0, v.Height())
}
