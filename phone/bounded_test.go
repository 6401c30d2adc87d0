package phone_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/phone"
)

// TestBound_Contains exercises closed and half-open interval membership.
func TestBound_Contains(t *testing.T) {
	assert.True(t, phone.HeightBound.Contains(0), "closed bound includes its low end")
	assert.True(t, phone.HeightBound.Contains(6), "closed bound includes its high end")
	assert.False(t, phone.HeightBound.Contains(6.0001), "just past the high end")
	assert.False(t, phone.HeightBound.Contains(-0.0001), "just below the low end")

	assert.False(t, phone.LengthBound.Contains(0), "length excludes zero")
	assert.True(t, phone.LengthBound.Contains(0.0001), "any positive length is fine")
	assert.True(t, phone.LengthBound.Contains(math.MaxFloat64), "no upper length limit")
}

// TestBound_Check verifies the error kind on rejection.
func TestBound_Check(t *testing.T) {
	assert.NoError(t, phone.BacknessBound.Check(2.5))

	err := phone.BacknessBound.Check(4.5)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue, "out-of-bound value reports ErrInvalidValue")

	err = phone.LengthBound.Check(-1)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue, "non-positive length reports ErrInvalidValue")
}

// TestBound_Add verifies that Add rejects, rather than clamps, a sum
// leaving the interval.
func TestBound_Add(t *testing.T) {
	sum, err := phone.HeightBound.Add(5.5, 0.5)
	assert.NoError(t, err)
	assert.Equal(t, 6.0, sum, "landing exactly on the bound is allowed")

	_, err = phone.HeightBound.Add(6.0, 0.5)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue, "exceeding the bound must reject, not clamp")

	_, err = phone.BacknessBound.Add(0.25, -0.5)
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue, "dropping below the bound must reject")
}
