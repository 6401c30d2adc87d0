package tone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lingora/phonetics"
	"github.com/lingora/phonetics/tone"
)

// TestZeroValue_IsLevelTone verifies the ready-to-use zero value.
func TestZeroValue_IsLevelTone(t *testing.T) {
	var tn tone.Tone
	assert.Equal(t, [3]int{0, 0, 0}, tn.Pitches())
	assert.Equal(t, "{0 0 0}", tn.String())
}

// TestNew_BoundsChecked verifies every construction path rejects
// out-of-range pitches.
func TestNew_BoundsChecked(t *testing.T) {
	_, err := tone.New(0, 3, 0)
	assert.ErrorIs(t, err, phonetics.ErrImpossibleArticulation, "pitch above 2")

	_, err = tone.New(-3, 0, 0)
	assert.ErrorIs(t, err, phonetics.ErrImpossibleArticulation, "pitch below -2")

	tn, err := tone.New(-2, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, [3]int{-2, 0, 2}, tn.Pitches())
}

// TestFromSlice covers the length-mismatch kind, distinct from the
// pitch-range kind.
func TestFromSlice(t *testing.T) {
	_, err := tone.FromSlice([]int{1, 2})
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue)
	assert.NotErrorIs(t, err, phonetics.ErrImpossibleArticulation,
		"length mismatch is a plain invalid value, not an articulation error")

	_, err = tone.FromSlice([]int{0, 0, 0, 0})
	assert.ErrorIs(t, err, phonetics.ErrInvalidValue)

	tn, err := tone.FromSlice([]int{1, 0, -1})
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 0, -1}, tn.Pitches())
}

// TestAssign_AllOrNothing verifies a failing assignment leaves the
// previous pattern intact.
func TestAssign_AllOrNothing(t *testing.T) {
	tn, err := tone.New(1, 1, 1)
	require.NoError(t, err)

	assert.Error(t, tn.Assign([]int{2, 2, 5}))
	assert.Equal(t, [3]int{1, 1, 1}, tn.Pitches(), "failed assign must not partially apply")

	assert.NoError(t, tn.Assign([]int{-1, 0, 1}))
	assert.Equal(t, [3]int{-1, 0, 1}, tn.Pitches())
}

// TestAtSet_NegativeIndices verifies unified indexing from both ends.
func TestAtSet_NegativeIndices(t *testing.T) {
	tn, err := tone.New(-2, 0, 2)
	require.NoError(t, err)

	last, err := tn.At(-1)
	require.NoError(t, err)
	straight, err := tn.At(2)
	require.NoError(t, err)
	assert.Equal(t, straight, last, "index -1 equals index n-1")

	require.NoError(t, tn.Set(-3, 1))
	first, err := tn.At(0)
	require.NoError(t, err)
	assert.Equal(t, 1, first, "index -3 writes the first slot")

	_, err = tn.At(3)
	assert.ErrorIs(t, err, phonetics.ErrIndexOutOfRange)
	_, err = tn.At(-4)
	assert.ErrorIs(t, err, phonetics.ErrIndexOutOfRange)

	assert.ErrorIs(t, tn.Set(0, 7), phonetics.ErrImpossibleArticulation)
}

// TestIncr_WrapsAtTop replays the odometer wrap: {2 2 2} steps to
// {-2 -2 -2}.
func TestIncr_WrapsAtTop(t *testing.T) {
	tn, err := tone.New(2, 2, 2)
	require.NoError(t, err)

	tn.Incr()
	assert.Equal(t, [3]int{-2, -2, -2}, tn.Pitches())

	tn.Decr()
	assert.Equal(t, [3]int{2, 2, 2}, tn.Pitches(), "Decr is the exact inverse")
}

// TestIncr_CarryPropagation verifies rightmost-digit-first stepping.
func TestIncr_CarryPropagation(t *testing.T) {
	tn, err := tone.New(0, 2, 2)
	require.NoError(t, err)

	tn.Incr()
	assert.Equal(t, [3]int{1, -2, -2}, tn.Pitches(), "overflow carries left")

	tn.Decr()
	assert.Equal(t, [3]int{0, 2, 2}, tn.Pitches())
}

// TestOdometer_FullCycle verifies 125 increments visit every pattern
// exactly once and return to the start, with all digits in range.
func TestOdometer_FullCycle(t *testing.T) {
	start, err := tone.New(-1, 2, 0)
	require.NoError(t, err)

	seen := make(map[string]bool, tone.Patterns)
	tn := start
	for i := 0; i < tone.Patterns; i++ {
		key := tn.String()
		assert.False(t, seen[key], "pattern %s visited twice", key)
		seen[key] = true

		for _, p := range tn.Pitches() {
			assert.GreaterOrEqual(t, p, tone.MinPitch)
			assert.LessOrEqual(t, p, tone.MaxPitch)
		}
		tn.Incr()
	}

	assert.True(t, tn.Equal(start), "a full cycle is the identity")
	assert.Len(t, seen, tone.Patterns)
}

// TestEach_ChronologicalOrder verifies the read-only iteration view.
func TestEach_ChronologicalOrder(t *testing.T) {
	tn, err := tone.New(-1, 0, 1)
	require.NoError(t, err)

	var got []int
	tn.Each(func(_, pitch int) { got = append(got, pitch) })
	assert.Equal(t, []int{-1, 0, 1}, got)
}

// TestCursor covers movement, boundary errors, offset reads and
// write-through.
func TestCursor(t *testing.T) {
	tn, err := tone.New(-2, 0, 2)
	require.NoError(t, err)

	c := tn.View()
	assert.Equal(t, 0, c.Position())
	assert.Equal(t, 2, c.InversePosition())
	assert.Equal(t, -2, c.Value())

	assert.ErrorIs(t, c.Prev(), phonetics.ErrIndexOutOfRange, "cannot move before the first pitch")

	require.NoError(t, c.Next())
	require.NoError(t, c.Next())
	assert.Equal(t, 2, c.Value())
	assert.Equal(t, 0, c.InversePosition())
	assert.ErrorIs(t, c.Next(), phonetics.ErrIndexOutOfRange, "cannot move past the final pitch")

	off, err := c.At(-2)
	require.NoError(t, err)
	assert.Equal(t, -2, off, "offset reads do not move the cursor")
	_, err = c.At(1)
	assert.ErrorIs(t, err, phonetics.ErrIndexOutOfRange)

	require.NoError(t, c.Seek(-2))
	assert.Equal(t, 1, c.Position(), "negative seek counts from the end")
	require.NoError(t, c.Set(1))
	mid, err := tn.At(1)
	require.NoError(t, err)
	assert.Equal(t, 1, mid, "Set writes through to the tone")

	assert.ErrorIs(t, c.Set(9), phonetics.ErrImpossibleArticulation)
}
