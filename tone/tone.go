package tone

import (
	"fmt"

	"github.com/lingora/phonetics"
)

const (
	// Positions is the fixed number of pitch slots in a tone pattern.
	Positions = 3

	// MinPitch is the lowest theoretical pitch level.
	MinPitch = -2

	// MaxPitch is the highest theoretical pitch level.
	MaxPitch = 2

	// Patterns is the number of distinct tone patterns the odometer
	// enumerates: 5^3.
	Patterns = 125
)

// Tone is a chronological pattern of pitch across one syllable.
// The zero value is the level tone {0 0 0} and is ready to use.
type Tone struct {
	pitches [Positions]int
}

// New constructs a tone from its three pitches in chronological order.
//
// Errors:
//   - ErrImpossibleArticulation - a pitch outside [-2, 2].
func New(first, second, third int) (Tone, error) {
	var t Tone
	if err := t.Assign([]int{first, second, third}); err != nil {
		return Tone{}, err
	}

	return t, nil
}

// FromSlice constructs a tone from a slice of exactly three pitches.
//
// Errors:
//   - ErrInvalidValue - the slice does not hold exactly 3 pitches.
//   - ErrImpossibleArticulation - a pitch outside [-2, 2].
func FromSlice(pitches []int) (Tone, error) {
	var t Tone
	if err := t.Assign(pitches); err != nil {
		return Tone{}, err
	}

	return t, nil
}

// checkPitch rejects pitches outside the theoretical range.
func checkPitch(p int) error {
	if p < MinPitch || p > MaxPitch {
		return fmt.Errorf("%w: pitch %d outside [%d, %d]",
			phonetics.ErrImpossibleArticulation, p, MinPitch, MaxPitch)
	}

	return nil
}

// resolve maps a possibly negative position onto [0, Positions).
func resolve(pos int) (int, error) {
	p := pos
	if p < 0 {
		p += Positions
	}
	if p < 0 || p >= Positions {
		return 0, fmt.Errorf("%w: position %d of %d", phonetics.ErrIndexOutOfRange, pos, Positions)
	}

	return p, nil
}

// At returns the pitch at the given position. Negative positions count
// from the end: -1 is the final pitch.
func (t Tone) At(pos int) (int, error) {
	p, err := resolve(pos)
	if err != nil {
		return 0, err
	}

	return t.pitches[p], nil
}

// Set writes one pitch. The position is bounds-checked like At and the
// pitch like every other write; on failure the tone is unchanged.
func (t *Tone) Set(pos, pitch int) error {
	p, err := resolve(pos)
	if err != nil {
		return err
	}
	if err := checkPitch(pitch); err != nil {
		return err
	}
	t.pitches[p] = pitch

	return nil
}

// Assign replaces the whole pattern from a slice of exactly three
// pitches. All-or-nothing: on any failure the tone is unchanged.
func (t *Tone) Assign(pitches []int) error {
	if len(pitches) != Positions {
		return fmt.Errorf("%w: tone pattern needs exactly %d pitches, got %d",
			phonetics.ErrInvalidValue, Positions, len(pitches))
	}
	for _, p := range pitches {
		if err := checkPitch(p); err != nil {
			return err
		}
	}
	copy(t.pitches[:], pitches)

	return nil
}

// Incr advances the tone to the next pattern in odometer order: the
// rightmost pitch steps first, overflow carries left, and the maximum
// state {2 2 2} wraps to the minimum {-2 -2 -2}. Total - never fails.
func (t *Tone) Incr() {
	for i := Positions - 1; i >= 0; i-- {
		if t.pitches[i] < MaxPitch {
			t.pitches[i]++

			return
		}
		t.pitches[i] = MinPitch
	}
}

// Decr moves the tone to the previous pattern in odometer order; the
// exact inverse of Incr, with {-2 -2 -2} wrapping to {2 2 2}.
func (t *Tone) Decr() {
	for i := Positions - 1; i >= 0; i-- {
		if t.pitches[i] > MinPitch {
			t.pitches[i]--

			return
		}
		t.pitches[i] = MaxPitch
	}
}

// Pitches returns a copy of the three pitches in chronological order.
func (t Tone) Pitches() [Positions]int { return t.pitches }

// Each calls fn for every pitch in chronological order. A read-only
// alternative to Cursor when no positioning is needed.
func (t Tone) Each(fn func(pos, pitch int)) {
	for i, p := range t.pitches {
		fn(i, p)
	}
}

// Equal reports whether both patterns hold the same three pitches.
func (t Tone) Equal(o Tone) bool { return t.pitches == o.pitches }

// String renders the pattern as "{p1 p2 p3}".
func (t Tone) String() string {
	return fmt.Sprintf("{%d %d %d}", t.pitches[0], t.pitches[1], t.pitches[2])
}
