package phone

import (
	"fmt"
	"math"

	"github.com/lingora/phonetics"
)

// Bound is a scalar interval [Lo, Hi], optionally open at Lo.
// Unlike Cycle, exceeding a Bound is an error, never a wraparound, and a
// failed Add leaves the caller's value untouched (nothing is returned to
// commit).
type Bound struct {
	// Lo is the lower endpoint. Excluded from the interval when OpenLo is set.
	Lo float64

	// Hi is the upper endpoint, always included. May be +Inf.
	Hi float64

	// OpenLo excludes Lo itself, giving (Lo, Hi].
	OpenLo bool
}

// Predefined bounds for the continuous features of this library.
var (
	// HeightBound constrains vowel height: [0, 6], 0 = open, 6 = close.
	HeightBound = Bound{Lo: 0, Hi: 6}

	// BacknessBound constrains vowel backness: [0, 4], 0 = front, 4 = back.
	BacknessBound = Bound{Lo: 0, Hi: 4}

	// LengthBound constrains relative phone length: (0, +Inf).
	LengthBound = Bound{Lo: 0, Hi: math.Inf(1), OpenLo: true}
)

// Contains reports whether v lies inside the interval.
func (b Bound) Contains(v float64) bool {
	if b.OpenLo {
		return v > b.Lo && v <= b.Hi
	}

	return v >= b.Lo && v <= b.Hi
}

// Check returns nil when v lies inside the interval and an
// ErrInvalidValue-wrapped error naming the interval otherwise.
func (b Bound) Check(v float64) error {
	if b.Contains(v) {
		return nil
	}

	return fmt.Errorf("%w: %g outside %s", phonetics.ErrInvalidValue, v, b)
}

// Add returns v+delta when the sum stays inside the interval; otherwise it
// returns an ErrInvalidValue-wrapped error and the zero value. Callers
// commit the returned sum only on nil error, so a rejected Add never
// produces a partial update.
func (b Bound) Add(v, delta float64) (float64, error) {
	sum := v + delta
	if err := b.Check(sum); err != nil {
		return 0, err
	}

	return sum, nil
}

// String renders the interval in mathematical notation, e.g. "(0, +Inf]".
func (b Bound) String() string {
	open := "["
	if b.OpenLo {
		open = "("
	}

	return fmt.Sprintf("%s%g, %g]", open, b.Lo, b.Hi)
}
