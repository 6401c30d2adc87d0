package phonetics

import "errors"

// Sentinel error kinds shared by every subpackage.
//
// The taxonomy is deliberately small:
//
//	ErrIndexOutOfRange        - an index or array-literal length failed its bounds check.
//	ErrInvalidValue           - a single field value lies outside its static range.
//	ErrImpossibleArticulation - a cross-field combination no vocal tract can produce.
//
// ErrImpossibleArticulation is a specialized invalid-value condition:
// errors.Is(err, ErrInvalidValue) holds for every articulation error, so
// callers that only care about the broader kind can match on it directly.
var (
	// ErrIndexOutOfRange indicates a failed bounds check on an index or a
	// fixed-length literal. Carries no payload beyond position context.
	ErrIndexOutOfRange = errors.New("phonetics: index out of range")

	// ErrInvalidValue indicates a value of the right type outside its valid range.
	ErrInvalidValue = errors.New("phonetics: invalid value")

	// ErrImpossibleArticulation indicates a feature combination that cannot be
	// physically articulated. Unwraps to ErrInvalidValue.
	ErrImpossibleArticulation = &articulationError{}
)

// articulationError gives ErrImpossibleArticulation its own identity while
// keeping it a child of ErrInvalidValue through Unwrap.
type articulationError struct{}

func (*articulationError) Error() string { return "phonetics: impossible articulation" }

func (*articulationError) Unwrap() error { return ErrInvalidValue }
