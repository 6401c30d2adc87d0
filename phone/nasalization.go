package phone

import (
	"fmt"

	"github.com/lingora/phonetics"
)

// Nasalization is the degree of airflow through the nasal cavity during
// articulation. It is shared so that both vowels and voiced consonants
// can carry it.
type Nasalization int

const (
	// Oral - the velum is raised, no nasal airflow.
	Oral Nasalization = iota

	// Nasal - part of the airflow passes through the nasal cavity.
	Nasal

	// StronglyNasal - pronounced nasal airflow.
	StronglyNasal
)

// NasalizationCount is the cardinality of the Nasalization enumeration.
const NasalizationCount = 3

var nasalizationNames = [NasalizationCount]string{
	"oral",
	"nasal",
	"strongly-nasal",
}

// Shift steps k positions through the Nasalization enumeration, wrapping
// at both ends.
func (n Nasalization) Shift(k int) Nasalization { return Cycle(n, k, NasalizationCount) }

// String returns the lowercase name of the nasalization state.
func (n Nasalization) String() string {
	if n < 0 || int(n) >= NasalizationCount {
		return fmt.Sprintf("Nasalization(%d)", int(n))
	}

	return nasalizationNames[n]
}

// ParseNasalization resolves a nasalization name produced by String.
func ParseNasalization(name string) (Nasalization, error) {
	for i, n := range nasalizationNames {
		if n == name {
			return Nasalization(i), nil
		}
	}

	return 0, fmt.Errorf("%w: unknown nasalization %q", phonetics.ErrInvalidValue, name)
}
