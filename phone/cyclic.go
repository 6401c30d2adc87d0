package phone

// Cycle advances cur by step positions around an enumeration of size
// values, using true modulo: the result is always in [0, size), for any
// signed step. Wraparound is total - there is no error condition.
//
// Every categorical feature in this library steps through its value set
// with Cycle: Nasalization (3), Phonation (10), consonant manner (10),
// place (25), VOT (7) and mechanism (4).
//
// Complexity: O(1)
func Cycle[E ~int](cur E, step, size int) E {
	m := (int(cur) + step) % size
	if m < 0 {
		m += size
	}

	return E(m)
}
