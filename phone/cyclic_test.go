package phone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lingora/phonetics/phone"
)

// TestCycle_WrapsForward verifies true-modulo wrap past the top.
func TestCycle_WrapsForward(t *testing.T) {
	assert.Equal(t, phone.Voiceless, phone.Strident.Shift(1), "top of the enumeration wraps to the bottom")
	assert.Equal(t, phone.Breathy, phone.Harsh.Shift(3), "multi-step wrap lands true modulo")
}

// TestCycle_WrapsBackward verifies that negative steps wrap below zero
// instead of mirroring the C-style remainder.
func TestCycle_WrapsBackward(t *testing.T) {
	assert.Equal(t, phone.Strident, phone.Voiceless.Shift(-1), "bottom wraps to the top")
	assert.Equal(t, phone.Faucalized, phone.Slack.Shift(-5), "multi-step negative wrap")
}

// TestCycle_LargeSteps checks steps far beyond the enumeration size.
func TestCycle_LargeSteps(t *testing.T) {
	for k := -30; k <= 30; k++ {
		got := phone.Modal.Shift(k)
		assert.GreaterOrEqual(t, int(got), 0, "shift %d must stay in range", k)
		assert.Less(t, int(got), phone.PhonationCount, "shift %d must stay in range", k)
	}
	assert.Equal(t, phone.Modal, phone.Modal.Shift(phone.PhonationCount*3), "whole turns are the identity")
}

// TestCycle_RoundTrip verifies Shift(k) then Shift(-k) is the identity
// for every ordinal and a spread of steps.
func TestCycle_RoundTrip(t *testing.T) {
	for p := phone.Voiceless; p <= phone.Strident; p++ {
		for _, k := range []int{0, 1, 4, 9, 10, 23, -7} {
			assert.Equal(t, p, p.Shift(k).Shift(-k), "round trip of %v by %d", p, k)
		}
	}
}

// TestNasalization_Shift covers the three-state cycle.
func TestNasalization_Shift(t *testing.T) {
	assert.Equal(t, phone.Nasal, phone.Oral.Shift(1))
	assert.Equal(t, phone.Oral, phone.StronglyNasal.Shift(1), "wraps past strongly-nasal")
	assert.Equal(t, phone.StronglyNasal, phone.Oral.Shift(-1), "wraps below oral")
}
