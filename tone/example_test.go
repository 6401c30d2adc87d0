package tone_test

import (
	"fmt"

	"github.com/lingora/phonetics/tone"
)

// ExampleTone_Incr demonstrates the odometer wrap at the top of the
// enumeration.
func ExampleTone_Incr() {
	t, _ := tone.New(2, 2, 2)
	t.Incr()
	fmt.Println(t)
	// Output: {-2 -2 -2}
}

// ExampleTone_Set demonstrates negative positions counting from the
// end of the pattern.
func ExampleTone_Set() {
	var t tone.Tone
	_ = t.Set(-1, 2)
	_ = t.Set(0, -2)
	fmt.Println(t)
	// Output: {-2 0 2}
}
