package vowel_test

import (
	"fmt"

	"github.com/lingora/phonetics/phone"
	"github.com/lingora/phonetics/vowel"
)

// ExampleDefault shows the neutral vowel every construction starts from.
func ExampleDefault() {
	fmt.Println(vowel.Default().Description())
	// Output: mid central unrounded vowel
}

// ExampleNew builds a nasalized long open front vowel.
func ExampleNew() {
	v, err := vowel.New(vowel.Open.Pos(), vowel.Front.Pos(), vowel.Unrounded,
		vowel.WithNasalization(phone.Nasal),
		vowel.WithLength(2.0),
	)
	if err != nil {
		fmt.Println("construct:", err)
		return
	}
	fmt.Println(v.Description())
	// Output: long nasal open front unrounded vowel
}
