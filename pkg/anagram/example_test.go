package anagram_test

import (
	"fmt"

	"github.com/matzehuels/anagram/pkg/anagram"
)

func ExampleGenerate() {
	words, err := anagram.Generate("abc")
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, w := range words {
		fmt.Println(w)
	}
	// Output:
	// abc
	// bac
	// cab
	// acb
	// bca
	// cba
}

func ExampleValidate() {
	fmt.Println(anagram.Validate("abc") == nil)
	fmt.Println(anagram.Validate("a1b"))
	// Output:
	// true
	// INVALID_INPUT: invalid input: use letters only and do not leave it empty
}
