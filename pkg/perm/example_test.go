package perm_test

import (
	"fmt"

	"github.com/matzehuels/anagram/pkg/perm"
)

func ExampleGenerate() {
	// Generate all permutations of 3 elements
	perms := perm.Generate([]int{0, 1, 2})
	fmt.Println("All permutations of [0,1,2]:")
	for _, p := range perms {
		fmt.Println(p)
	}
	// Output:
	// All permutations of [0,1,2]:
	// [0 1 2]
	// [1 0 2]
	// [2 0 1]
	// [0 2 1]
	// [1 2 0]
	// [2 1 0]
}

func ExampleGenerate_letters() {
	for _, p := range perm.Generate([]rune("abc")) {
		fmt.Println(string(p))
	}
	// Output:
	// abc
	// bac
	// cab
	// acb
	// bca
	// cba
}

func ExampleGenerateN() {
	// Generate only the first 5 permutations of 10 elements
	perms := perm.GenerateN(perm.Seq(10), 5)
	fmt.Println("Count:", len(perms))
	// Output:
	// Count: 5
}

func ExampleAll() {
	for p := range perm.All([]string{"x", "y"}) {
		fmt.Println(p)
	}
	// Output:
	// [x y]
	// [y x]
}

func ExampleFactorial() {
	fmt.Println("4! =", perm.Factorial(4))
	fmt.Println("5! =", perm.Factorial(5))
	// Output:
	// 4! = 24
	// 5! = 120
}
