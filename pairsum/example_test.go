package pairsum_test

import (
	"fmt"

	"github.com/hasbyte1/go-pairsum/pairsum"
)

func ExampleFind() {
	m, ok := pairsum.Find([]int{2, 7, 11, 15}, 9)
	fmt.Println(m.I, m.J, ok)
	// Output: 0 1 true
}

func ExampleFind_noMatch() {
	_, ok := pairsum.Find([]int{1, 2, 3}, 100)
	fmt.Println(ok)
	// Output: false
}

func ExampleIndices() {
	fmt.Println(pairsum.Indices([]int{3, 2, 4}, 6))
	fmt.Println(pairsum.Indices([]int{3, 3}, 6))
	fmt.Println(pairsum.Indices([]int{1, 2, 3}, 100))
	// Output:
	// [1 2]
	// [0 1]
	// []
}
