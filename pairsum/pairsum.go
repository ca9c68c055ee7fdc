package pairsum

import "golang.org/x/exp/constraints"

// Match holds the positions of two distinct elements that sum to a target.
// I is always strictly less than J.
type Match struct {
	I int
	J int
}

// Find scans nums once, front to back, and returns the first pair of
// distinct indices whose values add up to target. The second return value
// reports whether a pair was found.
//
// At index i the complement (target − nums[i]) is looked up among the
// values seen so far; the lookup happens before nums[i] itself is recorded,
// so an element cannot pair with its own index. Duplicate values overwrite
// their earlier entry in the lookup table, preserving the original forward
// scan order semantics.
func Find[T constraints.Integer](nums []T, target T) (Match, bool) {
	seen := make(map[T]int, len(nums))
	for i, num := range nums {
		if j, ok := seen[target-num]; ok {
			return Match{I: j, J: i}, true
		}
		seen[num] = i
	}
	return Match{}, false
}

// Indices is a convenience wrapper around [Find] that returns the result as
// a slice: [i, j] on a match, an empty slice when no two distinct elements
// sum to target.
func Indices[T constraints.Integer](nums []T, target T) []int {
	if m, ok := Find(nums, target); ok {
		return []int{m.I, m.J}
	}
	return []int{}
}
