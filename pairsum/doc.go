// Package pairsum finds two distinct positions in an integer sequence whose
// values add up to a target — the classic two-sum lookup.
//
// # Algorithm
//
// [Find] performs a single forward scan over the input. At each index it
// checks a transient value→index lookup table for the complement
// (target − current value); on a hit it returns the pair immediately, so the
// first index is always strictly smaller than the second. Otherwise the
// current value is recorded (overwriting any earlier index for the same
// value) and the scan continues. Expected O(n) time, O(n) space, and no
// state survives the call.
//
//	m, ok := pairsum.Find([]int{2, 7, 11, 15}, 9)
//	// → Match{I: 0, J: 1}, true
//
// # Result shapes
//
// [Find] returns (Match, bool) in the style of a map lookup. [Indices]
// wraps it for callers that want the conventional slice form:
//
//	pairsum.Indices([]int{2, 7, 11, 15}, 9) // → [0 1]
//	pairsum.Indices([]int{1, 2, 3}, 100)    // → []
//
// # Semantics worth knowing
//
// An element never pairs with itself: the complement check happens before
// the current value is inserted, so a single occurrence of target/2 does
// not match. When a value repeats, the table keeps only its most recent
// index, so with three or more duplicates the returned pair is the one the
// forward scan discovers, not necessarily the lexicographically smallest.
package pairsum
