// Package intscan parses line-oriented integer input of the kind a user
// types at an interactive prompt: a whitespace-separated list of integers,
// or a single integer.
//
//	nums, err := intscan.Ints("2 7 11 15") // → [2 7 11 15]
//	n, err := intscan.Int(" 9 ")           // → 9
//
// A blank line is a valid empty sequence for [Ints]; the first token that
// is not an integer aborts parsing with an error wrapping [ErrNotInteger].
//
// [Prompter] drives the interactive flow over injectable streams, so the
// same code path serves a terminal and a test:
//
//	p := intscan.NewPrompter(os.Stdin, os.Stdout)
//	nums, err := p.Ints("Enter a list of numbers: ")
//	target, err := p.Int("Enter a target number: ")
package intscan
