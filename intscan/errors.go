package intscan

import "errors"

// Sentinel errors returned by parsing and prompting operations.
var (
	// ErrNotInteger is returned (wrapped, with the offending token and its
	// position) when a token cannot be parsed as an integer.
	ErrNotInteger = errors.New("intscan: token is not an integer")

	// ErrNoInput is returned by Prompter methods when the input stream ends
	// before a line could be read.
	ErrNoInput = errors.New("intscan: no input")
)
