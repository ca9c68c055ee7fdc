// Command twosum interactively reads a list of integers and a target, then
// prints the indices of two distinct elements that sum to the target.
package main

import (
	"os"
)

func main() {
	cmd := newRootCmd(os.Stdin, os.Stdout)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
