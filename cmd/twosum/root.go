package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/go-pairsum/intscan"
	"github.com/hasbyte1/go-pairsum/pairsum"
)

// newRootCmd builds the twosum command over injectable streams so tests can
// drive the interactive flow.
func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "twosum",
		Short: "Find two numbers in a list that add up to a target",
		Long: `twosum prompts for a whitespace-separated list of integers and a target,
then prints the indices of the first pair of distinct positions whose values
sum to the target, or [] when no such pair exists.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(in, out)
		},
	}
	cmd.SetOut(out)
	return cmd
}

func run(in io.Reader, out io.Writer) error {
	p := intscan.NewPrompter(in, out)

	nums, err := p.Ints("Enter a list of numbers: ")
	if err != nil {
		return err
	}
	target, err := p.Int("Enter a target number: ")
	if err != nil {
		return err
	}

	result := pairsum.Indices(nums, target)
	fmt.Fprintln(out, result)
	fmt.Fprintln(out, "Indices: ", result)
	return nil
}
