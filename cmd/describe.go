package cmd

import (
	"fmt"

	"github.com/cottand/spaces/space"
	"github.com/spf13/cobra"
)

var DescribeCmd = &cobra.Command{
	Use:          "describe FILE",
	Short:        "Print the structure, cardinality and dimension of a space",
	RunE:         runDescribe,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

func runDescribe(cmd *cobra.Command, args []string) error {
	s, err := loadSpace(args[0])
	if err != nil {
		return err
	}

	nested := 0
	for range space.Walk(s) {
		nested++
	}
	_, enumerable := space.Enumerate(s)

	out := cmd.OutOrStdout()
	_, err = fmt.Fprintf(out, "space:       %v\ncardinality: %v\ndimension:   %v\nspaces:      %d\nenumerable:  %v\n",
		s, s.Cardinality(), s.Dimension(), nested, enumerable)
	return err
}
