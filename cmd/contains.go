package cmd

import (
	"fmt"
	"strings"

	"github.com/cottand/spaces/space/codec"
	"github.com/spf13/cobra"
)

var ContainsCmd = &cobra.Command{
	Use:   "contains FILE VALUE",
	Short: "Check whether a JSON value belongs to a space",
	Long: `Check whether a JSON value belongs to a space.

Labels are strings, integers and reals are numbers, binary values are booleans,
products are lists and union values are objects like {"tag": "a", "value": 1}.`,
	RunE:         runContains,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
}

var containsStrict *bool

func init() {
	containsStrict = ContainsCmd.Flags().Bool("strict", false, "fail when the value is not a member")
}

func runContains(cmd *cobra.Command, args []string) error {
	s, err := loadSpace(args[0])
	if err != nil {
		return err
	}
	raw, err := codec.DecodeRawValue(strings.NewReader(args[1]), codec.JSON)
	if err != nil {
		return fmt.Errorf("could not parse value: %w", err)
	}

	member := false
	if v, err := codec.DecodeValue(s, raw); err != nil {
		cmdLogger.Debug("value does not have the shape of the space", "error", err)
	} else {
		member = s.Contains(v)
	}

	if _, err := fmt.Fprintln(cmd.OutOrStdout(), member); err != nil {
		return err
	}
	if *containsStrict && !member {
		return fmt.Errorf("%s is not a member of %v", args[1], s)
	}
	return nil
}
