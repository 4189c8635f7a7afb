package cmd

import (
	"fmt"
	"os"

	"github.com/cottand/spaces/space/codec"
	"github.com/spf13/cobra"
)

var ConvertCmd = &cobra.Command{
	Use:          "convert FILE",
	Short:        "Rewrite a space definition in another format",
	RunE:         runConvert,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	convertTo      *string
	convertOutPath *string
)

func init() {
	convertTo = ConvertCmd.Flags().String("to", "", "output format: json, yaml or toml (defaults to the output file extension)")
	convertOutPath = ConvertCmd.Flags().StringP("out", "o", "", "output path (stdout when empty)")
}

func runConvert(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	s, err := loadSpace(args[0])
	if err != nil {
		return err
	}

	if *convertOutPath == "" {
		return codec.Encode(cmd.OutOrStdout(), format, s)
	}
	f, err := os.Create(*convertOutPath)
	if err != nil {
		return fmt.Errorf("could not create file: %w", err)
	}
	if err := codec.Encode(f, format, s); err != nil {
		_ = f.Close()
		return fmt.Errorf("could not write %s: %w", *convertOutPath, err)
	}
	return f.Close()
}

func outputFormat() (codec.Format, error) {
	switch {
	case *convertTo != "":
		return codec.ParseFormat(*convertTo)
	case *convertOutPath != "":
		return codec.FormatFromPath(*convertOutPath)
	default:
		return "", fmt.Errorf("either --to or an --out path with an extension is required")
	}
}
