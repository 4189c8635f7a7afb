package main

import (
	"log/slog"
	"os"

	"github.com/cottand/spaces/cmd"
	"github.com/cottand/spaces/internal/log"
	"github.com/spf13/cobra"
)

func main() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaces [subcommand]",
	Short: "spaces describes, samples and checks the domains of variables",
	PersistentPreRun: func(*cobra.Command, []string) {
		log.SetLevel(slog.Level(*logLevel))
	},
	SilenceUsage: true,
}

var logLevel *int

func init() {
	logLevel = rootCmd.PersistentFlags().IntP("log-level", "l", int(slog.LevelWarn), "log level (-4 debug, 0 info, 4 warn, 8 error)")

	rootCmd.AddCommand(cmd.DescribeCmd)
	rootCmd.AddCommand(cmd.SampleCmd)
	rootCmd.AddCommand(cmd.ContainsCmd)
	rootCmd.AddCommand(cmd.ConvertCmd)
}
