package cmd

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"

	"github.com/cottand/spaces/space/codec"
	"github.com/spf13/cobra"
)

var SampleCmd = &cobra.Command{
	Use:          "sample FILE",
	Short:        "Draw values from a space, one JSON value per line",
	RunE:         runSample,
	Args:         cobra.ExactArgs(1),
	SilenceUsage: true,
}

var (
	sampleCount *int
	sampleSeed  *uint64
)

func init() {
	sampleCount = SampleCmd.Flags().IntP("count", "n", 1, "number of values to draw")
	sampleSeed = SampleCmd.Flags().Uint64("seed", 0, "seed for reproducible draws (random when unset)")
}

func runSample(cmd *cobra.Command, args []string) error {
	if *sampleCount < 0 {
		return fmt.Errorf("count must not be negative, got %d", *sampleCount)
	}
	s, err := loadSpace(args[0])
	if err != nil {
		return err
	}

	seed := *sampleSeed
	if !cmd.Flags().Changed("seed") {
		seed = rand.Uint64()
	}
	cmdLogger.Debug("sampling", "count", *sampleCount, "seed", seed)
	rng := rand.New(rand.NewPCG(seed, seed))

	enc := json.NewEncoder(cmd.OutOrStdout())
	for range *sampleCount {
		v, err := s.Sample(rng)
		if err != nil {
			return fmt.Errorf("could not sample: %w", withCode(err))
		}
		if err := enc.Encode(codec.EncodeValue(v)); err != nil {
			return fmt.Errorf("could not write value %v: %w", v, err)
		}
	}
	return nil
}
