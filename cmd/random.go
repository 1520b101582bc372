package cmd

import (
	"math/rand"
	"time"

	"github.com/curio-cli/curio/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	flagRandomCategory string
	flagRandomTag      string
	flagRandomSeed     int64
)

var randomCmd = &cobra.Command{
	Use:   "random",
	Short: "Pick one entry at random",
	Long: `Pick one entry uniformly at random, optionally narrowed by category
and/or tag. --seed makes the pick reproducible: the same seed over the same
filters always yields the same entry.`,
	Args: cobra.NoArgs,
	RunE: runRandom,
}

func init() {
	randomCmd.Flags().StringVar(&flagRandomCategory, "category", "", "Draw only from this category")
	randomCmd.Flags().StringVar(&flagRandomTag, "tag", "", "Draw only from entries carrying this tag")
	randomCmd.Flags().Int64Var(&flagRandomSeed, "seed", 0, "Seed the selection for a reproducible pick")
	_ = randomCmd.RegisterFlagCompletionFunc("category", completeCategories)
	_ = randomCmd.RegisterFlagCompletionFunc("tag", completeTags)
	rootCmd.AddCommand(randomCmd)
}

func runRandom(cmd *cobra.Command, _ []string) error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}

	seed := time.Now().UnixNano()
	if cmd.Flags().Changed("seed") {
		seed = flagRandomSeed
	}
	rng := rand.New(rand.NewSource(seed))

	e, err := ix.Random(catalog.Filter{Category: flagRandomCategory, Tag: flagRandomTag}, rng)
	if err != nil {
		return err
	}
	printEntry(e)
	return nil
}
