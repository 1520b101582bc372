package cmd

import (
	"fmt"
	"os"

	"github.com/curio-cli/curio/internal/catalog"
	"github.com/curio-cli/curio/internal/dataset"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:          "curio",
	Short:        "Browse a curated catalog of computing curiosities",
	SilenceUsage: true, // don't print usage on operational errors
	Long: `curio ships with a small, hand-curated catalog of classic papers, talks,
essays, folklore and tools. List it, search it, or let it surprise you.`,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadIndex parses the embedded dataset and builds the catalog index.
// Every data command goes through here, so parse and build failures abort
// uniformly before any query runs.
func loadIndex() (*catalog.Index, error) {
	snap, err := dataset.Load()
	if err != nil {
		return nil, fmt.Errorf("cannot load embedded catalog: %w", err)
	}
	ix, err := catalog.BuildIndex(snap)
	if err != nil {
		return nil, fmt.Errorf("cannot index catalog: %w\nRun 'curio doctor' for details.", err)
	}
	return ix, nil
}
