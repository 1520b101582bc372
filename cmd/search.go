package cmd

import (
	"strings"

	"github.com/curio-cli/curio/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	flagSearchTitleOnly   bool
	flagSearchExactCase   bool
	flagSearchKeepAccents bool
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search entries by substring over title and summary",
	Long: `Search matches the query as a plain substring against each entry's title
and summary, folding case and diacritics. Results keep catalog order; there
is no relevance ranking. An empty query lists the whole catalog.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().BoolVar(&flagSearchTitleOnly, "title-only", false, "Match against titles only")
	searchCmd.Flags().BoolVar(&flagSearchExactCase, "exact-case", false, "Match case-sensitively")
	searchCmd.Flags().BoolVar(&flagSearchKeepAccents, "keep-accents", false, "Do not strip diacritics before matching")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(_ *cobra.Command, args []string) error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}
	results := ix.Search(strings.Join(args, " "), catalog.SearchOptions{
		TitleOnly:   flagSearchTitleOnly,
		MatchCase:   flagSearchExactCase,
		KeepAccents: flagSearchKeepAccents,
	})
	printEntryTable(results)
	return nil
}
