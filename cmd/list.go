package cmd

import (
	"github.com/curio-cli/curio/internal/catalog"
	"github.com/spf13/cobra"
)

var (
	flagListCategory string
	flagListTag      string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List catalog entries in declaration order",
	Long: `List the catalog, optionally narrowed by category and/or tag.
When both filters are given an entry must match both to be listed.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVar(&flagListCategory, "category", "", "Only entries in this category")
	listCmd.Flags().StringVar(&flagListTag, "tag", "", "Only entries carrying this tag")
	_ = listCmd.RegisterFlagCompletionFunc("category", completeCategories)
	_ = listCmd.RegisterFlagCompletionFunc("tag", completeTags)
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}
	printEntryTable(ix.List(catalog.Filter{Category: flagListCategory, Tag: flagListTag}))
	return nil
}
