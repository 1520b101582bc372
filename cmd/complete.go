package cmd

import (
	"github.com/curio-cli/curio/internal/catalog"
	"github.com/spf13/cobra"
)

// Shell completion for flag values and entry-id arguments. The engine's
// Categories/Tags/List enumerations feed the suggestions; cobra's built-in
// `completion` command does the shell-specific work.

func completeCategories(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return completeNames(func(ix *catalog.Index) []catalog.NameCount { return ix.Categories() })
}

func completeTags(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
	return completeNames(func(ix *catalog.Index) []catalog.NameCount { return ix.Tags() })
}

func completeNames(pick func(*catalog.Index) []catalog.NameCount) ([]string, cobra.ShellCompDirective) {
	ix, err := loadIndex()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	counts := pick(ix)
	names := make([]string, 0, len(counts))
	for _, c := range counts {
		names = append(names, c.Name)
	}
	return names, cobra.ShellCompDirectiveNoFileComp
}

func completeEntryIDs(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	ix, err := loadIndex()
	if err != nil {
		return nil, cobra.ShellCompDirectiveError
	}
	entries := ix.List(catalog.Filter{})
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID+"\t"+e.Title)
	}
	return ids, cobra.ShellCompDirectiveNoFileComp
}
