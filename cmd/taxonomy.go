package cmd

import "github.com/spf13/cobra"

var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List all categories with their entry counts",
	Args:  cobra.NoArgs,
	RunE:  runCategories,
}

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags with their entry counts",
	Args:  cobra.NoArgs,
	RunE:  runTags,
}

func init() {
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(tagsCmd)
}

func runCategories(_ *cobra.Command, _ []string) error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}
	printNameCounts("category", ix.Categories())
	return nil
}

func runTags(_ *cobra.Command, _ []string) error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}
	printNameCounts("tag", ix.Tags())
	return nil
}
