package cmd

import "github.com/spf13/cobra"

var showCmd = &cobra.Command{
	Use:               "show <id>",
	Short:             "Show one catalog entry in full",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryIDs,
	RunE:              runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, args []string) error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}
	e, err := ix.Show(args[0])
	if err != nil {
		return err
	}
	printEntry(e)
	return nil
}
