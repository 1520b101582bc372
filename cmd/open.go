package cmd

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var openCmd = &cobra.Command{
	Use:               "open <id>",
	Short:             "Open an entry's URL in the default browser",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeEntryIDs,
	RunE:              runOpen,
}

func init() {
	rootCmd.AddCommand(openCmd)
}

func runOpen(_ *cobra.Command, args []string) error {
	ix, err := loadIndex()
	if err != nil {
		return err
	}
	e, err := ix.Show(args[0])
	if err != nil {
		return err
	}
	if e.URL == "" {
		return fmt.Errorf("entry %q has no URL to open", e.ID)
	}
	printInfo(fmt.Sprintf("opening %s", e.URL))
	if err := browser.OpenURL(e.URL); err != nil {
		return fmt.Errorf("cannot open browser: %w", err)
	}
	return nil
}
