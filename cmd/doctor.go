package cmd

import (
	"fmt"
	"os"

	"github.com/curio-cli/curio/internal/catalog"
	"github.com/curio-cli/curio/internal/dataset"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the embedded catalog for integrity problems",
	Long: `Validate the catalog shipped inside this binary: the dataset must parse,
every entry id must be unique, every category and tag reference must resolve
to a declared classifier, and declared classifiers should actually be used.
All problems are reported in one run.`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(_ *cobra.Command, _ []string) error {
	allOK := true

	printSection("curio doctor")
	fmt.Println()

	// ── Check 1: dataset parses ───────────────────────────────────────────
	fmt.Println("[ dataset ]")
	snap, err := dataset.Load()
	if err != nil {
		printErr("", fmt.Sprintf("embedded catalog does not parse: %v", err))
		fmt.Println()
		fmt.Println("===================")
		fmt.Fprintln(os.Stderr, "✗  The embedded catalog is unusable.")
		return fmt.Errorf("doctor found issues")
	}
	printOK("", fmt.Sprintf("embedded catalog parses: %d entries, %d categories, %d tags",
		len(snap.Entries), len(snap.Categories), len(snap.Tags)))
	fmt.Println()

	// ── Check 2: referential integrity ────────────────────────────────────
	// Runs before index construction: the validator reports every problem,
	// while BuildIndex stops at the first duplicate id.
	fmt.Println("[ integrity ]")
	report := catalog.Validate(snap)
	if report.Healthy() {
		printOK("", "no integrity problems found")
	} else {
		for _, f := range report.Findings {
			line := fmt.Sprintf("%s: %s", f.Kind, f.Detail)
			switch f.Severity {
			case catalog.SeverityError:
				printErr(f.Subject, line)
				allOK = false
			default:
				printWarn(f.Subject, line)
			}
		}
		fmt.Printf("\n  %d error(s), %d warning(s)\n", report.Errors(), report.Warnings())
	}
	fmt.Println()

	// ── Check 3: index builds ─────────────────────────────────────────────
	fmt.Println("[ index ]")
	if ix, err := catalog.BuildIndex(snap); err != nil {
		printErr("", fmt.Sprintf("index construction failed: %v", err))
		allOK = false
	} else {
		printOK("", fmt.Sprintf("index built: %d unique ids", ix.Len()))
	}
	fmt.Println()

	// ── Summary ───────────────────────────────────────────────────────────
	fmt.Println("===================")
	if allOK {
		fmt.Println("✓  All checks passed. The catalog is healthy.")
		return nil
	}
	fmt.Fprintln(os.Stderr, "✗  One or more checks failed. See details above.")
	return fmt.Errorf("doctor found issues")
}
