package cmd

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/curio-cli/curio/internal/catalog"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// All commands use these functions to ensure consistent icon usage and
// indentation throughout curio's CLI output.
//
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   -  not found / missing
//   ~  neutral info

// printSection prints a top-level section header, e.g. "=== curio doctor ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(name, msg string) {
	if name == "" {
		fmt.Printf("  ✓  %s\n", msg)
	} else {
		fmt.Printf("  ✓  [%s] %s\n", name, msg)
	}
}

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	if name == "" {
		fmt.Fprintf(os.Stderr, "  ✗  %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "  ✗  [%s] %s\n", name, msg)
	}
}

// printWarn prints a warning line.
func printWarn(name, msg string) {
	if name == "" {
		fmt.Printf("  ⚠  %s\n", msg)
	} else {
		fmt.Printf("  ⚠  [%s] %s\n", name, msg)
	}
}

// printMiss prints a not-found / empty-result line.
func printMiss(msg string) {
	fmt.Printf("  -  %s\n", msg)
}

// printInfo prints a neutral informational line.
func printInfo(msg string) {
	fmt.Printf("  ~  %s\n", msg)
}

// printEntryTable renders entries as an aligned id/title/classifiers table.
func printEntryTable(entries []*catalog.Entry) {
	if len(entries) == 0 {
		printMiss("no matching entries")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tCATEGORIES\tTAGS")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			e.ID, e.Title,
			strings.Join(e.Categories, ","),
			strings.Join(e.Tags, ","))
	}
	_ = w.Flush()
	fmt.Printf("\n  %d entr%s\n", len(entries), plural(len(entries), "y", "ies"))
}

// printEntry renders one entry in full.
func printEntry(e *catalog.Entry) {
	fmt.Printf("ID:         %s\n", e.ID)
	fmt.Printf("Title:      %s\n", e.Title)
	if e.Summary != "" {
		fmt.Printf("Summary:    %s\n", e.Summary)
	}
	if len(e.Categories) > 0 {
		fmt.Printf("Categories: %s\n", strings.Join(e.Categories, ", "))
	}
	if len(e.Tags) > 0 {
		fmt.Printf("Tags:       %s\n", strings.Join(e.Tags, ", "))
	}
	if e.URL != "" {
		fmt.Printf("URL:        %s\n", e.URL)
	}
}

// printNameCounts renders classifier names with their entry counts.
func printNameCounts(kind string, counts []catalog.NameCount) {
	if len(counts) == 0 {
		printMiss("no " + kind + " declared")
		return
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\tENTRIES\n", strings.ToUpper(kind))
	for _, c := range counts {
		fmt.Fprintf(w, "%s\t%d\n", c.Name, c.Count)
	}
	_ = w.Flush()
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
