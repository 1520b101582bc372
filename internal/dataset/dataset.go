// Package dataset embeds the curated catalog shipped with the binary.
package dataset

import (
	_ "embed"

	"github.com/curio-cli/curio/internal/catalog"
)

//go:embed catalog.yaml
var raw []byte

// Load parses the embedded catalog into a fresh snapshot. Each call returns
// an independent value; callers treat it as immutable once indexed.
func Load() (*catalog.Snapshot, error) {
	return catalog.ParseSnapshot(raw)
}
