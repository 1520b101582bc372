// Package catalog holds the in-memory data model, index and query engine
// for the curated dataset shipped with curio.
package catalog

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is one catalog item.
type Entry struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Summary    string   `yaml:"summary,omitempty"`
	Categories []string `yaml:"categories,omitempty"`
	Tags       []string `yaml:"tags,omitempty"`
	URL        string   `yaml:"url,omitempty"`
}

// Category is a declared classifier. The set of entries carrying it is
// derived by the Index, never stored here.
type Category struct {
	Name string `yaml:"name"`
	Note string `yaml:"note,omitempty"`
}

// Tag is a declared free-form classifier.
type Tag struct {
	Name string `yaml:"name"`
	Note string `yaml:"note,omitempty"`
}

// Snapshot is the full dataset for one process run. It is never mutated
// after ParseSnapshot returns it.
type Snapshot struct {
	Categories []Category `yaml:"categories,omitempty"`
	Tags       []Tag      `yaml:"tags,omitempty"`
	Entries    []Entry    `yaml:"entries"`
}

// ParseSnapshot decodes a YAML dataset into a Snapshot. Unknown fields,
// mistyped values and missing required fields fail with ErrMalformedDataset.
// Referential integrity (entries pointing at undeclared categories or tags)
// and duplicate ids are deliberately NOT checked here: Validate reports the
// former and the latter, BuildIndex rejects the latter.
func ParseSnapshot(data []byte) (*Snapshot, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var snap Snapshot
	if err := dec.Decode(&snap); err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDataset, err)
	}

	for i, c := range snap.Categories {
		if strings.TrimSpace(c.Name) == "" {
			return nil, fmt.Errorf("%w: categories[%d] has no name", ErrMalformedDataset, i)
		}
	}
	for i, t := range snap.Tags {
		if strings.TrimSpace(t.Name) == "" {
			return nil, fmt.Errorf("%w: tags[%d] has no name", ErrMalformedDataset, i)
		}
	}
	for i, e := range snap.Entries {
		if strings.TrimSpace(e.ID) == "" {
			return nil, fmt.Errorf("%w: entries[%d] has no id", ErrMalformedDataset, i)
		}
		if strings.TrimSpace(e.Title) == "" {
			return nil, fmt.Errorf("%w: entry %q has no title", ErrMalformedDataset, e.ID)
		}
	}
	return &snap, nil
}
