package catalog

import (
	"fmt"
	"math/rand"
	"strings"
)

// Filter selects a subset of entries. The zero value matches everything;
// setting both fields means both must match (AND, not OR).
type Filter struct {
	Category string
	Tag      string
}

func (f Filter) String() string {
	var parts []string
	if f.Category != "" {
		parts = append(parts, "category="+f.Category)
	}
	if f.Tag != "" {
		parts = append(parts, "tag="+f.Tag)
	}
	if len(parts) == 0 {
		return "no filters"
	}
	return strings.Join(parts, " ")
}

// SearchOptions controls which fields Search matches and how text is folded.
// The defaults (zero value) match title+summary, case-insensitively, with
// diacritics stripped so "café" matches "cafe".
type SearchOptions struct {
	TitleOnly   bool
	MatchCase   bool
	KeepAccents bool
}

// NameCount pairs a classifier name with the number of entries carrying it.
type NameCount struct {
	Name  string
	Count int
}

// List returns the entries matching f, in dataset order. An empty result
// is a valid outcome, not an error.
func (ix *Index) List(f Filter) []*Entry {
	if f.Category == "" && f.Tag == "" {
		out := make([]*Entry, 0, len(ix.snap.Entries))
		for i := range ix.snap.Entries {
			out = append(out, &ix.snap.Entries[i])
		}
		return out
	}
	ids := ix.candidateIDs(f)
	out := make([]*Entry, 0, len(ids))
	for _, id := range ids {
		out = append(out, ix.byID[id])
	}
	return out
}

// candidateIDs returns the id slice List and Random draw from. Per-name id
// slices are already in dataset order, and the intersection walk preserves
// it.
func (ix *Index) candidateIDs(f Filter) []string {
	switch {
	case f.Category != "" && f.Tag != "":
		tagged := make(map[string]struct{}, len(ix.byTag[f.Tag]))
		for _, id := range ix.byTag[f.Tag] {
			tagged[id] = struct{}{}
		}
		var ids []string
		for _, id := range ix.byCategory[f.Category] {
			if _, ok := tagged[id]; ok {
				ids = append(ids, id)
			}
		}
		return ids
	case f.Category != "":
		return ix.byCategory[f.Category]
	default:
		return ix.byTag[f.Tag]
	}
}

// Search returns the entries whose selected text fields contain query as a
// substring, in dataset order (no relevance ranking). A blank or
// whitespace-only query matches every entry.
func (ix *Index) Search(query string, opts SearchOptions) []*Entry {
	all := ix.List(Filter{})
	if strings.TrimSpace(query) == "" {
		return all
	}

	needle := foldText(query, opts)
	out := make([]*Entry, 0, len(all))
	for _, e := range all {
		hay := e.Title
		if !opts.TitleOnly {
			hay = hay + "\n" + e.Summary
		}
		if strings.Contains(foldText(hay, opts), needle) {
			out = append(out, e)
		}
	}
	return out
}

// Show returns the entry with the given id, or ErrNotFound.
func (ix *Index) Show(id string) (*Entry, error) {
	e, ok := ix.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return e, nil
}

// Random picks one entry uniformly from the candidates List(f) would
// return, using rng as the only source of randomness. A deterministic rng
// therefore gives a deterministic pick. Fails with ErrNoCandidates when the
// filter matches nothing.
func (ix *Index) Random(f Filter, rng *rand.Rand) (*Entry, error) {
	candidates := ix.List(f)
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w (%s)", ErrNoCandidates, f)
	}
	return candidates[rng.Intn(len(candidates))], nil
}

// Categories returns every category name paired with its entry count, in
// index order: declared names first, then undeclared referenced ones.
func (ix *Index) Categories() []NameCount {
	return nameCounts(ix.catOrder, ix.byCategory)
}

// Tags returns every tag name paired with its entry count, in index order.
func (ix *Index) Tags() []NameCount {
	return nameCounts(ix.tagOrder, ix.byTag)
}

func nameCounts(order []string, sets map[string][]string) []NameCount {
	out := make([]NameCount, 0, len(order))
	for _, name := range order {
		out = append(out, NameCount{Name: name, Count: len(sets[name])})
	}
	return out
}
