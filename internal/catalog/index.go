package catalog

import "fmt"

// Index is the set of lookup structures derived from a Snapshot. It is
// built exactly once by BuildIndex and read-only afterwards, so concurrent
// queries need no locking.
type Index struct {
	snap *Snapshot

	byID       map[string]*Entry
	byCategory map[string][]string // name → entry ids, dataset order
	byTag      map[string][]string

	// Listing order for classifier names: declared names first, in
	// declaration order, then undeclared-but-referenced names in
	// first-reference order.
	catOrder []string
	tagOrder []string
}

// BuildIndex walks the snapshot once and builds all lookup structures.
// It fails with ErrDuplicateID on the first repeated entry id; no partial
// index is ever returned.
func BuildIndex(snap *Snapshot) (*Index, error) {
	ix := &Index{
		snap:       snap,
		byID:       make(map[string]*Entry, len(snap.Entries)),
		byCategory: make(map[string][]string),
		byTag:      make(map[string][]string),
	}

	for _, c := range snap.Categories {
		if _, ok := ix.byCategory[c.Name]; !ok {
			ix.byCategory[c.Name] = nil
			ix.catOrder = append(ix.catOrder, c.Name)
		}
	}
	for _, t := range snap.Tags {
		if _, ok := ix.byTag[t.Name]; !ok {
			ix.byTag[t.Name] = nil
			ix.tagOrder = append(ix.tagOrder, t.Name)
		}
	}

	for i := range snap.Entries {
		e := &snap.Entries[i]
		if _, dup := ix.byID[e.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateID, e.ID)
		}
		ix.byID[e.ID] = e

		for _, name := range e.Categories {
			if _, ok := ix.byCategory[name]; !ok {
				ix.catOrder = append(ix.catOrder, name)
			}
			ix.byCategory[name] = append(ix.byCategory[name], e.ID)
		}
		for _, name := range e.Tags {
			if _, ok := ix.byTag[name]; !ok {
				ix.tagOrder = append(ix.tagOrder, name)
			}
			ix.byTag[name] = append(ix.byTag[name], e.ID)
		}
	}
	return ix, nil
}

// Len returns the number of indexed entries.
func (ix *Index) Len() int {
	return len(ix.byID)
}
