package catalog

import "errors"

var (
	// ErrMalformedDataset indicates the raw dataset failed structural parsing.
	ErrMalformedDataset = errors.New("malformed dataset")

	// ErrDuplicateID indicates two entries share an id.
	ErrDuplicateID = errors.New("duplicate entry id")

	// ErrNotFound indicates no entry exists with the requested id.
	ErrNotFound = errors.New("entry not found")

	// ErrNoCandidates indicates a filter matched zero entries.
	ErrNoCandidates = errors.New("no entries match the given filters")
)
