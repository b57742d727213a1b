package library

import "errors"

// Error kinds surfaced by the catalog and its stores. Callers match them
// with errors.Is; the wrapping message carries the specifics.
var (
	// ErrInvalidArgument marks input the core cannot act on, such as a
	// blank borrower name.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrDuplicateKey marks an attempt to add a book whose ISBN is taken.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNotFound marks a lend or return targeting an unknown ISBN.
	ErrNotFound = errors.New("not found")

	// ErrCorruptData marks a snapshot that exists but cannot be read back
	// into valid records.
	ErrCorruptData = errors.New("corrupt data")
)
