package isocsv

import "errors"

// Sentinel errors returned by Read.
var (
	// ErrMissingColumn indicates the header row is missing one of the
	// required columns.
	ErrMissingColumn = errors.New("isocsv: missing required column")
)
