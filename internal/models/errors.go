package models

import "errors"

var (
	// ErrNotANumber is returned by ParseNumber for text that is not a real number.
	ErrNotANumber = errors.New("not a number")

	// ErrNoSelection reports that no row was chosen where one is required.
	ErrNoSelection = errors.New("no row selected")

	// ErrOutOfRange reports a row position past the end of a collection.
	ErrOutOfRange = errors.New("row position out of range")
)
