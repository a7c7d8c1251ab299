package datafile

import "errors"

var (
	// ErrNotFound is returned when the data file does not exist.
	ErrNotFound = errors.New("datafile: file not found")

	// ErrEmpty is returned when a file holds no records.
	ErrEmpty = errors.New("datafile: no records")

	// ErrRagged is returned when a record has a different number of
	// columns than the first record of the file.
	ErrRagged = errors.New("datafile: inconsistent number of columns")

	// ErrNotNumeric is returned for tokens that are not finite numbers.
	ErrNotNumeric = errors.New("datafile: not a finite number")

	// ErrTooSmall is returned for grids with fewer than two rows or columns.
	ErrTooSmall = errors.New("datafile: grid needs at least 2 rows and 2 columns")

	// ErrColumns is returned when an XY file does not have two columns.
	ErrColumns = errors.New("datafile: expected 2 columns")
)
