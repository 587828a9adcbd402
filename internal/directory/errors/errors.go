package errors

import "errors"

var (
	// ErrEncoding is returned when no candidate encoding decodes the whole file
	ErrEncoding = errors.New("could not determine file encoding")

	// ErrEmptyFile is returned when the header row is absent or blank
	ErrEmptyFile = errors.New("file is empty or has no headers")

	// ErrImport wraps any row-level failure; no index is produced
	ErrImport = errors.New("import failed")

	// ErrNoDataLoaded is returned by searches issued before a successful load
	ErrNoDataLoaded = errors.New("no data loaded")

	// ErrOutsideDataDir is returned for load paths that are absolute or
	// escape the data directory
	ErrOutsideDataDir = errors.New("path is outside the data directory")
)
