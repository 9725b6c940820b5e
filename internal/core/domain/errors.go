package domain

import "go.trai.ch/zerr"

var (
	// ErrSourceReadFailed is returned when a stylesheet source file cannot be read.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrParseFailed is returned when the parser fails with something other than a syntax error.
	ErrParseFailed = zerr.New("failed to parse source file")

	// ErrImportNotFound is returned when an explicit native import matches no file in the load paths.
	ErrImportNotFound = zerr.New("file to import not found or unreadable")

	// ErrEntryPathFailed is returned when the cache entry location cannot be derived.
	ErrEntryPathFailed = zerr.New("failed to compute cache entry path")

	// ErrTreeEncodeFailed is returned when a tree cannot be serialized.
	ErrTreeEncodeFailed = zerr.New("failed to encode tree")

	// ErrTreeDecodeFailed is returned when a serialized tree is malformed.
	ErrTreeDecodeFailed = zerr.New("failed to decode tree")

	// ErrTreeChecksumMismatch is returned when a serialized tree does not match its checksum.
	ErrTreeChecksumMismatch = zerr.New("tree checksum mismatch")

	// ErrTreeTooDeep is returned when a serialized tree exceeds the maximum nesting depth.
	ErrTreeTooDeep = zerr.New("tree nesting too deep")

	// ErrConfigReadFailed is returned when the options file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the options file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrMissingParser is returned when the facade is built without a parser.
	ErrMissingParser = zerr.New("no parser configured")
)
