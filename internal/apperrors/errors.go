package apperrors

import "errors"

// The closed set of recoverable error kinds surfaced by the core. Every
// package wraps its failures onto one of these so callers can classify
// without string matching.
var (
	// ErrNotFound indicates an id-keyed operation targeted a record that
	// does not exist (or is soft-deleted, for read paths).
	ErrNotFound = errors.New("record not found")

	// ErrStorage indicates the underlying vault or file I/O call failed.
	ErrStorage = errors.New("storage failure")

	// ErrIntegrity indicates stored bytes did not decode as the expected
	// structure. Never auto-repaired.
	ErrIntegrity = errors.New("data integrity failure")

	// ErrParse indicates statement content could not be parsed.
	ErrParse = errors.New("parse failure")
)

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsStorage reports whether err wraps ErrStorage.
func IsStorage(err error) bool { return errors.Is(err, ErrStorage) }

// IsIntegrity reports whether err wraps ErrIntegrity.
func IsIntegrity(err error) bool { return errors.Is(err, ErrIntegrity) }

// IsParse reports whether err wraps ErrParse.
func IsParse(err error) bool { return errors.Is(err, ErrParse) }
