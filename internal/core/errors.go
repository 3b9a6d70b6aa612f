package core

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is checks. The typed errors below wrap them.
var (
	ErrMalformedField = errors.New("malformed field")
	ErrMissingField   = errors.New("missing field")
	ErrInvalidNumber  = errors.New("invalid number")
	ErrEmptyDataset   = errors.New("empty dataset")
	ErrEncoding       = errors.New("encoding error")
	ErrInvalidQuoting = errors.New("invalid quoting")
	ErrColumnMismatch = errors.New("column length mismatch")
)

// MalformedFieldError reports a data row with enough shape to be parsed whose
// field could not be decoded, or which is too short to reach a required field.
type MalformedFieldError struct {
	Line     int    // 1-based source line, 0 when parsed outside a file
	Position int    // Zero-based field position
	Field    string // Field name from the layout
	Value    string // Raw value, empty for missing fields
	Err      error  // Wraps ErrMissingField or ErrInvalidNumber
}

func (e *MalformedFieldError) Error() string {
	var b strings.Builder
	if e.Line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.Line)
	}
	fmt.Fprintf(&b, "field %q (position %d): %v", e.Field, e.Position, e.Err)
	return b.String()
}

func (e *MalformedFieldError) Unwrap() []error {
	return []error{ErrMalformedField, e.Err}
}

// EmptyDatasetError reports a source in which no row passed validation.
type EmptyDatasetError struct {
	Path  string // Source name
	Lines int    // Lines consumed, header included
}

func (e *EmptyDatasetError) Error() string {
	if e.Path == "" {
		return "empty dataset: no valid records"
	}
	return fmt.Sprintf("empty dataset: no valid records in %s (%d lines read)", e.Path, e.Lines)
}

func (e *EmptyDatasetError) Unwrap() error {
	return ErrEmptyDataset
}

// IOError reports a failure to open, read or decode the source bytes.
type IOError struct {
	Op   string // "open", "read", "decode" or "split"
	Path string
	Line int // 0 when the failure is not tied to a line
	Err  error
}

func (e *IOError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s %s: line %d: %v", e.Op, e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError reports whether err is an IOError-class failure.
func IsIOError(err error) bool {
	var ioErr *IOError
	return errors.As(err, &ioErr)
}

// EncodingError reports bytes that are not valid in the source encoding.
type EncodingError struct {
	Offset int64 // Byte offset of the first invalid byte
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encoding error: invalid UTF-8 at byte %d", e.Offset)
}

func (e *EncodingError) Unwrap() error {
	return ErrEncoding
}
