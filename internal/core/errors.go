package core

import (
	"errors"
	"fmt"
)

// Error kinds returned by the tokenizer and reducer. Every one of them is
// fatal for the scan that produced it; callers match with errors.Is.
var (
	ErrStreamOpen       = errors.New("cannot open input")
	ErrLineTooLong      = errors.New("line exceeds maximum length")
	ErrMissingHeader    = errors.New("missing header row")
	ErrMissingColumn    = errors.New("missing required column")
	ErrMalformedNumber  = errors.New("invalid number")
	ErrMalformedInteger = errors.New("invalid integer")
	ErrRead             = errors.New("read error")
	ErrNoDataRows       = errors.New("no data rows after header")
	ErrShortRow         = errors.New("row has too few fields")
)

// MissingColumnError names the header column that could not be found.
type MissingColumnError struct {
	Name string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("missing required column %q", e.Name)
}

// Is reports true for ErrMissingColumn so callers need not know the concrete type.
func (e *MissingColumnError) Is(target error) bool {
	return target == ErrMissingColumn
}

// RowError locates a failure on a specific data row.
type RowError struct {
	Line   int    // 1-based line number in the input
	Column string // Column name, empty when the failure is not tied to one
	Raw    string // Offending field text
	Err    error
}

func (e *RowError) Error() string {
	if e == nil {
		return ""
	}
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %q: %v: %q", e.Line, e.Column, e.Err, e.Raw)
}

// Unwrap returns the underlying error kind.
func (e *RowError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
