package domain

import "fmt"

// RowError records a row-level failure: the source file, the 1-based row
// number within it (the header is row 1), and the underlying cause. Row
// errors are logged and collected, never fatal to the batch.
type RowError struct {
	File string
	Row  int
	Err  error
}

// Error implements the error interface.
func (e RowError) Error() string {
	return fmt.Sprintf("%s: row %d: %v", e.File, e.Row, e.Err)
}

// Unwrap returns the underlying cause for errors.Is checks.
func (e RowError) Unwrap() error {
	return e.Err
}
