package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrSourceOpen indicates an input file or workbook cannot be opened.
	// Fatal in single-file mode; in directory mode the batch continues
	// with the remaining files.
	ErrSourceOpen = errors.New("source open failed")

	// ErrRowDecode indicates a row's fields cannot be parsed into the
	// selected source shape. The row is skipped and the batch continues.
	ErrRowDecode = errors.New("row decode failed")

	// ErrMalformedName indicates a combined-name field lacks the expected
	// "Surname, Given" separator. The row is skipped and the batch continues.
	ErrMalformedName = errors.New("malformed combined name")

	// ErrOutputWrite indicates the output sink cannot be created or a
	// serialize/flush call failed. Always fatal to the run.
	ErrOutputWrite = errors.New("output write failed")

	// ErrGeneratorConfig indicates the passphrase generator is misconfigured
	// (empty corpus or a word count below one).
	ErrGeneratorConfig = errors.New("passphrase generator misconfigured")

	// ErrUnknownSchema indicates a source record carries no recognised
	// schema tag.
	ErrUnknownSchema = errors.New("unknown source schema")

	// ErrUnsupportedKind indicates an unknown input file kind.
	ErrUnsupportedKind = errors.New("unsupported file kind")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
