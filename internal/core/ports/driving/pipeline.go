// Package driving defines interfaces that external actors (the CLI) use
// to interact with core services. These are the "driving" ports in
// hexagonal architecture terminology - they drive the application.
//
// Implementations of these interfaces live in internal/core/services.
package driving

import (
	"context"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

// Pipeline runs one conversion batch: read, decode, normalize, write.
type Pipeline interface {
	// Run executes the batch and returns a report. Row-level failures are
	// logged and collected in the report; Run returns an error only for
	// fatal conditions (single-file source open, output write, generator
	// configuration).
	Run(ctx context.Context, opts RunOptions) (*RunReport, error)
}

// RunOptions selects the input, output and decode strategy for one run.
type RunOptions struct {
	// Input is the source file, or the directory to scan for KindCSVDir.
	Input string

	// Output is the path of the import file to write.
	Output string

	// Schema selects the source shape for the whole batch.
	Schema domain.Schema

	// Kind selects how Input is read.
	Kind domain.FileKind

	// Encoding is the text encoding of CSV sources.
	Encoding domain.Encoding
}

// RunReport summarises one pipeline run.
type RunReport struct {
	// RunID uniquely identifies the run in logs.
	RunID string

	// FilesRead is the number of source files read successfully.
	FilesRead int

	// FilesFailed is the number of source files skipped because they
	// could not be opened or their header could not be mapped.
	FilesFailed int

	// RecordsWritten is the number of rows in the output file.
	RecordsWritten int

	// RowErrors collects the row-level failures that were skipped.
	RowErrors []domain.RowError
}
