package driven

import (
	"context"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

// RowReader reads raw tabular rows from one source file. Readers have no
// schema knowledge; mapping cells to typed records is the Decoder's job.
type RowReader interface {
	// Path returns the source location, for logs and error context.
	Path() string

	// Read returns the header row and all data rows in file order. Each
	// call re-reads from the start of the source. A row that cannot be
	// tokenized at all is skipped and reported in rowErrs; only failures
	// that prevent reading the source as a whole are returned as err,
	// wrapped in domain.ErrSourceOpen or domain.ErrRowDecode.
	Read(ctx context.Context) (header []string, rows [][]string, rowErrs []domain.RowError, err error)
}

// ReaderFactory creates a RowReader for one source file.
type ReaderFactory interface {
	// Create builds a reader for the given file kind and path. The
	// encoding applies to text sources only. KindCSVDir is resolved by
	// the orchestrator into per-file KindCSV readers and is not a valid
	// argument here.
	Create(kind domain.FileKind, path string, enc domain.Encoding) (RowReader, error)
}
