// Package csvout writes the semicolon-delimited import file consumed by
// the directory/identity system.
package csvout

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.ImportWriter = (*Writer)(nil)

// fieldDelimiter separates columns in the import file.
const fieldDelimiter = ';'

// Writer persists canonical records as a delimited text file with the
// canonical header row. The write is all-or-nothing: any failure aborts
// the run wrapped in domain.ErrOutputWrite.
type Writer struct{}

// New creates an import-file writer.
func New() *Writer {
	return &Writer{}
}

// Write creates the file at path and writes the header plus one row per
// record, preserving record order.
func (w *Writer) Write(ctx context.Context, path string, records []domain.ImportRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrOutputWrite, path, err)
	}

	cw := csv.NewWriter(f)
	cw.Comma = fieldDelimiter

	if err := w.writeAll(cw, records); err != nil {
		f.Close()
		return fmt.Errorf("%w: %s: %v", domain.ErrOutputWrite, path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrOutputWrite, path, err)
	}
	return nil
}

// writeAll serializes the header and all rows, then flushes.
func (w *Writer) writeAll(cw *csv.Writer, records []domain.ImportRecord) error {
	if err := cw.Write(domain.ImportHeader()); err != nil {
		return err
	}
	for _, rec := range records {
		if err := cw.Write(rec.Fields()); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
