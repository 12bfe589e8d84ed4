// Package xlsxfile reads spreadsheet roster exports. Only the first
// worksheet of the workbook is consumed: its first row is the header and
// the remaining rows are data, mirroring the text exports.
package xlsxfile

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RowReader = (*Reader)(nil)

// Reader reads one spreadsheet workbook. Each Read call reopens the
// workbook, so the sequence is restartable.
type Reader struct {
	path string
}

// New creates a reader for the workbook at path.
func New(path string) *Reader {
	return &Reader{path: path}
}

// Path returns the source location.
func (r *Reader) Path() string {
	return r.path
}

// Read returns the header row and all data rows of the first worksheet.
// Cell values are read as displayed strings; the workbook's own encoding
// handling applies, independent of the pipeline's text-encoding setting.
func (r *Reader) Read(ctx context.Context) ([]string, [][]string, []domain.RowError, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, nil, err
	}

	wb, err := excelize.OpenFile(r.path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceOpen, r.path, err)
	}
	defer wb.Close()

	sheets := wb.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: %s: workbook has no sheets", domain.ErrSourceOpen, r.path)
	}

	rows, err := wb.GetRows(sheets[0])
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrRowDecode, r.path, err)
	}
	if len(rows) == 0 {
		return nil, nil, nil, fmt.Errorf("%w: %s: no header row", domain.ErrRowDecode, r.path)
	}
	return rows[0], rows[1:], nil, nil
}
