// Package csvfile reads semicolon-delimited roster exports. Sources
// declared as windows1252 are transcoded to UTF-8 before tokenizing, so
// the rest of the pipeline only ever sees Unicode text.
package csvfile

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driven"
)

// Ensure Reader implements the interface.
var _ driven.RowReader = (*Reader)(nil)

// fieldDelimiter separates columns in the institutional exports.
const fieldDelimiter = ';'

// Reader reads one delimited text file. Each Read call reopens the file,
// so the sequence is restartable.
type Reader struct {
	path string
	enc  domain.Encoding
}

// New creates a reader for the file at path using the declared encoding.
func New(path string, enc domain.Encoding) *Reader {
	return &Reader{path: path, enc: enc}
}

// Path returns the source location.
func (r *Reader) Path() string {
	return r.path
}

// Read returns the header row and all data rows. Rows that cannot be
// tokenized (stray quotes and the like) are skipped and reported as row
// errors; only an unopenable file fails the call as a whole.
func (r *Reader) Read(ctx context.Context) ([]string, [][]string, []domain.RowError, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceOpen, r.path, err)
	}
	defer f.Close()

	cr := csv.NewReader(r.transcode(f))
	cr.Comma = fieldDelimiter
	cr.FieldsPerRecord = -1 // short rows are the decoder's concern

	var header []string
	var rows [][]string
	var rowErrs []domain.RowError
	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if header == nil {
				// Without a header nothing in the file can be mapped.
				return nil, nil, nil, fmt.Errorf("%w: %s: unreadable header row: %v", domain.ErrRowDecode, r.path, err)
			}
			rowErrs = append(rowErrs, domain.RowError{
				File: r.path,
				Row:  parseErrorLine(err),
				Err:  fmt.Errorf("%w: %v", domain.ErrRowDecode, err),
			})
			continue
		}

		if header == nil {
			header = record
			continue
		}
		rows = append(rows, record)
	}

	if header == nil {
		return nil, nil, nil, fmt.Errorf("%w: %s: no header row", domain.ErrRowDecode, r.path)
	}
	return header, rows, rowErrs, nil
}

// transcode wraps the file in a charset decoder when the source is not
// UTF-8. Spreadsheet tools commonly prepend a byte-order mark to UTF-8
// exports; it must not reach header matching.
func (r *Reader) transcode(f io.Reader) io.Reader {
	if r.enc == domain.EncodingWindows1252 {
		return transform.NewReader(f, charmap.Windows1252.NewDecoder())
	}
	return transform.NewReader(f, unicode.UTF8BOM.NewDecoder())
}

// parseErrorLine extracts the 1-based line number from a CSV parse error,
// or 0 when the position is unknown.
func parseErrorLine(err error) int {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return pe.Line
	}
	return 0
}
