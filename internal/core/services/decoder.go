package services

import (
	"fmt"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

// Decoder maps raw tabular rows onto the source shape selected for the
// run. Header names are matched exactly, case-sensitively, and may contain
// non-ASCII letters.
type Decoder struct {
	schema domain.Schema
}

// NewDecoder creates a decoder for the given schema.
func NewDecoder(schema domain.Schema) (*Decoder, error) {
	if !schema.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownSchema, schema)
	}
	return &Decoder{schema: schema}, nil
}

// DecodedRecord pairs a decoded source record with its 1-based row number
// in the source file (the header is row 1), for error reporting.
type DecodedRecord struct {
	Record domain.SourceRecord
	Row    int
}

// Decode maps the header and data rows of one source file onto typed
// source records. Rows that cannot be decoded (too few cells, empty
// required cell) are skipped and reported as row errors; the returned
// error is non-nil only when the header itself cannot be mapped, which
// makes every row of the file undecodable.
func (d *Decoder) Decode(file string, header []string, rows [][]string) ([]DecodedRecord, []domain.RowError, error) {
	cols, err := mapHeader(file, header, requiredColumns(d.schema))
	if err != nil {
		return nil, nil, err
	}

	records := make([]DecodedRecord, 0, len(rows))
	var rowErrs []domain.RowError
	for i, row := range rows {
		rowNum := i + 2 // data rows follow the header
		cells, err := extractCells(row, cols)
		if err != nil {
			rowErrs = append(rowErrs, domain.RowError{File: file, Row: rowNum, Err: err})
			continue
		}
		records = append(records, DecodedRecord{
			Record: d.buildRecord(cells),
			Row:    rowNum,
		})
	}
	return records, rowErrs, nil
}

// column describes one required column: its header name and its resolved
// index in the source file.
type column struct {
	name  string
	index int
}

// requiredColumns returns the header names each schema expects, in the
// order buildRecord consumes them.
func requiredColumns(schema domain.Schema) []string {
	switch schema {
	case domain.SchemaRoster:
		return []string{
			domain.RosterColSurname,
			domain.RosterColGivenName,
			domain.RosterColGroup,
			domain.RosterColID,
		}
	case domain.SchemaGuest:
		return []string{
			domain.GuestColCombinedName,
			domain.GuestColClass,
			domain.GuestColID,
		}
	default:
		return nil
	}
}

// mapHeader resolves each required column name to its index in the header
// row. A missing column fails the whole file.
func mapHeader(file string, header []string, required []string) ([]column, error) {
	cols := make([]column, 0, len(required))
	for _, name := range required {
		idx := -1
		for i, h := range header {
			if h == name {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s: missing column %q", domain.ErrRowDecode, file, name)
		}
		cols = append(cols, column{name: name, index: idx})
	}
	return cols, nil
}

// extractCells pulls the required cells out of one data row. Short rows
// and empty required cells are decode failures.
func extractCells(row []string, cols []column) ([]string, error) {
	cells := make([]string, 0, len(cols))
	for _, col := range cols {
		if col.index >= len(row) {
			return nil, fmt.Errorf("%w: too few fields for column %q", domain.ErrRowDecode, col.name)
		}
		val := row[col.index]
		if val == "" {
			return nil, fmt.Errorf("%w: empty column %q", domain.ErrRowDecode, col.name)
		}
		cells = append(cells, val)
	}
	return cells, nil
}

// buildRecord assembles the source record from cells in requiredColumns
// order.
func (d *Decoder) buildRecord(cells []string) domain.SourceRecord {
	switch d.schema {
	case domain.SchemaGuest:
		return domain.SourceRecord{
			Schema: domain.SchemaGuest,
			Guest: &domain.GuestRecord{
				CombinedName: cells[0],
				ClassLabel:   cells[1],
				ExternalID:   cells[2],
			},
		}
	default:
		return domain.SourceRecord{
			Schema: domain.SchemaRoster,
			Roster: &domain.RosterRecord{
				Surname:    cells[0],
				GivenName:  cells[1],
				GroupLabel: cells[2],
				ExternalID: cells[3],
			},
		}
	}
}
