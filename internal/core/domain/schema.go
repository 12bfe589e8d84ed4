package domain

import "fmt"

// Schema identifies which source shape a pipeline run decodes. The schema
// is selected once per run, not per row.
type Schema string

// Supported source schemas.
const (
	// SchemaRoster is the school-administration roster export.
	SchemaRoster Schema = "roster"

	// SchemaGuest is the guest-student export.
	SchemaGuest Schema = "guest"
)

// IsValid returns true if the schema is recognised.
func (s Schema) IsValid() bool {
	switch s {
	case SchemaRoster, SchemaGuest:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (s Schema) String() string {
	return string(s)
}

// ParseSchema converts a flag value into a Schema.
func ParseSchema(v string) (Schema, error) {
	s := Schema(v)
	if !s.IsValid() {
		return "", fmt.Errorf("%w: schema %q", ErrInvalidInput, v)
	}
	return s, nil
}

// FileKind identifies how the input path is read.
type FileKind string

// Supported input kinds.
const (
	// KindCSV reads a single semicolon-delimited text file.
	KindCSV FileKind = "csv"

	// KindCSVDir scans a directory for *.CSV files and concatenates them
	// in filename-match order.
	KindCSVDir FileKind = "csvdir"

	// KindXLSX reads the first worksheet of a spreadsheet workbook.
	KindXLSX FileKind = "xlsx"
)

// IsValid returns true if the file kind is recognised.
func (k FileKind) IsValid() bool {
	switch k {
	case KindCSV, KindCSVDir, KindXLSX:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (k FileKind) String() string {
	return string(k)
}

// ParseFileKind converts a flag value into a FileKind.
func ParseFileKind(v string) (FileKind, error) {
	k := FileKind(v)
	if !k.IsValid() {
		return "", fmt.Errorf("%w: file kind %q", ErrInvalidInput, v)
	}
	return k, nil
}

// Encoding identifies the character encoding of a text source. Spreadsheet
// sources carry their own encoding and ignore this setting.
type Encoding string

// Supported text encodings.
const (
	// EncodingUTF8 reads the source as UTF-8.
	EncodingUTF8 Encoding = "utf8"

	// EncodingWindows1252 transcodes the source from the legacy Western
	// European single-byte codepage before tokenizing.
	EncodingWindows1252 Encoding = "windows1252"
)

// IsValid returns true if the encoding is recognised.
func (e Encoding) IsValid() bool {
	switch e {
	case EncodingUTF8, EncodingWindows1252:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (e Encoding) String() string {
	return string(e)
}

// ParseEncoding converts a flag value into an Encoding.
func ParseEncoding(v string) (Encoding, error) {
	e := Encoding(v)
	if !e.IsValid() {
		return "", fmt.Errorf("%w: encoding %q", ErrInvalidInput, v)
	}
	return e, nil
}
