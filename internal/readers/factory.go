// Package readers provides the row-reader adapters for the supported
// source file kinds.
package readers

import (
	"fmt"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rosterpass-cli/internal/readers/csvfile"
	"github.com/custodia-labs/rosterpass-cli/internal/readers/xlsxfile"
)

// Ensure Factory implements the interface.
var _ driven.ReaderFactory = (*Factory)(nil)

// Factory creates row readers per file kind.
type Factory struct{}

// NewFactory creates a reader factory.
func NewFactory() *Factory {
	return &Factory{}
}

// Create builds a reader for one source file. Directory inputs are
// resolved into per-file csv readers by the orchestrator before Create is
// called.
func (f *Factory) Create(kind domain.FileKind, path string, enc domain.Encoding) (driven.RowReader, error) {
	switch kind {
	case domain.KindCSV:
		return csvfile.New(path, enc), nil
	case domain.KindXLSX:
		return xlsxfile.New(path), nil
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, kind)
	}
}
