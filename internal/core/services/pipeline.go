package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"

	"github.com/google/uuid"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driven"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rosterpass-cli/internal/logger"
)

// Ensure Pipeline implements the interface.
var _ driving.Pipeline = (*Pipeline)(nil)

// csvDirPattern matches the roster export file naming. The glob is
// case-sensitive; lowercase .csv files are not picked up.
const csvDirPattern = "*.CSV"

// Pipeline coordinates one conversion batch: file discovery, decoding,
// normalization and the output write.
type Pipeline struct {
	factory    driven.ReaderFactory
	writer     driven.ImportWriter
	normalizer *Normalizer
	log        *logger.Logger
}

// NewPipeline creates a pipeline. The logger is scoped to this pipeline;
// every run derives its own logger tagged with a run ID from it.
func NewPipeline(
	factory driven.ReaderFactory,
	writer driven.ImportWriter,
	normalizer *Normalizer,
	log *logger.Logger,
) *Pipeline {
	return &Pipeline{
		factory:    factory,
		writer:     writer,
		normalizer: normalizer,
		log:        log,
	}
}

// Run executes the batch. Row-level failures (undecodable rows, malformed
// combined names) are logged and collected in the report without aborting
// the batch. In directory mode a source file that cannot be opened or
// whose header cannot be mapped is skipped the same way; in single-file
// mode it is fatal. The output write is all-or-nothing.
func (p *Pipeline) Run(ctx context.Context, opts driving.RunOptions) (*driving.RunReport, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	report := &driving.RunReport{RunID: uuid.New().String()}
	log := p.log.With("run", report.RunID)

	decoder, err := NewDecoder(opts.Schema)
	if err != nil {
		return nil, err
	}

	files, err := p.discover(opts)
	if err != nil {
		return nil, err
	}
	log.Info("starting batch",
		"schema", opts.Schema, "kind", opts.Kind, "files", len(files))

	perFileFatal := opts.Kind != domain.KindCSVDir

	var out []domain.ImportRecord
	for _, file := range files {
		records, rowErrs, err := p.readFile(ctx, decoder, opts, file)
		if err != nil {
			if perFileFatal {
				return nil, err
			}
			log.Error("skipping source file", "file", file, "error", err)
			report.FilesFailed++
			continue
		}
		report.FilesRead++

		for _, re := range rowErrs {
			log.Warn("skipping row", "file", re.File, "row", re.Row, "error", re.Err)
		}
		report.RowErrors = append(report.RowErrors, rowErrs...)

		for _, dec := range records {
			rec, err := p.normalizer.Normalize(dec.Record)
			if err != nil {
				if !isRowLevel(err) {
					return nil, err
				}
				re := domain.RowError{File: file, Row: dec.Row, Err: err}
				log.Warn("skipping row", "file", re.File, "row", re.Row, "error", re.Err)
				report.RowErrors = append(report.RowErrors, re)
				continue
			}
			out = append(out, rec)
		}
	}

	log.Info("writing output", "path", opts.Output, "records", len(out))
	if err := p.writer.Write(ctx, opts.Output, out); err != nil {
		return nil, err
	}
	report.RecordsWritten = len(out)

	log.Info("batch complete",
		"written", report.RecordsWritten,
		"rowErrors", len(report.RowErrors),
		"filesFailed", report.FilesFailed)
	return report, nil
}

// readFile opens one source file and decodes its rows. Tokenization
// failures reported by the reader are merged with the decoder's row
// errors.
func (p *Pipeline) readFile(
	ctx context.Context,
	decoder *Decoder,
	opts driving.RunOptions,
	file string,
) ([]DecodedRecord, []domain.RowError, error) {
	kind := domain.KindCSV
	if opts.Kind == domain.KindXLSX {
		kind = domain.KindXLSX
	}

	reader, err := p.factory.Create(kind, file, opts.Encoding)
	if err != nil {
		return nil, nil, err
	}

	header, rows, readErrs, err := reader.Read(ctx)
	if err != nil {
		return nil, nil, err
	}

	records, decErrs, err := decoder.Decode(file, header, rows)
	if err != nil {
		return nil, nil, err
	}
	return records, append(readErrs, decErrs...), nil
}

// discover resolves the input path into the ordered list of source files.
func (p *Pipeline) discover(opts driving.RunOptions) ([]string, error) {
	if opts.Kind != domain.KindCSVDir {
		return []string{opts.Input}, nil
	}

	matches, err := filepath.Glob(filepath.Join(opts.Input, csvDirPattern))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrSourceOpen, opts.Input, err)
	}
	sort.Strings(matches)
	if len(matches) == 0 {
		p.log.Warn("no source files matched", "dir", opts.Input, "pattern", csvDirPattern)
	}
	return matches, nil
}

// isRowLevel reports whether an error is recoverable at row granularity.
func isRowLevel(err error) bool {
	return errors.Is(err, domain.ErrMalformedName) || errors.Is(err, domain.ErrRowDecode)
}

// validateOptions rejects incomplete run options before any I/O happens.
func validateOptions(opts driving.RunOptions) error {
	if opts.Input == "" {
		return fmt.Errorf("%w: input path is required", domain.ErrInvalidInput)
	}
	if opts.Output == "" {
		return fmt.Errorf("%w: output path is required", domain.ErrInvalidInput)
	}
	if !opts.Schema.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownSchema, opts.Schema)
	}
	if !opts.Kind.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedKind, opts.Kind)
	}
	if !opts.Encoding.IsValid() {
		return fmt.Errorf("%w: encoding %q", domain.ErrInvalidInput, opts.Encoding)
	}
	return nil
}
