package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rosterpass-cli/internal/logger"
)

var convertCmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a roster export into the import file",
	Long: `Reads the given roster export, normalizes each row, assigns generated
passphrases and writes the import file. Rows that cannot be decoded are
skipped and logged; the batch continues.`,
	RunE: runConvert,
}

var (
	convertInput    string
	convertOutput   string
	convertSchema   string
	convertKind     string
	convertEncoding string
)

func init() {
	convertCmd.Flags().StringVarP(&convertInput, "input", "i", "", "Source file, or directory for --kind csvdir (required)")
	convertCmd.Flags().StringVarP(&convertOutput, "output", "o", "", "Output path (default from profile)")
	convertCmd.Flags().StringVarP(&convertSchema, "schema", "s", domain.SchemaRoster.String(), "Source schema: roster or guest")
	convertCmd.Flags().StringVarP(&convertKind, "kind", "k", domain.KindCSV.String(), "Input kind: csv, csvdir or xlsx")
	convertCmd.Flags().StringVarP(&convertEncoding, "encoding", "e", "", "Text encoding: utf8 or windows1252 (default from profile)")
	_ = convertCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, _ []string) error {
	if buildPipeline == nil || loadProfile == nil {
		return errors.New("pipeline not configured")
	}

	profile, err := loadProfile(profilePath)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	opts, err := buildRunOptions(cmd, *profile)
	if err != nil {
		return err
	}

	log := logger.New(cmd.ErrOrStderr(), verbose)
	pipeline, err := buildPipeline(*profile, log)
	if err != nil {
		return err
	}

	report, err := pipeline.Run(context.Background(), opts)
	if err != nil {
		return fmt.Errorf("conversion failed: %w", err)
	}

	cmd.Printf("Wrote %d records to %s\n", report.RecordsWritten, opts.Output)
	if len(report.RowErrors) > 0 {
		cmd.Printf("Skipped %d rows with errors (details in the log).\n", len(report.RowErrors))
	}
	if report.FilesFailed > 0 {
		cmd.Printf("Skipped %d unreadable source files (details in the log).\n", report.FilesFailed)
	}
	return nil
}

// buildRunOptions merges flags with profile defaults into run options.
func buildRunOptions(cmd *cobra.Command, profile domain.Profile) (driving.RunOptions, error) {
	schema, err := domain.ParseSchema(convertSchema)
	if err != nil {
		return driving.RunOptions{}, err
	}
	kind, err := domain.ParseFileKind(convertKind)
	if err != nil {
		return driving.RunOptions{}, err
	}

	encoding := profile.DefaultEncoding
	if cmd.Flags().Changed("encoding") {
		encoding, err = domain.ParseEncoding(convertEncoding)
		if err != nil {
			return driving.RunOptions{}, err
		}
	}

	output := convertOutput
	if output == "" {
		output = profile.DefaultOutput
	}

	return driving.RunOptions{
		Input:    convertInput,
		Output:   output,
		Schema:   schema,
		Kind:     kind,
		Encoding: encoding,
	}, nil
}
