// Package cli provides the cobra command tree for rosterpass. Commands
// hold no business logic; they parse flags, load the profile and hand off
// to the pipeline service injected by main.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driving"
	"github.com/custodia-labs/rosterpass-cli/internal/logger"
)

// version is overridden at release build via -ldflags.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "rosterpass",
	Short: "Convert student-roster exports into a directory-import file",
	Long: `Rosterpass ingests tabular student-roster exports (semicolon-delimited
text or spreadsheet workbooks), normalizes them into one canonical record
shape, assigns every person a freshly generated word passphrase and writes
a single delimited file ready for bulk import into the directory system.`,
	SilenceUsage: true,
}

var (
	verbose     bool
	profilePath string
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&profilePath, "profile", "", "Path to a TOML deployment profile (defaults apply when omitted)")
}

// PipelineBuilder constructs a pipeline for one run from the loaded
// profile and a run-scoped logger.
type PipelineBuilder func(profile domain.Profile, log *logger.Logger) (driving.Pipeline, error)

// ProfileLoader loads the deployment profile from an optional path.
type ProfileLoader func(path string) (*domain.Profile, error)

var (
	buildPipeline PipelineBuilder
	loadProfile   ProfileLoader
)

// SetPipelineBuilder injects the pipeline constructor. Called by main.
func SetPipelineBuilder(b PipelineBuilder) {
	buildPipeline = b
}

// SetProfileLoader injects the profile loader. Called by main.
func SetProfileLoader(l ProfileLoader) {
	loadProfile = l
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
