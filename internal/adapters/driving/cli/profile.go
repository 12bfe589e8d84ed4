package cli

import (
	"errors"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Inspect deployment policy settings",
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective profile",
	Long: `Prints the effective deployment profile as TOML: the shipped defaults
overlaid with the file named by --profile, if any.`,
	RunE: runProfileShow,
}

func init() {
	profileCmd.AddCommand(profileShowCmd)
	rootCmd.AddCommand(profileCmd)
}

func runProfileShow(cmd *cobra.Command, _ []string) error {
	if loadProfile == nil {
		return errors.New("profile loader not configured")
	}

	profile, err := loadProfile(profilePath)
	if err != nil {
		return fmt.Errorf("load profile: %w", err)
	}

	out, err := toml.Marshal(profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	cmd.Print(string(out))
	return nil
}
