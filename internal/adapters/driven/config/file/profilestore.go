// Package file is a TOML-backed implementation of the profile store.
// A profile file overrides individual policy settings; absent keys keep
// their shipped defaults, so a minimal deployment file only names what
// differs, e.g.
//
//	word_count = 3
//	grade_prefixes = ["12", "13", "14"]
//	default_encoding = "windows1252"
package file

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driven"
)

// Ensure ProfileStore implements the interface.
var _ driven.ProfileStore = (*ProfileStore)(nil)

// ProfileStore loads deployment policy settings from a TOML file.
type ProfileStore struct {
	path     string
	validate *validator.Validate
}

// NewProfileStore creates a store reading from path. An empty path yields
// the shipped defaults.
func NewProfileStore(path string) *ProfileStore {
	return &ProfileStore{
		path:     path,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Load returns the effective profile: defaults overlaid with the file's
// values, validated. A named file that does not exist is an error; the
// caller chose it explicitly.
func (s *ProfileStore) Load() (*domain.Profile, error) {
	profile := domain.DefaultProfile()

	if s.path != "" {
		data, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read profile: %w", err)
		}
		if err := toml.Unmarshal(data, &profile); err != nil {
			return nil, fmt.Errorf("parse profile %s: %w", s.path, err)
		}
	}

	if err := s.validate.Struct(profile); err != nil {
		return nil, fmt.Errorf("%w: profile %s: %v", domain.ErrInvalidInput, s.path, err)
	}
	return &profile, nil
}
