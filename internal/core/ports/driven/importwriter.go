package driven

import (
	"context"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
)

// ImportWriter persists canonical records to the output sink. The write is
// all-or-nothing: any create, serialize or flush failure is returned
// wrapped in domain.ErrOutputWrite and no partial-output guarantee is made
// beyond what the sink itself provides.
type ImportWriter interface {
	Write(ctx context.Context, path string, records []domain.ImportRecord) error
}

// ProfileStore loads deployment policy settings.
type ProfileStore interface {
	// Load returns the effective profile: defaults overlaid with any
	// values from the backing store, validated.
	Load() (*domain.Profile, error)
}
