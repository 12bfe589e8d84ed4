package services

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/custodia-labs/rosterpass-cli/internal/core/domain"
	"github.com/custodia-labs/rosterpass-cli/internal/core/ports/driven"
)

// guestSuffix marks guest status in the combined-name field.
const guestSuffix = " (G)"

// nameSeparator splits "Surname, Given" in the combined-name field.
const nameSeparator = ", "

// Normalizer transforms source records into canonical import records.
// It is stateless across records; no two records interact.
type Normalizer struct {
	passwords driven.PassphraseSource
	prefixes  []string
}

// NewNormalizer creates a normalizer. prefixes is the active set of
// two-character grade-level prefixes for class-label bucketing.
func NewNormalizer(passwords driven.PassphraseSource, prefixes []string) *Normalizer {
	return &Normalizer{passwords: passwords, prefixes: prefixes}
}

// Normalize maps one source record onto the canonical shape and assigns
// a freshly generated password. Guest records with a combined name that
// lacks the "Surname, Given" separator fail with domain.ErrMalformedName;
// the caller skips such rows without aborting the batch.
func (n *Normalizer) Normalize(rec domain.SourceRecord) (domain.ImportRecord, error) {
	var out domain.ImportRecord
	var err error

	switch rec.Schema {
	case domain.SchemaRoster:
		out = n.normalizeRoster(rec.Roster)
	case domain.SchemaGuest:
		out, err = n.normalizeGuest(rec.Guest)
		if err != nil {
			return domain.ImportRecord{}, err
		}
	default:
		return domain.ImportRecord{}, fmt.Errorf("%w: %q", domain.ErrUnknownSchema, rec.Schema)
	}

	out.Password = n.passwords.Generate()
	return out, nil
}

// normalizeRoster buckets the group label down to a grade-level code and
// passes the remaining fields through.
func (n *Normalizer) normalizeRoster(r *domain.RosterRecord) domain.ImportRecord {
	return domain.ImportRecord{
		Surname:    r.Surname,
		GivenName:  r.GivenName,
		ClassLabel: n.bucketClass(r.GroupLabel),
		ImportID:   r.ExternalID,
	}
}

// normalizeGuest splits the combined name into surname and given name,
// stripping the leading surname marker and the trailing guest suffix.
func (n *Normalizer) normalizeGuest(g *domain.GuestRecord) (domain.ImportRecord, error) {
	surname, given, err := splitCombinedName(g.CombinedName)
	if err != nil {
		return domain.ImportRecord{}, err
	}
	return domain.ImportRecord{
		Surname:    surname,
		GivenName:  given,
		ClassLabel: g.ClassLabel,
		ImportID:   g.ExternalID,
	}, nil
}

// bucketClass truncates the group label to a configured grade prefix when
// it starts with one; other labels pass through unchanged.
func (n *Normalizer) bucketClass(label string) string {
	for _, prefix := range n.prefixes {
		if strings.HasPrefix(label, prefix) {
			return prefix
		}
	}
	return label
}

// splitCombinedName parses "Surname, Given (G)". The export wraps the
// surname in a one-character leading marker which is dropped, and the
// guest suffix is removed from the given name when present.
func splitCombinedName(name string) (surname, given string, err error) {
	parts := strings.SplitN(name, nameSeparator, 2)
	if len(parts) < 2 {
		return "", "", fmt.Errorf("%w: %q", domain.ErrMalformedName, name)
	}

	_, markerLen := utf8.DecodeRuneInString(parts[0])
	surname = parts[0][markerLen:]
	given = strings.TrimSuffix(parts[1], guestSuffix)
	if surname == "" || given == "" {
		return "", "", fmt.Errorf("%w: %q", domain.ErrMalformedName, name)
	}
	return surname, given, nil
}
