package domain

// RosterRecord is one row of the school-administration roster export.
// It is the richer of the two source shapes and carries the full group
// label as exported, e.g. "11b" or "ABI".
type RosterRecord struct {
	// Surname is the family name as exported.
	Surname string

	// GivenName is the first name as exported.
	GivenName string

	// GroupLabel is the class or group label, e.g. "11b", "12c", "ABI".
	GroupLabel string

	// ExternalID is the stable GUID assigned by the exporting system.
	ExternalID string
}

// GuestRecord is one row of the guest-student export. Names arrive in a
// single combined field formatted "Surname, Given (G)" where the leading
// character of the surname is a marker and " (G)" flags guest status.
type GuestRecord struct {
	// CombinedName is the raw "Surname, Given (G)" field.
	CombinedName string

	// ClassLabel is the class label as exported.
	ClassLabel string

	// ExternalID is the student number assigned by the exporting system.
	ExternalID string
}

// SourceRecord is a tagged union over the two source shapes. Exactly one
// payload is non-nil, matching Schema. The Normalizer dispatches on Schema
// with an exhaustive switch.
type SourceRecord struct {
	Schema Schema
	Roster *RosterRecord
	Guest  *GuestRecord
}

// ImportRecord is the canonical output row written to the directory-system
// import file. All five fields are non-empty after normalization.
type ImportRecord struct {
	Surname    string
	GivenName  string
	ClassLabel string
	ImportID   string
	Password   string
}

// Column headers of the roster export, matched case-sensitively.
const (
	RosterColSurname   = "Nachname"
	RosterColGivenName = "Vorname"
	RosterColGroup     = "Klasse"
	RosterColID        = "eindeutige Nummer (GUID)"
)

// Column headers of the guest-student export, matched case-sensitively.
// The export writes uppercase headers, one of them non-ASCII.
const (
	GuestColCombinedName = "NAME, VORNAME"
	GuestColClass        = "KLASSE"
	GuestColID           = "SCHÜLERNR"
)

// ImportHeader returns the header row of the output file, in column order.
func ImportHeader() []string {
	return []string{"Nachname", "Vorname", "Klasse", "Import-ID", "Password"}
}

// Fields returns the record's values in output column order.
func (r ImportRecord) Fields() []string {
	return []string{r.Surname, r.GivenName, r.ClassLabel, r.ImportID, r.Password}
}
