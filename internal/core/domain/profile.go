package domain

// Profile holds the deployment-specific policy settings. The original
// deployments differed only in these values, so one pipeline parameterised
// by a Profile serves all of them.
type Profile struct {
	// WordCount is the number of corpus words per generated passphrase.
	WordCount int `toml:"word_count" validate:"min=1"`

	// Separator joins the passphrase words.
	Separator string `toml:"separator" validate:"required"`

	// GradePrefixes is the active set of two-character grade-level
	// prefixes used for class-label bucketing. The window shifts by one
	// value each school year.
	GradePrefixes []string `toml:"grade_prefixes" validate:"dive,len=2"`

	// DefaultEncoding is the text encoding assumed when the convert
	// command is run without an explicit --encoding flag.
	DefaultEncoding Encoding `toml:"default_encoding" validate:"oneof=utf8 windows1252"`

	// DefaultOutput is the output path used when --output is omitted.
	DefaultOutput string `toml:"default_output" validate:"required"`
}

// DefaultProfile returns the shipped policy settings.
func DefaultProfile() Profile {
	return Profile{
		WordCount:       2,
		Separator:       "-",
		GradePrefixes:   []string{"11", "12", "13"},
		DefaultEncoding: EncodingUTF8,
		DefaultOutput:   "import_ready.csv",
	}
}
