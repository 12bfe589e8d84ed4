package driven

// PassphraseSource produces one fresh credential per call. The concrete
// implementation draws random words from a corpus; tests substitute a
// deterministic fake.
type PassphraseSource interface {
	Generate() string
}
