package intake

// Rules holds the keyword lists and text-quality thresholds used by the
// symptom validator. The lists are deliberately small and fixed; they are
// kept on a struct rather than hard-coded so deployments can substitute
// their own without touching the validation chain.
type Rules struct {
	// SpamPhrases are filler strings that mark a report as meaningless when
	// the whole text equals one of them.
	SpamPhrases []string

	// AdultOnlyTerms must not appear in reports for patients under 12.
	AdultOnlyTerms []string

	// HighAcuityTerms contradict a low self-reported severity in
	// geriatric patients.
	HighAcuityTerms []string

	// IntensityTerms: at least one must appear when severity >= 8.
	IntensityTerms []string

	// EmergencyTerms trigger emergency triage, and contradict a
	// self-reported severity <= 3.
	EmergencyTerms []string

	// MinUniqueWordRatio is the minimum distinct-word / total-word ratio
	// for reports longer than three words.
	MinUniqueWordRatio float64

	// MaxPunctuationRepeat is the maximum allowed count of '!' or '?'.
	MaxPunctuationRepeat int
}

// DefaultRules returns the standard rule set.
func DefaultRules() *Rules {
	return &Rules{
		SpamPhrases:          []string{"test", "testing", "asdf", "none"},
		AdultOnlyTerms:       []string{"pregnancy", "pregnant", "erectile", "menopause", "prostate"},
		HighAcuityTerms:      []string{"chest pain", "stroke", "fall"},
		IntensityTerms:       []string{"severe", "unbearable", "intense", "excruciating", "worst"},
		EmergencyTerms:       []string{"chest pain", "can't breathe", "severe bleeding", "stroke"},
		MinUniqueWordRatio:   0.4,
		MaxPunctuationRepeat: 3,
	}
}
