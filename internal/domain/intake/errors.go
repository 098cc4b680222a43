package intake

import "fmt"

// Validation error kinds. Each rejected report carries exactly one of these
// so callers can tell which rule failed without parsing the message.
const (
	KindTextTooShort         = "text-too-short"
	KindSpamText             = "spam-text"
	KindRepetitiveText       = "repetitive-text"
	KindExcessivePunctuation = "excessive-punctuation"
	KindInvalidFormat        = "invalid-format"
	KindOutOfRange           = "out-of-range"
	KindInconsistent         = "inconsistent"
	KindInvalidValue         = "invalid-value"
	KindAgeSymptomMismatch   = "age-symptom-mismatch"
	KindSeverityTextMismatch = "severity-text-mismatch"
)

// ValidationError describes a single failed validation rule: the offending
// field, the rule kind, and a human-readable explanation of the heuristic
// that was violated.
type ValidationError struct {
	Field   string `json:"field"`
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (%s)", e.Field, e.Message, e.Kind)
}

func newError(field, kind, format string, args ...interface{}) *ValidationError {
	return &ValidationError{
		Field:   field,
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
	}
}
