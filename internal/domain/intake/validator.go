package intake

import (
	"strings"
	"unicode/utf8"
)

// Validate runs the full validation chain over a report: field-level range
// checks first, then text-quality heuristics, then cross-field plausibility
// rules. Checks run in a fixed order and stop at the first failure so error
// reporting is deterministic. The only mutation is trimming whitespace from
// the symptom text.
func Validate(r *SymptomReport, rules *Rules) *ValidationError {
	r.Symptoms = strings.TrimSpace(r.Symptoms)

	if err := validateFields(r); err != nil {
		return err
	}
	if err := validateTextQuality(r.Symptoms, rules); err != nil {
		return err
	}
	return validateCrossField(r, rules)
}

func validateFields(r *SymptomReport) *ValidationError {
	if utf8.RuneCountInString(r.Symptoms) < MinSymptomsLength {
		return newError("symptoms", KindTextTooShort,
			"symptom description must be at least %d characters", MinSymptomsLength)
	}
	if r.Age != nil && (*r.Age < MinAge || *r.Age > MaxAge) {
		return newError("age", KindOutOfRange,
			"age must be between %d and %d, got %d", MinAge, MaxAge, *r.Age)
	}
	if err := ValidateBloodPressure(r.BloodPressure); err != nil {
		return err
	}
	if r.Severity != nil && (*r.Severity < MinSeverity || *r.Severity > MaxSeverity) {
		return newError("severity", KindOutOfRange,
			"severity must be between %d and %d, got %d", MinSeverity, MaxSeverity, *r.Severity)
	}
	if r.HeartRate != nil && (*r.HeartRate < MinHeartRate || *r.HeartRate > MaxHeartRate) {
		return newError("heart_rate", KindOutOfRange,
			"heart rate must be between %d and %d bpm, got %d", MinHeartRate, MaxHeartRate, *r.HeartRate)
	}
	if r.Temperature != nil && (*r.Temperature < MinTemperature || *r.Temperature > MaxTemperature) {
		return newError("temperature", KindOutOfRange,
			"temperature must be between %.1f and %.1f Fahrenheit, got %.1f", MinTemperature, MaxTemperature, *r.Temperature)
	}
	if !IsValidDuration(r.Duration) {
		return newError("duration", KindInvalidValue,
			"duration must be one of \"hours\", \"1 day\", \"2-3 days\", \"week+\", got %q", r.Duration)
	}
	return nil
}

func validateTextQuality(symptoms string, rules *Rules) *ValidationError {
	lower := strings.ToLower(symptoms)

	// The whole text has to BE a filler phrase, not merely contain one:
	// "intestinal" or "nonetheless" inside a real description is fine.
	for _, phrase := range rules.SpamPhrases {
		if lower == phrase {
			return newError("symptoms", KindSpamText,
				"please provide a real symptom description, not filler text like %q", phrase)
		}
	}

	words := strings.Fields(lower)
	if len(words) > 3 {
		distinct := make(map[string]bool, len(words))
		for _, w := range words {
			distinct[w] = true
		}
		ratio := float64(len(distinct)) / float64(len(words))
		if ratio < rules.MinUniqueWordRatio {
			return newError("symptoms", KindRepetitiveText,
				"description repeats the same words too often (unique-word ratio %.2f)", ratio)
		}
	}

	if strings.Count(symptoms, "!") > rules.MaxPunctuationRepeat ||
		strings.Count(symptoms, "?") > rules.MaxPunctuationRepeat {
		return newError("symptoms", KindExcessivePunctuation,
			"description uses more than %d '!' or '?' characters", rules.MaxPunctuationRepeat)
	}
	return nil
}

func validateCrossField(r *SymptomReport, rules *Rules) *ValidationError {
	lower := strings.ToLower(r.Symptoms)

	if r.Age != nil && *r.Age < 12 {
		if term := containsAny(lower, rules.AdultOnlyTerms); term != "" {
			return newError("symptoms", KindAgeSymptomMismatch,
				"symptom %q is not plausible for a patient aged %d", term, *r.Age)
		}
	}
	if r.Age != nil && *r.Age > 70 && r.Severity != nil && *r.Severity < 3 {
		if term := containsAny(lower, rules.HighAcuityTerms); term != "" {
			return newError("symptoms", KindAgeSymptomMismatch,
				"high-acuity symptom %q contradicts a self-reported severity of %d for a patient aged %d", term, *r.Severity, *r.Age)
		}
	}
	if r.Severity != nil && *r.Severity >= 8 {
		if containsAny(lower, rules.IntensityTerms) == "" {
			return newError("symptoms", KindSeverityTextMismatch,
				"severity %d requires the description to mention intensity (e.g. severe, unbearable, intense)", *r.Severity)
		}
	}
	if r.Severity != nil && *r.Severity <= 3 {
		if term := containsAny(lower, rules.EmergencyTerms); term != "" {
			return newError("symptoms", KindSeverityTextMismatch,
				"emergency symptom %q contradicts a self-reported severity of %d", term, *r.Severity)
		}
	}
	return nil
}

// containsAny returns the first term found as a substring of text, or "".
func containsAny(text string, terms []string) string {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return term
		}
	}
	return ""
}
