package triage

import (
	"strings"

	"github.com/asclepius/asclepius/internal/domain/intake"
)

// Tier confidences are fixed constants, not computed from input.
const (
	confidenceEmergency = 0.95
	confidenceSevere    = 0.80
	confidenceModerate  = 0.70
	confidenceMild      = 0.65
)

// Classify maps symptom text and self-reported severity to a severity tier,
// a canned recommendation, and a fixed confidence. Rules form a priority
// chain: the first match wins. Emergency keywords always dominate, whatever
// the severity value.
func Classify(r *intake.SymptomReport, rules *intake.Rules) (Tier, string, float64) {
	lower := strings.ToLower(r.Symptoms)
	for _, term := range rules.EmergencyTerms {
		if strings.Contains(lower, term) {
			return TierEmergency, RecommendationEmergency, confidenceEmergency
		}
	}
	if r.Severity != nil && *r.Severity >= 8 {
		return TierSevere, RecommendationSevere, confidenceSevere
	}
	if r.Severity != nil && *r.Severity >= 5 {
		return TierModerate, RecommendationModerate, confidenceModerate
	}
	return TierMild, RecommendationMild, confidenceMild
}
