package triage

import "time"

// Tier is the triage classifier's output category.
type Tier string

const (
	TierMild      Tier = "mild"
	TierModerate  Tier = "moderate"
	TierSevere    Tier = "severe"
	TierEmergency Tier = "emergency"
)

// Urgency is the four-level label derived from the risk score.
type Urgency string

const (
	UrgencyLow      Urgency = "LOW"
	UrgencyModerate Urgency = "MODERATE"
	UrgencyHigh     Urgency = "HIGH"
	UrgencyCritical Urgency = "CRITICAL"
)

// PatientCategory is the age-band label used for contextual rules.
type PatientCategory string

const (
	CategoryUnknown    PatientCategory = "UNKNOWN"
	CategoryInfant     PatientCategory = "INFANT"
	CategoryPediatric  PatientCategory = "PEDIATRIC"
	CategoryAdolescent PatientCategory = "ADOLESCENT"
	CategoryAdult      PatientCategory = "ADULT"
	CategoryGeriatric  PatientCategory = "GERIATRIC"
)

// Canned recommendations, one per tier.
const (
	RecommendationEmergency = "Call emergency services immediately or go to the nearest emergency room"
	RecommendationSevere    = "Seek medical attention within 4 hours"
	RecommendationModerate  = "Consider seeing a doctor within 24-48 hours"
	RecommendationMild      = "Monitor symptoms. Rest and stay hydrated. See a doctor if symptoms worsen."
)

// Diagnosis is the combined result of scoring and classifying a validated
// symptom report. It is derived state, never stored back onto the report.
type Diagnosis struct {
	SeverityTier     Tier            `json:"severity_tier"`
	Recommendation   string          `json:"recommendation"`
	Confidence       float64         `json:"confidence"`
	RiskScore        int             `json:"risk_score"`
	UrgencyLevel     Urgency         `json:"urgency_level"`
	PatientCategory  PatientCategory `json:"patient_category"`
	AnalyzedSymptoms string          `json:"analyzed_symptoms"`
}

// HistoryEntry is an immutable snapshot of one completed diagnosis.
type HistoryEntry struct {
	ID             int64     `db:"id" json:"id"`
	Symptoms       string    `db:"symptoms" json:"symptoms"`
	SeverityTier   Tier      `db:"severity_tier" json:"severity_tier"`
	Recommendation string    `db:"recommendation" json:"recommendation"`
	RiskScore      int       `db:"risk_score" json:"risk_score"`
	Timestamp      time.Time `db:"created_at" json:"timestamp"`
}
