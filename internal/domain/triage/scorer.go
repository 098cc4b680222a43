package triage

import "github.com/asclepius/asclepius/internal/domain/intake"

// MaxRiskScore caps the additive risk score.
const MaxRiskScore = 100

// Score derives a bounded risk score, an urgency level, and a patient age
// category from a validated report. It is a pure function of age, severity,
// heart rate, and temperature; it never fails on a validated report.
func Score(r *intake.SymptomReport) (int, Urgency, PatientCategory) {
	score := ageContribution(r.Age) + severityContribution(r.Severity) + vitalsContribution(r)
	if score > MaxRiskScore {
		score = MaxRiskScore
	}
	return score, urgencyFor(score), categoryFor(r.Age)
}

// ageContribution maps the patient age to a 0-30 point band. The very young
// and the very old carry the highest baseline risk.
func ageContribution(age *int) int {
	if age == nil {
		return 0
	}
	switch {
	case *age < 1:
		return 20
	case *age < 5:
		return 15
	case *age > 70:
		return 25
	case *age > 60:
		return 15
	default:
		return 5
	}
}

func severityContribution(severity *int) int {
	if severity == nil {
		return 0
	}
	return *severity * 4
}

// vitalsContribution adds independent bonuses for abnormal heart rate and
// abnormal temperature.
func vitalsContribution(r *intake.SymptomReport) int {
	points := 0
	if r.HeartRate != nil && (*r.HeartRate > 100 || *r.HeartRate < 60) {
		points += 15
	}
	if r.Temperature != nil && (*r.Temperature > 100.4 || *r.Temperature < 97.0) {
		points += 15
	}
	return points
}

// urgencyFor maps a risk score to an urgency level. Thresholds are inclusive
// lower bounds checked highest-first.
func urgencyFor(score int) Urgency {
	switch {
	case score >= 70:
		return UrgencyCritical
	case score >= 50:
		return UrgencyHigh
	case score >= 30:
		return UrgencyModerate
	default:
		return UrgencyLow
	}
}

// categoryFor maps an age to its half-open band, first match wins.
func categoryFor(age *int) PatientCategory {
	if age == nil {
		return CategoryUnknown
	}
	switch {
	case *age < 2:
		return CategoryInfant
	case *age < 12:
		return CategoryPediatric
	case *age < 18:
		return CategoryAdolescent
	case *age < 65:
		return CategoryAdult
	default:
		return CategoryGeriatric
	}
}
