package triage

import (
	"context"
	"fmt"
	"time"

	"github.com/asclepius/asclepius/internal/domain/intake"
	"github.com/asclepius/asclepius/internal/platform/metrics"
)

// Service orchestrates a single diagnosis request: validate the report,
// score and classify it, append the outcome to the history log, and return
// the combined result. Scoring and classification are total functions over
// validated reports, so any post-validation failure is an internal error,
// never a partial result.
type Service struct {
	history HistoryRepository
	rules   *intake.Rules
	now     func() time.Time
}

// NewService creates a diagnosis service. A nil rules falls back to the
// default rule set.
func NewService(history HistoryRepository, rules *intake.Rules) *Service {
	if rules == nil {
		rules = intake.DefaultRules()
	}
	return &Service{history: history, rules: rules, now: time.Now}
}

// Rules returns the rule set the service validates against.
func (s *Service) Rules() *intake.Rules {
	return s.rules
}

// Diagnose runs the full pipeline over a candidate report. A rejected report
// returns a *intake.ValidationError; no scoring happens for invalid input.
// The entry is appended before returning, so a caller abandoning the request
// still leaves the log consistent.
func (s *Service) Diagnose(ctx context.Context, r *intake.SymptomReport) (*Diagnosis, error) {
	if verr := intake.Validate(r, s.rules); verr != nil {
		metrics.RecordIntakeRejection(verr.Kind)
		return nil, verr
	}

	riskScore, urgency, category := Score(r)
	tier, recommendation, confidence := Classify(r, s.rules)

	d := &Diagnosis{
		SeverityTier:     tier,
		Recommendation:   recommendation,
		Confidence:       confidence,
		RiskScore:        riskScore,
		UrgencyLevel:     urgency,
		PatientCategory:  category,
		AnalyzedSymptoms: r.Symptoms,
	}

	entry := &HistoryEntry{
		Symptoms:       r.Symptoms,
		SeverityTier:   tier,
		Recommendation: recommendation,
		RiskScore:      riskScore,
		Timestamp:      s.now().UTC(),
	}
	if err := s.history.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("append diagnosis to history: %w", err)
	}

	metrics.RecordDiagnosis(string(tier), string(urgency))
	return d, nil
}

// History returns all past diagnoses in insertion order.
func (s *Service) History(ctx context.Context) ([]*HistoryEntry, error) {
	return s.history.List(ctx)
}

// HistoryEntry returns a single past diagnosis by id.
func (s *Service) HistoryEntry(ctx context.Context, id int64) (*HistoryEntry, error) {
	return s.history.GetByID(ctx, id)
}

// ClearHistory discards all entries and resets the id sequence. Clearing an
// empty log succeeds.
func (s *Service) ClearHistory(ctx context.Context) error {
	if err := s.history.Clear(ctx); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	metrics.RecordHistoryCleared()
	return nil
}
