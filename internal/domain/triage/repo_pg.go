package triage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// pgHistoryRepo persists the diagnosis log in Postgres. Id assignment is
// delegated to a BIGSERIAL column, which makes the increment-and-append
// atomic at the database level.
type pgHistoryRepo struct {
	pool *pgxpool.Pool
}

// NewPGHistoryRepo returns a Postgres-backed history log.
func NewPGHistoryRepo(pool *pgxpool.Pool) HistoryRepository {
	return &pgHistoryRepo{pool: pool}
}

// EnsureHistorySchema creates the diagnosis_history table if it is missing.
func EnsureHistorySchema(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS diagnosis_history (
			id             BIGSERIAL PRIMARY KEY,
			symptoms       TEXT NOT NULL,
			severity_tier  TEXT NOT NULL,
			recommendation TEXT NOT NULL,
			risk_score     INT NOT NULL,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("ensure diagnosis_history schema: %w", err)
	}
	return nil
}

func (r *pgHistoryRepo) Append(ctx context.Context, e *HistoryEntry) error {
	query := `
		INSERT INTO diagnosis_history (symptoms, severity_tier, recommendation, risk_score, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	err := r.pool.QueryRow(ctx, query,
		e.Symptoms, e.SeverityTier, e.Recommendation, e.RiskScore, e.Timestamp,
	).Scan(&e.ID)
	if err != nil {
		return fmt.Errorf("append history entry: %w", err)
	}
	return nil
}

func (r *pgHistoryRepo) List(ctx context.Context) ([]*HistoryEntry, error) {
	query := `
		SELECT id, symptoms, severity_tier, recommendation, risk_score, created_at
		FROM diagnosis_history
		ORDER BY id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer rows.Close()

	var entries []*HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.Symptoms, &e.SeverityTier, &e.Recommendation, &e.RiskScore, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan history entry: %w", err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

func (r *pgHistoryRepo) GetByID(ctx context.Context, id int64) (*HistoryEntry, error) {
	query := `
		SELECT id, symptoms, severity_tier, recommendation, risk_score, created_at
		FROM diagnosis_history
		WHERE id = $1`
	var e HistoryEntry
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&e.ID, &e.Symptoms, &e.SeverityTier, &e.Recommendation, &e.RiskScore, &e.Timestamp)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get history entry: %w", err)
	}
	return &e, nil
}

func (r *pgHistoryRepo) Clear(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, `TRUNCATE diagnosis_history RESTART IDENTITY`); err != nil {
		return fmt.Errorf("clear history: %w", err)
	}
	return nil
}
