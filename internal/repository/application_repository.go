package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"jobsync/internal/database"
	"jobsync/internal/domain/application"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrApplicationNotFound = errors.New("application not found")

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) GetApplication(ctx context.Context, id uuid.UUID) (application.Application, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_id, applicant_id, COALESCE(status, ''), applied_at, application_insights, insight_checked_at
		 FROM applications
		 WHERE id = $1`,
		id,
	)

	var a application.Application
	var insights []byte
	if err := row.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.AppliedAt, &insights, &a.InsightCheckedAt); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return application.Application{}, ErrApplicationNotFound
		}
		return application.Application{}, err
	}
	a.Insights = insights
	return a, nil
}

func (r *PostgresApplicationRepository) ListPendingInsights(ctx context.Context, limit int) ([]application.Application, error) {
	if limit <= 0 {
		limit = 100
	}
	if limit > 1000 {
		limit = 1000
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, job_id, applicant_id, COALESCE(status, ''), applied_at, insight_checked_at
		 FROM applications
		 WHERE application_insights IS NULL
		 ORDER BY insight_checked_at ASC NULLS FIRST, applied_at ASC NULLS LAST, id ASC
		 LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.Status, &a.AppliedAt, &a.InsightCheckedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresApplicationRepository) SaveInsight(ctx context.Context, id uuid.UUID, insight json.RawMessage) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications
		 SET application_insights = $1::jsonb, insight_checked_at = NULL, updated_at = now()
		 WHERE id = $2`,
		string(insight), id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

// MarkInsightUnavailable stamps an application whose insight could not be
// computed so the next pending scan reaches newer applications first.
func (r *PostgresApplicationRepository) MarkInsightUnavailable(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE applications
		 SET insight_checked_at = now()
		 WHERE id = $1 AND application_insights IS NULL`,
		id,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrApplicationNotFound
	}
	return nil
}
