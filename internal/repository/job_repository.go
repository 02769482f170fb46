package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobsync/internal/database"
	"jobsync/internal/domain/job"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrJobNotFound = errors.New("job not found")
)

const jobColumns = `id, recruiter_id, COALESCE(title, ''), COALESCE(department, ''), COALESCE(location, ''),
	COALESCE(job_type, ''), COALESCE(description, ''), COALESCE(skills_required, '{}'),
	salary_min::float8, salary_max::float8, company_size, industry,
	COALESCE(work_environment, '{}'), COALESCE(company_culture, '{}'),
	experience_required, COALESCE(status, ''), created_at`

type PostgresJobRepository struct {
	db database.DB
}

func NewPostgresJobRepository(db database.DB) *PostgresJobRepository {
	return &PostgresJobRepository{db: db}
}

// ListActiveJobs returns active jobs in insertion order.
func (r *PostgresJobRepository) ListActiveJobs(ctx context.Context) ([]job.Job, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+jobColumns+`
		 FROM jobs
		 WHERE status = $1
		 ORDER BY created_at ASC, id ASC`,
		job.StatusActive,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]job.Job, 0)
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, j)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresJobRepository) GetJob(ctx context.Context, jobID uuid.UUID) (job.Job, error) {
	row := r.db.QueryRow(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, jobID)
	j, err := scanJob(row)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return job.Job{}, ErrJobNotFound
		}
		return job.Job{}, err
	}
	return j, nil
}

func scanJob(row database.Row) (job.Job, error) {
	var j job.Job
	err := row.Scan(
		&j.ID, &j.RecruiterID, &j.Title, &j.Department, &j.Location,
		&j.JobType, &j.Description, &j.SkillsRequired,
		&j.SalaryMin, &j.SalaryMax, &j.CompanySize, &j.Industry,
		&j.WorkEnvironment, &j.CompanyCulture,
		&j.ExperienceRequired, &j.Status, &j.CreatedAt,
	)
	return j, err
}
