package repository

import (
	"context"
	"database/sql"
	"errors"

	"jobsync/internal/database"
	"jobsync/internal/domain/seeker"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrProfileNotFound = errors.New("job seeker profile not found")

type PostgresProfileRepository struct {
	db database.DB
}

func NewPostgresProfileRepository(db database.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) GetJobSeekerProfile(ctx context.Context, userID uuid.UUID) (seeker.Profile, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, desired_job_title,
			COALESCE(desired_location, '{}'), COALESCE(job_type, '{}'),
			salary_min::float8, salary_max::float8,
			COALESCE(company_types, '{}'), COALESCE(company_sizes, '{}'), COALESCE(industries, '{}'),
			COALESCE(work_environment, '{}'), COALESCE(company_culture, '{}'),
			COALESCE(technical_skills, '{}'), COALESCE(soft_skills, '{}'),
			years_experience, updated_at
		 FROM job_seeker_profiles
		 WHERE user_id = $1`,
		userID,
	)

	var p seeker.Profile
	if err := row.Scan(
		&p.ID, &p.UserID, &p.DesiredJobTitle,
		&p.DesiredLocation, &p.JobTypes,
		&p.SalaryMin, &p.SalaryMax,
		&p.CompanyTypes, &p.CompanySizes, &p.Industries,
		&p.WorkEnvironment, &p.CompanyCulture,
		&p.TechnicalSkills, &p.SoftSkills,
		&p.YearsExperience, &p.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return seeker.Profile{}, ErrProfileNotFound
		}
		return seeker.Profile{}, err
	}
	return p, nil
}
