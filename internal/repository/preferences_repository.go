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

var ErrPreferencesNotFound = errors.New("matching preferences not found")

type PostgresPreferencesRepository struct {
	db database.DB
}

func NewPostgresPreferencesRepository(db database.DB) *PostgresPreferencesRepository {
	return &PostgresPreferencesRepository{db: db}
}

func (r *PostgresPreferencesRepository) GetMatchingPreferences(ctx context.Context, jobSeekerID uuid.UUID) (seeker.Preferences, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, job_seeker_id, salary_weight, location_weight, company_culture_weight,
			growth_opportunities_weight, work_life_balance_weight, role_responsibilities_weight
		 FROM job_matching_preferences
		 WHERE job_seeker_id = $1`,
		jobSeekerID,
	)

	var p seeker.Preferences
	if err := row.Scan(
		&p.ID, &p.JobSeekerID, &p.SalaryWeight, &p.LocationWeight, &p.CompanyCultureWeight,
		&p.GrowthOpportunitiesWeight, &p.WorkLifeBalanceWeight, &p.RoleResponsibilitiesWeight,
	); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return seeker.Preferences{}, ErrPreferencesNotFound
		}
		return seeker.Preferences{}, err
	}
	return p, nil
}
