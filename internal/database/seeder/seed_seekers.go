package seeder

import (
	"context"
	"fmt"

	"jobsync/internal/database"

	"github.com/google/uuid"
)

// SeekersSeeder inserts demo job seeker profiles. Only the first profile gets
// stored preferences so the default weights path is exercised by the second.
type SeekersSeeder struct{}

func (SeekersSeeder) Name() string { return "job_seekers" }

func (SeekersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "job_seeker_profiles", "id", "user_id", "desired_location", "technical_skills"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "job_matching_preferences", "job_seeker_id", "salary_weight", "role_responsibilities_weight"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	profiles := []struct {
		ID        uuid.UUID
		UserID    uuid.UUID
		Title     string
		Locations []string
		JobTypes  []string
		SalaryMin float64
		SalaryMax float64
		Sizes     []string
		Industry  []string
		WorkEnv   []string
		Culture   []string
		Technical []string
		Soft      []string
		Years     int
	}{
		{
			ID: DemoSeekerProfileID, UserID: DemoSeekerUserID, Title: "Backend Engineer",
			Locations: []string{"San Francisco", "Remote"}, JobTypes: []string{"full-time"},
			SalaryMin: 130000, SalaryMax: 170000,
			Sizes: []string{"51-200", "201-500"}, Industry: []string{"Technology"},
			WorkEnv: []string{"hybrid", "remote"}, Culture: []string{"collaborative", "autonomous"},
			Technical: []string{"Go", "PostgreSQL", "Redis", "AWS"}, Soft: []string{"Mentoring"},
			Years: 6,
		},
		{
			ID: DemoDesignerProfileID, UserID: DemoDesignerUserID, Title: "Product Designer",
			Locations: []string{"New York"}, JobTypes: []string{"contract", "part-time"},
			SalaryMin: 85000, SalaryMax: 105000,
			Industry: []string{"Media"}, Culture: []string{"creative"},
			Technical: []string{"Figma", "Prototyping"}, Soft: []string{"User Research"},
			Years: 3,
		},
	}

	for _, p := range profiles {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO job_seeker_profiles (
				id, user_id, desired_job_title, desired_location, job_type, salary_min, salary_max,
				company_sizes, industries, work_environment, company_culture, technical_skills,
				soft_skills, years_experience
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			ON CONFLICT (id) DO NOTHING`,
			p.ID, p.UserID, p.Title, p.Locations, p.JobTypes, p.SalaryMin, p.SalaryMax,
			p.Sizes, p.Industry, p.WorkEnv, p.Culture, p.Technical,
			p.Soft, p.Years,
		)
		if err != nil {
			return err
		}
	}

	_, err = tx.Exec(
		ctx,
		`INSERT INTO job_matching_preferences (
			job_seeker_id, salary_weight, location_weight, company_culture_weight,
			growth_opportunities_weight, work_life_balance_weight, role_responsibilities_weight
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (job_seeker_id) DO NOTHING`,
		DemoSeekerProfileID, 8, 6, 5, 7, 7, 10,
	)
	if err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
