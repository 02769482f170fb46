package seeder

import (
	"context"
	"fmt"

	"jobsync/internal/database"

	"github.com/google/uuid"
)

type JobsSeeder struct{}

func (JobsSeeder) Name() string { return "jobs" }

func (JobsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "jobs", "id", "recruiter_id", "title", "skills_required", "status"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	items := []struct {
		ID          uuid.UUID
		Title       string
		Department  string
		Location    string
		JobType     string
		Skills      []string
		SalaryMin   float64
		SalaryMax   float64
		CompanySize string
		Industry    string
		WorkEnv     []string
		Culture     []string
		Experience  int
		Status      string
	}{
		{
			ID: demoJobBackend, Title: "Senior Backend Engineer", Department: "Engineering",
			Location: "San Francisco, CA", JobType: "full-time",
			Skills:    []string{"Go", "PostgreSQL", "Redis", "Kubernetes"},
			SalaryMin: 140000, SalaryMax: 180000, CompanySize: "51-200", Industry: "Technology",
			WorkEnv: []string{"hybrid"}, Culture: []string{"collaborative", "innovative"},
			Experience: 5, Status: "active",
		},
		{
			ID: demoJobPlatform, Title: "Platform Engineer", Department: "Infrastructure",
			Location: "Remote", JobType: "full-time",
			Skills:    []string{"Go", "Terraform", "AWS"},
			SalaryMin: 120000, SalaryMax: 160000, CompanySize: "201-500", Industry: "Technology",
			WorkEnv: []string{"remote"}, Culture: []string{"autonomous"},
			Experience: 3, Status: "active",
		},
		{
			ID: demoJobDesign, Title: "Product Designer", Department: "Design",
			Location: "New York, NY", JobType: "contract",
			Skills:    []string{"Figma", "Prototyping", "User Research"},
			SalaryMin: 90000, SalaryMax: 110000, CompanySize: "11-50", Industry: "Media",
			WorkEnv: []string{"onsite"}, Culture: []string{"creative"},
			Experience: 2, Status: "active",
		},
		{
			ID: demoJobClosed, Title: "Data Engineer", Department: "Data",
			Location: "Austin, TX", JobType: "full-time",
			Skills:    []string{"Python", "Spark"},
			SalaryMin: 130000, SalaryMax: 150000, CompanySize: "1000+", Industry: "Finance",
			Experience: 4, Status: "closed",
		},
	}

	for _, it := range items {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO jobs (
				id, recruiter_id, title, department, location, job_type, skills_required,
				salary_min, salary_max, company_size, industry, work_environment, company_culture,
				experience_required, status
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
			ON CONFLICT (id) DO NOTHING`,
			it.ID, DemoRecruiterID, it.Title, it.Department, it.Location, it.JobType, it.Skills,
			it.SalaryMin, it.SalaryMax, it.CompanySize, it.Industry, it.WorkEnv, it.Culture,
			it.Experience, it.Status,
		)
		if err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
