package seeder

import (
	"context"
	"fmt"

	"jobsync/internal/database"
)

// ApplicationsSeeder inserts applications without insights so the refresh
// job has work to pick up.
type ApplicationsSeeder struct{}

func (ApplicationsSeeder) Name() string { return "applications" }

func (ApplicationsSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "applications", "id", "job_id", "applicant_id", "application_insights"); err != nil {
		return err
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	rows := [][3]any{
		{demoApplicationBackend, demoJobBackend, DemoSeekerUserID},
		{demoApplicationDesign, demoJobDesign, DemoDesignerUserID},
	}
	for _, r := range rows {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO applications (id, job_id, applicant_id, status)
			VALUES ($1, $2, $3, 'applied')
			ON CONFLICT DO NOTHING`,
			r[0], r[1], r[2],
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
