package main

import (
	"context"

	"jobsync/internal/app"
	"jobsync/internal/database/seeder"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Insert demo jobs, job seekers and applications",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if c.DB == nil {
				return errNeedsPostgres
			}
			seeders := seeder.Defaults()
			r := seeder.Runner{Seeders: seeders, Logger: c.Logger.Named("seeder")}
			if err := r.Run(ctx, c.DB); err != nil {
				return err
			}
			c.Logger.Info("seed complete",
				zap.Int("seeders", len(seeders)),
				zap.String("demo_seeker_user_id", seeder.DemoSeekerUserID.String()),
			)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
