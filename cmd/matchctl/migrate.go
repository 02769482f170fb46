package main

import (
	"context"

	"jobsync/internal/app"
	"jobsync/internal/database/migration"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending SQL migrations",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			if c.DB == nil {
				return errNeedsPostgres
			}
			r := migration.Runner{Logger: c.Logger.Named("migration")}
			return r.Run(ctx, c.DB.SQLDB())
		})
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
