package main

import (
	"context"
	"fmt"

	"jobsync/internal/app"

	"github.com/spf13/cobra"
)

var refreshLimit int

var refreshCmd = &cobra.Command{
	Use:   "refresh-insights",
	Short: "Compute and store insights for applications that have none",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			n, err := c.Matching.RefreshPendingInsights(ctx, refreshLimit)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored %d insight(s)\n", n)
			return err
		})
	},
}

var flushCmd = &cobra.Command{
	Use:   "flush-cache",
	Short: "Drop every cached ranking",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			return c.Matching.InvalidateRankings(ctx)
		})
	},
}

func init() {
	rootCmd.AddCommand(refreshCmd, flushCmd)

	refreshCmd.Flags().IntVarP(&refreshLimit, "limit", "l", 100, "maximum applications to process")
}
