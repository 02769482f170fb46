package main

import (
	"context"
	"fmt"

	"jobsync/internal/app"
	"jobsync/internal/delivery/http/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	rankUser       string
	rankMaxReasons int
)

var rankCmd = &cobra.Command{
	Use:   "rank",
	Short: "Print the ranked job matches for a job seeker",
	RunE: func(cmd *cobra.Command, _ []string) error {
		userID, err := uuid.Parse(rankUser)
		if err != nil {
			return fmt.Errorf("invalid --user: %w", err)
		}
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			matches, err := c.Matching.RankJobsForSeeker(ctx, userID)
			if err != nil {
				return err
			}
			return printJSON(cmd.OutOrStdout(), dto.NewMatchListResponse(matches, rankMaxReasons))
		})
	},
}

func init() {
	rootCmd.AddCommand(rankCmd)

	rankCmd.Flags().StringVarP(&rankUser, "user", "u", "", "job seeker user id")
	rankCmd.Flags().IntVar(&rankMaxReasons, "max-reasons", 0, "keep at most this many reasons per match (0 keeps all)")
	_ = rankCmd.MarkFlagRequired("user")
}
