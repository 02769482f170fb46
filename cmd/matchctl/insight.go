package main

import (
	"context"
	"errors"
	"fmt"

	"jobsync/internal/app"
	"jobsync/internal/delivery/http/dto"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var errNoInsight = errors.New("no insight available")

var (
	insightJob       string
	insightApplicant string
)

var insightCmd = &cobra.Command{
	Use:   "insight",
	Short: "Print the application insight for an applicant and a job",
	RunE: func(cmd *cobra.Command, _ []string) error {
		jobID, err := uuid.Parse(insightJob)
		if err != nil {
			return fmt.Errorf("invalid --job: %w", err)
		}
		applicantID, err := uuid.Parse(insightApplicant)
		if err != nil {
			return fmt.Errorf("invalid --applicant: %w", err)
		}
		return withContainer(cmd, func(ctx context.Context, c *app.Container) error {
			insight, err := c.Matching.ApplicationInsight(ctx, jobID, applicantID)
			if err != nil {
				return err
			}
			if insight == nil {
				return errNoInsight
			}
			return printJSON(cmd.OutOrStdout(), dto.NewInsightResponse(*insight))
		})
	},
}

func init() {
	rootCmd.AddCommand(insightCmd)

	insightCmd.Flags().StringVar(&insightJob, "job", "", "job id")
	insightCmd.Flags().StringVar(&insightApplicant, "applicant", "", "applicant user id")
	_ = insightCmd.MarkFlagRequired("job")
	_ = insightCmd.MarkFlagRequired("applicant")
}
