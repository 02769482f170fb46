package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"jobsync/internal/app"
	"jobsync/internal/config"
	"jobsync/internal/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const appName = "matchctl"

var errNeedsPostgres = errors.New("this command requires STORE_DRIVER=postgres")

var (
	debugLogs bool
	jsonLogs  bool

	rootCmd = &cobra.Command{
		Use:           appName,
		Short:         "matchctl runs maintenance and matching tasks against the jobsync store",
		SilenceUsage:  true,
	}
)

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&debugLogs, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&jsonLogs, "json", "j", false, "json format for logging")
}

// withContainer loads configuration, builds the container and hands it to fn.
func withContainer(cmd *cobra.Command, fn func(ctx context.Context, c *app.Container) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lg, err := logger.New(jsonLogs || cfg.Log.JSON, debugLogs || cfg.Log.Debug)
	if err != nil {
		return fmt.Errorf("creating a logger: %w", err)
	}
	defer func() { _ = lg.Sync() }()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	c, err := app.NewContainer(ctx, cfg, lg)
	if err != nil {
		return err
	}
	defer func() {
		if err := c.Close(); err != nil {
			lg.Warn("cleanup error", zap.Error(err))
		}
	}()

	return fn(ctx, c)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
