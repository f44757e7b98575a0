package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dscvit/dscv/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:           "dscv",
		Short:         "Session identity and user record service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "dotenv files to load before reading the environment (default .env)")

	root.AddCommand(
		&cobra.Command{
			Use:   "serve",
			Short: "Run the HTTP server",
			RunE: func(cmd *cobra.Command, _ []string) error {
				cfg, err := app.LoadConfig(envFiles...)
				if err != nil {
					return err
				}
				log, err := app.NewLogger(cfg)
				if err != nil {
					return err
				}
				return app.Serve(cmd.Context(), cfg, log)
			},
		},
		newMigrateCmd(&envFiles),
	)

	return root
}

func newMigrateCmd(envFiles *[]string) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := app.LoadConfig(*envFiles...)
			if err != nil {
				return err
			}
			if dir != "" {
				cfg.Postgres.MigrationsPath = dir
			}
			log, err := app.NewLogger(cfg)
			if err != nil {
				return err
			}
			if err := app.Migrate(cmd.Context(), cfg, log, dir != ""); err != nil {
				return err
			}
			log.InfoContext(cmd.Context(), "migrations applied")
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "read migrations from this directory instead of the embedded set")

	return cmd
}
