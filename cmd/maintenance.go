package main

import (
	"fmt"

	"github.com/shenikar/vehicle_gatepass/internal/app"
	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/spf13/cobra"
)

func migrateCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations for the postgres backend",
		Long: `Apply migrations from ./migrations. Only the postgres backend uses migrations;
the sqlite backend creates its table when the database is opened.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if rt.cfg.StorageBackend != config.BackendPostgres {
				rt.log.WithField("backend", rt.cfg.StorageBackend).Info("Backend has no migrations, nothing to do")
				return nil
			}
			return app.RunMigrations(rt.cfg, rt.log)
		},
	}
}

func purgeNotificationsCmd(rt *cliEnv) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "purge-notifications",
		Short: "Delete notifications older than the retention period",
		RunE: func(cmd *cobra.Command, args []string) error {
			application, err := app.New(cmd.Context(), rt.cfg, rt.log)
			if err != nil {
				return err
			}
			defer application.Close()

			removed, err := application.Notifications.PurgeOlderThan(cmd.Context(), days)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %d notification(s)\n", removed)
			return nil
		},
	}

	cmd.Flags().IntVar(&days, "days", 0, "age in days (defaults to NOTIFICATION_RETENTION_DAYS)")
	return cmd
}
