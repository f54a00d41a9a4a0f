package main

import (
	"fmt"
	"os"

	"github.com/shenikar/vehicle_gatepass/internal/config"
	"github.com/shenikar/vehicle_gatepass/pkg/logger"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// @title Vehicle Gate Pass API
// @version 1.0
// @description Campus vehicle violations, penalties, gate notifications and visitor passes.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// cliEnv - конфигурация и логгер, общие для всех подкоманд
type cliEnv struct {
	cfg *config.Config
	log *logrus.Logger
}

func main() {
	rt := &cliEnv{}

	rootCmd := &cobra.Command{
		Use:   "gatepass",
		Short: "Vehicle gate pass and violation tracking service",
		Long: `gatepass records parking and traffic violations against license plates,
applies penalties, notifies guard dashboards and issues temporary visitor passes.

Running without a subcommand starts the HTTP server.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			rt.cfg = cfg
			rt.log = logger.New(cfg.LogLevel)
			return nil
		},
	}

	serve := serveCmd(rt)
	rootCmd.RunE = serve.RunE

	rootCmd.AddCommand(serve)
	rootCmd.AddCommand(migrateCmd(rt))
	rootCmd.AddCommand(purgeNotificationsCmd(rt))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
