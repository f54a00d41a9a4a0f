package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	_ "github.com/shenikar/vehicle_gatepass/docs"
	"github.com/shenikar/vehicle_gatepass/internal/app"
	v1 "github.com/shenikar/vehicle_gatepass/internal/handler/http/v1"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(rt *cliEnv) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log := rt.cfg, rt.log

			// Контекст для graceful shutdown
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := app.New(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer application.Close()

			application.StartBackground(ctx)

			handler := v1.NewHandler(v1.Services{
				Violations:    application.Violations,
				Notifications: application.Notifications,
				Passes:        application.Passes,
				Gate:          application.Gate,
			}, log, cfg)

			// Настройка Gin роутера
			router := gin.Default()
			handler.RegisterRoutes(router.Group("/api/v1"))
			router.GET("/metrics", gin.WrapH(promhttp.Handler()))
			router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

			srv := &http.Server{
				Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			serverErr := make(chan error, 1)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					serverErr <- err
				}
				close(serverErr)
			}()
			log.WithField("backend", cfg.StorageBackend).Infof("HTTP server started on port %s", cfg.HTTPPort)

			select {
			case err := <-serverErr:
				if err != nil {
					return fmt.Errorf("error starting HTTP server: %w", err)
				}
				return nil
			case <-ctx.Done():
			}
			log.Info("Received shutdown signal, shutting down server...")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("server forced to shutdown: %w", err)
			}

			log.Info("Server gracefully stopped")
			return nil
		},
	}
}
