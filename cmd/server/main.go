package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/config"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/db"
	httpapi "github.com/Lozaine/Discod-Ticket-Dashboard/internal/http"
	"github.com/Lozaine/Discod-Ticket-Dashboard/internal/service"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "dashboard",
		Short:        "Discord ticket bot dashboard API",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cmd.Flags())
			if err != nil {
				return err
			}
			return run(cmd.Context(), cfg)
		},
	}
	rootCmd.Flags().String("port", "8080", "HTTP listen port")
	rootCmd.Flags().String("log-level", "info", "zerolog level (debug, info, warn, error)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config) error {
	zerolog.TimeFieldFormat = time.RFC3339
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := log.Level(level).With().Str("service", "discord-ticket-dashboard").Logger()

	store, err := db.New(ctx, db.Options{
		DatabaseURL:     cfg.DatabaseURL,
		MaxConns:        cfg.DBMaxConns,
		MaxConnIdleTime: cfg.DBMaxIdleTime,
		ConnectTimeout:  cfg.DBConnTimeout,
		AcquireTimeout:  cfg.DBAcquireWait,
	})
	if err != nil {
		logger.Error().Err(err).Msg("failed to connect db")
		return err
	}
	defer store.Close()

	if cfg.DashboardSecret == "" {
		logger.Warn().Msg("DASHBOARD_SECRET is empty, write endpoints are unauthenticated")
	}

	svc := service.NewDashboardService(store, logger)
	router := httpapi.Router(cfg, svc, store, logger)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error().Err(err).Msg("server error")
			return err
		}
	case <-quit:
	}

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error().Err(err).Msg("shutdown")
	}
	logger.Info().Msg("server stopped")
	return nil
}
