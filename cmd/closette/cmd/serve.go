package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/donaldgifford/closette/internal/api"
	"github.com/donaldgifford/closette/internal/config"
	"github.com/donaldgifford/closette/internal/telemetry"
	"github.com/donaldgifford/closette/pkg/logger"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long: "Starts the HTTP API. Settings come from --config (optional), a .env file in\n" +
			"the working directory (optional) and the environment. Missing API keys are\n" +
			"logged and the affected provider returns no results.",
		Args: cobra.NoArgs,
		RunE: runServe,
	}
}

// loadServerConfig reads .env (without overriding the environment) and
// then the YAML config.
func loadServerConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadServerConfig()
	if err != nil {
		return err
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	slog.SetDefault(log)

	for _, key := range cfg.MissingKeys() {
		log.Warn("credential not configured, dependent component will return no data", "env", key)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTelemetry, err := telemetry.Setup(ctx, cfg.Telemetry, Version)
	if err != nil {
		return fmt.Errorf("setting up telemetry: %w", err)
	}

	svc, err := newSearchService(ctx, cfg, log)
	if err != nil {
		return err
	}
	for _, p := range svc.Providers() {
		log.Info("provider configured",
			"platform", p.Platform,
			"enabled", p.Enabled,
			"stubbed", p.Stubbed,
		)
	}

	srv := api.NewServer(cfg.Server, svc,
		api.WithLogger(log),
		api.WithVersion(Version),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := shutdownTelemetry(shutdownCtx); err != nil {
		log.Warn("flushing telemetry", "error", err)
	}

	log.Info("server stopped")
	return nil
}
