package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"flames.blue/internal/config"
	"flames.blue/internal/handlers"
	"flames.blue/internal/logging"
	"flames.blue/internal/markdown"
	"flames.blue/internal/services"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := auditPages(ctx, cfg, logger); err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           handlers.SetupRoutes(cfg, logger),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening",
			zap.String("addr", cfg.ServerAddr),
			zap.String("default_theme", cfg.DefaultTheme),
			zap.Strings("themes", cfg.Registry.Themes()),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// auditPages renders every theme once and logs what the audit finds.
// With STRICT_AUDIT set, errors stop the server from starting.
func auditPages(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	pages := services.NewPageService(cfg.Registry, markdown.New(), cfg.SceneURL, nil)
	for _, theme := range cfg.Registry.Themes() {
		rep, err := pages.Audit(ctx, theme)
		if err != nil {
			return fmt.Errorf("audit %s: %w", theme, err)
		}
		for _, issue := range rep.Issues {
			logger.Warn("page audit",
				zap.String("theme", theme),
				zap.String("severity", string(issue.Severity)),
				zap.String("code", issue.Code),
				zap.String("detail", issue.Message),
			)
		}
		if cfg.StrictAudit && rep.HasErrors() {
			return fmt.Errorf("audit %s: %d errors", theme, len(rep.Errors()))
		}
	}
	return nil
}
