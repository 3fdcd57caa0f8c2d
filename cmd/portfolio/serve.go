package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/portfolio/internal/adapter/driven/mail"
	httphandler "github.com/ericfisherdev/portfolio/internal/adapter/driving/http"
	webhandler "github.com/ericfisherdev/portfolio/internal/adapter/driving/web"
	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/config"
	"github.com/ericfisherdev/portfolio/internal/metrics"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the portfolio over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, logger)
		},
	}
}

func serve(parent context.Context, cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	portfolioSvc, err := newPortfolioService(ctx, cfg, logger)
	if err != nil {
		return err
	}
	for _, p := range portfolioSvc.Problems() {
		logger.Warn("dataset problem", "error", p)
	}

	delivery := mail.NewSimulatedDelivery(cfg.ContactDelay, logger)
	contactSvc := application.NewContactService(delivery, logger)
	counter := application.Counter{Duration: cfg.CounterDuration, FPS: cfg.CounterFPS}
	m := metrics.New()

	mux := http.NewServeMux()

	apiHandler := httphandler.NewHandler(portfolioSvc, logger)
	httphandler.RegisterAPIRoutes(mux, apiHandler)

	webHandler := webhandler.NewHandler(portfolioSvc, contactSvc, counter, m, cfg.SecureCookies, logger)
	webhandler.RegisterRoutes(mux, webHandler)

	mux.Handle("GET /metrics", m.Handler())

	handler := httphandler.ApplyMiddleware(mux, m, logger)

	// WriteTimeout is left unset: counter streams are long-lived responses.
	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	logger.Info("portfolio started",
		"listen_addr", cfg.ListenAddr,
		"version", version,
		"years_active", cfg.YearsActive,
		"contact_delay", cfg.ContactDelay,
	)

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil {
			return err
		}
	}
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http server shutdown error", "error", err)
	}

	logger.Info("shutdown complete")
	return nil
}
