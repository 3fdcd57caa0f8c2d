// Package main provides the portfolio binary: it serves the portfolio page
// over HTTP, exports it as a static site, or checks the dataset.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ericfisherdev/portfolio/internal/adapter/driven/dataset"
	webhandler "github.com/ericfisherdev/portfolio/internal/adapter/driving/web"
	"github.com/ericfisherdev/portfolio/internal/application"
	"github.com/ericfisherdev/portfolio/internal/config"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "dev"

const appName = "portfolio"

func main() {
	if err := rootCmd().Execute(); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var envFile string

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Single-page cloud engineer portfolio",
		Long: `portfolio renders a single-page portfolio from a static dataset of
profile, experience, skills and certifications.

It can serve the page over HTTP, export it as a static site, or check the
dataset for data-quality problems. Configuration comes from PORTFOLIO_*
environment variables, optionally loaded from a .env file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadDotEnv(envFile)
		},
	}

	cmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Path to an optional .env file")

	cmd.AddCommand(serveCmd(), buildCmd(), checkCmd(), versionCmd())

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, version)
		},
	}
}

func buildCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Export the page as a static site",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			svc, err := newPortfolioService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			return webhandler.Export(cmd.Context(), svc, outDir, logger)
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "Output directory")

	return cmd
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the dataset and report data-quality problems",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			svc, err := newPortfolioService(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			problems := svc.Problems()
			out := cmd.OutOrStdout()
			for _, p := range problems {
				fmt.Fprintln(out, p)
			}
			if len(problems) > 0 {
				return fmt.Errorf("%d data-quality problem(s) found", len(problems))
			}

			fmt.Fprintf(out, "dataset ok: %d certifications\n", len(svc.Certifications()))
			return nil
		},
	}
}

// setup loads configuration and installs the default logger.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(logger)

	return cfg, logger, nil
}

// newPortfolioService loads the dataset, from PORTFOLIO_DATA_PATH when set or
// the embedded copy otherwise, and wraps it in a PortfolioService.
func newPortfolioService(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application.PortfolioService, error) {
	src := dataset.NewEmbeddedSource()
	if cfg.DataPath != "" {
		src = dataset.NewFileSource(cfg.DataPath)
	}

	portfolio, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset loaded",
		"origin", src.Origin(),
		"certifications", len(portfolio.Certifications),
		"experiences", len(portfolio.Experiences),
	)

	return application.NewPortfolioService(
		portfolio,
		application.DefaultStatsConfig(cfg.YearsActive),
		func() time.Time { return time.Now().UTC() },
		logger,
	), nil
}
