package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/okian/fittrack/internal/adapters/output"
	app "github.com/okian/fittrack/internal/app"
	"github.com/okian/fittrack/internal/config"
	"github.com/okian/fittrack/pkg/logger"
	"github.com/okian/fittrack/pkg/metrics"
)

func main() {
	// Initialize logging
	if err := logger.Init(); err != nil {
		// Use fmt for initialization errors since logger isn't available yet
		fmt.Fprintln(os.Stderr, "failed to initialize logging:", err)
		os.Exit(1)
	}

	// Root context with cancel on SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	// Load configuration (defaults -> optional file -> env)
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Get().Error(ctx, "failed to load config", logger.Error(err))
		stop()
		os.Exit(1)
	}

	code := 0
	if err := run(ctx, cfg, os.Stdout); err != nil {
		logger.Get().Error(ctx, "run failed", logger.Error(err))
		code = 1
	}

	stop()
	if err := logger.Sync(); err != nil {
		fmt.Fprintln(os.Stderr, "failed to close log file:", err)
	}
	os.Exit(code)
}

// run summarizes the configured batch to stdout and exports metrics.
func run(ctx context.Context, cfg *config.Config, stdout io.Writer) error {
	if err := setupLogging(cfg); err != nil {
		return err
	}
	log := logger.Get()

	// Apply configured log level (fallback to info on invalid input)
	if err := logger.SetLevelString(cfg.LogLevel); err != nil {
		log.Warn(ctx, "invalid log_level; falling back to info", logger.String("log_level", cfg.LogLevel), logger.Error(err))
		_ = logger.SetLevelString("info")
	}

	policy, err := app.ParseErrorPolicy(cfg.ErrorPolicy.String())
	if err != nil {
		return err
	}

	svc := app.New(
		app.WithLogger(log.Named("service")),
		app.WithErrorPolicy(policy),
		app.WithDedupeSize(cfg.DedupeSize),
		app.WithOutput(stdout, output.NewWriter(cfg.OutputFormat)),
	)

	report, procErr := svc.Process(ctx, cfg.Batch())
	log.Debug(ctx, "batch report",
		logger.Int("summarized", report.Summarized),
		logger.Int("failed", report.Failed),
		logger.Int("duplicates", report.Duplicates),
	)

	if cfg.MetricsFile != "" {
		if err := metrics.WriteTextfile(cfg.MetricsFile); err != nil {
			log.Error(ctx, "failed to write metrics textfile", logger.String("path", cfg.MetricsFile), logger.Error(err))
		}
	}

	return procErr
}

// setupLogging rebuilds the global logger with the configured format and destination.
func setupLogging(cfg *config.Config) error {
	opts := []logger.Option{logger.WithFormat(cfg.LogFormat)}
	if cfg.LogFile != "" {
		opts = append(opts, logger.WithFile(cfg.LogFile, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays))
	}
	if err := logger.Init(opts...); err != nil {
		return fmt.Errorf("initialize logging: %w", err)
	}
	return nil
}
