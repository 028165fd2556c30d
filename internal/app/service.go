// Package service runs batches of sensor packages through the workout
// dispatcher and renders their summaries.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/okian/fittrack/internal/adapters/output"
	"github.com/okian/fittrack/internal/domain/dedupe"
	"github.com/okian/fittrack/internal/domain/model"
	"github.com/okian/fittrack/internal/domain/summary"
	"github.com/okian/fittrack/internal/domain/training"
	"github.com/okian/fittrack/pkg/logger"
	"github.com/okian/fittrack/pkg/metrics"
)

// Batch outcomes reported to metrics.
const (
	outcomeCompleted = "completed"
	outcomeHalted    = "halted"
	outcomeCanceled  = "canceled"
	outcomeFailed    = "failed"
)

// Result is the outcome of one package in a batch.
type Result struct {
	PackageID string
	Code      string
	Summary   summary.Summary
	Err       error
}

// OK reports whether the package produced a summary.
func (r Result) OK() bool { return r.Err == nil }

// Report collects the results of one batch in input order.
type Report struct {
	Results    []Result
	Summarized int
	Failed     int
	Duplicates int
}

// Summaries returns the summaries of the successful packages in input order.
func (r Report) Summaries() []summary.Summary {
	out := make([]summary.Summary, 0, r.Summarized)
	for _, res := range r.Results {
		if res.OK() {
			out = append(out, res.Summary)
		}
	}
	return out
}

// Service summarizes batches of sensor packages.
type Service struct {
	mu sync.Mutex

	// Core components
	deduper dedupe.Deduper
	metrics *metrics.Manager
	writer  output.Writer
	out     io.Writer

	// Configuration
	policy     ErrorPolicy
	dedupeSize int

	// State
	batches    int
	summarized int
	failed     int

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithErrorPolicy sets what a rejected package does to its batch.
func WithErrorPolicy(policy ErrorPolicy) Option {
	return func(s *Service) {
		if policy == PolicyHalt || policy == PolicySkip {
			s.policy = policy
		}
	}
}

// WithDedupeSize bounds the remembered package ids. 0 or less keeps every id.
func WithDedupeSize(size int) Option {
	return func(s *Service) {
		s.dedupeSize = size
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(logger logger.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetrics sets the metrics manager. The process wide manager is used otherwise.
func WithMetrics(m *metrics.Manager) Option {
	return func(s *Service) {
		if m != nil {
			s.metrics = m
		}
	}
}

// WithOutput makes the service write every summary to out as it is produced.
func WithOutput(out io.Writer, writer output.Writer) Option {
	return func(s *Service) {
		if out != nil && writer != nil {
			s.out = out
			s.writer = writer
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		policy:     PolicyHalt,
		dedupeSize: 10_000,
		metrics:    metrics.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = logger.Named("service")
	}
	s.deduper = dedupe.NewInMemoryDeduper(
		dedupe.WithMaxSize(s.dedupeSize),
	)

	return s
}

// Process summarizes packages in input order. Packages whose id was already
// processed are skipped. Under PolicyHalt the first rejected package stops the
// batch and the returned error wraps ErrBatchHalted and the cause; the report
// still holds everything produced before it. Under PolicySkip rejected
// packages are recorded in the report and the error is nil.
func (s *Service) Process(ctx context.Context, packages []model.Package) (Report, error) {
	start := time.Now()
	report := Report{Results: make([]Result, 0, len(packages))}

	s.logger.Debug(ctx, "processing batch",
		logger.Int("packages", len(packages)),
		logger.String("policy", s.policy.String()),
	)

	for i, p := range packages {
		if err := ctx.Err(); err != nil {
			s.finishBatch(ctx, outcomeCanceled, start, report)
			return report, err
		}

		p = p.WithID()
		s.metrics.RecordPackageReceived()

		if s.deduper.SeenAndRecord(ctx, p.ID) {
			s.metrics.RecordPackageDuplicate()
			s.logger.Debug(ctx, "duplicate package detected, skipping",
				logger.String("packageID", p.ID),
				logger.String("code", p.Code),
			)
			report.Duplicates++
			report.Results = append(report.Results, Result{
				PackageID: p.ID,
				Code:      p.Code,
				Err:       fmt.Errorf("%w: %s", ErrDuplicatePackage, p.ID),
			})
			continue
		}

		sum, err := s.summarize(p)
		if err != nil {
			// A rejected package may be resent once corrected.
			s.deduper.Unrecord(ctx, p.ID)
			report.Failed++
			report.Results = append(report.Results, Result{PackageID: p.ID, Code: p.Code, Err: err})

			if s.policy == PolicyHalt {
				s.logger.Error(ctx, "package rejected, halting batch",
					logger.Int("index", i),
					logger.String("packageID", p.ID),
					logger.String("code", p.Code),
					logger.Error(err),
				)
				s.finishBatch(ctx, outcomeHalted, start, report)
				return report, fmt.Errorf("%w at package %d (%s): %w", ErrBatchHalted, i, p.ID, err)
			}

			s.logger.Warn(ctx, "package rejected, skipping",
				logger.Int("index", i),
				logger.String("packageID", p.ID),
				logger.String("code", p.Code),
				logger.Error(err),
			)
			continue
		}

		if s.writer != nil {
			if err := s.writer.Write(s.out, sum); err != nil {
				s.deduper.Unrecord(ctx, p.ID)
				s.finishBatch(ctx, outcomeFailed, start, report)
				return report, fmt.Errorf("package %s: %w", p.ID, err)
			}
		}

		report.Summarized++
		report.Results = append(report.Results, Result{PackageID: p.ID, Code: p.Code, Summary: sum})
	}

	s.finishBatch(ctx, outcomeCompleted, start, report)
	return report, nil
}

// Summarize builds and summarizes a single package. It bypasses duplicate
// detection and the error policy.
func (s *Service) Summarize(ctx context.Context, p model.Package) (summary.Summary, error) {
	s.metrics.RecordPackageReceived()
	sum, err := s.summarize(p)
	if err != nil {
		s.logger.Debug(ctx, "package rejected",
			logger.String("code", p.Code),
			logger.Error(err),
		)
		return summary.Summary{}, err
	}
	return sum, nil
}

func (s *Service) summarize(p model.Package) (summary.Summary, error) {
	t, err := training.Build(p.Code, p.Data)
	if err != nil {
		s.metrics.RecordPackageError(p.Code, errorType(err))
		return summary.Summary{}, err
	}

	sum := summary.Summarize(t)
	s.metrics.RecordSummary(sum.Kind, sum.Duration, sum.Distance, sum.Calories)
	return sum, nil
}

func (s *Service) finishBatch(ctx context.Context, outcome string, start time.Time, report Report) {
	elapsed := time.Since(start)
	s.metrics.RecordBatch(outcome, float64(elapsed.Microseconds())/1000)

	s.mu.Lock()
	s.batches++
	s.summarized += report.Summarized
	s.failed += report.Failed
	s.mu.Unlock()

	s.logger.Info(ctx, "batch finished",
		logger.String("outcome", outcome),
		logger.Int("summarized", report.Summarized),
		logger.Int("failed", report.Failed),
		logger.Int("duplicates", report.Duplicates),
		logger.Any("elapsed", elapsed),
	)
}

// errorType maps a dispatcher error to a metrics label.
func errorType(err error) string {
	switch {
	case errors.Is(err, training.ErrUnknownWorkoutKind):
		return "unknown_kind"
	case errors.Is(err, training.ErrInvalidArgumentCount):
		return "argument_count"
	case errors.Is(err, training.ErrInvalidArgument):
		return "invalid_argument"
	default:
		return "other"
	}
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	return map[string]interface{}{
		"policy":     s.policy.String(),
		"dedupeSize": s.dedupeSize,
		"seen":       s.deduper.Size(),
		"batches":    s.batches,
		"summarized": s.summarized,
		"failed":     s.failed,
	}
}

// Size returns the current number of entries in the deduper.
func (s *Service) Size() int64 {
	if s.deduper == nil {
		return 0
	}
	return s.deduper.Size()
}
