package batch

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spigell/ats-matcher/internal/ats"
)

// DefaultConcurrency is used when Options.Concurrency is not positive.
const DefaultConcurrency = 4

// Job is one job description to score the CV against.
type Job struct {
	Name         string `json:"name"`
	JD           string `json:"-"`
	Requirements string `json:"-"`
}

// Result pairs a job with its report.
type Result struct {
	ID     uuid.UUID   `json:"id"`
	Job    Job         `json:"job"`
	Report *ats.Report `json:"report"`
}

// Score returns the final score or 0 for a result without a report.
func (r Result) Score() float64 {
	if r.Report == nil {
		return 0
	}
	return r.Report.Score
}

// Options configures Run.
type Options struct {
	Concurrency int
	// NewOptimizer builds one pool member. Optimizers are never shared
	// between in-flight jobs.
	NewOptimizer func() (*ats.Optimizer, error)
	Logger       *zap.Logger
}

// Run scores cv against every job and returns the results ordered by score,
// best first. Jobs that share a score keep their input order.
func Run(ctx context.Context, cv string, jobs []Job, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	newOptimizer := opts.NewOptimizer
	if newOptimizer == nil {
		newOptimizer = func() (*ats.Optimizer, error) { return ats.New() }
	}

	workers := opts.Concurrency
	if workers <= 0 {
		workers = DefaultConcurrency
	}
	workers = min(workers, len(jobs))

	pool := make(chan *ats.Optimizer, workers)
	for range workers {
		o, err := newOptimizer()
		if err != nil {
			return nil, fmt.Errorf("create optimizer: %w", err)
		}
		pool <- o
	}

	results := make([]Result, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			o := <-pool
			defer func() { pool <- o }()

			report := o.Score(gctx, cv, job.JD, job.Requirements)
			results[i] = Result{ID: uuid.New(), Job: job, Report: report}

			logger.Debug("job scored",
				zap.String("job", job.Name),
				zap.Float64("score", report.Score),
			)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("scoring jobs: %w", err)
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score() > results[j].Score()
	})

	logger.Info("batch scored", zap.Int("jobs", len(jobs)), zap.Int("workers", workers))
	return results, nil
}
