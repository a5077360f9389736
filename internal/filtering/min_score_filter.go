package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/batch"
)

type minScoreFilter struct {
	disabled bool
	reason   string
	min      float64
}

// NewMinScore creates a filter that removes results scoring below the configured minimum.
func NewMinScore() Filter {
	return &minScoreFilter{}
}

func (f *minScoreFilter) Name() string { return "min_score" }

func (f *minScoreFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *minScoreFilter) IsEnabled() bool { return !f.disabled }

func (f *minScoreFilter) Validate(cfg *Config) error {
	f.min = 0
	if cfg != nil {
		f.min = cfg.MinScore
	}
	if f.min < 0 || f.min > 100 {
		return fmt.Errorf("minimum score must be within [0, 100], got %.1f", f.min)
	}
	return nil
}

func (f *minScoreFilter) Apply(_ context.Context, deps Deps, r *Results) (*Results, Step, error) {
	initial := r.Len()
	if f.min == 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	excluded := r.Exclude(func(res batch.Result) bool { return res.Score() < f.min })
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding jobs below minimum score",
			zap.Float64("min_score", f.min),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

func (f *minScoreFilter) Status() Status {
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  f.reason,
		Details: map[string]string{"min_score": fmt.Sprintf("%.1f", f.min)},
	}
}
