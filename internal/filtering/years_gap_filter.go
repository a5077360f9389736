package filtering

import (
	"context"
	"strconv"

	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/batch"
)

type yearsGapFilter struct {
	disabled bool
	reason   string
	maxGap   int
}

// NewYearsGap creates a filter that removes jobs asking for more years of
// experience than the CV shows, beyond the configured gap.
func NewYearsGap() Filter {
	return &yearsGapFilter{maxGap: -1}
}

func (f *yearsGapFilter) Name() string { return "years_gap" }

func (f *yearsGapFilter) Disable(reason string) {
	f.disabled = true
	f.reason = reason
}

func (f *yearsGapFilter) IsEnabled() bool { return !f.disabled }

func (f *yearsGapFilter) Validate(cfg *Config) error {
	f.maxGap = -1
	if cfg != nil {
		f.maxGap = cfg.MaxYearsGap
	}
	return nil
}

func (f *yearsGapFilter) Apply(_ context.Context, deps Deps, r *Results) (*Results, Step, error) {
	initial := r.Len()
	if f.maxGap < 0 {
		return r, Step{Initial: initial, Dropped: 0, Left: r.Len()}, nil
	}

	excluded := r.Exclude(func(res batch.Result) bool {
		if res.Report == nil || res.Report.Gaps.Experience.JDYears == nil {
			return false
		}
		return res.Report.Gaps.Experience.Gap > f.maxGap
	})
	if deps.Logger != nil && len(excluded) > 0 {
		deps.Logger.Info("excluding jobs by experience gap",
			zap.Int("max_years_gap", f.maxGap),
			zap.Strings("excluded_jobs", excluded),
			zap.Int("jobs_left", r.Len()),
		)
	}

	return r, Step{Initial: initial, Dropped: len(excluded), Left: r.Len()}, nil
}

func (f *yearsGapFilter) Status() Status {
	reason := f.reason
	if reason == "" && f.maxGap < 0 {
		reason = "no maximum gap configured"
	}
	return Status{
		Name:    f.Name(),
		Enabled: f.IsEnabled(),
		Reason:  reason,
		Details: map[string]string{"max_years_gap": strconv.Itoa(f.maxGap)},
	}
}
