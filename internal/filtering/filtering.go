package filtering

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spigell/ats-matcher/internal/batch"
)

// Filter represents a single filtering step applied to batch results.
type Filter interface {
	Name() string
	Disable(reason string)
	IsEnabled() bool

	Validate(cfg *Config) error
	Apply(ctx context.Context, deps Deps, r *Results) (*Results, Step, error)
}

// Deps aggregates dependencies shared across all filtering steps.
type Deps struct {
	Logger *zap.Logger
}

// Step describes the result of executing a filtering step.
type Step struct {
	Initial int
	Dropped int
	Left    int
}

// Config contains configuration settings consumed by the filters.
type Config struct {
	MinScore    float64
	ExcludeFile string
	// MaxYearsGap is the largest accepted shortfall in years of experience.
	// A negative value turns the years_gap step off.
	MaxYearsGap int
}

// Status represents runtime information about a filter.
type Status struct {
	Name    string
	Enabled bool
	Reason  string
	Details map[string]string
}

// statusProvider is implemented by filters that can supply detailed status information.
type statusProvider interface {
	Status() Status
}

// Default returns the standard steps in execution order.
func Default() []Filter {
	return []Filter{NewExcludeFile(), NewMinScore(), NewYearsGap()}
}

// DisableByName marks a filter with the provided name as disabled while keeping it in the list.
func DisableByName(steps []Filter, name, reason string) {
	for _, step := range steps {
		if step.Name() == name {
			step.Disable(reason)
		}
	}
}

// Run executes the supplied filters sequentially and returns the results that are left.
func Run(ctx context.Context, cfg *Config, deps Deps, steps []Filter, r *Results) (*Results, error) {
	for _, step := range steps {
		if !step.IsEnabled() {
			continue
		}
		if err := step.Validate(cfg); err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}
	}

	for _, step := range steps {
		if !step.IsEnabled() {
			if deps.Logger != nil {
				deps.Logger.Info("filter disabled", zap.String("name", step.Name()))
			}
			continue
		}

		next, info, err := step.Apply(ctx, deps, r)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", step.Name(), err)
		}

		if deps.Logger != nil {
			deps.Logger.Info("filter step",
				zap.String("name", step.Name()),
				zap.Int("initial", info.Initial),
				zap.Int("dropped", info.Dropped),
				zap.Int("left", info.Left),
			)
		}

		r = next
	}

	return r, nil
}

// Describe returns status entries for the provided filters.
func Describe(steps []Filter) []Status {
	statuses := make([]Status, 0, len(steps))
	for _, step := range steps {
		if reporter, ok := step.(statusProvider); ok {
			statuses = append(statuses, reporter.Status())
			continue
		}

		statuses = append(statuses, Status{
			Name:    step.Name(),
			Enabled: step.IsEnabled(),
		})
	}
	return statuses
}

// Results is the list the filters work on.
type Results struct {
	Items []batch.Result
}

// NewResults wraps batch results.
func NewResults(items []batch.Result) *Results {
	return &Results{Items: items}
}

func (r *Results) Len() int {
	return len(r.Items)
}

// Exclude drops every result for which drop returns true and returns the
// dropped job names. Order of the remaining results is preserved.
func (r *Results) Exclude(drop func(batch.Result) bool) []string {
	var excluded []string
	kept := r.Items[:0]
	for _, item := range r.Items {
		if drop(item) {
			excluded = append(excluded, item.Job.Name)
			continue
		}
		kept = append(kept, item)
	}
	r.Items = kept
	return excluded
}
