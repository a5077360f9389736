package batch

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spigell/ats-matcher/internal/ats"
)

const cv = "Backend engineer. Worked with Python for 6 years. AWS certified. Docker and Kubernetes daily."

func jobs() []Job {
	return []Job{
		{Name: "unrelated", JD: "Pastry chef wanted for our bakery.", Requirements: "HARD SKILLS: baking, lamination"},
		{Name: "exact", JD: "We need Python, AWS, Docker and Kubernetes.", Requirements: "HARD SKILLS: Python, AWS, Docker, Kubernetes"},
		{Name: "partial", JD: "We need Python and Rust.", Requirements: "HARD SKILLS: Python, Rust"},
	}
}

func TestRunSortsByScore(t *testing.T) {
	t.Parallel()

	results, err := Run(context.Background(), cv, jobs(), Options{Concurrency: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)

	names := []string{results[0].Job.Name, results[1].Job.Name, results[2].Job.Name}
	assert.Equal(t, []string{"exact", "partial", "unrelated"}, names)

	seen := map[uuid.UUID]bool{}
	for i, r := range results {
		require.NotNil(t, r.Report)
		assert.NotEqual(t, uuid.Nil, r.ID)
		assert.False(t, seen[r.ID], "duplicate run id")
		seen[r.ID] = true
		if i > 0 {
			assert.GreaterOrEqual(t, results[i-1].Score(), r.Score())
		}
	}
}

func TestRunMatchesSequentialScores(t *testing.T) {
	t.Parallel()

	o, err := ats.New()
	require.NoError(t, err)

	want := map[string]float64{}
	for _, j := range jobs() {
		want[j.Name] = o.Score(context.Background(), cv, j.JD, j.Requirements).Score
	}

	results, err := Run(context.Background(), cv, jobs(), Options{Concurrency: 3})
	require.NoError(t, err)
	for _, r := range results {
		assert.Equal(t, want[r.Job.Name], r.Score(), r.Job.Name)
	}
}

func TestRunBuildsOnePoolMemberPerWorker(t *testing.T) {
	t.Parallel()

	var built atomic.Int32
	var many []Job
	for i := range 10 {
		many = append(many, Job{Name: fmt.Sprintf("job-%d", i), JD: "Python developer"})
	}

	results, err := Run(context.Background(), cv, many, Options{
		Concurrency: 3,
		NewOptimizer: func() (*ats.Optimizer, error) {
			built.Add(1)
			return ats.New()
		},
	})
	require.NoError(t, err)
	assert.Len(t, results, 10)
	assert.EqualValues(t, 3, built.Load())
}

func TestRunFewerJobsThanWorkers(t *testing.T) {
	t.Parallel()

	var built atomic.Int32
	_, err := Run(context.Background(), cv, jobs()[:1], Options{
		Concurrency: 8,
		NewOptimizer: func() (*ats.Optimizer, error) {
			built.Add(1)
			return ats.New()
		},
	})
	require.NoError(t, err)
	assert.EqualValues(t, 1, built.Load())
}

func TestRunNoJobs(t *testing.T) {
	t.Parallel()

	results, err := Run(context.Background(), cv, nil, Options{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestRunOptimizerError(t *testing.T) {
	t.Parallel()

	_, err := Run(context.Background(), cv, jobs(), Options{
		NewOptimizer: func() (*ats.Optimizer, error) { return nil, errors.New("bad weights") },
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad weights")
}

func TestRunCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, cv, jobs(), Options{Concurrency: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRunLogs(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zapcore.DebugLevel)
	_, err := Run(context.Background(), cv, jobs(), Options{Logger: zap.New(core)})
	require.NoError(t, err)

	assert.Equal(t, 3, logs.FilterMessage("job scored").Len())
	summary := logs.FilterMessage("batch scored").All()
	require.Len(t, summary, 1)
	assert.EqualValues(t, 3, summary[0].ContextMap()["jobs"])
}
