package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"trisolve/internal/logging"
	"trisolve/internal/triangle"
)

// Outcome is the result of one job.
type Outcome struct {
	ID      string          `json:"id" yaml:"id"`
	Name    string          `json:"name" yaml:"name"`
	Schema  triangle.Schema `json:"schema" yaml:"schema"`
	Result  triangle.Result `json:"result" yaml:"result"`
	Elapsed time.Duration   `json:"-" yaml:"-"`
}

// Report is the outcome of a whole run, in job file order.
type Report struct {
	RunID    string
	Outcomes []Outcome
	Elapsed  time.Duration
}

// Failed counts the jobs that did not solve.
func (r Report) Failed() int {
	n := 0
	for _, o := range r.Outcomes {
		if !o.Result.OK() {
			n++
		}
	}
	return n
}

// Runner solves jobs with bounded concurrency.
type Runner struct {
	concurrency int
	logger      *zap.Logger
	solve       func(triangle.Spec) triangle.Result
}

// NewRunner creates a runner solving at most concurrency jobs at once.
// Values below 1 mean one at a time.
func NewRunner(concurrency int) *Runner {
	return &Runner{
		concurrency: max(1, concurrency),
		logger:      logging.Get(logging.CategoryBatch),
		solve:       triangle.Calculate,
	}
}

// Run solves every job. A job that fails to solve is recorded in its
// Outcome; only cancellation of ctx makes Run itself fail.
func (r *Runner) Run(ctx context.Context, jobs []Job) (Report, error) {
	runID := uuid.New().String()[:8]
	start := time.Now()
	log := r.logger.With(zap.String("run", runID))
	log.Info("Batch run started", zap.Int("jobs", len(jobs)), zap.Int("concurrency", r.concurrency))

	outcomes := make([]Outcome, len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.concurrency)

	for i, job := range jobs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			res := r.solve(job.Spec)
			outcomes[i] = Outcome{
				ID:      uuid.New().String()[:8],
				Name:    job.Name,
				Schema:  job.Schema,
				Result:  res,
				Elapsed: time.Since(t0),
			}
			if res.OK() {
				log.Debug("Job solved", zap.String("job", job.Name), zap.String("id", outcomes[i].ID))
			} else {
				log.Info("Job failed",
					zap.String("job", job.Name),
					zap.Stringer("kind", triangle.KindOf(res.Err)),
					zap.Error(res.Err))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		log.Warn("Batch run aborted", zap.Error(err))
		return Report{}, err
	}

	report := Report{RunID: runID, Outcomes: outcomes, Elapsed: time.Since(start)}
	log.Info("Batch run finished",
		zap.Int("failed", report.Failed()),
		zap.Duration("elapsed", report.Elapsed))
	return report, nil
}
