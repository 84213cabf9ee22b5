package jobs

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// jobTimeout bounds a single scheduled run.
const jobTimeout = 2 * time.Minute

var parser = cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Scheduler runs the daily report on a standard 5-field cron expression
// (minute hour day-of-month month day-of-week) in the report timezone.
type Scheduler struct {
	cron     *cron.Cron
	schedule cron.Schedule
	loc      *time.Location
	log      *zap.Logger
}

func NewScheduler(
	spec string,
	loc *time.Location,
	report *DailyReport,
	log *zap.Logger,
) (*Scheduler, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}

	schedule, err := parser.Parse(spec)
	if err != nil {
		return nil, fmt.Errorf("jobs: invalid report schedule %q: %w", spec, err)
	}

	c := cron.New(
		cron.WithLocation(loc),
		cron.WithParser(parser),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)
	c.Schedule(schedule, cron.FuncJob(func() {
		ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
		defer cancel()
		if err := report.Run(ctx); err != nil {
			log.Error("daily report failed", zap.Error(err))
		}
	}))

	return &Scheduler{cron: c, schedule: schedule, loc: loc, log: log}, nil
}

// Next is the first run strictly after t.
func (s *Scheduler) Next(t time.Time) time.Time {
	return s.schedule.Next(t.In(s.loc))
}

func (s *Scheduler) Start() {
	s.cron.Start()
	s.log.Info("report scheduler started", zap.Time("next_run", s.Next(time.Now())))
}

// Stop waits for a running report to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}
