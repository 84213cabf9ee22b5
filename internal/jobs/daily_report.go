package jobs

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	"github.com/BruksfildServices01/sales-calendar/internal/stats"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/dashboard"
)

type DashboardSource interface {
	Execute(ctx context.Context, date time.Time, trigger string) (*stats.Dashboard, error)
}

type Archiver interface {
	SaveDashboard(ctx context.Context, day time.Time, d *stats.Dashboard) (string, error)
}

type Notifier interface {
	SendDailySummary(ctx context.Context, d *stats.Dashboard) error
}

// DailyReport archives the day's dashboard and posts its summary. Either
// side failing does not stop the other.
type DailyReport struct {
	dashboards DashboardSource
	archive    Archiver
	notifier   Notifier
	audit      *audit.Dispatcher
	log        *zap.Logger
	loc        *time.Location
	now        func() time.Time
}

func NewDailyReport(
	dashboards DashboardSource,
	archive Archiver,
	notifier Notifier,
	auditor *audit.Dispatcher,
	loc *time.Location,
	log *zap.Logger,
) *DailyReport {
	if log == nil {
		log = zap.NewNop()
	}
	if loc == nil {
		loc = time.UTC
	}
	return &DailyReport{
		dashboards: dashboards,
		archive:    archive,
		notifier:   notifier,
		audit:      auditor,
		log:        log,
		loc:        loc,
		now:        time.Now,
	}
}

// Run reports on the current day in the report timezone.
func (r *DailyReport) Run(ctx context.Context) error {
	now := r.now().In(r.loc)
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, r.loc)
	return r.RunFor(ctx, day)
}

func (r *DailyReport) RunFor(ctx context.Context, day time.Time) error {
	d, err := r.dashboards.Execute(ctx, day, dashboard.TriggerReport)
	if err != nil {
		return err
	}

	var errs []error
	key, err := r.archive.SaveDashboard(ctx, day, d)
	if err != nil {
		errs = append(errs, err)
	}
	if err := r.notifier.SendDailySummary(ctx, d); err != nil {
		errs = append(errs, err)
	}

	r.audit.Dispatch(audit.Event{
		Action:   audit.ActionReportSent,
		Entity:   "report",
		EntityID: d.Date,
		Metadata: map[string]any{
			"s3_key": key,
			"failed": len(errs),
		},
	})

	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	r.log.Info("daily report done", zap.String("date", d.Date), zap.String("s3_key", key))
	return nil
}
