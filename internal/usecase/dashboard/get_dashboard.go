package dashboard

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/sales-calendar/internal/config"
	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/observability/metrics"
	"github.com/BruksfildServices01/sales-calendar/internal/stats"
	"github.com/BruksfildServices01/sales-calendar/internal/usecase/calendar"
)

// Triggers label why a dashboard was recomputed.
const (
	TriggerRequest = "request"
	TriggerStream  = "stream"
	TriggerReport  = "report"
)

type GetDashboard struct {
	repo    domain.Repository
	sales   *config.Sales
	metrics *metrics.Metrics
	log     *zap.Logger
}

func NewGetDashboard(
	repo domain.Repository,
	sales *config.Sales,
	m *metrics.Metrics,
	log *zap.Logger,
) *GetDashboard {
	if log == nil {
		log = zap.NewNop()
	}
	return &GetDashboard{
		repo:    repo,
		sales:   sales,
		metrics: m,
		log:     log,
	}
}

// Execute reloads the day and recomputes every report from scratch.
func (uc *GetDashboard) Execute(
	ctx context.Context,
	date time.Time,
	trigger string,
) (*stats.Dashboard, error) {

	started := time.Now()

	day, err := calendar.LoadDay(ctx, uc.repo, uc.sales, date)
	if err != nil {
		return nil, err
	}

	d := stats.Build(day.Appointments, stats.Input{
		Config:      uc.sales.Config,
		Roster:      day.Roster,
		Date:        date,
		Unavailable: day.Unavailable,
	})

	uc.metrics.ObserveDashboard(trigger, time.Since(started).Seconds())

	u := d.Summary.Unclassified
	uc.metrics.SetUnclassified("status", u.Status)
	uc.metrics.SetUnclassified("initial_pitch", u.InitialPitch)
	uc.metrics.SetUnclassified("lead_source", u.LeadSource)
	uc.metrics.SetUnclassified("lead_quality", u.LeadQuality)
	uc.metrics.SetUnclassified("payment", u.Payment)

	if u.Total() > 0 {
		uc.log.Warn("dashboard: records with unknown values",
			zap.String("date", d.Date),
			zap.Int("status", u.Status),
			zap.Int("initial_pitch", u.InitialPitch),
			zap.Int("lead_source", u.LeadSource),
			zap.Int("lead_quality", u.LeadQuality),
			zap.Int("payment", u.Payment),
		)
	}

	return &d, nil
}
