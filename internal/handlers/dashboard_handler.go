package handlers

import (
	"io"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/sales-calendar/internal/domain/appointment"
	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
	"github.com/BruksfildServices01/sales-calendar/internal/httpresp"
	"github.com/BruksfildServices01/sales-calendar/internal/observability/metrics"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
	ucDashboard "github.com/BruksfildServices01/sales-calendar/internal/usecase/dashboard"
)

const streamKeepAlive = 25 * time.Second

type DashboardHandler struct {
	loc       *time.Location
	dashboard *ucDashboard.GetDashboard
	broker    realtime.Broker
	metrics   *metrics.Metrics
	log       *zap.Logger
}

func NewDashboardHandler(
	loc *time.Location,
	dashboard *ucDashboard.GetDashboard,
	broker realtime.Broker,
	m *metrics.Metrics,
	log *zap.Logger,
) *DashboardHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &DashboardHandler{
		loc:       loc,
		dashboard: dashboard,
		broker:    broker,
		metrics:   m,
		log:       log,
	}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	day, ok := queryDay(c, h.loc)
	if !ok {
		return
	}

	d, err := h.dashboard.Execute(c.Request.Context(), day, ucDashboard.TriggerRequest)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	httpresp.OK(c, d)
}

// Stream sends the dashboard as a server-sent "dashboard" event on connect
// and again after every change to the same day.
func (h *DashboardHandler) Stream(c *gin.Context) {
	day, ok := queryDay(c, h.loc)
	if !ok {
		return
	}
	key := domain.DayKey(day)
	ctx := c.Request.Context()

	events, cancel, err := h.broker.Subscribe(ctx)
	if err != nil {
		httperr.FromError(c, err)
		return
	}
	defer cancel()

	h.metrics.StreamOpened()
	defer h.metrics.StreamClosed()

	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	send := func() {
		d, err := h.dashboard.Execute(ctx, day, ucDashboard.TriggerStream)
		if err != nil {
			h.log.Warn("dashboard stream: recompute failed", zap.String("date", key), zap.Error(err))
			c.SSEvent("error", gin.H{"error_code": "dashboard_failed"})
			return
		}
		c.SSEvent("dashboard", d)
	}

	send()
	c.Writer.Flush()

	keepAlive := time.NewTicker(streamKeepAlive)
	defer keepAlive.Stop()

	c.Stream(func(_ io.Writer) bool {
		select {
		case <-ctx.Done():
			return false
		case ev, open := <-events:
			if !open {
				return false
			}
			if ev.Day == key {
				send()
			}
			return true
		case <-keepAlive.C:
			c.SSEvent("ping", time.Now().Unix())
			return true
		}
	})
}
