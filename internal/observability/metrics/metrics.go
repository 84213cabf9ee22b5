package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/BruksfildServices01/sales-calendar/internal/httperr"
)

// Metrics exposes counters/histograms for the API, the dashboard recompute
// and the live stream. All methods are safe on a nil receiver.
type Metrics struct {
	httpRequests     *prometheus.CounterVec
	httpLatency      *prometheus.HistogramVec
	dashboardBuilds  *prometheus.CounterVec
	dashboardLatency prometheus.Histogram
	unclassified     *prometheus.GaugeVec
	mutations        *prometheus.CounterVec
	streamClients    prometheus.Gauge
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sales_calendar",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		httpLatency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "sales_calendar",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Latency of HTTP requests",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
		dashboardBuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sales_calendar",
			Subsystem: "dashboard",
			Name:      "builds_total",
			Help:      "Dashboard recomputations by trigger",
		}, []string{"trigger"}),
		dashboardLatency: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sales_calendar",
			Subsystem: "dashboard",
			Name:      "build_duration_seconds",
			Help:      "Time spent loading and aggregating one day",
			Buckets:   prometheus.DefBuckets,
		}),
		unclassified: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "sales_calendar",
			Subsystem: "dashboard",
			Name:      "unclassified_records",
			Help:      "Records of the last rebuilt day left out of a bucket because of an unknown value",
		}, []string{"field"}),
		mutations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sales_calendar",
			Subsystem: "appointments",
			Name:      "mutations_total",
			Help:      "Appointment and calendar changes by action and outcome",
		}, []string{"action", "outcome"}),
		streamClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "sales_calendar",
			Subsystem: "stream",
			Name:      "subscribers",
			Help:      "Open dashboard stream connections",
		}),
	}
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	reg.MustRegister(
		m.httpRequests,
		m.httpLatency,
		m.dashboardBuilds,
		m.dashboardLatency,
		m.unclassified,
		m.mutations,
		m.streamClients,
	)
	return m
}

func (m *Metrics) ObserveRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpLatency.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveDashboard(trigger string, seconds float64) {
	if m == nil {
		return
	}
	m.dashboardBuilds.WithLabelValues(trigger).Inc()
	m.dashboardLatency.Observe(seconds)
}

// SetUnclassified records the count for one field of the snapshot just
// rebuilt; each rebuild overwrites the previous value.
func (m *Metrics) SetUnclassified(field string, n int) {
	if m == nil {
		return
	}
	m.unclassified.WithLabelValues(field).Set(float64(n))
}

// isRejection separates rule violations from infrastructure failures.
func isRejection(err error) bool {
	_, ok := httperr.CodeOf(err)
	return ok
}

func (m *Metrics) ObserveMutation(action string, err error) {
	if m == nil {
		return
	}
	outcome := "ok"
	switch {
	case err == nil:
	case isRejection(err):
		outcome = "rejected"
	default:
		outcome = "error"
	}
	m.mutations.WithLabelValues(action, outcome).Inc()
}

func (m *Metrics) StreamOpened() {
	if m == nil {
		return
	}
	m.streamClients.Inc()
}

func (m *Metrics) StreamClosed() {
	if m == nil {
		return
	}
	m.streamClients.Dec()
}
