// Package changes fans a successful mutation out to the audit log, the
// metrics and the live change feed.
package changes

import (
	"context"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/sales-calendar/internal/audit"
	"github.com/BruksfildServices01/sales-calendar/internal/observability/metrics"
	"github.com/BruksfildServices01/sales-calendar/internal/realtime"
)

type Change struct {
	Actor    string
	Action   string
	Entity   string
	EntityID string
	Day      string
	Kind     realtime.Kind
	Metadata any
}

// Recorder is usable as a zero value; every collaborator is optional.
type Recorder struct {
	Audit   *audit.Dispatcher
	Broker  realtime.Broker
	Metrics *metrics.Metrics
	Log     *zap.Logger
}

func (r *Recorder) Record(ctx context.Context, ch Change) {
	if r == nil {
		return
	}
	r.Audit.Dispatch(audit.Event{
		Actor:    ch.Actor,
		Action:   ch.Action,
		Entity:   ch.Entity,
		EntityID: ch.EntityID,
		Metadata: ch.Metadata,
	})
	r.Metrics.ObserveMutation(ch.Action, nil)
	realtime.Notify(ctx, r.Broker, r.Log, realtime.Event{
		Kind: ch.Kind,
		ID:   ch.EntityID,
		Day:  ch.Day,
	})
}

// Failed counts a rejected or failed mutation.
func (r *Recorder) Failed(action string, err error) {
	if r == nil || err == nil {
		return
	}
	r.Metrics.ObserveMutation(action, err)
}

// Notify publishes an extra change event without an audit entry.
func (r *Recorder) Notify(ctx context.Context, ev realtime.Event) {
	if r == nil {
		return
	}
	realtime.Notify(ctx, r.Broker, r.Log, ev)
}
