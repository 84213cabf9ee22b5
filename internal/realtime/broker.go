// Package realtime fans change notifications out to every subscriber so
// open dashboards can recompute without polling.
package realtime

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type Kind string

const (
	KindAppointmentSaved   Kind = "appointment.saved"
	KindAppointmentDeleted Kind = "appointment.deleted"
	KindAttendanceSaved    Kind = "attendance.saved"
	KindSlotToggled        Kind = "slot.toggled"
)

// Event carries only what changed; subscribers reload the snapshot.
type Event struct {
	Kind Kind      `json:"kind"`
	ID   string    `json:"id,omitempty"`
	Day  string    `json:"day"`
	At   time.Time `json:"at"`
}

// Broker delivers every published event to every live subscription.
// Subscribe returns a cancel func that releases the subscription and
// closes the channel.
type Broker interface {
	Publish(ctx context.Context, ev Event) error
	Subscribe(ctx context.Context) (<-chan Event, func(), error)
}

const subscriberBuffer = 16

// Notify publishes ev on b and only logs failures; a lost notification must
// never fail the mutation that caused it. A nil broker is a no-op.
func Notify(ctx context.Context, b Broker, log *zap.Logger, ev Event) {
	if b == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = time.Now().UTC()
	}
	if err := b.Publish(ctx, ev); err != nil && log != nil {
		log.Warn("realtime: publish failed",
			zap.String("kind", string(ev.Kind)),
			zap.String("id", ev.ID),
			zap.Error(err),
		)
	}
}
