// Package events routes drained order domain events to their side effects.
// Today the only side effect is the notification pipeline: each event becomes
// a persisted notification plus a best-effort realtime push. Failures here
// are logged and swallowed, never propagated back to the command that
// produced the event.
package events

import (
	"context"

	"ordertrack/internal/core/domain/model/order"

	"go.uber.org/zap"
)

// Dispatcher routes each domain event to the handler for its concrete type.
// The event set is closed, so dispatch is a plain type switch.
type Dispatcher struct {
	notifications *NotificationHandler
	logger        *zap.Logger
}

// NewDispatcher creates a dispatcher feeding the notification pipeline.
func NewDispatcher(notifications *NotificationHandler, logger *zap.Logger) *Dispatcher {
	return &Dispatcher{
		notifications: notifications,
		logger:        logger,
	}
}

// Dispatch delivers the events in the order they were recorded. Events of a
// type the dispatcher does not know are logged and dropped.
func (d *Dispatcher) Dispatch(ctx context.Context, events []order.DomainEvent) {
	for _, event := range events {
		switch e := event.(type) {
		case order.CreatedEvent:
			d.notifications.HandleCreated(ctx, e)
		case order.StatusChangedEvent:
			d.notifications.HandleStatusChanged(ctx, e)
		case order.DeliveredEvent:
			d.notifications.HandleDelivered(ctx, e)
		default:
			d.logger.Warn("no handler registered for domain event",
				zap.String("event", event.EventName()))
		}
	}
}
