package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/notification"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"

	"go.uber.org/zap"
)

// NotificationHandler turns order domain events into user notifications.
//
// Per event it builds a human-readable message, serializes the event detail
// into the opaque data payload, persists the notification and then pushes a
// lightweight payload over the user's realtime channel. The push happens only
// after persistence succeeded: a failed push costs the user the live update,
// not the notification itself. Every failure in this pipeline is logged and
// swallowed so event delivery problems never break the originating command.
type NotificationHandler struct {
	notificationRepo ports.NotificationRepository
	pusher           ports.RealtimePusher
	logger           *zap.Logger
}

// NewNotificationHandler creates the notification side of the event pipeline.
func NewNotificationHandler(
	notificationRepo ports.NotificationRepository,
	pusher ports.RealtimePusher,
	logger *zap.Logger,
) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
		pusher:           pusher,
		logger:           logger,
	}
}

type createdEventData struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	Value       string    `json:"value"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// HandleCreated notifies the owner that a new order entered the system.
func (h *NotificationHandler) HandleCreated(ctx context.Context, e order.CreatedEvent) {
	message := fmt.Sprintf("Order %s created", e.OrderNumber)
	data := h.marshalData(createdEventData{
		OrderID:     e.OrderID.String(),
		OrderNumber: e.OrderNumber.String(),
		Value:       e.Value.String(),
		OccurredAt:  e.OccurredAt(),
	})

	h.deliver(ctx, e.UserID, notification.TypeOrderCreated, message, data)
}

type statusChangedEventData struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	OldStatus   string    `json:"old_status"`
	NewStatus   string    `json:"new_status"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// HandleStatusChanged notifies the owner about a status transition.
func (h *NotificationHandler) HandleStatusChanged(ctx context.Context, e order.StatusChangedEvent) {
	message := fmt.Sprintf("Order %s updated: %s → %s", e.OrderNumber, e.OldStatus, e.NewStatus)
	data := h.marshalData(statusChangedEventData{
		OrderID:     e.OrderID.String(),
		OrderNumber: e.OrderNumber.String(),
		OldStatus:   e.OldStatus.String(),
		NewStatus:   e.NewStatus.String(),
		OccurredAt:  e.OccurredAt(),
	})

	h.deliver(ctx, e.UserID, notification.TypeOrderStatusChanged, message, data)
}

type deliveredEventData struct {
	OrderID     string    `json:"order_id"`
	OrderNumber string    `json:"order_number"`
	DeliveryID  string    `json:"delivery_id"`
	DeliveredAt time.Time `json:"delivered_at"`
	OccurredAt  time.Time `json:"occurred_at"`
}

// HandleDelivered notifies the owner that the order arrived.
func (h *NotificationHandler) HandleDelivered(ctx context.Context, e order.DeliveredEvent) {
	message := fmt.Sprintf("Order %s delivered", e.OrderNumber)
	data := h.marshalData(deliveredEventData{
		OrderID:     e.OrderID.String(),
		OrderNumber: e.OrderNumber.String(),
		DeliveryID:  e.DeliveryID.String(),
		DeliveredAt: e.DeliveredAt,
		OccurredAt:  e.OccurredAt(),
	})

	h.deliver(ctx, e.UserID, notification.TypeOrderDelivered, message, data)
}

// deliver persists the notification and pushes it to the user's channel.
// A notification that fails validation is dropped: nothing is persisted and
// nothing is pushed.
func (h *NotificationHandler) deliver(
	ctx context.Context,
	userID kernel.UUID,
	kind notification.Type,
	message string,
	data string,
) {
	n, err := notification.NewNotification(kernel.NewUUID(), userID, kind, message, data)
	if err != nil {
		h.logger.Warn("dropping invalid notification",
			zap.String("type", kind.String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	if err = h.notificationRepo.Add(ctx, n); err != nil {
		h.logger.Error("failed to persist notification",
			zap.String("notification_id", n.ID().String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
		return
	}

	payload := ports.NotificationPayload{
		ID:        n.ID().String(),
		Type:      n.Kind().String(),
		Message:   n.Message(),
		Data:      n.Data(),
		Read:      n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}

	if err = h.pusher.SendToUser(ctx, userID, payload); err != nil {
		// the user misses the live update; polling still finds the row
		h.logger.Warn("failed to push notification",
			zap.String("notification_id", n.ID().String()),
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}

func (h *NotificationHandler) marshalData(detail any) string {
	raw, err := json.Marshal(detail)
	if err != nil {
		h.logger.Warn("failed to serialize event detail", zap.Error(err))
		return "{}"
	}
	return string(raw)
}
