// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, and post-commit event dispatch.
package commands

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
)

// EventDispatcher receives the domain events drained from an aggregate after
// the command's transaction has committed. Dispatch is best effort and must
// never fail the command path; hence no error return.
type EventDispatcher interface {
	Dispatch(ctx context.Context, events []order.DomainEvent)
}

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends only on the repositories it actually touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// DeliveryRepoFactory provides access to the delivery repository within a transaction.
	DeliveryRepoFactory interface {
		DeliveryRepository() ports.DeliveryRepository
	}

	// NotificationRepoFactory provides access to the notification repository within a transaction.
	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// OrderDeliveryUoW manages transactions spanning order and delivery writes.
	// Used by delivery confirmation, which mutates both in one transaction.
	OrderDeliveryUoW interface {
		TxManager
		OrderRepoFactory
		DeliveryRepoFactory
	}

	// OrderDeliveryUoWFactory creates new order+delivery unit of work instances.
	OrderDeliveryUoWFactory interface {
		Create() OrderDeliveryUoW
	}

	// NotificationUoW manages transactions for notification-only operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	// NotificationUoWFactory creates new notification unit of work instances.
	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
