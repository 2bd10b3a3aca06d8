// Package order contains the Order aggregate and its supporting value objects.
//
// The aggregate owns the order lifecycle state machine
// (Pending -> Confirmed -> InTransit -> Delivered, with cancellation from
// Pending and Confirmed), validates every field at construction, and records
// domain events as a side effect of mutation. Events accumulate in an
// in-memory buffer that is never persisted; command handlers drain it with
// DomainEvents/ClearDomainEvents after the aggregate has been committed.
package order
