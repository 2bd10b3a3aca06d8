// Package notification contains the persisted Notification entity produced by
// the domain-event pipeline and shown to users.
package notification

import (
	"errors"
	"fmt"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

const (
	// MaxMessageLength bounds the human-readable message.
	MaxMessageLength = 500

	// MaxDataLength bounds the serialized event detail payload.
	MaxDataLength = 4000
)

var (
	// ErrNotificationIsNotConstructed is returned when a Notification was not
	// created through NewNotification or RestoreNotification.
	ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification constructor")

	// ErrAlreadyRead is returned when marking an already-read notification as read.
	ErrAlreadyRead = errors.New("notification is already marked as read")

	// ErrAlreadyUnread is returned when marking an already-unread notification as unread.
	ErrAlreadyUnread = errors.New("notification is already marked as unread")
)

// Type discriminates what kind of order event a notification describes.
type Type int

const (
	// TypeUnknown represents an invalid or undefined type.
	TypeUnknown Type = iota

	// TypeOrderCreated notifies that a new order entered the system.
	TypeOrderCreated

	// TypeOrderStatusChanged notifies that an order moved through its lifecycle.
	TypeOrderStatusChanged

	// TypeOrderDelivered notifies that an order reached the customer.
	TypeOrderDelivered
)

func getTypeStrings() map[Type]string {
	return map[Type]string{
		TypeUnknown:            "Unknown",
		TypeOrderCreated:       "OrderCreated",
		TypeOrderStatusChanged: "OrderStatusChanged",
		TypeOrderDelivered:     "OrderDelivered",
	}
}

// Validate checks that the type is one of the defined notification kinds.
func (t Type) Validate() error {
	switch t {
	case TypeOrderCreated, TypeOrderStatusChanged, TypeOrderDelivered:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification type", fmt.Errorf("%d is not a valid type", t))
	}
}

// String returns the persisted name of the type.
func (t Type) String() string {
	if s, ok := getTypeStrings()[t]; ok {
		return s
	}
	return "Unknown"
}

// TypeFromString parses a type from its persisted name.
func TypeFromString(s string) (Type, error) {
	for t, str := range getTypeStrings() {
		if t != TypeUnknown && str == s {
			return t, nil
		}
	}
	return TypeUnknown, errs.NewValueIsInvalidErrorWithCause(
		"notification type", fmt.Errorf("%q is not a valid type", s))
}

// Notification is a persisted, user-facing record of an order event.
// It carries a short message plus the serialized event detail, and tracks
// whether the user has read it. The only mutations are MarkAsRead and
// MarkAsUnread; each fails when the notification is already in the requested
// state.
type Notification struct {
	id        kernel.UUID
	userID    kernel.UUID
	kind      Type
	message   string
	data      string
	read      bool
	readAt    *time.Time
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification for the given user.
// Message and data length limits are enforced here; the event pipeline relies
// on this to drop oversized notifications instead of truncating them.
func NewNotification(id, userID kernel.UUID, kind Type, message, data string) (*Notification, error) {
	n := &Notification{
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setKind(kind),
		n.setMessage(message),
		n.setData(data),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification reconstructs a Notification from persistence.
func RestoreNotification(
	id, userID kernel.UUID,
	kind Type,
	message, data string,
	read bool,
	readAt *time.Time,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{
		read:          read,
		readAt:        readAt,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		n.setID(id),
		n.setUserID(userID),
		n.setKind(kind),
		n.setMessage(message),
		n.setData(data),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// Validate ensures the Notification was built through a constructor.
func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

// ID returns the notification's unique identifier.
func (n *Notification) ID() kernel.UUID {
	return n.id
}

// UserID returns the target user's identifier.
func (n *Notification) UserID() kernel.UUID {
	return n.userID
}

// Kind returns the notification type.
func (n *Notification) Kind() Type {
	return n.kind
}

// Message returns the human-readable message.
func (n *Notification) Message() string {
	return n.message
}

// Data returns the opaque serialized event detail.
func (n *Notification) Data() string {
	return n.data
}

// IsRead reports whether the user has read the notification.
func (n *Notification) IsRead() bool {
	return n.read
}

// ReadAt returns when the notification was read, or nil while unread.
func (n *Notification) ReadAt() *time.Time {
	return n.readAt
}

// CreatedAt returns when the notification was created.
func (n *Notification) CreatedAt() time.Time {
	return n.createdAt
}

// MarkAsRead flags the notification as read and stamps ReadAt.
// Fails with ErrAlreadyRead if it is already read; ReadAt is not re-stamped.
func (n *Notification) MarkAsRead() error {
	if n.read {
		return ErrAlreadyRead
	}

	now := time.Now().UTC()
	n.read = true
	n.readAt = &now
	return nil
}

// MarkAsUnread clears the read flag and ReadAt.
// Fails with ErrAlreadyUnread if it is already unread.
func (n *Notification) MarkAsUnread() error {
	if !n.read {
		return ErrAlreadyUnread
	}

	n.read = false
	n.readAt = nil
	return nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	n.userID = userID
	return nil
}

func (n *Notification) setKind(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setMessage(message string) error {
	if message == "" {
		return errs.NewValueIsRequiredError("message")
	}
	if len(message) > MaxMessageLength {
		return errs.NewValueIsOutOfRangeError("message length", len(message), 1, MaxMessageLength)
	}
	n.message = message
	return nil
}

func (n *Notification) setData(data string) error {
	if len(data) > MaxDataLength {
		return errs.NewValueIsOutOfRangeError("data length", len(data), 0, MaxDataLength)
	}
	n.data = data
	return nil
}
