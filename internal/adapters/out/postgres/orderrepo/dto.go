// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The recorded domain events are deliberately absent: they live only in
// memory between a mutation and the post-commit dispatch.
//
// The order number carries no unique index. The daily sequence can collide
// under concurrent same-day creations and the store does not paper over that.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number      string          `gorm:"type:varchar(18);index"`
	Description string          `gorm:"type:varchar(500)"`
	Value       decimal.Decimal `gorm:"type:numeric(12,2)"`
	Address     AddressDTO      `gorm:"embedded;embeddedPrefix:address_"`
	Status      int             `gorm:"index"`
	UserID      uuid.UUID       `gorm:"type:uuid;index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
	Deleted     bool
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// AddressDTO represents the embedded delivery address within the order table.
type AddressDTO struct {
	CEP          string `gorm:"type:varchar(8)"`
	Street       string
	Number       string
	Neighborhood string
	City         string
	State        string `gorm:"type:varchar(2)"`
	Complement   string
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	address := aggregate.DeliveryAddress()

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number().String(),
		Description: aggregate.Description(),
		Value:       aggregate.Value(),
		Address: AddressDTO{
			CEP:          address.CEP(),
			Street:       address.Street(),
			Number:       address.Number(),
			Neighborhood: address.Neighborhood(),
			City:         address.City(),
			State:        address.State(),
			Complement:   address.Complement(),
		},
		Status:    int(aggregate.Status()),
		UserID:    aggregate.UserID().Bytes(),
		CreatedAt: aggregate.CreatedAt(),
		UpdatedAt: aggregate.UpdatedAt(),
		Deleted:   aggregate.IsDeleted(),
	}
}

// toDomain converts a database row back into an order aggregate with an
// empty event buffer.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	number, err := order.NumberFromString(dto.Number)
	if err != nil {
		return nil, err
	}

	address, err := order.NewAddress(
		dto.Address.CEP,
		dto.Address.Street,
		dto.Address.Number,
		dto.Address.Neighborhood,
		dto.Address.City,
		dto.Address.State,
		dto.Address.Complement,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		number,
		dto.Description,
		dto.Value,
		address,
		order.Status(dto.Status),
		userID,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Deleted,
	)
}
