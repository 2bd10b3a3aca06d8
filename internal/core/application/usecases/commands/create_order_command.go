package commands

import (
	"errors"
	"fmt"
	"regexp"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

var createOrderCEPPattern = regexp.MustCompile(`^\d{8}$`)

// CreateOrderCommand represents a request to register a new order.
// The delivery address is identified by CEP plus the street number and
// optional complement; street-level data comes from the external address
// resolution service when the command is handled.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	userID        kernel.UUID
	description   string
	value         decimal.Decimal
	cep           string
	addressNumber string
	complement    string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates ids, description bounds, a positive value, the CEP format and a
// non-empty street number. Returns an error if any validation fails.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	userID kernel.UUID,
	description string,
	value decimal.Decimal,
	cep string,
	addressNumber string,
	complement string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		complement: complement,
		guard:      guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setUserID(userID),
		cmd.setDescription(description),
		cmd.setValue(value),
		cmd.setCEP(cep),
		cmd.setAddressNumber(addressNumber),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to create.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UserID returns the owning user's identifier.
func (c CreateOrderCommand) UserID() kernel.UUID {
	return c.userID
}

// Description returns the order description.
func (c CreateOrderCommand) Description() string {
	return c.description
}

// Value returns the monetary value of the order.
func (c CreateOrderCommand) Value() decimal.Decimal {
	return c.value
}

// CEP returns the 8-digit postal code of the delivery address.
func (c CreateOrderCommand) CEP() string {
	return c.cep
}

// AddressNumber returns the street number of the delivery address.
func (c CreateOrderCommand) AddressNumber() string {
	return c.addressNumber
}

// Complement returns the optional address complement.
func (c CreateOrderCommand) Complement() string {
	return c.complement
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("userId", err)
	}
	c.userID = userID
	return nil
}

func (c *CreateOrderCommand) setDescription(description string) error {
	if description == "" {
		return errs.NewValueIsRequiredError("description")
	}
	if len(description) > order.MaxDescriptionLength {
		return errs.NewValueIsOutOfRangeError("description length", len(description), 1, order.MaxDescriptionLength)
	}
	c.description = description
	return nil
}

func (c *CreateOrderCommand) setValue(value decimal.Decimal) error {
	if !value.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("value", fmt.Errorf("%s is not greater than 0", value))
	}
	c.value = value
	return nil
}

func (c *CreateOrderCommand) setCEP(cep string) error {
	if cep == "" {
		return errs.NewValueIsRequiredError("cep")
	}
	if !createOrderCEPPattern.MatchString(cep) {
		return errs.NewValueIsInvalidErrorWithCause("cep", fmt.Errorf("%q is not an 8-digit postal code", cep))
	}
	c.cep = cep
	return nil
}

func (c *CreateOrderCommand) setAddressNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("addressNumber")
	}
	c.addressNumber = number
	return nil
}
