package commands

import (
	"errors"
	"fmt"
	"regexp"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
	"ordertrack/internal/pkg/guard"
)

var ErrUpdateOrderDeliveryAddressCommandIsNotConstructed = errors.New(
	"UpdateOrderDeliveryAddressCommand must be created via NewUpdateOrderDeliveryAddressCommand constructor",
)

var updateAddressCEPPattern = regexp.MustCompile(`^\d{8}$`)

// UpdateOrderDeliveryAddressCommand requests a delivery address change for a
// pending order. As with creation, the street-level data is resolved from the
// CEP when the command is handled.
type UpdateOrderDeliveryAddressCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	cep           string
	addressNumber string
	complement    string

	guard guard.ConstructorGuard
}

// NewUpdateOrderDeliveryAddressCommand creates a command to change an order's delivery address.
func NewUpdateOrderDeliveryAddressCommand(
	orderID kernel.UUID,
	cep string,
	addressNumber string,
	complement string,
) (UpdateOrderDeliveryAddressCommand, error) {
	if err := orderID.Validate(); err != nil {
		return UpdateOrderDeliveryAddressCommand{}, err
	}

	if cep == "" {
		return UpdateOrderDeliveryAddressCommand{}, errs.NewValueIsRequiredError("cep")
	}

	if !updateAddressCEPPattern.MatchString(cep) {
		return UpdateOrderDeliveryAddressCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"cep", fmt.Errorf("%q is not an 8-digit postal code", cep),
		)
	}

	if addressNumber == "" {
		return UpdateOrderDeliveryAddressCommand{}, errs.NewValueIsRequiredError("addressNumber")
	}

	return UpdateOrderDeliveryAddressCommand{
		orderID:       orderID,
		cep:           cep,
		addressNumber: addressNumber,
		complement:    complement,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderDeliveryAddressCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderDeliveryAddressCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to update.
func (c UpdateOrderDeliveryAddressCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CEP returns the 8-digit postal code of the new delivery address.
func (c UpdateOrderDeliveryAddressCommand) CEP() string {
	return c.cep
}

// AddressNumber returns the street number of the new delivery address.
func (c UpdateOrderDeliveryAddressCommand) AddressNumber() string {
	return c.addressNumber
}

// Complement returns the optional address complement.
func (c UpdateOrderDeliveryAddressCommand) Complement() string {
	return c.complement
}
