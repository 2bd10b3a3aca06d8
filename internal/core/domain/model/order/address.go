package order

import (
	"errors"
	"fmt"
	"regexp"

	"ordertrack/internal/pkg/errs"
)

// ErrAddressIsNotConstructed is returned when an Address instance was not
// created through the NewAddress factory function.
var ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

var (
	cepPattern   = regexp.MustCompile(`^\d{8}$`)
	statePattern = regexp.MustCompile(`^[A-Z]{2}$`)
)

// Address is the delivery destination value object.
//
// Invariants:
//   - CEP is exactly 8 digits (Brazilian postal code, no separator)
//   - street, number, neighborhood and city are non-empty
//   - state is a 2-letter uppercase abbreviation
//   - complement is optional
//
// Address is immutable; replacing an order's address means constructing a new
// value and calling Order.UpdateDeliveryAddress.
type Address struct {
	cep           string
	street        string
	number        string
	neighborhood  string
	city          string
	state         string
	complement    string
	isConstructed bool
}

// NewAddress creates a validated Address value object.
// Fails with a specific error per violated field.
func NewAddress(cep, street, number, neighborhood, city, state, complement string) (Address, error) {
	address := Address{
		complement:    complement,
		isConstructed: true,
	}

	if err := errors.Join(
		address.setCEP(cep),
		address.setStreet(street),
		address.setNumber(number),
		address.setNeighborhood(neighborhood),
		address.setCity(city),
		address.setState(state),
	); err != nil {
		return Address{}, err
	}

	return address, nil
}

// Validate ensures the Address was built through NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// CEP returns the 8-digit postal code.
func (a Address) CEP() string {
	return a.cep
}

// Street returns the street name.
func (a Address) Street() string {
	return a.street
}

// Number returns the street number.
func (a Address) Number() string {
	return a.number
}

// Neighborhood returns the neighborhood name.
func (a Address) Neighborhood() string {
	return a.neighborhood
}

// City returns the city name.
func (a Address) City() string {
	return a.city
}

// State returns the 2-letter state abbreviation.
func (a Address) State() string {
	return a.state
}

// Complement returns the optional address complement. May be empty.
func (a Address) Complement() string {
	return a.complement
}

// IsEqual compares two addresses field by field.
func (a Address) IsEqual(other Address) bool {
	return a.cep == other.cep &&
		a.street == other.street &&
		a.number == other.number &&
		a.neighborhood == other.neighborhood &&
		a.city == other.city &&
		a.state == other.state &&
		a.complement == other.complement
}

func (a *Address) setCEP(cep string) error {
	if cep == "" {
		return errs.NewValueIsRequiredError("cep")
	}
	if !cepPattern.MatchString(cep) {
		return errs.NewValueIsInvalidErrorWithCause("cep", fmt.Errorf("%q is not an 8-digit postal code", cep))
	}
	a.cep = cep
	return nil
}

func (a *Address) setStreet(street string) error {
	if street == "" {
		return errs.NewValueIsRequiredError("street")
	}
	a.street = street
	return nil
}

func (a *Address) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	a.number = number
	return nil
}

func (a *Address) setNeighborhood(neighborhood string) error {
	if neighborhood == "" {
		return errs.NewValueIsRequiredError("neighborhood")
	}
	a.neighborhood = neighborhood
	return nil
}

func (a *Address) setCity(city string) error {
	if city == "" {
		return errs.NewValueIsRequiredError("city")
	}
	a.city = city
	return nil
}

func (a *Address) setState(state string) error {
	if state == "" {
		return errs.NewValueIsRequiredError("state")
	}
	if !statePattern.MatchString(state) {
		return errs.NewValueIsInvalidErrorWithCause("state", fmt.Errorf("%q is not a 2-letter state abbreviation", state))
	}
	a.state = state
	return nil
}
