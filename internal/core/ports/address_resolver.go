package ports

import "context"

// ResolvedAddress is the street-level data an external postal-code service
// returns for a CEP. Number and complement are supplied by the caller, not
// the service.
type ResolvedAddress struct {
	Street       string
	Neighborhood string
	City         string
	State        string
}

// AddressResolver looks up a Brazilian postal code (CEP) in an external
// service. Resolution failures propagate as ordinary errors and fail order
// creation.
type AddressResolver interface {
	Resolve(ctx context.Context, cep string) (ResolvedAddress, error)
}
