package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrCustomerName indicates a checkout customer handle shorter than
	// three characters.
	ErrCustomerName = errors.New("customer name must be at least 3 characters")

	// ErrEmptyCart indicates a checkout attempted with no cart entries.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUnknownStatus indicates a status value outside the known set.
	ErrUnknownStatus = errors.New("unknown order status")

	// ErrUnknownCard indicates a cart mutation referencing a card id that is
	// not in the catalog.
	ErrUnknownCard = errors.New("unknown card")
)
