package application

import "errors"

var (
	// ErrUnknownPizza signals an add-to-cart for a pizza not in the catalog.
	ErrUnknownPizza = errors.New("pizza is not on the menu")
	// ErrInvalidQuantity signals a non-positive quantity on add-to-cart.
	ErrInvalidQuantity = errors.New("quantity must be greater than zero")
)
