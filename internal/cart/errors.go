package cart

import "errors"

var (
	// ErrInvalidQuantity rejects an add whose quantity is not a positive
	// integer within the product's snapshot stock. The cart is unchanged.
	ErrInvalidQuantity = errors.New("invalid quantity or insufficient stock")
)
