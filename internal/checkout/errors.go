package checkout

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrAlreadySubmitting = errors.New("a checkout is already in flight")
)
