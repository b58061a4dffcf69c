package checkout

import "errors"

var (
	ErrCartEmpty       = errors.New("cart is empty")
	ErrTooManyAttempts = errors.New("too many checkout attempts")
)
