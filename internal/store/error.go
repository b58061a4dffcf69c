package store

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidSize     = errors.New("invalid portion size")
	ErrInvalidTheme    = errors.New("invalid theme")
)
