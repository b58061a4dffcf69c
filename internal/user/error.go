package user

import "errors"

var (
	ErrEmailExists        = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")

	ErrFailedLoadAccounts = errors.New("failed to load account registry")
	ErrFailedSaveAccounts = errors.New("failed to save account registry")
)
