package user

import "gofood/internal/store"

// Account is a registered identity in the local registry. Only the
// bcrypt hash of the password is ever stored.
type Account struct {
	User         store.User `json:"user"`
	PasswordHash string     `json:"password_hash"`
}

type SignUpParams struct {
	Name     string
	Email    string
	Phone    string
	Address  string
	Password string
}
