package storage

import "errors"

var (
	ErrInvalidKey = errors.New("invalid storage key")
)

// KV is durable local key-value storage, one JSON-encoded value per
// key. Get decodes the stored value into dest and reports whether the
// key held a usable value; content that fails to decode reads as
// absent rather than as an error, so a corrupted entry never blocks
// startup hydration.
type KV interface {
	Get(key string, dest any) (bool, error)
	Set(key string, value any) error
	Delete(key string) error
}
