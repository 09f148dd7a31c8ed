package expiring

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by keyed reads and deletes when the key is absent,
// including when the same call just found it expired and evicted it.
var ErrNotFound = errors.New("expiring: key not found")

func notFound(key any) error {
	return fmt.Errorf("%w: %v", ErrNotFound, key)
}
