// Package blob abstracts the binary object store that holds transcoded
// images. Ownership of an object is by key convention: "<lyntID>.jpg" for
// lynt images, "<userID>" for avatars.
package blob

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("object not found")

type Store interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
}
