package port

import (
	"context"
	"errors"
)

// ErrObjectNotFound is returned by SharedStore.Read when the key holds no
// object.
var ErrObjectNotFound = errors.New("object not found")

// SharedStore is the key/value blob storage shared with the delivery
// partner. Values are JSON documents and every write replaces the whole
// object. No locking is provided: concurrent writers to one key race.
type SharedStore interface {
	// Write serialises value and stores it under key.
	Write(ctx context.Context, key string, value any) error
	// Read loads the object under key and decodes it into dst.
	Read(ctx context.Context, key string, dst any) error
}
