// Package localstore implements the application's persisted key-value
// storage: named records of opaque bytes, the local analog of a browser's
// localStorage. Each store owner serializes its own collection as JSON and
// writes it whole under a fixed key.
package localstore

import "context"

// Store is the key-value contract consumed by the session and ticket stores.
//
// GetItem returns (nil, nil) when the key is absent. SetItem overwrites any
// prior value. RemoveItem is idempotent.
type Store interface {
	GetItem(ctx context.Context, key string) ([]byte, error)
	SetItem(ctx context.Context, key string, value []byte) error
	RemoveItem(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
