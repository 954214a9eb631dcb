// Package kvstore is the persistence substrate of the app: a small key-value
// store holding JSON blobs under string keys. All durable state (registered
// users, session pointer, first-login tracker, simulated platform settings)
// lives here. Values are opaque to the store; callers own serialization.
package kvstore

import "context"

// Store is the key-value persistence contract.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set inserts or overwrites the whole value for a key.
//   - Update runs a read-modify-write of one key atomically with respect to
//     other Update/Set calls for the same store. fn receives the current
//     value (nil when absent) and returns the replacement.
//   - Delete is idempotent; Clear wipes every key.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Update(ctx context.Context, key string, fn func(old []byte) ([]byte, error)) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
