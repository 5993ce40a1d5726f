package keyvalue

import "context"

// Store is the minimal key-value contract backing credential persistence.
// Implementations must be safe for concurrent use.
type Store interface {
	// Get returns the value for key and whether it was present
	Get(ctx context.Context, key string) (string, bool, error)
	// Set stores the value, overwriting any previous value wholesale
	Set(ctx context.Context, key, value string) error
	// Delete removes the key; deleting an absent key is not an error
	Delete(ctx context.Context, key string) error
}
