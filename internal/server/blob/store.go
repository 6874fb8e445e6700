// Package blob abstracts the namespace-scoped object store that backs every
// user's key-value data.
package blob

import "context"

// Store is the backing blob store. A namespace addresses a logically isolated
// container; keys may contain "/" separators forming a virtual hierarchy.
//
// Absent keys surface as common.ErrorNotFound; transport, permission and
// throttling failures wrap common.ErrorStore. Implementations do not retry.
type Store interface {
	// Get returns the value stored at (namespace, key).
	Get(ctx context.Context, namespace, key string) (string, error)

	// Put stores value at (namespace, key), overwriting any previous value.
	Put(ctx context.Context, namespace, key, value string) error

	// Delete removes the object at (namespace, key). Deleting an absent key
	// is not an error; existence checks belong to the caller.
	Delete(ctx context.Context, namespace, key string) error

	// Exists reports whether an object is stored at (namespace, key).
	Exists(ctx context.Context, namespace, key string) (bool, error)

	// List returns the direct child keys below prefix and the one-level
	// "directory" prefixes next to them. An empty prefix lists the
	// namespace root.
	List(ctx context.Context, namespace, prefix string) (keys []string, prefixes []string, err error)
}
