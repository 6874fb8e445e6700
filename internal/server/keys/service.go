// Package keys is the access-controlled facade over the backing blob store.
// Every operation takes the namespace already resolved from a validated
// token; the facade never derives namespaces itself.
package keys

import (
	"context"

	"github.com/storserv/storserv/internal/common"
	"github.com/storserv/storserv/internal/server/blob"
)

type Service struct {
	store blob.Store
}

func NewService(store blob.Store) *Service {
	return &Service{store: store}
}

// Exists reports whether a value is stored at (namespace, key).
func (s *Service) Exists(ctx context.Context, namespace, key string) (bool, error) {
	return s.store.Exists(ctx, namespace, key)
}

// Read returns the value at (namespace, key), or common.ErrorNotFound.
func (s *Service) Read(ctx context.Context, namespace, key string) (string, error) {
	return s.store.Get(ctx, namespace, key)
}

// List returns the direct children one level below prefix: plain keys first,
// then the "/"-terminated child prefixes. An empty prefix lists the
// namespace root.
func (s *Service) List(ctx context.Context, namespace, prefix string) ([]string, error) {
	keys, prefixes, err := s.store.List(ctx, namespace, prefix)
	if err != nil {
		return nil, err
	}

	// Always a non-nil slice so an empty namespace lists as [] rather
	// than null.
	list := make([]string, 0, len(keys)+len(prefixes))
	list = append(list, keys...)
	list = append(list, prefixes...)
	return list, nil
}

// Create stores value at (namespace, key) only if the key is absent;
// otherwise it fails with common.ErrorAlreadyExists.
//
// The existence check and the write are not atomic: two concurrent creators
// of the same key can both pass the check, and the later write silently wins.
// The backing store offers no conditional put, so this window is accepted.
func (s *Service) Create(ctx context.Context, namespace, key, value string) error {
	exists, err := s.store.Exists(ctx, namespace, key)
	if err != nil {
		return err
	}
	if exists {
		return common.ErrorAlreadyExists
	}
	return s.store.Put(ctx, namespace, key, value)
}

// Update stores value at (namespace, key) unconditionally (upsert).
func (s *Service) Update(ctx context.Context, namespace, key, value string) error {
	return s.store.Put(ctx, namespace, key, value)
}

// Delete removes the key, failing with common.ErrorNotFound when it is
// absent.
func (s *Service) Delete(ctx context.Context, namespace, key string) error {
	exists, err := s.store.Exists(ctx, namespace, key)
	if err != nil {
		return err
	}
	if !exists {
		return common.ErrorNotFound
	}
	return s.store.Delete(ctx, namespace, key)
}
