package blob

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/storserv/storserv/internal/common"
)

// MemoryStore is an in-memory Store used in tests and local development. It
// mirrors the S3 behavior the facade relies on: silent deletes of absent keys
// and one-level listing with "/"-delimited common prefixes.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]map[string]string
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]map[string]string)}
}

func (s *MemoryStore) Get(ctx context.Context, namespace, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[namespace][key]
	if !ok {
		return "", common.ErrorNotFound
	}
	return value, nil
}

func (s *MemoryStore) Put(ctx context.Context, namespace, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	ns, ok := s.data[namespace]
	if !ok {
		ns = make(map[string]string)
		s.data[namespace] = ns
	}
	ns[key] = value
	return nil
}

func (s *MemoryStore) Delete(ctx context.Context, namespace, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data[namespace], key)
	return nil
}

func (s *MemoryStore) Exists(ctx context.Context, namespace, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	_, ok := s.data[namespace][key]
	return ok, nil
}

func (s *MemoryStore) List(ctx context.Context, namespace, prefix string) ([]string, []string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var keys []string
	prefixSet := make(map[string]struct{})

	for k := range s.data[namespace] {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		rest := strings.TrimPrefix(k, prefix)
		if i := strings.Index(rest, "/"); i >= 0 {
			prefixSet[prefix+rest[:i+1]] = struct{}{}
		} else {
			keys = append(keys, k)
		}
	}

	prefixes := make([]string, 0, len(prefixSet))
	for p := range prefixSet {
		prefixes = append(prefixes, p)
	}

	sort.Strings(keys)
	sort.Strings(prefixes)

	return keys, prefixes, nil
}
