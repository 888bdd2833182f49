package blobstore

import (
	"context"

	"github.com/hupe1980/supermatrix/internal/cache"
	"github.com/hupe1980/supermatrix/internal/resource"
)

// CachingStore wraps a BlobStore and caches whole blobs on Get.
// Put and Delete through the wrapper invalidate the cached copy; writes that
// bypass it are not observed.
type CachingStore struct {
	inner BlobStore
	cache *cache.LRU
}

var _ BlobStore = (*CachingStore)(nil)

// NewCachingStore creates a CachingStore holding up to capacity bytes.
// If rc is non-nil, cached bytes count against its memory limit.
func NewCachingStore(inner BlobStore, capacity int64, rc *resource.Controller) *CachingStore {
	return &CachingStore{
		inner: inner,
		cache: cache.NewLRU(capacity, rc),
	}
}

func (s *CachingStore) Put(ctx context.Context, name string, data []byte) error {
	s.cache.Invalidate(name)
	return s.inner.Put(ctx, name, data)
}

// Get returns a private copy, so callers may modify the result.
func (s *CachingStore) Get(ctx context.Context, name string) ([]byte, error) {
	if data, ok := s.cache.Get(name); ok {
		return append([]byte(nil), data...), nil
	}

	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	s.cache.Set(name, append([]byte(nil), data...))
	return data, nil
}

func (s *CachingStore) Delete(ctx context.Context, name string) error {
	s.cache.Invalidate(name)
	return s.inner.Delete(ctx, name)
}

func (s *CachingStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}

// Stats returns the cache hit and miss counts.
func (s *CachingStore) Stats() (hits, misses int64) {
	return s.cache.Stats()
}
