package resolve

import (
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/doublevil/memkit/mem/pointerpath"
)

// defaultCacheSize bounds the cache when the caller does not care; module
// lists in real targets rarely pass a few hundred entries.
const defaultCacheSize = 64

// CachedResolver memoizes module base lookups behind an LRU. Resolving a
// module in a live target is an expensive collaborator call, and pointer
// paths tend to anchor on the same handful of modules.
//
// Only successful resolutions are cached: a module that is not loaded now
// may be loaded by the next evaluation.
type CachedResolver struct {
	inner pointerpath.ModuleResolver
	cache *lru.Cache[string, uint64]
}

// Cached wraps inner with an LRU of the given capacity. Non-positive
// capacities fall back to a small default.
func Cached(inner pointerpath.ModuleResolver, capacity int) *CachedResolver {
	if capacity < 1 {
		capacity = defaultCacheSize
	}
	cache, _ := lru.New[string, uint64](capacity) // only fails for capacity < 1
	return &CachedResolver{inner: inner, cache: cache}
}

// ResolveModuleBase implements pointerpath.ModuleResolver.
func (c *CachedResolver) ResolveModuleBase(name string) (uint64, bool) {
	key := Normalize(name)
	if base, ok := c.cache.Get(key); ok {
		return base, true
	}
	base, ok := c.inner.ResolveModuleBase(name)
	if ok {
		c.cache.Add(key, base)
	}
	return base, ok
}

// Invalidate drops one module from the cache, typically after the target
// unloaded or reloaded it.
func (c *CachedResolver) Invalidate(name string) {
	c.cache.Remove(Normalize(name))
}

// Purge empties the cache.
func (c *CachedResolver) Purge() {
	c.cache.Purge()
}

var _ pointerpath.ModuleResolver = (*CachedResolver)(nil)
