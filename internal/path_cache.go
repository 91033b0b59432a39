package internal

import (
	"sync"
)

const (
	pathCacheShards     = 16
	pathCacheShardLimit = 1024 // entries per shard before eviction
	maxCachedPathLength = 256
)

// PathCache remembers split paths. It is safe for concurrent use; the
// returned segment slices are shared and must not be modified.
type PathCache struct {
	shards [pathCacheShards]pathCacheShard
}

type pathCacheShard struct {
	mu    sync.RWMutex
	paths map[string][]string
}

// GlobalPathCache backs SplitPath
var GlobalPathCache = NewPathCache()

// NewPathCache creates an empty cache
func NewPathCache() *PathCache {
	pc := &PathCache{}
	for i := range pc.shards {
		pc.shards[i].paths = make(map[string][]string)
	}
	return pc
}

// Get returns the cached segments of path
func (pc *PathCache) Get(path string) ([]string, bool) {
	shard := pc.shard(path)
	shard.mu.RLock()
	segments, ok := shard.paths[path]
	shard.mu.RUnlock()
	return segments, ok
}

// Set stores the segments of path. Long paths are not cached.
func (pc *PathCache) Set(path string, segments []string) {
	if len(path) > maxCachedPathLength {
		return
	}
	shard := pc.shard(path)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if len(shard.paths) >= pathCacheShardLimit {
		// Remove an arbitrary entry
		for k := range shard.paths {
			delete(shard.paths, k)
			break
		}
	}
	shard.paths[path] = segments
}

// Len returns the number of cached paths
func (pc *PathCache) Len() int {
	total := 0
	for i := range pc.shards {
		pc.shards[i].mu.RLock()
		total += len(pc.shards[i].paths)
		pc.shards[i].mu.RUnlock()
	}
	return total
}

// Clear removes every cached path
func (pc *PathCache) Clear() {
	for i := range pc.shards {
		pc.shards[i].mu.Lock()
		clear(pc.shards[i].paths)
		pc.shards[i].mu.Unlock()
	}
}

func (pc *PathCache) shard(path string) *pathCacheShard {
	return &pc.shards[fnv1aHash(path)%pathCacheShards]
}

func fnv1aHash(key string) uint64 {
	const (
		offset64 = 14695981039346656037
		prime64  = 1099511628211
	)

	hash := uint64(offset64)
	for i := 0; i < len(key); i++ {
		hash ^= uint64(key[i])
		hash *= prime64
	}
	return hash
}
