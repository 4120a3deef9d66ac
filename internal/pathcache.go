package internal

import (
	"sync"
	"sync/atomic"
)

const (
	pathCacheShards      = 16
	pathCacheShardLimit  = 256
	pathCacheMaxPathSize = 256
)

// PathCache memoizes split dot paths. It is sharded by an FNV-1a hash of
// the path; a full shard is emptied before the next insert.
// Cached segment slices are shared and must not be modified.
type PathCache struct {
	shards    [pathCacheShards]pathShard
	hits      atomic.Int64
	misses    atomic.Int64
	evictions atomic.Int64
}

type pathShard struct {
	mu      sync.RWMutex
	entries map[string][]Key
}

// PathCacheStats is a snapshot of cache counters
type PathCacheStats struct {
	Entries   int
	Hits      int64
	Misses    int64
	Evictions int64
}

var defaultPathCache = &PathCache{}

// DefaultPathCache returns the cache used by SplitPath
func DefaultPathCache() *PathCache {
	return defaultPathCache
}

func (pc *PathCache) shard(path string) *pathShard {
	return &pc.shards[fnv1aHash(path)&(pathCacheShards-1)]
}

// Get returns the cached segments of path
func (pc *PathCache) Get(path string) ([]Key, bool) {
	s := pc.shard(path)
	s.mu.RLock()
	segs, ok := s.entries[path]
	s.mu.RUnlock()

	if ok {
		pc.hits.Add(1)
	} else {
		pc.misses.Add(1)
	}
	return segs, ok
}

// Put stores segs for path. Very long paths are not cached.
func (pc *PathCache) Put(path string, segs []Key) {
	if len(path) > pathCacheMaxPathSize {
		return
	}
	s := pc.shard(path)
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.entries == nil {
		s.entries = make(map[string][]Key)
	}
	if _, exists := s.entries[path]; !exists && len(s.entries) >= pathCacheShardLimit {
		pc.evictions.Add(int64(len(s.entries)))
		s.entries = make(map[string][]Key)
	}
	s.entries[path] = segs
}

// Clear drops every entry and resets the counters
func (pc *PathCache) Clear() {
	for i := range pc.shards {
		s := &pc.shards[i]
		s.mu.Lock()
		s.entries = nil
		s.mu.Unlock()
	}
	pc.hits.Store(0)
	pc.misses.Store(0)
	pc.evictions.Store(0)
}

// Stats returns the current counters
func (pc *PathCache) Stats() PathCacheStats {
	stats := PathCacheStats{
		Hits:      pc.hits.Load(),
		Misses:    pc.misses.Load(),
		Evictions: pc.evictions.Load(),
	}
	for i := range pc.shards {
		s := &pc.shards[i]
		s.mu.RLock()
		stats.Entries += len(s.entries)
		s.mu.RUnlock()
	}
	return stats
}

// fnv1aHash implements FNV-1a hash algorithm for string keys
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
