package shardedmap

import (
	"sort"
	"sync"

	"github.com/huynhanx03/go-hashids/pkg/utils"
)

const defaultShards = 16

// Map is a thread-safe map that uses sharding to minimize lock contention.
// It supports any comparable key type K and any value type V.
type Map[K comparable, V any] struct {
	shards []*lockedShard[K, V]
	mask   uint64
	hasher func(K) uint64
}

type lockedShard[K comparable, V any] struct {
	sync.RWMutex
	data map[K]V

	// Keeps neighbouring shards off the same cache line.
	pad [64]byte
}

// New creates a new Sharded Map.
// shards: Number of shards to use. Will be rounded up to the nearest power of 2.
// hashFn: Function to hash the key K into a uint64. Must not be nil.
func New[K comparable, V any](shards int, hashFn func(K) uint64) *Map[K, V] {
	if hashFn == nil {
		panic("shardedmap: nil hash function")
	}
	if shards <= 0 {
		shards = defaultShards
	}
	numShards := utils.CeilToPowerOfTwo(shards)
	m := &Map[K, V]{
		shards: make([]*lockedShard[K, V], numShards),
		mask:   uint64(numShards - 1),
		hasher: hashFn,
	}

	for i := range m.shards {
		m.shards[i] = &lockedShard[K, V]{
			data: make(map[K]V),
		}
	}
	return m
}

func (m *Map[K, V]) shard(key K) *lockedShard[K, V] {
	return m.shards[m.hasher(key)&m.mask]
}

// Get retrieves a value from the map.
func (m *Map[K, V]) Get(key K) (V, bool) {
	shard := m.shard(key)

	shard.RLock()
	val, ok := shard.data[key]
	shard.RUnlock()
	return val, ok
}

// Set adds or updates a value in the map.
func (m *Map[K, V]) Set(key K, value V) {
	shard := m.shard(key)

	shard.Lock()
	shard.data[key] = value
	shard.Unlock()
}

// SetIfAbsent stores value only when key is not present.
// It returns the value held after the call and whether value was stored.
func (m *Map[K, V]) SetIfAbsent(key K, value V) (V, bool) {
	shard := m.shard(key)

	shard.Lock()
	defer shard.Unlock()
	if cur, ok := shard.data[key]; ok {
		return cur, false
	}
	shard.data[key] = value
	return value, true
}

// Del removes a value from the map and reports whether it was present.
func (m *Map[K, V]) Del(key K) bool {
	shard := m.shard(key)

	shard.Lock()
	_, ok := shard.data[key]
	delete(shard.data, key)
	shard.Unlock()
	return ok
}

// Len returns the total number of items in the map.
// Shards are locked one at a time, so the total is not atomic across the whole map.
func (m *Map[K, V]) Len() int {
	total := 0
	for _, shard := range m.shards {
		shard.RLock()
		total += len(shard.data)
		shard.RUnlock()
	}
	return total
}

// Range calls fn for every item until fn returns false.
// It locks one shard at a time; fn must not write to the map.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	for _, shard := range m.shards {
		shard.RLock()
		for k, v := range shard.data {
			if !fn(k, v) {
				shard.RUnlock()
				return
			}
		}
		shard.RUnlock()
	}
}

// Keys returns the keys of the map ordered by less.
func (m *Map[K, V]) Keys(less func(a, b K) bool) []K {
	keys := make([]K, 0, m.Len())
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})
	if less != nil {
		sort.Slice(keys, func(i, j int) bool { return less(keys[i], keys[j]) })
	}
	return keys
}
