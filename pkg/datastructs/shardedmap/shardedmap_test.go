package shardedmap

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/huynhanx03/go-hashids/pkg/hash"
)

// intHash is a hash function for testing with int keys.
func intHash(key int) uint64 {
	return uint64(key)
}

func less(a, b string) bool { return a < b }

// =============================================================================
// Constructor Tests
// =============================================================================

func TestNew(t *testing.T) {
	tests := []struct {
		name       string
		shards     int
		wantShards int
	}{
		{"valid_16", 16, 16},
		{"valid_256", 256, 256},
		{"zero_uses_default", 0, 16},
		{"negative_uses_default", -1, 16},
		{"rounds_up_17_to_32", 17, 32},
		{"rounds_up_100_to_128", 100, 128},
		{"one_becomes_two", 1, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New[string, int](tt.shards, hash.String)
			require.NotNil(t, m)
			assert.Len(t, m.shards, tt.wantShards)

			m.Set("key", 42)
			val, ok := m.Get("key")
			assert.True(t, ok)
			assert.Equal(t, 42, val)
		})
	}
}

func TestNew_NilHashFunction(t *testing.T) {
	assert.Panics(t, func() {
		New[string, int](4, nil)
	})
}

// =============================================================================
// Get / Set / Del Tests
// =============================================================================

func TestGetSetDel(t *testing.T) {
	m := New[string, int](4, hash.String)

	t.Run("missing_key", func(t *testing.T) {
		val, ok := m.Get("missing")
		assert.False(t, ok)
		assert.Zero(t, val)
	})

	t.Run("set_then_get", func(t *testing.T) {
		m.Set("user", 1)
		val, ok := m.Get("user")
		assert.True(t, ok)
		assert.Equal(t, 1, val)
	})

	t.Run("overwrite", func(t *testing.T) {
		m.Set("user", 2)
		val, _ := m.Get("user")
		assert.Equal(t, 2, val)
		assert.Equal(t, 1, m.Len())
	})

	t.Run("del_existing", func(t *testing.T) {
		assert.True(t, m.Del("user"))
		_, ok := m.Get("user")
		assert.False(t, ok)
	})

	t.Run("del_missing", func(t *testing.T) {
		assert.False(t, m.Del("user"))
	})
}

func TestSetIfAbsent(t *testing.T) {
	m := New[string, string](4, hash.String)

	got, stored := m.SetIfAbsent("user", "first")
	assert.True(t, stored)
	assert.Equal(t, "first", got)

	got, stored = m.SetIfAbsent("user", "second")
	assert.False(t, stored)
	assert.Equal(t, "first", got)

	val, _ := m.Get("user")
	assert.Equal(t, "first", val)
}

// =============================================================================
// Len / Range / Keys Tests
// =============================================================================

func TestLen(t *testing.T) {
	m := New[int, int](8, intHash)
	assert.Equal(t, 0, m.Len())

	for i := 0; i < 100; i++ {
		m.Set(i, i*i)
	}
	assert.Equal(t, 100, m.Len())

	for i := 0; i < 40; i++ {
		m.Del(i)
	}
	assert.Equal(t, 60, m.Len())
}

func TestRange(t *testing.T) {
	m := New[int, int](8, intHash)
	for i := 0; i < 50; i++ {
		m.Set(i, i)
	}

	t.Run("visits_all", func(t *testing.T) {
		sum := 0
		m.Range(func(_ int, v int) bool {
			sum += v
			return true
		})
		assert.Equal(t, 49*50/2, sum)
	})

	t.Run("stops_early", func(t *testing.T) {
		visited := 0
		m.Range(func(int, int) bool {
			visited++
			return visited < 3
		})
		assert.Equal(t, 3, visited)
	})
}

func TestKeys(t *testing.T) {
	m := New[string, int](4, hash.String)
	for _, k := range []string{"order", "user", "invoice", "default"} {
		m.Set(k, 0)
	}

	assert.Equal(t, []string{"default", "invoice", "order", "user"}, m.Keys(less))
	assert.Len(t, m.Keys(nil), 4)

	empty := New[string, int](4, hash.String)
	assert.Empty(t, empty.Keys(less))
}

// =============================================================================
// Concurrency Tests
// =============================================================================

func TestConcurrentAccess(t *testing.T) {
	m := New[string, int](16, hash.String)

	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				key := fmt.Sprintf("ns-%d-%d", w, i)
				m.Set(key, i)
				if v, ok := m.Get(key); !ok || v != i {
					t.Errorf("Get(%s) = %d, %v", key, v, ok)
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 8*200, m.Len())
}
