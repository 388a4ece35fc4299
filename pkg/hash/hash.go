package hash

import (
	"github.com/cespare/xxhash/v2"
)

// String hashes a string key for shard selection. xxhash is stable across
// processes, so the shard a key lands in does not change between runs.
func String(key string) uint64 {
	return xxhash.Sum64String(key)
}
