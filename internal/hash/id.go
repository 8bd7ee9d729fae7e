package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given buffer. It is the content ID used
// to key references, targets and deltas in content-addressed storage.
func ID(data []byte) uint64 {
	return xxhash.Sum64(data)
}
