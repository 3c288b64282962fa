// Package hash provides blake3 hashing with pooled hashers.
package hash

import (
	"sync"

	"github.com/zeebo/blake3"
)

// Size of the blake3 digest used across the codebase.
const Size = 32

var pool = sync.Pool{
	New: func() any {
		return blake3.New()
	},
}

// GetHasher returns a hasher from the pool. Hasher must be returned with PutHasher.
func GetHasher() *blake3.Hasher {
	return pool.Get().(*blake3.Hasher)
}

// PutHasher resets the hasher and returns it to the pool.
func PutHasher(hh *blake3.Hasher) {
	hh.Reset()
	pool.Put(hh)
}

// Sum computes blake3 hash of the concatenated chunks.
func Sum(chunks ...[]byte) (rst [Size]byte) {
	hh := GetHasher()
	defer PutHasher(hh)
	for _, chunk := range chunks {
		hh.Write(chunk)
	}
	hh.Sum(rst[:0])
	return rst
}

// New returns blake3 hasher that is not tracked by the pool.
func New() *blake3.Hasher {
	return blake3.New()
}
