package sortedhashtable

import (
	"github.com/cespare/xxhash/v2"

	"github.com/iotaledger/hive.go/ierrors"
)

const (
	// HashFuncDJB2 is the name of the DJB2 hash function.
	HashFuncDJB2 = "djb2"
	// HashFuncXXHash is the name of the 64 bit xxHash hash function.
	HashFuncXXHash = "xxhash"
)

// HashFunc maps a key to an unsigned integer. It must be deterministic and defined for every string.
type HashFunc func(key string) uint64

// DJB2 is Dan Bernstein's string hash (h = h*33 + c, seeded with 5381).
func DJB2(key string) (hash uint64) {
	hash = 5381
	for i := 0; i < len(key); i++ {
		hash = (hash << 5) + hash + uint64(key[i])
	}

	return hash
}

// XXHash returns the 64 bit xxHash of the key.
func XXHash(key string) uint64 {
	return xxhash.Sum64String(key)
}

// HashFuncByName returns the hash function registered under the given name.
func HashFuncByName(name string) (HashFunc, error) {
	switch name {
	case HashFuncDJB2:
		return DJB2, nil
	case HashFuncXXHash:
		return XXHash, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownHashFunc, "%q", name)
	}
}
