package sortedhashtable

import (
	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrInvalidSize is returned if a table is created with a non-positive number of buckets.
	ErrInvalidSize = ierrors.New("bucket count must be positive")
	// ErrNilTable is returned if an operation is called on a nil table.
	ErrNilTable = ierrors.New("table is nil")
	// ErrDestroyed is returned if a mutating or printing operation is called on a destroyed table.
	ErrDestroyed = ierrors.New("table was destroyed")
	// ErrEmptyKey is returned if an entry is set with an empty key.
	ErrEmptyKey = ierrors.New("key must not be empty")
	// ErrUnknownHashFunc is returned if a hash function is looked up by an unknown name.
	ErrUnknownHashFunc = ierrors.New("unknown hash function")
)
