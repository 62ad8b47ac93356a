package sortedhashtable

import (
	"github.com/iotaledger/hive.go/runtime/options"
)

// region SortedHashTable //////////////////////////////////////////////////////////////////////////////////////////////

// SortedHashTable is a hash table with a fixed number of buckets that resolves collisions by chaining and that
// additionally keeps all of its entries in a doubly linked list sorted by their case-insensitive keys.
//
// The table is not safe for concurrent use.
type SortedHashTable struct {
	size  uint64
	array []*entry

	sortedHead *entry
	sortedTail *entry
	count      int

	hashFunc  HashFunc
	destroyed bool
}

// New creates a SortedHashTable with the given number of buckets.
func New(size int, opts ...options.Option[SortedHashTable]) (*SortedHashTable, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}

	return options.Apply(&SortedHashTable{
		size:     uint64(size),
		hashFunc: DJB2,
	}, opts, func(s *SortedHashTable) {
		s.array = make([]*entry, s.size)
	}), nil
}

// Set adds the key-value pair to the table or updates the value if the key exists already.
func (s *SortedHashTable) Set(key string, value string) error {
	if s == nil {
		return ErrNilTable
	}
	if s.destroyed {
		return ErrDestroyed
	}
	if key == "" {
		return ErrEmptyKey
	}

	index := s.index(key)
	if existingEntry := s.lookup(index, key); existingEntry != nil {
		existingEntry.value = value

		return nil
	}

	addedEntry := newEntry(key, value)
	successor := s.sortedSuccessor(key)

	s.linkBucket(index, addedEntry)
	s.linkSorted(addedEntry, successor)
	s.count++

	return nil
}

// Get returns the value that is mapped to the given key.
func (s *SortedHashTable) Get(key string) (value string, exists bool) {
	if s == nil || s.destroyed {
		return "", false
	}

	if existingEntry := s.lookup(s.index(key), key); existingEntry != nil {
		return existingEntry.value, true
	}

	return "", false
}

// Has returns true if the key is stored in the table.
func (s *SortedHashTable) Has(key string) (has bool) {
	_, has = s.Get(key)

	return has
}

// Size returns the number of entries in the table.
func (s *SortedHashTable) Size() int {
	if s == nil {
		return 0
	}

	return s.count
}

// IsEmpty returns true if the table holds no entries.
func (s *SortedHashTable) IsEmpty() bool {
	return s.Size() == 0
}

// Buckets returns the number of buckets the table was created with.
func (s *SortedHashTable) Buckets() int {
	if s == nil {
		return 0
	}

	return int(s.size)
}

// Head returns the entry with the smallest key.
func (s *SortedHashTable) Head() (key string, value string, exists bool) {
	if s == nil || s.sortedHead == nil {
		return "", "", false
	}

	return s.sortedHead.key, s.sortedHead.value, true
}

// Tail returns the entry with the largest key.
func (s *SortedHashTable) Tail() (key string, value string, exists bool) {
	if s == nil || s.sortedTail == nil {
		return "", "", false
	}

	return s.sortedTail.key, s.sortedTail.value, true
}

// ForEach iterates through the entries in ascending key order and calls the consumer for every entry.
// The iteration can be aborted by returning false in the consumer.
func (s *SortedHashTable) ForEach(consumer func(key string, value string) bool) bool {
	if s == nil {
		return true
	}

	for currentEntry := s.sortedHead; currentEntry != nil; currentEntry = currentEntry.sortedNext {
		if !consumer(currentEntry.key, currentEntry.value) {
			return false
		}
	}

	return true
}

// ForEachReverse iterates through the entries in descending key order and calls the consumer for every entry.
// The iteration can be aborted by returning false in the consumer.
func (s *SortedHashTable) ForEachReverse(consumer func(key string, value string) bool) bool {
	if s == nil {
		return true
	}

	for currentEntry := s.sortedTail; currentEntry != nil; currentEntry = currentEntry.sortedPrev {
		if !consumer(currentEntry.key, currentEntry.value) {
			return false
		}
	}

	return true
}

// Destroy releases all entries and the bucket array. Afterwards the table can neither be modified nor printed.
func (s *SortedHashTable) Destroy() {
	if s == nil || s.destroyed {
		return
	}

	for i := range s.array {
		for currentEntry := s.array[i]; currentEntry != nil; {
			nextEntry := currentEntry.bucketNext
			currentEntry.unlink()
			currentEntry = nextEntry
		}
		s.array[i] = nil
	}

	s.array = nil
	s.sortedHead = nil
	s.sortedTail = nil
	s.count = 0
	s.destroyed = true
}

// IsDestroyed returns true if Destroy was called on the table.
func (s *SortedHashTable) IsDestroyed() bool {
	return s != nil && s.destroyed
}

// index returns the bucket of the given key.
func (s *SortedHashTable) index(key string) uint64 {
	return s.hashFunc(key) % s.size
}

// lookup returns the entry with exactly the given key from the bucket chain at index or nil.
func (s *SortedHashTable) lookup(index uint64, key string) *entry {
	for currentEntry := s.array[index]; currentEntry != nil; currentEntry = currentEntry.bucketNext {
		if currentEntry.key == key {
			return currentEntry
		}
	}

	return nil
}

// sortedSuccessor returns the first entry of the sorted list whose key is greater than or equal to the given key.
// It returns nil if the key belongs at the end of the list.
func (s *SortedHashTable) sortedSuccessor(key string) *entry {
	for currentEntry := s.sortedHead; currentEntry != nil; currentEntry = currentEntry.sortedNext {
		if CompareCaseInsensitive(currentEntry.key, key) >= 0 {
			return currentEntry
		}
	}

	return nil
}

// linkBucket prepends the entry to the bucket chain at index.
func (s *SortedHashTable) linkBucket(index uint64, addedEntry *entry) {
	addedEntry.bucketNext = s.array[index]
	s.array[index] = addedEntry
}

// linkSorted inserts the entry into the sorted list in front of successor, or at the tail if successor is nil.
func (s *SortedHashTable) linkSorted(addedEntry *entry, successor *entry) {
	if successor == nil {
		addedEntry.sortedPrev = s.sortedTail
		if s.sortedTail != nil {
			s.sortedTail.sortedNext = addedEntry
		} else {
			s.sortedHead = addedEntry
		}
		s.sortedTail = addedEntry

		return
	}

	addedEntry.sortedNext = successor
	addedEntry.sortedPrev = successor.sortedPrev
	if successor.sortedPrev != nil {
		successor.sortedPrev.sortedNext = addedEntry
	} else {
		s.sortedHead = addedEntry
	}
	successor.sortedPrev = addedEntry
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Options //////////////////////////////////////////////////////////////////////////////////////////////////////

// WithHashFunc is an Option for the SortedHashTable that replaces the default DJB2 hash function.
func WithHashFunc(hashFunc HashFunc) options.Option[SortedHashTable] {
	return func(s *SortedHashTable) {
		if hashFunc != nil {
			s.hashFunc = hashFunc
		}
	}
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
