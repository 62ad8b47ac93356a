package sortedhashtable

// entry is a key/value pair that is linked into one bucket chain and into the sorted list of its table.
type entry struct {
	key   string
	value string

	bucketNext *entry

	sortedPrev *entry
	sortedNext *entry
}

// newEntry creates an entry that is not linked into any structure yet.
func newEntry(key string, value string) *entry {
	return &entry{
		key:   key,
		value: value,
	}
}

// unlink drops all references of the entry so that neither structure can be walked through it anymore.
func (e *entry) unlink() {
	e.bucketNext = nil
	e.sortedPrev = nil
	e.sortedNext = nil
}
