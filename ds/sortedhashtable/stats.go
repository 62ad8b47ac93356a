package sortedhashtable

import (
	"github.com/iotaledger/hive.go/stringify"
)

// Stats describes how the entries of a table are spread over its buckets.
type Stats struct {
	Buckets      int
	Entries      int
	UsedBuckets  int
	LongestChain int
}

// Stats walks all bucket chains and returns their occupancy.
func (s *SortedHashTable) Stats() (stats Stats) {
	if s == nil {
		return stats
	}

	stats.Buckets = len(s.array)
	for _, head := range s.array {
		chainLength := 0
		for currentEntry := head; currentEntry != nil; currentEntry = currentEntry.bucketNext {
			chainLength++
		}

		if chainLength > 0 {
			stats.UsedBuckets++
		}
		if chainLength > stats.LongestChain {
			stats.LongestChain = chainLength
		}
		stats.Entries += chainLength
	}

	return stats
}

// String returns a human-readable version of the Stats.
func (s Stats) String() string {
	return stringify.Struct("Stats",
		stringify.NewStructField("Buckets", s.Buckets),
		stringify.NewStructField("Entries", s.Entries),
		stringify.NewStructField("UsedBuckets", s.UsedBuckets),
		stringify.NewStructField("LongestChain", s.LongestChain),
	)
}
