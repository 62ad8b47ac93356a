package sortedhashtable

import (
	"github.com/iotaledger/hive.go/lo"
)

// CompareCaseInsensitive compares two keys byte by byte after folding ASCII upper case letters to lower case.
// It returns 0 if the keys are equal, -1 if a sorts before b and 1 otherwise. A proper prefix sorts first.
func CompareCaseInsensitive(a, b string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if result := lo.Comparator(toLowerASCII(a[i]), toLowerASCII(b[i])); result != 0 {
			return result
		}
	}

	return lo.Comparator(len(a), len(b))
}

func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
