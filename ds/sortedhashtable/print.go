package sortedhashtable

import (
	"io"
	"os"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
)

// String returns the entries in ascending key order formatted as {'key': 'value', ...}.
func (s *SortedHashTable) String() string {
	return format(s.ForEach)
}

// StringReverse returns the entries in descending key order formatted as {'key': 'value', ...}.
func (s *SortedHashTable) StringReverse() string {
	return format(s.ForEachReverse)
}

// Print writes the entries in ascending key order to the standard output.
func (s *SortedHashTable) Print() error {
	return s.Fprint(os.Stdout)
}

// PrintReverse writes the entries in descending key order to the standard output.
func (s *SortedHashTable) PrintReverse() error {
	return s.FprintReverse(os.Stdout)
}

// Fprint writes the entries in ascending key order followed by a newline to w.
func (s *SortedHashTable) Fprint(w io.Writer) error {
	return s.fprint(w, s.String)
}

// FprintReverse writes the entries in descending key order followed by a newline to w.
func (s *SortedHashTable) FprintReverse(w io.Writer) error {
	return s.fprint(w, s.StringReverse)
}

func (s *SortedHashTable) fprint(w io.Writer, formatter func() string) error {
	if s == nil {
		return ErrNilTable
	}
	if s.destroyed {
		return ErrDestroyed
	}

	if _, err := io.WriteString(w, formatter()+"\n"); err != nil {
		return ierrors.Errorf("failed to print table: %w", err)
	}

	return nil
}

// format renders the entries visited by forEach.
func format(forEach func(consumer func(key string, value string) bool) bool) string {
	var builder strings.Builder

	builder.WriteString("{")
	forEach(func(key string, value string) bool {
		if builder.Len() > 1 {
			builder.WriteString(", ")
		}
		builder.WriteString("'" + key + "': '" + value + "'")

		return true
	})
	builder.WriteString("}")

	return builder.String()
}
