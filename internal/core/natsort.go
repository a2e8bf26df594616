package core

import (
	"sort"

	"github.com/maruel/natural"
)

// SortNatural orders values in place with alphanumeric-aware comparison,
// so Ethernet2 sorts before Ethernet10.
func SortNatural(values []string) {
	sort.Slice(values, func(i, j int) bool {
		return natural.Less(values[i], values[j])
	})
}

// NaturalKeys returns the keys of m in natural ascending order.
func NaturalKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	SortNatural(keys)
	return keys
}
