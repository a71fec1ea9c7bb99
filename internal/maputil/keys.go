// Package maputil provides small map helpers shared across packages.
package maputil

import "sort"

// SortedKeys returns the keys of m in sorted order. A nil map yields an
// empty, non-nil slice so callers can range and append without nil checks.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
