package repository

import (
	"cmp"
	"errors"
	"slices"
)

// ErrDuplicateID is returned by Create when the id is already stored.
var ErrDuplicateID = errors.New("record with this id already exists")

// valuesByKey returns the map values ordered by key.
func valuesByKey[K cmp.Ordered, V any](m map[K]V, clone func(V) V) []V {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	out := make([]V, 0, len(keys))
	for _, k := range keys {
		out = append(out, clone(m[k]))
	}
	return out
}

func identity[V any](v V) V { return v }
