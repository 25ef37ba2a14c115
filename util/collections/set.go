package collections

import (
	"cmp"
	"slices"
)

type Set[V cmp.Ordered] map[V]struct{}

// SetOf returns a new Set holding the given values
func SetOf[V cmp.Ordered](values ...V) Set[V] {
	set := make(Set[V], len(values))
	for _, value := range values {
		set.Add(value)
	}
	return set
}

// Add an element to the set
func (set Set[V]) Add(value V) {
	set[value] = struct{}{}
}

// Filter returns a new Set containing only the elements for which keep returns true
func (set Set[V]) Filter(keep func(V) bool) Set[V] {
	filtered := make(Set[V], len(set))
	for value := range set {
		if keep(value) {
			filtered.Add(value)
		}
	}
	return filtered
}

// Union returns a new Set containing the elements of both sets
func (set Set[V]) Union(other Set[V]) Set[V] {
	union := make(Set[V], len(set)+len(other))
	for value := range set {
		union.Add(value)
	}
	for value := range other {
		union.Add(value)
	}
	return union
}

// Sorted returns the elements of the set in ascending order
func (set Set[V]) Sorted() []V {
	values := make([]V, 0, len(set))
	for value := range set {
		values = append(values, value)
	}
	slices.Sort(values)
	return values
}
