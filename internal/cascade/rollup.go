package cascade

import "slices"

// Stage parameterizes one rollup pass over items of type T grouped by K.
type Stage[T any, K comparable] struct {
	// Key maps an item to its group. Keys are compared structurally.
	Key func(T) K
	// Weight is the item's contribution to its group total.
	Weight func(T) int
	// Order sorts the members of each group. Ties keep input order.
	Order func(a, b T) int
}

// Group is one distinct key with its summed weight and ordered members.
type Group[K comparable, T any] struct {
	Key     K
	Total   int
	Members []T
}

// Rollup partitions items by stage.Key, sums stage.Weight per group and
// orders each group's members with stage.Order. Groups are returned in order
// of first appearance of their key; a group exists only if some item maps to
// it.
func Rollup[T any, K comparable](items []T, stage Stage[T, K]) []Group[K, T] {
	index := make(map[K]int)
	groups := make([]Group[K, T], 0)
	for _, item := range items {
		k := stage.Key(item)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, Group[K, T]{Key: k})
		}
		groups[i].Total += stage.Weight(item)
		groups[i].Members = append(groups[i].Members, item)
	}
	for i := range groups {
		slices.SortStableFunc(groups[i].Members, stage.Order)
	}
	return groups
}
