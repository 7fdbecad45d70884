package combination

import (
	"cmp"
	"math"
	"slices"
)

// from map[K][]V, choose one item for each key and generate the cartesian product.
//
// # Example:
//
//	MapCartesian(map[string][]any{
//		"lr":         {0.1, 0.01},
//		"batch_size": {32, 64, 128},
//	})
//
// generates 2 × 3 combinations:
//
//	[]map[string]any{
//		{"batch_size": 32, "lr": 0.1},
//		{"batch_size": 32, "lr": 0.01},
//		{"batch_size": 64, "lr": 0.1},
//		        ... snip ...
//		{"batch_size": 128, "lr": 0.01},
//	}
//
// Combinations are ordered by keys in ascending order; the last key changes fastest.
//
// # args:
//
// - basis : basis of cartesian product.
//
// # returning:
//
// - []map[K]V : Each item has same keys in basis.
// For each key for each item, the value is one of basis[key].
// If any of basis is empty, the product is empty.
func MapCartesian[K cmp.Ordered, V any](basis map[K][]V) []map[K]V {
	keys := make([]K, 0, len(basis))
	for k := range basis {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return OrderedCartesian(keys, basis)
}

// MapCartesianN is MapCartesian which stops after first limit combinations.
//
// When limit is not positive, it generates all.
func MapCartesianN[K cmp.Ordered, V any](basis map[K][]V, limit int) []map[K]V {
	keys := make([]K, 0, len(basis))
	for k := range basis {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return OrderedCartesianN(keys, basis, limit)
}

// OrderedCartesian is MapCartesian with explicit order of keys.
//
// Keys not in basis are treated as empty dimensions.
func OrderedCartesian[K comparable, V any](keys []K, basis map[K][]V) []map[K]V {
	return OrderedCartesianN(keys, basis, 0)
}

// OrderedCartesianN is OrderedCartesian which stops after first limit combinations.
//
// When limit is not positive, it generates all.
func OrderedCartesianN[K comparable, V any](keys []K, basis map[K][]V, limit int) []map[K]V {
	if len(keys) == 0 {
		return []map[K]V{}
	}
	for _, k := range keys {
		if len(basis[k]) == 0 {
			return []map[K]V{}
		}
	}
	size := sizeOf(keys, basis)
	if 0 < limit && limit < size {
		size = limit
	}

	product := make([]map[K]V, 0, min(size, 1<<16))
	index := make([]int, len(keys))
	for len(product) < size {
		item := make(map[K]V, len(keys))
		for d, k := range keys {
			item[k] = basis[k][index[d]]
		}
		product = append(product, item)

		// count up like an odometer, the last digit first.
		d := len(keys) - 1
		for ; 0 <= d; d-- {
			index[d] += 1
			if index[d] < len(basis[keys[d]]) {
				break
			}
			index[d] = 0
		}
		if d < 0 {
			break
		}
	}
	return product
}

// Size returns how many combinations MapCartesian(basis) generates.
//
// When it exceeds math.MaxInt, it is math.MaxInt.
func Size[K comparable, V any](basis map[K][]V) int {
	if len(basis) == 0 {
		return 0
	}
	keys := make([]K, 0, len(basis))
	for k := range basis {
		keys = append(keys, k)
	}
	return sizeOf(keys, basis)
}

func sizeOf[K comparable, V any](keys []K, basis map[K][]V) int {
	size := 1
	for _, k := range keys {
		n := len(basis[k])
		if n == 0 {
			return 0
		}
		if math.MaxInt/n < size {
			return math.MaxInt
		}
		size *= n
	}
	return size
}
