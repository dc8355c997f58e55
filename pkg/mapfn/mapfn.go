package mapfn

// ConvertSlice converts a slice of type T to a slice of type R using the provided function
func ConvertSlice[T any, R any](input []T, fn func(T) R) []R {
	result := make([]R, len(input))
	for i, v := range input {
		result[i] = fn(v)
	}
	return result
}

// IndexBy builds a lookup map keyed by key(v); later duplicates win
func IndexBy[T any, K comparable](input []T, key func(T) K) map[K]T {
	result := make(map[K]T, len(input))
	for _, v := range input {
		result[key(v)] = v
	}
	return result
}

// PickOrdered returns the values of index found under keys, preserving key order and skipping misses
func PickOrdered[K comparable, T any](keys []K, index map[K]T) []T {
	result := make([]T, 0, len(keys))
	for _, k := range keys {
		if v, ok := index[k]; ok {
			result = append(result, v)
		}
	}
	return result
}
