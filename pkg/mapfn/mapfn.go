package mapfn

// ConvertSlice converts a slice of type T to a slice of type R using the provided function
func ConvertSlice[T any, R any](input []T, fn func(int, T) R) []R {
	result := make([]R, len(input))
	for i, v := range input {
		result[i] = fn(i, v)
	}
	return result
}

// FilterSlice filters a slice based on the provided predicate function
func FilterSlice[T any](input []T, predicate func(T) bool) []T {
	result := make([]T, 0)
	for _, v := range input {
		if predicate(v) {
			result = append(result, v)
		}
	}
	return result
}

// Take returns at most n leading elements; n <= 0 returns the input unchanged
func Take[T any](input []T, n int) []T {
	if n <= 0 || len(input) <= n {
		return input
	}
	return input[:n]
}
