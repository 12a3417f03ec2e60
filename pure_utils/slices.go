package pure_utils

// Filter returns the elements of src for which keep returns true, in order.
func Filter[T any](src []T, keep func(T) bool) []T {
	out := make([]T, 0, len(src))
	for _, item := range src {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Last returns at most the n last elements of src, sharing its backing array.
func Last[T any](src []T, n int) []T {
	if n < 0 {
		n = 0
	}
	if len(src) <= n {
		return src
	}
	return src[len(src)-n:]
}
