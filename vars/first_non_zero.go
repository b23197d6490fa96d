package vars

// FirstNonZero picks the first set value, for layering flags over config
// over defaults.
func FirstNonZero[T comparable](values ...T) T {
	var zero T
	for _, value := range values {
		if value != zero {
			return value
		}
	}
	return zero
}
