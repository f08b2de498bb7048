package util

// Compose chains fns so that each receives the result of the previous
// one, applied left to right. With no functions the result is the
// identity function.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}
