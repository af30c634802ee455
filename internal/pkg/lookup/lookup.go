// Package lookup provides an explicit found/not-found result for reference
// data queries. Callers must pick a fallback instead of receiving a zero value.
package lookup

// Result holds either a found value or nothing
type Result[T any] struct {
	value T
	found bool
}

// Found wraps a value that was located
func Found[T any](v T) Result[T] {
	return Result[T]{value: v, found: true}
}

// NotFound returns an empty result
func NotFound[T any]() Result[T] {
	return Result[T]{}
}

// Get returns the value and whether it was found
func (r Result[T]) Get() (T, bool) {
	return r.value, r.found
}

// IsFound reports whether the result holds a value
func (r Result[T]) IsFound() bool {
	return r.found
}

// OrElse returns the value, or fallback when nothing was found
func (r Result[T]) OrElse(fallback T) T {
	if r.found {
		return r.value
	}
	return fallback
}

// OrElseGet is OrElse with a lazily built fallback
func (r Result[T]) OrElseGet(fallback func() T) T {
	if r.found {
		return r.value
	}
	return fallback()
}
