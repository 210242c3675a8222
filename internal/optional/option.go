// Package optional provides a small generic Option type.
//
// An Option distinguishes "no value" from the zero value of T. Frames use it
// to record whether a grid key was absent before or after an edit.
package optional

// Option holds zero or one value of T.
type Option[T any] []T

// None returns an empty Option.
func None[T any]() Option[T] {
	return nil
}

// Some returns an Option holding v.
func Some[T any](v T) Option[T] {
	return Option[T]{v}
}

// FromPtr returns None for a nil pointer and Some(*v) otherwise.
func FromPtr[T any](v *T) Option[T] {
	if v == nil {
		return None[T]()
	}
	return Some(*v)
}

// From returns Some(v) when ok is true and None otherwise.
// It pairs with comma-ok lookups.
func From[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// Has reports whether the Option holds a value.
func (o Option[T]) Has() bool {
	return o != nil
}

// Value returns the held value or the zero value of T.
func (o Option[T]) Value() T {
	var zero T
	return o.ValueOrDefault(zero)
}

// ValueOrDefault returns the held value or v.
func (o Option[T]) ValueOrDefault(v T) T {
	if o.Has() {
		return o[0]
	}
	return v
}

// Get returns the held value and whether it exists.
func (o Option[T]) Get() (T, bool) {
	if o.Has() {
		return o[0], true
	}
	var zero T
	return zero, false
}
