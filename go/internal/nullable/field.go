// Package nullable carries the three states a partial-update field can be in:
// not provided, explicitly cleared (JSON null) and set to a value.
package nullable

import (
	"bytes"
	"encoding/json"
)

// Field is a tri-state value. The zero Field is "not provided".
// Tag struct fields with `json:",omitzero"` so an unset Field is left out when encoding.
type Field[T any] struct {
	value T
	set   bool
	valid bool
}

// Value returns a Field holding v
func Value[T any](v T) Field[T] {
	return Field[T]{value: v, set: true, valid: true}
}

// Null returns a Field that explicitly clears the column
func Null[T any]() Field[T] {
	return Field[T]{set: true}
}

// FromPtr returns Null for a nil pointer and Value otherwise
func FromPtr[T any](p *T) Field[T] {
	if p == nil {
		return Null[T]()
	}
	return Value(*p)
}

// IsSet reports whether the field was provided at all
func (f Field[T]) IsSet() bool {
	return f.set
}

// IsNull reports whether the field was provided as null
func (f Field[T]) IsNull() bool {
	return f.set && !f.valid
}

// IsZero reports whether the field was not provided; used by encoding/json omitzero
func (f Field[T]) IsZero() bool {
	return !f.set
}

// Get returns the value and true only when the field holds a value
func (f Field[T]) Get() (T, bool) {
	return f.value, f.set && f.valid
}

// Ptr returns a pointer to the value, or nil when the field is null or not provided
func (f Field[T]) Ptr() *T {
	if !f.set || !f.valid {
		return nil
	}
	v := f.value
	return &v
}

// ApplyTo overwrites *dst when the field was provided
func (f Field[T]) ApplyTo(dst **T) {
	if f.set {
		*dst = f.Ptr()
	}
}

// Map transforms a held value, keeping the not-provided and null states
func Map[T, U any](f Field[T], fn func(T) U) Field[U] {
	if !f.set {
		return Field[U]{}
	}
	if !f.valid {
		return Null[U]()
	}
	return Value(fn(f.value))
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.set || !f.valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.value)
}

// UnmarshalJSON only runs when the key is present, which is what marks the field as provided
func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		f.value = zero
		f.valid = false
		return nil
	}
	if err := json.Unmarshal(data, &f.value); err != nil {
		return err
	}
	f.valid = true
	return nil
}
