// Package patch models the fields of a partial update request. A Field
// distinguishes a key that was absent from the payload, a key sent as an
// explicit null, and a key carrying a value.
package patch

import "encoding/json"

type Field[T any] struct {
	Set   bool
	Null  bool
	Value T
}

// Of returns a field carrying v.
func Of[T any](v T) Field[T] {
	return Field[T]{Set: true, Value: v}
}

// Null returns a field sent as an explicit null.
func Null[T any]() Field[T] {
	return Field[T]{Set: true, Null: true}
}

func (f *Field[T]) UnmarshalJSON(data []byte) error {
	f.Set = true
	if string(data) == "null" {
		f.Null = true
		var zero T
		f.Value = zero
		return nil
	}
	f.Null = false
	return json.Unmarshal(data, &f.Value)
}

func (f Field[T]) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Null {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}

func (f Field[T]) Present() bool { return f.Set }

func (f Field[T]) IsNull() bool { return f.Set && f.Null }

// Interface returns the carried value, or nil when the field is absent or null.
func (f Field[T]) Interface() any {
	if !f.Set || f.Null {
		return nil
	}
	return f.Value
}

// ApplyTo copies the value onto dst when one was supplied. Nulls leave a
// non-nullable destination untouched; validation rejects them earlier.
func (f Field[T]) ApplyTo(dst *T) {
	if f.Set && !f.Null {
		*dst = f.Value
	}
}

// ApplyToPtr sets a nullable destination: a value replaces it and an
// explicit null clears it.
func (f Field[T]) ApplyToPtr(dst **T) {
	if !f.Set {
		return
	}
	if f.Null {
		*dst = nil
		return
	}
	v := f.Value
	*dst = &v
}

// Map converts the carried value while keeping presence and nullness.
func Map[T, R any](f Field[T], fn func(T) R) Field[R] {
	out := Field[R]{Set: f.Set, Null: f.Null}
	if f.Set && !f.Null {
		out.Value = fn(f.Value)
	}
	return out
}
