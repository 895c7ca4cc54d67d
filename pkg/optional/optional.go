// Package optional provides a present/absent wrapper for fields of partial
// updates, so "not provided" is never confused with a zero value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value holds a T that is either present or absent.
// The zero Value is absent.
type Value[T any] struct {
	value T
	set   bool
}

// Some returns a present Value holding v.
func Some[T any](v T) Value[T] {
	return Value[T]{value: v, set: true}
}

// None returns an absent Value.
func None[T any]() Value[T] {
	return Value[T]{}
}

// IsSet reports whether the value is present.
func (v Value[T]) IsSet() bool { return v.set }

// Get returns the value and whether it is present.
func (v Value[T]) Get() (T, bool) { return v.value, v.set }

// OrElse returns the value if present, otherwise def.
func (v Value[T]) OrElse(def T) T {
	if v.set {
		return v.value
	}
	return def
}

// UnmarshalJSON marks the value present whenever its key appears in the
// payload, including an explicit null (which leaves the zero T).
// encoding/json does not call this for missing keys, so they stay absent.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		var zero T
		v.value = zero
		return nil
	}
	return json.Unmarshal(data, &v.value)
}

// MarshalJSON encodes the held value; an absent value encodes as null.
func (v Value[T]) MarshalJSON() ([]byte, error) {
	if !v.set {
		return []byte("null"), nil
	}
	return json.Marshal(v.value)
}
