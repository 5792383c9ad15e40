package usecase

import (
	"bytes"
	"encoding/json"
)

// Patch is a tri-state field of a partial update: absent, explicit null, or a value.
// A zero Patch is absent.
type Patch[T any] struct {
	Set   bool // The field was present in the payload.
	Null  bool // The field was present and null.
	Value T
}

// Some returns a Patch holding v.
func Some[T any](v T) Patch[T] {
	return Patch[T]{Set: true, Value: v}
}

// Null returns a Patch that clears the field.
func Null[T any]() Patch[T] {
	return Patch[T]{Set: true, Null: true}
}

// HasValue reports whether the patch carries a non-null value.
func (p Patch[T]) HasValue() bool {
	return p.Set && !p.Null
}

// UnmarshalJSON is only invoked for keys present in the payload.
func (p *Patch[T]) UnmarshalJSON(data []byte) error {
	p.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		p.Null = true

		return nil
	}

	return json.Unmarshal(data, &p.Value)
}

// MarshalJSON renders absent and null patches as null.
func (p Patch[T]) MarshalJSON() ([]byte, error) {
	if !p.HasValue() {
		return []byte("null"), nil
	}

	return json.Marshal(p.Value)
}
