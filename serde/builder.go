package serde

import (
	"errors"

	"github.com/mellemahp/smithy4go/validate"
)

// Union deserialization errors. A union holds exactly one variant;
// builders return these when the source sets more than one member or
// none at all.
var (
	ErrUnionValueAlreadySet = errors.New("serde: union value already set")
	ErrNoUnionValue         = errors.New("serde: no union value present")
)

// Corrector produces a value from partial state unconditionally, filling
// anything absent with protocol defaults. Every generated builder is a
// Corrector for its shape.
type Corrector[T any] interface {
	Correct() T
}

// Required is a two-state cell for a required member: either unset or set
// to a value. Unlike a pointer it distinguishes presence without heap
// allocation and works for value types whose zero value is meaningful.
type Required[T any] struct {
	value T
	set   bool
}

// Set stores v and marks the cell present.
func (r *Required[T]) Set(v T) {
	r.value = v
	r.set = true
}

// IsSet reports whether a value has been stored.
func (r *Required[T]) IsSet() bool { return r.set }

// Get returns the stored value and whether one was stored.
func (r *Required[T]) Get() (T, bool) { return r.value, r.set }

// OrElse returns the stored value, or def() when the cell is unset.
func (r *Required[T]) OrElse(def func() T) T {
	if r.set {
		return r.value
	}
	return def()
}

// OrZero returns the stored value, or the zero value when unset. It is
// the correction path for members whose protocol default is the Go zero
// value.
func (r *Required[T]) OrZero() T { return r.value }

// MaybeBuilt holds a nested shape member that arrived either as an
// already-built value or as a builder whose validation is deferred until
// the enclosing shape builds. Deferring keeps nested violations attached
// to one shared validator so error paths and limits span the whole tree.
type MaybeBuilt[T any] struct {
	value   T
	builder interface {
		Validate(v *validate.Validator)
		Correct() T
	}
	state maybeState
}

type maybeState uint8

const (
	maybeUnset maybeState = iota
	maybeValue
	maybeBuilder
)

// Built wraps a value that needs no further validation.
func Built[T any](v T) MaybeBuilt[T] {
	return MaybeBuilt[T]{value: v, state: maybeValue}
}

// Building wraps a builder whose validation runs when the enclosing
// shape validates.
func Building[T any](b interface {
	Validate(v *validate.Validator)
	Correct() T
}) MaybeBuilt[T] {
	return MaybeBuilt[T]{builder: b, state: maybeBuilder}
}

// IsSet reports whether a value or builder is held.
func (m *MaybeBuilt[T]) IsSet() bool { return m.state != maybeUnset }

// Validate descends into a held builder. Already-built values are not
// re-validated.
func (m *MaybeBuilt[T]) Validate(v *validate.Validator) {
	if m.state == maybeBuilder {
		m.builder.Validate(v)
	}
}

// Correct resolves the held value, error-correcting a held builder.
// An unset cell falls back to def().
func (m *MaybeBuilt[T]) Correct(def func() T) T {
	switch m.state {
	case maybeValue:
		return m.value
	case maybeBuilder:
		return m.builder.Correct()
	default:
		return def()
	}
}

// CorrectOptional resolves an optional nested member: nil when unset,
// otherwise the held or corrected value.
func (m *MaybeBuilt[T]) CorrectOptional() *T {
	switch m.state {
	case maybeValue:
		v := m.value
		return &v
	case maybeBuilder:
		v := m.builder.Correct()
		return &v
	default:
		return nil
	}
}
