// Package maybe provides Maybe, a container for a value that may be absent.
//
// Absence is carried as data: mapping over Nothing yields Nothing without ever
// calling the mapped function, so a chain of Map calls short-circuits on the
// first missing value. The chain is collapsed at the boundary with Cata.
//
// Absence is an explicit tag, not a sentinel payload. Of(nil pointer) is a
// present Maybe holding a nil pointer; use FromPtr for nil-as-absence.
package maybe

import (
	"errors"

	"github.com/on-the-ground/monad_ive_go/monads/internal/show"
	"github.com/on-the-ground/monad_ive_go/shared/helper"
)

// ErrNothing is returned by Get on an absent value.
var ErrNothing = errors.New("maybe: value is absent")

// Maybe holds either one value of type A or nothing.
// The zero value is Nothing.
type Maybe[A any] struct {
	value   A
	present bool
}

// Of wraps x as a present value. x is stored verbatim, whatever it looks like.
func Of[A any](x A) Maybe[A] {
	return Maybe[A]{value: x, present: true}
}

// Nothing returns the empty Maybe.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// FromPtr returns Nothing for a nil pointer and Of(*p) otherwise.
func FromPtr[A any](p *A) Maybe[A] {
	if p == nil {
		return Nothing[A]()
	}
	return Of(*p)
}

// FromOk builds a Maybe from a comma-ok pair, as returned by map lookups and
// type assertions.
func FromOk[A any](v A, ok bool) Maybe[A] {
	if !ok {
		return Nothing[A]()
	}
	return Of(v)
}

// IsNothing reports whether the value is absent.
func (m Maybe[A]) IsNothing() bool {
	return !m.present
}

// Map applies f to the held value. On Nothing it returns Nothing and f is not called.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if m.IsNothing() {
		return Nothing[B]()
	}
	return Of(f(m.value))
}

// Join flattens one level of nesting.
func Join[A any](mm Maybe[Maybe[A]]) Maybe[A] {
	if mm.IsNothing() {
		return Nothing[A]()
	}
	return mm.value
}

// Get returns the held value, or ErrNothing if it is absent.
func (m Maybe[A]) Get() (A, error) {
	if m.IsNothing() {
		var zero A
		return zero, ErrNothing
	}
	return m.value, nil
}

// MustGet is the panic-on-failure variant of Get.
func (m Maybe[A]) MustGet() A {
	return helper.Must(m.Get)
}

func (m Maybe[A]) String() string {
	if m.IsNothing() {
		return "Nothing"
	}
	return show.Wrapped("Just", m.value)
}
