// Package identity provides the trivial container: it holds one value and
// does nothing else. It is the baseline every other container is measured
// against.
package identity

import "github.com/on-the-ground/monad_ive_go/monads/internal/show"

// Identity holds exactly one value of type A.
type Identity[A any] struct {
	value A
}

// Of wraps x. An Identity wrapped in another is kept as is; nothing is flattened.
func Of[A any](x A) Identity[A] {
	return Identity[A]{value: x}
}

// Map applies f to the held value and wraps the result.
func Map[A, B any](m Identity[A], f func(A) B) Identity[B] {
	return Of(f(m.value))
}

// Join returns the held value, removing exactly one layer of wrapping.
func (m Identity[A]) Join() A {
	return m.value
}

func (m Identity[A]) String() string {
	return show.Wrapped("Identity", m.value)
}
