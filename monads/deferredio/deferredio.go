// Package deferredio provides IO, a container for a side effect that has not
// happened yet.
//
// An IO holds a zero-argument function (a thunk). Building an IO with New or
// Of, and transforming it with Map, never calls the thunk: an arbitrarily long
// chain performs no side effect until Run is called. Run executes the whole
// chain synchronously on the calling goroutine and is not memoized; every call
// to Run is an independent execution of the effect.
//
// Panics raised inside any thunk of the chain surface from Run, unchanged.
//
// An IO may be run from several goroutines at once only if its thunks are safe
// for concurrent use. IO itself adds no synchronization.
package deferredio

import "github.com/on-the-ground/monad_ive_go/monads/internal/show"

// IO is a deferred computation producing a value of type A.
// The zero value runs to the zero value of A.
type IO[A any] struct {
	thunk func() A
}

// New wraps thunk without calling it. It panics if thunk is nil.
func New[A any](thunk func() A) IO[A] {
	if thunk == nil {
		panic("deferredio: nil thunk")
	}
	return IO[A]{thunk: thunk}
}

// Of wraps a thunk that returns x.
func Of[A any](x A) IO[A] {
	return IO[A]{thunk: func() A { return x }}
}

// Map returns an IO that, when run, runs m and applies f to its result.
// Neither m nor f is called by Map.
func Map[A, B any](m IO[A], f func(A) B) IO[B] {
	return IO[B]{thunk: func() B { return f(m.Run()) }}
}

// Run executes the deferred computation and returns its result.
func (m IO[A]) Run() A {
	if m.thunk == nil {
		var zero A
		return zero
	}
	return m.thunk()
}

// UnsafePerformIO is Run under its traditional name, spelling out that calling
// it performs the effect.
func (m IO[A]) UnsafePerformIO() A {
	return m.Run()
}

// String renders the IO without running it.
func (m IO[A]) String() string {
	return show.Opaque("IO")
}
