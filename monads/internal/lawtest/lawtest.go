// Package lawtest checks the functor laws for any container of this module.
//
// A container is described by a Functor value: how to lift an int into it, how
// to map an int function over it, and how to observe it as a comparable value.
// Observing is needed because some containers (deferredio.IO) cannot be compared
// directly and must be run first.
package lawtest

import (
	"math/rand/v2"
	"testing"

	"github.com/on-the-ground/monad_ive_go/monads"
	"github.com/stretchr/testify/require"
)

// N is the number of random samples drawn per law.
const N = 500

// Functor describes a container F[int] for the law checks.
type Functor[F any] struct {
	Of      func(int) F
	Map     func(F, func(int) int) F
	Observe func(F) any
}

// RandInt returns a random int in [-1000, 1000].
func RandInt(rng *rand.Rand) int {
	return rng.IntN(2001) - 1000
}

// NewRand returns a deterministic generator so failures are reproducible.
func NewRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 0))
}

// CheckIdentity asserts Map(Of(x), Id) == Of(x).
func CheckIdentity[F any](t *testing.T, fn Functor[F]) {
	t.Helper()
	rng := NewRand()
	for range N {
		x := RandInt(rng)
		left := fn.Observe(fn.Map(fn.Of(x), monads.Id[int]))
		right := fn.Observe(fn.Of(x))
		require.Equal(t, right, left, "identity law (x=%d)", x)
	}
}

// CheckComposition asserts Map(Map(Of(x), f), g) == Map(Of(x), g ∘ f).
func CheckComposition[F any](t *testing.T, fn Functor[F]) {
	t.Helper()
	f := func(n int) int { return n + 3 }
	g := func(n int) int { return n * 2 }

	rng := NewRand()
	for range N {
		x := RandInt(rng)
		left := fn.Observe(fn.Map(fn.Map(fn.Of(x), f), g))
		right := fn.Observe(fn.Map(fn.Of(x), monads.Compose(g, f)))
		require.Equal(t, right, left, "composition law (x=%d)", x)
	}
}

// CheckFunctorLaws runs both functor laws as subtests.
func CheckFunctorLaws[F any](t *testing.T, fn Functor[F]) {
	t.Run("identity", func(t *testing.T) { CheckIdentity(t, fn) })
	t.Run("composition", func(t *testing.T) { CheckComposition(t, fn) })
}

// Counter is a call-counting stub for functions that must not be invoked.
type Counter struct {
	Calls int
}

// Fn returns f instrumented to bump the counter on each call.
func Fn[A, B any](c *Counter, f func(A) B) func(A) B {
	return func(a A) B {
		c.Calls++
		return f(a)
	}
}
