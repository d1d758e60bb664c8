package either_test

import (
	"testing"

	"github.com/on-the-ground/monad_ive_go/monads/either"
	"github.com/on-the-ground/monad_ive_go/monads/internal/lawtest"
	"github.com/stretchr/testify/assert"
)

func TestCata_Right(t *testing.T) {
	var c lawtest.Counter
	errHandler := lawtest.Fn(&c, func(string) int { return 0 })

	got := either.Cata(errHandler, func(n int) int { return n + 2 }, either.Right[string](3))
	assert.Equal(t, 5, got)
	assert.Zero(t, c.Calls)
}

func TestCata_Left(t *testing.T) {
	var received []string
	errHandler := func(s string) int {
		received = append(received, s)
		return -1
	}

	got := either.Cata(errHandler, func(n int) int { return n + 2 }, either.Left[string, int]("Error"))
	assert.Equal(t, -1, got)
	assert.Equal(t, []string{"Error"}, received)
}

func TestCata_Totality(t *testing.T) {
	f := func(n int) int { return n - 1 }
	g := func(n int) int { return n * 3 }
	rng := lawtest.NewRand()
	for range lawtest.N {
		x := lawtest.RandInt(rng)
		assert.Equal(t, g(x), either.Cata(f, g, either.Right[int](x)))
		assert.Equal(t, f(x), either.Cata(f, g, either.Left[int, int](x)))
	}
}

func TestCataFn_PartialApplication(t *testing.T) {
	render := either.CataFn(
		func(err string) string { return "failed: " + err },
		func(n int) string { return "ok" },
	)

	assert.Equal(t, "ok", render(either.Right[string](1)))
	assert.Equal(t, "failed: Error", render(either.Left[string, int]("Error")))
}
