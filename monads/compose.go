package monads

// Id returns its argument unchanged.
func Id[A any](a A) A {
	return a
}

// Compose returns g ∘ f: the function that applies f first, then g.
// Argument order is right-to-left, as in mathematical composition.
func Compose[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}
