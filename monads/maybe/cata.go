package maybe

// Cata collapses m into a plain value: defaultValue when m is Nothing,
// f(value) otherwise. f is not called on Nothing.
func Cata[A, B any](defaultValue B, f func(A) B, m Maybe[A]) B {
	if m.IsNothing() {
		return defaultValue
	}
	return f(m.value)
}

// CataFn fixes the default and the mapping function of Cata, leaving the Maybe
// to be supplied later.
func CataFn[A, B any](defaultValue B, f func(A) B) func(Maybe[A]) B {
	return func(m Maybe[A]) B {
		return Cata(defaultValue, f, m)
	}
}
