package either

// Cata reconciles both channels of e into one type: onLeft(value) for a Left,
// onRight(value) for a Right. Exactly one of the two functions is called.
func Cata[A, B, C any](onLeft func(A) C, onRight func(B) C, e Either[A, B]) C {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// CataFn fixes both handlers of Cata, leaving the Either to be supplied later.
func CataFn[A, B, C any](onLeft func(A) C, onRight func(B) C) func(Either[A, B]) C {
	return func(e Either[A, B]) C {
		return Cata(onLeft, onRight, e)
	}
}
