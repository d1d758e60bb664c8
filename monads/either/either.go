// Package either provides Either, a value that is exactly one of Left or Right.
//
// By convention Left carries a failure and Right a success. Map only touches
// Right: once a chain produces a Left, no later Map runs its function, so the
// first failure wins. The two channels are reconciled into one type with Cata.
//
// The variant is a tag set by the constructor. It is never inferred from the
// payload.
package either

import "github.com/on-the-ground/monad_ive_go/monads/internal/show"

// Either holds a Left value of type A or a Right value of type B, never both.
type Either[A, B any] struct {
	isRight bool
	left    A
	right   B
}

// Left creates a Left (failure) value.
func Left[A, B any](x A) Either[A, B] {
	return Either[A, B]{isRight: false, left: x}
}

// Right creates a Right (success) value.
func Right[A, B any](x B) Either[A, B] {
	return Either[A, B]{isRight: true, right: x}
}

// FromResult turns a Go (value, error) pair into an Either: Left(err) when err
// is non-nil, Right(v) otherwise.
func FromResult[B any](v B, err error) Either[error, B] {
	if err != nil {
		return Left[error, B](err)
	}
	return Right[error](v)
}

// IsLeft returns true if this is a Left value.
func (e Either[A, B]) IsLeft() bool {
	return !e.isRight
}

// IsRight returns true if this is a Right value.
func (e Either[A, B]) IsRight() bool {
	return e.isRight
}

// Map applies f to a Right value. A Left is returned unchanged and f is not called.
func Map[A, B, C any](e Either[A, B], f func(B) C) Either[A, C] {
	if e.isRight {
		return Right[A](f(e.right))
	}
	return Left[A, C](e.left)
}

// MapLeft applies f to a Left value. A Right is returned unchanged and f is not called.
func MapLeft[A, B, C any](e Either[A, B], f func(A) C) Either[C, B] {
	if e.isRight {
		return Right[C](e.right)
	}
	return Left[C, B](f(e.left))
}

func (e Either[A, B]) String() string {
	if e.isRight {
		return show.Wrapped("Right", e.right)
	}
	return show.Wrapped("Left", e.left)
}
