// Package monads provides small, immutable effect containers for Go.
//
// Monad-ive Go wraps partial, disjunctive and deferred computations in plain
// values, so they can be mapped over like ordinary data and unwrapped at a
// single, controlled point.
//
// # Containers
//
//   - identity.Identity: the trivial wrapper
//   - maybe.Maybe: presence or absence of a value
//   - either.Either: a Left (failure) or a Right (success)
//   - deferredio.IO: a side effect that runs only when asked to
//
// Every container is built with Of and transformed with Map. Map never unwraps:
// a Nothing or a Left is carried through any chain without calling the mapped
// function, and an IO chain performs no effect until Run.
//
// # Eliminating a container
//
// maybe.Cata and either.Cata collapse a container back into a plain value by
// handling each of its shapes. identity.Identity.Join and maybe.Join flatten
// exactly one level.
//
// # What the containers never do
//
//   - recover panics raised by user functions
//   - log, retry or schedule anything
//   - mutate a wrapped value
//
// Tracing of deferred effects is opt-in, see package trace.
//
// Example:
//
//	length := maybe.Cata(0, func(s string) int { return len(s) },
//	    maybe.Map(maybe.FromPtr(name), strings.TrimSpace))
package monads
