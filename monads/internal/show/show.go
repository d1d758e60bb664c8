// Package show renders containers for diagnostics. The format is not part of
// any contract.
package show

import "fmt"

// Wrapped renders a container of the given kind holding v, e.g. "Just(3)".
func Wrapped(kind string, v any) string {
	return fmt.Sprintf("%s(%v)", kind, v)
}

// Opaque renders a container whose payload cannot be shown without evaluating it.
func Opaque(kind string) string {
	return kind + "(<deferred>)"
}
