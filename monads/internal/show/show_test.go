package show_test

import (
	"testing"

	"github.com/on-the-ground/monad_ive_go/monads/internal/show"
	"github.com/stretchr/testify/assert"
)

func TestWrapped(t *testing.T) {
	assert.Equal(t, "Just(3)", show.Wrapped("Just", 3))
	assert.Equal(t, "Identity(Identity(yoda))", show.Wrapped("Identity", show.Wrapped("Identity", "yoda")))
}

func TestOpaque(t *testing.T) {
	assert.Equal(t, "IO(<deferred>)", show.Opaque("IO"))
}
