package ident

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomGenerator_RefFormat(t *testing.T) {
	g := NewRandomGenerator()

	pattern := regexp.MustCompile(`^ZRH-[A-Z0-9]{8}$`)
	for i := 0; i < 50; i++ {
		ref := g.Ref("ZRH")
		assert.Regexp(t, pattern, ref)
	}

	assert.Regexp(t, `^TXN-[A-Z0-9]{8}$`, g.Ref("TXN"))
}

func TestRandomGenerator_CardIDsUnique(t *testing.T) {
	g := NewRandomGenerator()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := g.CardID()
		require.NotEmpty(t, id)
		require.False(t, seen[id], "card id collision: %s", id)
		seen[id] = true
	}
}
