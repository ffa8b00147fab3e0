package core_test

import (
	"testing"

	"github.com/katalvlaran/roadnet/core"
	"github.com/stretchr/testify/assert"
)

func TestKey_Canonical(t *testing.T) {
	assert.Equal(t, core.Key("u", "v"), core.Key("v", "u"))
	k := core.Key("9", "10")
	assert.Equal(t, "10", k.U, "ordering is lexicographic, not numeric")
	assert.Equal(t, "9", k.V)
	assert.Equal(t, "10-9", k.String())
}

func TestKey_Helpers(t *testing.T) {
	k := core.Key("B", "A")
	assert.True(t, k.Has("A"))
	assert.False(t, k.Has("C"))
	assert.Equal(t, "B", k.Other("A"))
	assert.Equal(t, "A", k.Other("B"))
	assert.Empty(t, k.Other("C"))
	assert.False(t, k.IsLoop())
	assert.True(t, core.Key("A", "A").IsLoop())

	assert.True(t, core.Key("A", "B").Less(core.Key("A", "C")))
	assert.True(t, core.Key("A", "Z").Less(core.Key("B", "C")))
	assert.False(t, k.Less(k))
}

func TestKey_MapIdentity(t *testing.T) {
	m := map[core.EdgeKey]int{}
	m[core.Key("x", "y")]++
	m[core.Key("y", "x")]++
	assert.Len(t, m, 1)
	assert.Equal(t, 2, m[core.Key("x", "y")])
}
