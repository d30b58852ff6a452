package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	b, ok := Lookup("pensao-morte")
	require.True(t, ok)
	assert.Equal(t, "Pensão por Morte", b.Title)
	assert.NotEmpty(t, b.Requirements)

	_, ok = Lookup("auxilio-inexistente")
	assert.False(t, ok)
}

func TestAllReturnsCopy(t *testing.T) {
	list := All()
	require.Len(t, list, 4)
	list[0].Title = "changed"

	b, _ := Lookup(list[0].ID)
	assert.Equal(t, "Aposentadoria por Idade", b.Title)
}
