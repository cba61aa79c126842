package chainmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucket_InsertFind(t *testing.T) {
	var b bucket[string, int]

	require.True(t, b.insert("a", 1))
	require.True(t, b.insert("b", 2))

	// Duplicate key is rejected, chain unchanged
	require.False(t, b.insert("a", 3))
	require.Equal(t, 2, b.len())

	i := b.find("a")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 1, b.entries[i].value)

	assert.Equal(t, -1, b.find("missing"))
}

func TestBucket_Update(t *testing.T) {
	var b bucket[string, int]

	require.False(t, b.update("a", 1))

	require.True(t, b.insert("a", 1))
	require.True(t, b.update("a", 9))

	i := b.find("a")
	require.GreaterOrEqual(t, i, 0)
	assert.Equal(t, 9, b.entries[i].value)
	assert.Equal(t, 1, b.len())
}

func TestBucket_Remove(t *testing.T) {
	var b bucket[string, int]

	_, ok := b.remove("a")
	require.False(t, ok)

	require.True(t, b.insert("a", 1))
	require.True(t, b.insert("b", 2))
	require.True(t, b.insert("c", 3))

	v, ok := b.remove("b")
	require.True(t, ok)
	assert.Equal(t, 2, v)

	// Relative order of the survivors is preserved
	require.Equal(t, 2, b.len())
	assert.Equal(t, "a", b.entries[0].key)
	assert.Equal(t, "c", b.entries[1].key)
}
