package cache

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLRU_put_get(t *testing.T) {
	c := NewLRU[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)

	_, ok = c.Get("missing")
	require.False(t, ok)
}

func TestLRU_eviction(t *testing.T) {
	c := NewLRU[int](2)
	c.Put("a", 1)
	c.Put("b", 2)

	// touch "a" so "b" is the eviction candidate
	_, ok := c.Get("a")
	require.True(t, ok)

	c.Put("c", 3)

	_, ok = c.Get("b")
	require.False(t, ok)
	_, ok = c.Get("a")
	require.True(t, ok)
	_, ok = c.Get("c")
	require.True(t, ok)
}

func TestLRU_update_existing(t *testing.T) {
	c := NewLRU[int](2)
	c.Put("a", 1)
	c.Put("a", 2)

	v, ok := c.Get("a")
	require.True(t, ok)
	require.Equal(t, 2, v)
}
