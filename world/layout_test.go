package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPopulate(t *testing.T) {
	cat := testCatalog(t)

	t.Run("single", func(t *testing.T) {
		c := NewChunk(ChunkPos{})
		require.NoError(t, Populate(c, cat, LayoutSingle, 0))
		s, err := c.Get(0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, cat.MustLookup(Stone), s.Block)
		assert.False(t, c.Section(0).Empty())
		assert.True(t, c.Section(1).Empty())
	})

	t.Run("layers", func(t *testing.T) {
		c := NewChunk(ChunkPos{})
		require.NoError(t, Populate(c, cat, LayoutLayers, 0))
		for _, tc := range []struct {
			y    int
			name string
		}{{0, Stone}, {29, Stone}, {30, Dirt}, {48, Dirt}, {49, Grass}} {
			s, err := c.Get(7, tc.y, 7)
			require.NoError(t, err)
			assert.Equal(t, cat.MustLookup(tc.name), s.Block, "y=%d", tc.y)
		}
		assert.True(t, c.Section(50).Empty())
		assertEmptyFlags(t, c)
	})

	t.Run("terrain is deterministic", func(t *testing.T) {
		a := NewChunk(ChunkPos{X: 1})
		b := NewChunk(ChunkPos{X: 1})
		require.NoError(t, Populate(a, cat, LayoutTerrain, 12))
		require.NoError(t, Populate(b, cat, LayoutTerrain, 12))
		assert.Equal(t, a.arena, b.arena)
		assertEmptyFlags(t, a)

		// every column has a grass top and ground below it
		for x := 0; x < ChunkWidth; x++ {
			s, err := a.Get(x, 0, 0)
			require.NoError(t, err)
			assert.False(t, s.IsAir())
		}
	})

	t.Run("hills stay within their band", func(t *testing.T) {
		a := NewChunk(ChunkPos{Z: -2})
		b := NewChunk(ChunkPos{Z: -2})
		require.NoError(t, Populate(a, cat, LayoutHills, 7))
		require.NoError(t, Populate(b, cat, LayoutHills, 7))
		assert.Equal(t, a.arena, b.arena)
		assertEmptyFlags(t, a)

		for y := 0; y < hillsBase; y++ {
			assert.False(t, a.Section(y).Empty(), "y=%d", y)
		}
		for y := hillsBase + hillsAmplitude + 1; y < ChunkSections; y++ {
			assert.True(t, a.Section(y).Empty(), "y=%d", y)
		}
	})

	t.Run("missing block", func(t *testing.T) {
		small, err := NewCatalog([]BlockType{{Name: Stone}})
		require.NoError(t, err)
		assert.Error(t, Populate(NewChunk(ChunkPos{}), small, LayoutLayers, 0))
	})

	t.Run("unknown layout", func(t *testing.T) {
		assert.Error(t, Populate(NewChunk(ChunkPos{}), cat, "spiral", 0))
	})
}
