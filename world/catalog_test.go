package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog(t *testing.T) {
	cat := testCatalog(t)

	t.Run("refs follow registration order", func(t *testing.T) {
		ref, ok := cat.Lookup(Dirt)
		require.True(t, ok)
		assert.Equal(t, BlockTypeRef(2), ref)
		assert.Equal(t, 4, cat.Len())
	})

	t.Run("texture defaults to name", func(t *testing.T) {
		bt, ok := cat.Type(cat.MustLookup(Stone))
		require.True(t, ok)
		assert.Equal(t, Stone, bt.Texture)
	})

	t.Run("air and unknown refs", func(t *testing.T) {
		_, ok := cat.Type(Air)
		assert.False(t, ok)
		_, ok = cat.Type(99)
		assert.False(t, ok)
		_, ok = cat.Lookup("minecraft:block/bedrock")
		assert.False(t, ok)
		assert.Panics(t, func() { cat.MustLookup("minecraft:block/bedrock") })
	})

	t.Run("occlusion", func(t *testing.T) {
		glass := cat.MustLookup("minecraft:block/glass")
		assert.True(t, cat.Occludes(Solid(cat.MustLookup(Stone))))
		assert.False(t, cat.Occludes(AirState))
		assert.False(t, cat.Occludes(Solid(glass)))
		assert.False(t, cat.Occludes(BlockState{Block: cat.MustLookup(Stone), Transparent: true}))
		assert.False(t, cat.Occludes(Solid(42)))
	})

	t.Run("types are copied", func(t *testing.T) {
		types := cat.Types()
		types[0].Name = "changed"
		bt, _ := cat.Type(1)
		assert.Equal(t, Stone, bt.Name)
	})
}

func TestNewCatalogRejects(t *testing.T) {
	_, err := NewCatalog(nil)
	assert.Error(t, err)

	_, err = NewCatalog([]BlockType{{Name: Stone}, {Name: Stone}})
	assert.Error(t, err)

	_, err = NewCatalog([]BlockType{{Name: ""}})
	assert.Error(t, err)
}

func TestDirectionString(t *testing.T) {
	assert.Equal(t, "north", North.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
