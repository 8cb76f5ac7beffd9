package world

import (
	"errors"
	"fmt"
)

// BlockType is the rendering metadata of one catalog entry.
type BlockType struct {
	Name string
	// Texture is a namespaced texture identifier, e.g. "minecraft:block/stone".
	Texture     string
	Transparent bool
}

// Catalog is the immutable registry of block types. Refs are assigned in
// registration order starting at 1 so that the zero ref stays air.
type Catalog struct {
	types []BlockType
	index map[string]BlockTypeRef
}

// NewCatalog registers types in order. Names must be unique and non-empty.
func NewCatalog(types []BlockType) (*Catalog, error) {
	if len(types) == 0 {
		return nil, errors.New("catalog needs at least one block type")
	}
	if len(types) >= 1<<16-1 {
		return nil, fmt.Errorf("catalog holds %d block types, too many", len(types))
	}

	c := &Catalog{
		types: make([]BlockType, len(types)),
		index: make(map[string]BlockTypeRef, len(types)),
	}
	for i, t := range types {
		if t.Name == "" {
			return nil, fmt.Errorf("block type %d has no name", i)
		}
		if _, dup := c.index[t.Name]; dup {
			return nil, fmt.Errorf("block type %q registered twice", t.Name)
		}
		if t.Texture == "" {
			t.Texture = t.Name
		}
		c.types[i] = t
		c.index[t.Name] = BlockTypeRef(i + 1)
	}
	return c, nil
}

// Lookup resolves a block name.
func (c *Catalog) Lookup(name string) (BlockTypeRef, bool) {
	ref, ok := c.index[name]
	return ref, ok
}

// MustLookup is Lookup for names known to be registered.
func (c *Catalog) MustLookup(name string) BlockTypeRef {
	ref, ok := c.index[name]
	if !ok {
		panic(fmt.Sprintf("block %q not in catalog", name))
	}
	return ref
}

// Type returns the metadata for ref. Air and unknown refs report false.
func (c *Catalog) Type(ref BlockTypeRef) (BlockType, bool) {
	if ref == Air || int(ref) > len(c.types) {
		return BlockType{}, false
	}
	return c.types[ref-1], true
}

// Len is the number of registered block types.
func (c *Catalog) Len() int {
	return len(c.types)
}

// Types returns the registered types; index i belongs to ref i+1.
func (c *Catalog) Types() []BlockType {
	out := make([]BlockType, len(c.types))
	copy(out, c.types)
	return out
}

// Occludes reports whether a cell hides the faces of its neighbours.
func (c *Catalog) Occludes(s BlockState) bool {
	if s.IsAir() || s.Transparent {
		return false
	}
	t, ok := c.Type(s.Block)
	return ok && !t.Transparent
}
