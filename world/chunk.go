package world

import (
	"errors"
	"fmt"
)

const (
	ChunkWidth    = 16
	ChunkDepth    = 16
	ChunkSections = 256
	// Each section is a single horizontal layer.
	ChunkHeight = ChunkSections
	SectionArea = ChunkWidth * ChunkDepth
	ChunkVolume = SectionArea * ChunkSections
)

var (
	ErrOutOfBounds = errors.New("coordinates outside chunk")
	ErrStaleMesh   = errors.New("chunk has no generated mesh")
)

// ChunkPos is a chunk coordinate in chunk-grid units.
type ChunkPos struct {
	X, Z int32
}

// Section is one layer of a chunk. blocks is a window into the owning
// chunk's arena.
type Section struct {
	blocks []BlockState
	solid  int
	empty  bool
}

// Empty reports whether every cell of the section is air.
func (s *Section) Empty() bool {
	return s.empty
}

// At returns the cell at local (x, z). Callers index within the section.
func (s *Section) At(x, z int) BlockState {
	return s.blocks[x*ChunkDepth+z]
}

func (s *Section) set(x, z int, state BlockState) {
	i := x*ChunkDepth + z
	if !s.blocks[i].IsAir() {
		s.solid--
	}
	if !state.IsAir() {
		s.solid++
	}
	s.blocks[i] = state
	s.empty = s.solid == 0
}

func (s *Section) fill(state BlockState) {
	for i := range s.blocks {
		s.blocks[i] = state
	}
	if state.IsAir() {
		s.solid = 0
	} else {
		s.solid = len(s.blocks)
	}
	s.empty = s.solid == 0
}

// Chunk is a fixed-size column of sections backed by one contiguous arena.
// It is owned by a single goroutine.
type Chunk struct {
	Pos ChunkPos

	arena    []BlockState
	sections [ChunkSections]Section

	// per-section geometry cache, rebuilt only for dirty sections
	sectionVerts [ChunkSections][]float32
	dirty        [ChunkSections]bool

	mesh *Mesh
}

// NewChunk creates an all-air chunk at pos.
func NewChunk(pos ChunkPos) *Chunk {
	c := &Chunk{
		Pos:   pos,
		arena: make([]BlockState, ChunkVolume),
	}
	for y := range c.sections {
		c.sections[y] = Section{
			blocks: c.arena[y*SectionArea : (y+1)*SectionArea : (y+1)*SectionArea],
			empty:  true,
		}
		c.dirty[y] = true
	}
	for i := range c.arena {
		c.arena[i] = AirState
	}
	return c
}

func inBounds(x, y, z int) bool {
	return x >= 0 && x < ChunkWidth && y >= 0 && y < ChunkHeight && z >= 0 && z < ChunkDepth
}

// Get returns the cell at local coordinates.
func (c *Chunk) Get(x, y, z int) (BlockState, error) {
	if !inBounds(x, y, z) {
		return BlockState{}, fmt.Errorf("get (%d,%d,%d): %w", x, y, z, ErrOutOfBounds)
	}
	return c.sections[y].At(x, z), nil
}

// Set replaces one cell. Out-of-bounds coordinates leave the chunk untouched.
func (c *Chunk) Set(x, y, z int, state BlockState) error {
	if !inBounds(x, y, z) {
		return fmt.Errorf("set (%d,%d,%d): %w", x, y, z, ErrOutOfBounds)
	}
	c.sections[y].set(x, z, state)
	c.invalidate(y)
	return nil
}

// FillSection overwrites every cell of section y.
func (c *Chunk) FillSection(y int, state BlockState) error {
	if y < 0 || y >= ChunkSections {
		return fmt.Errorf("fill section %d: %w", y, ErrOutOfBounds)
	}
	c.sections[y].fill(state)
	c.invalidate(y)
	return nil
}

// Faces on a layer boundary depend on both layers, so the neighbours are
// rebuilt too.
func (c *Chunk) invalidate(y int) {
	for _, n := range [3]int{y - 1, y, y + 1} {
		if n >= 0 && n < ChunkSections {
			c.dirty[n] = true
		}
	}
	c.mesh = nil
}

// Section returns section y, or nil when y is out of range.
func (c *Chunk) Section(y int) *Section {
	if y < 0 || y >= ChunkSections {
		return nil
	}
	return &c.sections[y]
}

// Occupied returns whether the cell at (x, y, z) holds a block; out-of-range
// cells are air.
func (c *Chunk) Occupied(x, y, z int) (BlockState, bool) {
	if !inBounds(x, y, z) {
		return AirState, false
	}
	s := c.sections[y].At(x, z)
	return s, !s.IsAir()
}

// Origin is the block-space coordinate of the chunk's (0, 0, 0) cell.
func (c *Chunk) Origin() (x, z int32) {
	return c.Pos.X * ChunkWidth, c.Pos.Z * ChunkDepth
}

// Dirty reports whether the mesh must be regenerated before use.
func (c *Chunk) Dirty() bool {
	return c.mesh == nil
}

// Mesh returns the current mesh, if one is valid.
func (c *Chunk) Mesh() (*Mesh, bool) {
	return c.mesh, c.mesh != nil
}

// RegenerateMesh rebuilds the mesh from the current contents. Only sections
// touched since the last call are handed to gen; the published mesh is
// always the whole chunk.
func (c *Chunk) RegenerateMesh(cat *Catalog, gen MeshGenerator) error {
	if cat == nil || gen == nil {
		return errors.New("regenerate mesh: catalog and generator are required")
	}

	total := 0
	for y := range c.sections {
		if c.dirty[y] {
			if c.sections[y].empty {
				c.sectionVerts[y] = c.sectionVerts[y][:0]
			} else {
				c.sectionVerts[y] = gen.GenerateSection(c.sectionVerts[y][:0], cat, c, y)
			}
			c.dirty[y] = false
		}
		total += len(c.sectionVerts[y])
	}

	verts := make([]float32, 0, total)
	for y := range c.sectionVerts {
		verts = append(verts, c.sectionVerts[y]...)
	}
	c.mesh = &Mesh{
		Vertices: verts,
		Count:    len(verts) / VertexStride,
	}
	return nil
}

// Upload hands the current mesh to u. It fails with ErrStaleMesh when no mesh
// has been generated since the last mutation.
func (c *Chunk) Upload(u Uploader) error {
	if c.mesh == nil {
		return fmt.Errorf("upload chunk %d,%d: %w", c.Pos.X, c.Pos.Z, ErrStaleMesh)
	}
	return u.Upload(c.Pos, c.mesh)
}
