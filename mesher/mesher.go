// Package mesher builds face-culled cube geometry for chunk sections.
package mesher

import "voxelview/world"

// Mesher emits one quad per block face that is not hidden by an opaque
// neighbour. Faces on the chunk border are always emitted.
type Mesher struct{}

// New returns a Mesher.
func New() *Mesher {
	return &Mesher{}
}

// TileRect returns the atlas rect {u0, v0, u1, v1} for ref. Textures are
// stacked vertically in catalog order.
func TileRect(ref world.BlockTypeRef, tiles int) [4]float32 {
	if tiles <= 0 || ref == world.Air {
		return [4]float32{}
	}
	i := float32(ref - 1)
	n := float32(tiles)
	return [4]float32{0, i / n, 1, (i + 1) / n}
}

// GenerateSection implements world.MeshGenerator.
func (m *Mesher) GenerateSection(dst []float32, cat *world.Catalog, c *world.Chunk, y int) []float32 {
	sec := c.Section(y)
	if sec == nil || sec.Empty() {
		return dst
	}
	ox, oz := c.Origin()

	for x := 0; x < world.ChunkWidth; x++ {
		for z := 0; z < world.ChunkDepth; z++ {
			self := sec.At(x, z)
			if self.IsAir() {
				continue
			}
			if _, known := cat.Type(self.Block); !known {
				continue
			}
			rect := TileRect(self.Block, cat.Len())
			bx, by, bz := float32(int32(x)+ox), float32(y), float32(int32(z)+oz)

			for face := 0; face < faceCount; face++ {
				n := faceNormals[face]
				if neighbour, ok := c.Occupied(x+n[0], y+n[1], z+n[2]); ok && cat.Occludes(neighbour) {
					continue
				}
				verts := cubeVertices[face]
				uvs := cubeUVs[face]
				for v := 0; v < VerticesPerFace; v++ {
					dst = append(dst,
						verts[v*3]+bx,
						verts[v*3+1]+by,
						verts[v*3+2]+bz,
						rect[uvs[v*2]],
						rect[uvs[v*2+1]],
						faceShade[face],
					)
				}
			}
		}
	}
	return dst
}
