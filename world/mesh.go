package world

// VertexStride is the number of floats per vertex: position xyz, texture uv
// and a face shade factor.
const VertexStride = 6

// Mesh is GPU-ready geometry for a whole chunk, laid out as triangles.
type Mesh struct {
	Vertices []float32
	Count    int
}

// MeshGenerator turns one section of a chunk into triangles, appending them
// to dst. Neighbouring sections may be read for face culling.
type MeshGenerator interface {
	GenerateSection(dst []float32, cat *Catalog, c *Chunk, y int) []float32
}

// Uploader receives chunk meshes on the presentation side. Replacing a
// chunk's mesh releases the resources held for the previous one.
type Uploader interface {
	Upload(pos ChunkPos, mesh *Mesh) error
}
