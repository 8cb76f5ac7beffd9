package render

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"voxelview/world"
)

type gpuMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

// meshStore tracks the uploaded mesh of each chunk. A replacement is built
// before the previous buffers are released, so a failed upload leaves the
// old mesh drawable.
type meshStore struct {
	meshes   map[world.ChunkPos]*gpuMesh
	vertices int

	create  func(*world.Mesh) (*gpuMesh, error)
	release func(*gpuMesh)
}

func newMeshStore() *meshStore {
	return &meshStore{
		meshes:  map[world.ChunkPos]*gpuMesh{},
		create:  createGPUMesh,
		release: releaseGPUMesh,
	}
}

func (s *meshStore) replace(pos world.ChunkPos, mesh *world.Mesh) error {
	if mesh == nil {
		return fmt.Errorf("upload chunk %d,%d: %w", pos.X, pos.Z, world.ErrStaleMesh)
	}
	m, err := s.create(mesh)
	if err != nil {
		return fmt.Errorf("upload chunk %d,%d: %w", pos.X, pos.Z, err)
	}
	if old, ok := s.meshes[pos]; ok {
		s.vertices -= int(old.count)
		s.release(old)
	}
	s.meshes[pos] = m
	s.vertices += int(m.count)
	return nil
}

func (s *meshStore) get(pos world.ChunkPos) (*gpuMesh, bool) {
	m, ok := s.meshes[pos]
	return m, ok
}

func (s *meshStore) clear() {
	for pos, m := range s.meshes {
		s.release(m)
		delete(s.meshes, pos)
	}
	s.vertices = 0
}

// drainErrors discards errors left by earlier GL calls.
func drainErrors() {
	for i := 0; i < 16 && gl.GetError() != gl.NO_ERROR; i++ {
	}
}

func createGPUMesh(mesh *world.Mesh) (*gpuMesh, error) {
	drainErrors()

	m := &gpuMesh{count: int32(mesh.Count)}
	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	if len(mesh.Vertices) > 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 4*len(mesh.Vertices), gl.Ptr(mesh.Vertices), gl.STATIC_DRAW)
	}

	stride := int32(world.VertexStride * 4)
	// position
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, nil)
	// uv
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, uintptr(3*4))
	// face shade
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, stride, uintptr(5*4))
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	if code := gl.GetError(); code != gl.NO_ERROR {
		releaseGPUMesh(m)
		return nil, fmt.Errorf("gl error 0x%x", code)
	}
	return m, nil
}

func releaseGPUMesh(m *gpuMesh) {
	gl.DeleteVertexArrays(1, &m.vao)
	gl.DeleteBuffers(1, &m.vbo)
}
