package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelview/assets"
)

// unit cube, 36 vertices, positions only
var skyCube = []float32{
	// +X
	1, -1, -1, 1, 1, -1, 1, 1, 1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -X
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	-1, -1, -1, -1, 1, 1, -1, 1, -1,
	// +Y
	-1, 1, -1, 1, 1, -1, 1, 1, 1,
	-1, 1, -1, 1, 1, 1, -1, 1, 1,
	// -Y
	-1, -1, -1, -1, -1, 1, 1, -1, 1,
	-1, -1, -1, 1, -1, 1, 1, -1, -1,
	// +Z
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	-1, -1, 1, 1, 1, 1, -1, 1, 1,
	// -Z
	-1, -1, -1, 1, -1, -1, 1, 1, -1,
	-1, -1, -1, 1, 1, -1, -1, 1, -1,
}

// sky draws a gradient cube that follows the camera.
type sky struct {
	prog *program
	vao  uint32
	vbo  uint32
}

func newSky(sp assets.ShaderProvider) (*sky, error) {
	prog, err := loadProgram(sp, "sky.vert", "sky.frag")
	if err != nil {
		return nil, err
	}
	s := &sky{prog: prog}

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyCube)*4, gl.Ptr(skyCube), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 3*4, nil)
	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return s, nil
}

// draw must run after the clear and before terrain, with the world's
// matrices.
func (s *sky) draw(projection, view mgl32.Mat4) {
	gl.DepthMask(false)
	gl.DepthFunc(gl.LEQUAL)
	gl.Disable(gl.CULL_FACE)

	s.prog.use()
	s.prog.setMat4("projection", projection)
	s.prog.setMat4("view", view)
	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(skyCube)/3))
	gl.BindVertexArray(0)

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)
}

func (s *sky) delete() {
	gl.DeleteVertexArrays(1, &s.vao)
	gl.DeleteBuffers(1, &s.vbo)
	s.prog.delete()
}
