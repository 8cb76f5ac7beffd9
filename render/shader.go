package render

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelview/assets"
)

type program struct {
	id       uint32
	uniforms map[string]int32
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

// loadProgram fetches vert and frag from sp, compiles and links them.
func loadProgram(sp assets.ShaderProvider, vert, frag string) (*program, error) {
	vsrc, err := sp.Shader(vert)
	if err != nil {
		return nil, err
	}
	fsrc, err := sp.Shader(frag)
	if err != nil {
		return nil, err
	}

	vs, err := compileShader(vsrc, gl.VERTEX_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", vert, err)
	}
	defer gl.DeleteShader(vs)
	fs, err := compileShader(fsrc, gl.FRAGMENT_SHADER)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", frag, err)
	}
	defer gl.DeleteShader(fs)

	id := gl.CreateProgram()
	gl.AttachShader(id, vs)
	gl.AttachShader(id, fs)
	gl.LinkProgram(id)
	gl.DetachShader(id, vs)
	gl.DetachShader(id, fs)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(id, logLength, nil, gl.Str(log))
		gl.DeleteProgram(id)
		return nil, fmt.Errorf("link %s+%s: %s", vert, frag, strings.TrimRight(log, "\x00"))
	}

	return &program{id: id, uniforms: map[string]int32{}}, nil
}

func (p *program) use() {
	gl.UseProgram(p.id)
}

func (p *program) uniform(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.id, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

func (p *program) setMat4(name string, m mgl32.Mat4) {
	gl.UniformMatrix4fv(p.uniform(name), 1, false, &m[0])
}

func (p *program) setInt(name string, v int32) {
	gl.Uniform1i(p.uniform(name), v)
}

func (p *program) delete() {
	gl.DeleteProgram(p.id)
}
