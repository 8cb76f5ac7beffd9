package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/golang/freetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"voxelview/assets"
)

const (
	overlayWidth    = 512
	overlayHeight   = 128
	overlayFontSize = 16
	overlayMargin   = 10
)

var textQuad = []float32{
	// x, y, z, u, v
	0, 0, 0, 0, 0,
	0, 1, 0, 0, 1,
	1, 1, 0, 1, 1,

	0, 0, 0, 0, 0,
	1, 1, 0, 1, 1,
	1, 0, 0, 1, 0,
}

// overlay rasterises debug lines with freetype into a texture drawn in
// screen space.
type overlay struct {
	prog    *program
	ctx     *freetype.Context
	canvas  *image.RGBA
	texture uint32
	vao     uint32
	vbo     uint32

	lines []string
	dirty bool
}

// newOverlay parses fontData, or the embedded Go Regular face when it is nil.
func newOverlay(sp assets.ShaderProvider, fontData []byte) (*overlay, error) {
	if fontData == nil {
		fontData = goregular.TTF
	}
	f, err := freetype.ParseFont(fontData)
	if err != nil {
		return nil, fmt.Errorf("overlay font: %w", err)
	}

	prog, err := loadProgram(sp, "text.vert", "text.frag")
	if err != nil {
		return nil, err
	}

	canvas := image.NewRGBA(image.Rect(0, 0, overlayWidth, overlayHeight))
	ctx := freetype.NewContext()
	ctx.SetFont(f)
	ctx.SetFontSize(overlayFontSize)
	ctx.SetDst(canvas)
	ctx.SetClip(canvas.Bounds())
	ctx.SetSrc(image.White)
	ctx.SetHinting(font.HintingFull)

	o := &overlay{prog: prog, ctx: ctx, canvas: canvas}

	gl.GenTextures(1, &o.texture)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, overlayWidth, overlayHeight, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(canvas.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	gl.GenVertexArrays(1, &o.vao)
	gl.BindVertexArray(o.vao)
	gl.GenBuffers(1, &o.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(textQuad)*4, gl.Ptr(textQuad), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 5*4, nil)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, uintptr(3*4))
	gl.BindVertexArray(0)

	return o, nil
}

// setLines replaces the text; the texture is rebuilt on the next draw.
func (o *overlay) setLines(lines ...string) {
	if len(lines) == len(o.lines) {
		same := true
		for i := range lines {
			if lines[i] != o.lines[i] {
				same = false
				break
			}
		}
		if same {
			return
		}
	}
	o.lines = append(o.lines[:0], lines...)
	o.dirty = true
}

func (o *overlay) rasterize() error {
	draw.Draw(o.canvas, o.canvas.Bounds(), image.Transparent, image.Point{}, draw.Src)
	lineHeight := int(o.ctx.PointToFixed(overlayFontSize*1.4) >> 6)
	for i, line := range o.lines {
		pt := freetype.Pt(0, (i+1)*lineHeight)
		if _, err := o.ctx.DrawString(line, pt); err != nil {
			return fmt.Errorf("overlay text: %w", err)
		}
	}
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, overlayWidth, overlayHeight, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(o.canvas.Pix))
	o.dirty = false
	return nil
}

func (o *overlay) draw(width, height int) error {
	if o.dirty {
		if err := o.rasterize(); err != nil {
			return err
		}
	}

	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	o.prog.use()
	o.prog.setMat4("projection", mgl32.Ortho(0, float32(width), float32(height), 0, -1, 1))
	model := mgl32.Translate3D(overlayMargin, overlayMargin, 0).Mul4(mgl32.Scale3D(overlayWidth, overlayHeight, 1))
	o.prog.setMat4("model", model)
	o.prog.setInt("text", 0)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, o.texture)
	gl.BindVertexArray(o.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(textQuad)/5))
	gl.BindVertexArray(0)

	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	return nil
}

func (o *overlay) delete() {
	gl.DeleteTextures(1, &o.texture)
	gl.DeleteVertexArrays(1, &o.vao)
	gl.DeleteBuffers(1, &o.vbo)
	o.prog.delete()
}
