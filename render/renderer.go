// Package render draws uploaded chunk meshes, a sky gradient and a debug
// overlay with OpenGL 4.1 core. All methods must be called from the thread
// that owns the GL context.
package render

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"voxelview/assets"
	"voxelview/camera"
	"voxelview/logging"
	"voxelview/loop"
	"voxelview/world"
)

// fpsWindow is how often the displayed frame rate is refreshed.
const fpsWindow = 100 * time.Millisecond

type Options struct {
	Width, Height int
	Overlay       bool
	// FontData is a TTF face for the overlay; nil selects Go Regular.
	FontData []byte
	Logger   *logging.Logger
}

// Renderer implements loop.Presenter.
type Renderer struct {
	blocks  *program
	atlas   uint32
	sky     *sky
	overlay *overlay
	meshes  *meshStore

	width, height int
	showOverlay   bool
	log           *logging.Logger

	frames  int
	elapsed time.Duration
	fps     float64
}

var _ loop.Presenter = (*Renderer)(nil)

// New initialises GL state, compiles the shaders from sp and uploads the
// atlas. A GL context must be current.
func New(sp assets.ShaderProvider, atlas *assets.Atlas, opts Options) (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	opts.Logger.Info("OpenGL %s", gl.GoStr(gl.GetString(gl.VERSION)))

	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.ClearColor(0.53, 0.81, 0.92, 1.0)

	blocks, err := loadProgram(sp, "block.vert", "block.frag")
	if err != nil {
		return nil, err
	}
	sky, err := newSky(sp)
	if err != nil {
		blocks.delete()
		return nil, err
	}
	ov, err := newOverlay(sp, opts.FontData)
	if err != nil {
		blocks.delete()
		sky.delete()
		return nil, err
	}

	r := &Renderer{
		blocks:      blocks,
		atlas:       uploadAtlas(atlas),
		sky:         sky,
		overlay:     ov,
		meshes:      newMeshStore(),
		showOverlay: opts.Overlay,
		log:         opts.Logger,
	}
	r.Resize(opts.Width, opts.Height)
	return r, nil
}

func uploadAtlas(atlas *assets.Atlas) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)
	b := atlas.Image.Bounds()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(b.Dx()), int32(b.Dy()), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(atlas.Image.Pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	return id
}

// Upload replaces the GPU copy of the mesh at pos. The previous buffers are
// released only once the new ones are in place.
func (r *Renderer) Upload(pos world.ChunkPos, mesh *world.Mesh) error {
	return r.meshes.replace(pos, mesh)
}

// Input toggles the overlay on F3.
func (r *Renderer) Input(ev loop.WindowEvent) bool {
	if ev.Kind == loop.KeyboardInput && ev.Key == camera.KeyF3 {
		if ev.Action == camera.Press {
			r.showOverlay = !r.showOverlay
		}
		return true
	}
	return false
}

func (r *Renderer) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		// minimised
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// Update refreshes the frame rate shown on the overlay.
func (r *Renderer) Update(dt time.Duration) {
	r.frames++
	r.elapsed += dt
	if r.elapsed >= fpsWindow {
		r.fps = float64(r.frames) / r.elapsed.Seconds()
		r.frames = 0
		r.elapsed = 0
	}
}

func (r *Renderer) Render(cam *camera.Camera, chunks []*world.Chunk) error {
	for _, c := range chunks {
		if _, ok := r.meshes.get(c.Pos); !ok {
			return fmt.Errorf("render chunk %d,%d: %w", c.Pos.X, c.Pos.Z, world.ErrStaleMesh)
		}
	}

	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	projection := cam.Projection(r.width, r.height)
	view := cam.View()
	r.sky.draw(projection, view)

	r.blocks.use()
	r.blocks.setMat4("projection", projection)
	r.blocks.setMat4("view", view)
	r.blocks.setInt("atlas", 0)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.atlas)
	for _, c := range chunks {
		m, _ := r.meshes.get(c.Pos)
		if m.count == 0 {
			continue
		}
		gl.BindVertexArray(m.vao)
		gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	}
	gl.BindVertexArray(0)

	if r.showOverlay {
		cx, cy, cz := cam.Cell()
		r.overlay.setLines(
			fmt.Sprintf("FPS: %.1f", r.fps),
			fmt.Sprintf("XYZ: %.2f / %.2f / %.2f", cam.Position[0], cam.Position[1], cam.Position[2]),
			fmt.Sprintf("Block: %d %d %d", cx, cy, cz),
			fmt.Sprintf("Yaw: %.2f Pitch: %.2f", mgl32.RadToDeg(cam.Yaw), mgl32.RadToDeg(cam.Pitch)),
			fmt.Sprintf("Vertices: %d", r.meshes.vertices),
		)
		if err := r.overlay.draw(r.width, r.height); err != nil {
			return err
		}
	}

	if code := gl.GetError(); code != gl.NO_ERROR {
		return fmt.Errorf("render: gl error 0x%x", code)
	}
	return nil
}

// Close releases every GL object owned by the renderer.
func (r *Renderer) Close() {
	r.meshes.clear()
	gl.DeleteTextures(1, &r.atlas)
	r.sky.delete()
	r.overlay.delete()
	r.blocks.delete()
}
