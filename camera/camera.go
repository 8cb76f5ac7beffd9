package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"voxelview/config"
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a free-flying viewpoint. Yaw and pitch are radians and are not
// clamped or wrapped.
type Camera struct {
	Position mgl32.Vec3
	Yaw      float32
	Pitch    float32

	Fov  float32 // degrees
	Near float32
	Far  float32
}

// New builds a camera from its configuration.
func New(cfg config.CameraConfig) *Camera {
	return &Camera{
		Position: mgl32.Vec3{cfg.Position[0], cfg.Position[1], cfg.Position[2]},
		Yaw:      cfg.Yaw,
		Pitch:    cfg.Pitch,
		Fov:      cfg.Fov,
		Near:     cfg.Near,
		Far:      cfg.Far,
	}
}

func cos32(v float32) float32 { return float32(math.Cos(float64(v))) }
func sin32(v float32) float32 { return float32(math.Sin(float64(v))) }

// Front is the unit view direction.
func (c *Camera) Front() mgl32.Vec3 {
	return mgl32.Vec3{
		cos32(c.Yaw) * cos32(c.Pitch),
		sin32(c.Pitch),
		sin32(c.Yaw) * cos32(c.Pitch),
	}.Normalize()
}

// MoveDirection is the unit vector applied by the forward key. Pitch feeds
// the vertical component directly and is not folded into the horizontal ones.
func (c *Camera) MoveDirection() mgl32.Vec3 {
	return mgl32.Vec3{cos32(c.Yaw), sin32(c.Pitch), sin32(c.Yaw)}.Normalize()
}

// View returns the world-to-camera transform.
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front()), worldUp)
}

// Projection returns the perspective transform for a framebuffer size.
func (c *Camera) Projection(width, height int) mgl32.Mat4 {
	if height <= 0 {
		height = 1
	}
	aspect := float32(width) / float32(height)
	return mgl32.Perspective(mgl32.DegToRad(c.Fov), aspect, c.Near, c.Far)
}

// Cell returns the integer block coordinate containing the camera.
func (c *Camera) Cell() (x, y, z int) {
	return int(math.Floor(float64(c.Position[0]))),
		int(math.Floor(float64(c.Position[1]))),
		int(math.Floor(float64(c.Position[2])))
}
