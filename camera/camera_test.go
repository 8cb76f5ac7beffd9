package camera

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"

	"voxelview/config"
)

func vecNear(t *testing.T, want, got mgl32.Vec3) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], 1e-5, "component %d: want %v got %v", i, want, got)
	}
}

func TestVecNearToleratesRoundingAroundZero(t *testing.T) {
	// cos(pi/2) in float32 is about -3.9e-8, not 0
	got := mgl32.Vec3{float32(math.Cos(math.Pi / 2)), 0.4472136, 0.8944272}
	vecNear(t, mgl32.Vec3{0, 0.4472136, 0.8944272}, got)
}

func TestMapperTable(t *testing.T) {
	tests := []struct {
		key       Key
		wantCmd   Command
		wantYaw   float32
		wantPitch float32
		wantPos   mgl32.Vec3
	}{
		{KeyUp, CommandCamera, 0, -0.1, mgl32.Vec3{}},
		{KeyDown, CommandCamera, 0, 0.1, mgl32.Vec3{}},
		{KeyLeft, CommandCamera, -0.1, 0, mgl32.Vec3{}},
		{KeyRight, CommandCamera, 0.1, 0, mgl32.Vec3{}},
		{KeyQ, CommandCamera, 0, 0, mgl32.Vec3{0, -0.1, 0}},
		{KeyE, CommandCamera, 0, 0, mgl32.Vec3{0, 0.1, 0}},
		{KeyW, CommandCamera, 0, 0, mgl32.Vec3{1, 0, 0}},
		{KeySpace, CommandToggleBlock, 0, 0, mgl32.Vec3{}},
		{KeyEscape, CommandExit, 0, 0, mgl32.Vec3{}},
		{KeyF3, CommandNone, 0, 0, mgl32.Vec3{}},
		{KeyUnknown, CommandNone, 0, 0, mgl32.Vec3{}},
	}

	m := NewMapper(DefaultStep)
	for _, tt := range tests {
		cam := &Camera{}
		cmd := m.Apply(cam, tt.key, Press)
		assert.Equal(t, tt.wantCmd, cmd, "key %d", tt.key)
		assert.InDelta(t, tt.wantYaw, cam.Yaw, 1e-6, "key %d yaw", tt.key)
		assert.InDelta(t, tt.wantPitch, cam.Pitch, 1e-6, "key %d pitch", tt.key)
		vecNear(t, tt.wantPos, cam.Position)
	}
}

func TestMapperIgnoresRepeatAndRelease(t *testing.T) {
	m := NewMapper(DefaultStep)
	cam := &Camera{Position: mgl32.Vec3{1, 2, 3}}

	for _, action := range []KeyAction{Repeat, Release} {
		for _, key := range []Key{KeyUp, KeyW, KeyEscape, KeySpace} {
			assert.Equal(t, CommandNone, m.Apply(cam, key, action))
		}
	}
	assert.Equal(t, mgl32.Vec3{1, 2, 3}, cam.Position)
	assert.Zero(t, cam.Yaw)
	assert.Zero(t, cam.Pitch)
}

func TestForwardUsesPitchForVerticalComponent(t *testing.T) {
	m := NewMapper(DefaultStep)
	cam := &Camera{Yaw: float32(math.Pi / 2), Pitch: float32(math.Pi / 6)}
	m.Apply(cam, KeyW, Press)

	// (cos 90, sin 30, sin 90) = (0, 0.5, 1) normalised
	want := mgl32.Vec3{0, 0.5, 1}.Normalize()
	vecNear(t, want, cam.Position)
	assert.InDelta(t, 1, cam.Position.Len(), 1e-5)
}

func TestRepeatedPressesAccumulate(t *testing.T) {
	m := NewMapper(0)
	assert.Equal(t, DefaultStep, m.Step)

	cam := &Camera{}
	for i := 0; i < 5; i++ {
		m.Apply(cam, KeyRight, Press)
	}
	assert.InDelta(t, 0.5, cam.Yaw, 1e-5)
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default().Camera
	cam := New(cfg)
	assert.Equal(t, mgl32.Vec3{cfg.Position[0], cfg.Position[1], cfg.Position[2]}, cam.Position)
	assert.Equal(t, cfg.Fov, cam.Fov)
}

func TestViewAndCell(t *testing.T) {
	cam := &Camera{Position: mgl32.Vec3{1.5, -0.5, 2.9}, Fov: 70, Near: 0.1, Far: 100}
	x, y, z := cam.Cell()
	assert.Equal(t, []int{1, -1, 2}, []int{x, y, z})

	vecNear(t, mgl32.Vec3{1, 0, 0}, cam.Front())

	// the camera position maps to the view-space origin
	origin := cam.View().Mul4x1(cam.Position.Vec4(1)).Vec3()
	vecNear(t, mgl32.Vec3{}, origin)

	assert.NotEqual(t, mgl32.Mat4{}, cam.Projection(800, 0))
}
