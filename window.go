package main

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"voxelview/camera"
	"voxelview/config"
	"voxelview/loop"
)

var keyMap = map[glfw.Key]camera.Key{
	glfw.KeyUp:     camera.KeyUp,
	glfw.KeyDown:   camera.KeyDown,
	glfw.KeyLeft:   camera.KeyLeft,
	glfw.KeyRight:  camera.KeyRight,
	glfw.KeyQ:      camera.KeyQ,
	glfw.KeyE:      camera.KeyE,
	glfw.KeyW:      camera.KeyW,
	glfw.KeySpace:  camera.KeySpace,
	glfw.KeyEscape: camera.KeyEscape,
	glfw.KeyF3:     camera.KeyF3,
}

var actionMap = map[glfw.Action]camera.KeyAction{
	glfw.Press:   camera.Press,
	glfw.Repeat:  camera.Repeat,
	glfw.Release: camera.Release,
}

// windowSource adapts GLFW callbacks to the loop's poll-style event stream.
// Buffers are swapped on the poll after a redraw was delivered.
type windowSource struct {
	window    *glfw.Window
	queue     []loop.Event
	redraw    bool
	presented bool
}

func openWindow(cfg config.WindowConfig) (*glfw.Window, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)

	window, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	if cfg.Vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
	return window, nil
}

func newWindowSource(window *glfw.Window) *windowSource {
	s := &windowSource{window: window}

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		k, ok := keyMap[key]
		if !ok {
			k = camera.KeyUnknown
		}
		s.queue = append(s.queue, loop.KeyEvent(k, actionMap[action]))
	})
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		s.queue = append(s.queue, loop.ResizeEvent(width, height))
	})
	window.SetContentScaleCallback(func(w *glfw.Window, x, _ float32) {
		width, height := w.GetFramebufferSize()
		s.queue = append(s.queue, loop.ScaleEvent(float64(x), width, height))
	})
	window.SetCloseCallback(func(_ *glfw.Window) {
		s.queue = append(s.queue, loop.CloseEvent())
	})
	return s
}

func (s *windowSource) Poll() []loop.Event {
	if s.presented {
		s.window.SwapBuffers()
		s.presented = false
	}

	glfw.PollEvents()
	events := append(s.queue, loop.Event{Kind: loop.MainEventsCleared})
	s.queue = nil
	if s.redraw {
		s.redraw = false
		s.presented = true
		events = append(events, loop.Event{Kind: loop.RedrawRequested})
	}
	return events
}

func (s *windowSource) RequestRedraw() {
	s.redraw = true
}

func (s *windowSource) Size() (int, int) {
	return s.window.GetFramebufferSize()
}
