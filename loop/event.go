package loop

import "voxelview/camera"

// EventKind is the top-level kind of an event delivered by an EventSource.
type EventKind int

const (
	// MainEventsCleared is emitted once all pending input of an iteration
	// has been delivered.
	MainEventsCleared EventKind = iota
	Window
	RedrawRequested
)

// WindowEventKind selects the payload of a WindowEvent.
type WindowEventKind int

const (
	Close WindowEventKind = iota
	KeyboardInput
	Resized
	ScaleFactorChanged
)

// WindowEvent is an input or window-state notification.
type WindowEvent struct {
	Kind WindowEventKind

	// KeyboardInput
	Key    camera.Key
	Action camera.KeyAction

	// Resized and ScaleFactorChanged carry the new framebuffer size.
	Width, Height int
	Scale         float64
}

// Event is one item of the poll-style event stream.
type Event struct {
	Kind   EventKind
	Window WindowEvent
}

func KeyEvent(key camera.Key, action camera.KeyAction) Event {
	return Event{Kind: Window, Window: WindowEvent{Kind: KeyboardInput, Key: key, Action: action}}
}

func ResizeEvent(width, height int) Event {
	return Event{Kind: Window, Window: WindowEvent{Kind: Resized, Width: width, Height: height}}
}

func ScaleEvent(scale float64, width, height int) Event {
	return Event{Kind: Window, Window: WindowEvent{Kind: ScaleFactorChanged, Scale: scale, Width: width, Height: height}}
}

func CloseEvent() Event {
	return Event{Kind: Window, Window: WindowEvent{Kind: Close}}
}
