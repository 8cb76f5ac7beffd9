package camera

// Key is a platform-independent key code.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyQ
	KeyE
	KeyW
	KeySpace
	KeyEscape
	KeyF3
)

// KeyAction distinguishes a fresh press from auto-repeat and release.
type KeyAction int

const (
	Press KeyAction = iota
	Repeat
	Release
)

// Command tells the frame loop what a key press asked for.
type Command int

const (
	CommandNone Command = iota
	CommandCamera
	CommandToggleBlock
	CommandExit
)

// DefaultStep is the per-press angle (radians) and vertical distance.
const DefaultStep float32 = 0.1

// Mapper applies the fixed key table to a camera. Each press moves by a
// fixed step; repeats and releases are ignored.
type Mapper struct {
	Step float32
}

func NewMapper(step float32) *Mapper {
	if step <= 0 {
		step = DefaultStep
	}
	return &Mapper{Step: step}
}

// Apply mutates cam for camera keys and reports the resulting command.
func (m *Mapper) Apply(cam *Camera, key Key, action KeyAction) Command {
	if action != Press {
		return CommandNone
	}

	switch key {
	case KeyUp:
		cam.Pitch -= m.Step
	case KeyDown:
		cam.Pitch += m.Step
	case KeyLeft:
		cam.Yaw -= m.Step
	case KeyRight:
		cam.Yaw += m.Step
	case KeyQ:
		cam.Position[1] -= m.Step
	case KeyE:
		cam.Position[1] += m.Step
	case KeyW:
		cam.Position = cam.Position.Add(cam.MoveDirection())
	case KeySpace:
		return CommandToggleBlock
	case KeyEscape:
		return CommandExit
	default:
		return CommandNone
	}
	return CommandCamera
}
