package loop

import (
	"context"
	"errors"
	"time"

	"voxelview/camera"
	"voxelview/logging"
	"voxelview/metrics"
	"voxelview/world"
)

// State is the frame loop's position in its cycle.
type State int

const (
	Polling State = iota
	Dispatching
	Redrawing
	Exited
)

func (s State) String() string {
	switch s {
	case Polling:
		return "polling"
	case Dispatching:
		return "dispatching"
	case Redrawing:
		return "redrawing"
	case Exited:
		return "exited"
	default:
		return "unknown"
	}
}

// EventSource delivers window events. Poll never blocks for long: it
// returns whatever is queued, ending with MainEventsCleared, followed by
// RedrawRequested when a redraw was asked for.
type EventSource interface {
	Poll() []Event
	RequestRedraw()
	Size() (width, height int)
}

// Presenter is the GPU side: it owns uploaded meshes and draws frames.
type Presenter interface {
	world.Uploader
	// Input lets the presenter consume an event before the key table sees it.
	Input(ev WindowEvent) bool
	Resize(width, height int)
	Update(dt time.Duration)
	Render(cam *camera.Camera, chunks []*world.Chunk) error
}

// Options wires a Loop. Source, Presenter, Chunk, Catalog, Generator and
// Camera are required.
type Options struct {
	Source    EventSource
	Presenter Presenter
	Chunk     *world.Chunk
	Catalog   *world.Catalog
	Generator world.MeshGenerator
	Camera    *camera.Camera
	Mapper    *camera.Mapper

	// EditBlock is written by the toggle key.
	EditBlock world.BlockState

	Clock   *FrameClock
	Metrics *metrics.Frame
	Logger  *logging.Logger
}

// Loop is the single-threaded frame scheduler. It owns the chunk, camera
// and clock for its whole life.
type Loop struct {
	source    EventSource
	presenter Presenter
	chunk     *world.Chunk
	catalog   *world.Catalog
	generator world.MeshGenerator
	camera    *camera.Camera
	mapper    *camera.Mapper
	editBlock world.BlockState

	clock   *FrameClock
	metrics *metrics.Frame
	log     *logging.Logger

	state     State
	exit      bool
	uploaded  bool
	lastFrame time.Duration
}

func New(opts Options) (*Loop, error) {
	switch {
	case opts.Source == nil:
		return nil, errors.New("loop: event source is required")
	case opts.Presenter == nil:
		return nil, errors.New("loop: presenter is required")
	case opts.Chunk == nil, opts.Catalog == nil, opts.Generator == nil:
		return nil, errors.New("loop: chunk, catalog and generator are required")
	case opts.Camera == nil:
		return nil, errors.New("loop: camera is required")
	}

	l := &Loop{
		source:    opts.Source,
		presenter: opts.Presenter,
		chunk:     opts.Chunk,
		catalog:   opts.Catalog,
		generator: opts.Generator,
		camera:    opts.Camera,
		mapper:    opts.Mapper,
		editBlock: opts.EditBlock,
		clock:     opts.Clock,
		metrics:   opts.Metrics,
		log:       opts.Logger,
		state:     Polling,
	}
	if l.mapper == nil {
		l.mapper = camera.NewMapper(camera.DefaultStep)
	}
	if l.clock == nil {
		l.clock = NewFrameClock(nil)
	}
	if l.log == nil {
		l.log = logging.Default()
	}
	return l, nil
}

func (l *Loop) State() State { return l.state }

// Exited reports whether termination has been requested.
func (l *Loop) Exited() bool { return l.exit }

// FrameDuration is the duration recorded at the last redraw.
func (l *Loop) FrameDuration() time.Duration { return l.lastFrame }

// MarkUploaded records that the chunk's current mesh is already on the
// presenter, e.g. after an upload done during startup.
func (l *Loop) MarkUploaded() {
	if !l.chunk.Dirty() {
		l.uploaded = true
	}
}

// Run polls and dispatches until an exit is requested or ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	for !l.exit {
		if err := ctx.Err(); err != nil {
			l.state = Exited
			return err
		}
		l.state = Polling
		for _, ev := range l.source.Poll() {
			l.Dispatch(ev)
			if l.exit {
				break
			}
		}
	}
	l.state = Exited
	return nil
}

// Dispatch handles a single event.
func (l *Loop) Dispatch(ev Event) {
	if l.exit {
		return
	}
	l.state = Dispatching

	switch ev.Kind {
	case MainEventsCleared:
		l.source.RequestRedraw()
	case Window:
		l.handleWindow(ev.Window)
	case RedrawRequested:
		l.redraw()
	}

	if l.exit {
		l.state = Exited
		return
	}
	l.state = Polling
}

func (l *Loop) requestExit() {
	l.exit = true
	l.state = Exited
}

func (l *Loop) handleWindow(ev WindowEvent) {
	if l.presenter.Input(ev) {
		return
	}

	switch ev.Kind {
	case Close:
		l.requestExit()
	case Resized, ScaleFactorChanged:
		l.presenter.Resize(ev.Width, ev.Height)
	case KeyboardInput:
		switch l.mapper.Apply(l.camera, ev.Key, ev.Action) {
		case camera.CommandExit:
			l.requestExit()
		case camera.CommandToggleBlock:
			l.toggleBlock()
		}
	}
}

// toggleBlock flips the cell containing the camera between air and the
// edit block.
func (l *Loop) toggleBlock() {
	cx, cy, cz := l.camera.Cell()
	ox, oz := l.chunk.Origin()
	x, y, z := cx-int(ox), cy, cz-int(oz)

	current, err := l.chunk.Get(x, y, z)
	if err != nil {
		l.frameError("out_of_bounds", err)
		return
	}
	next := l.editBlock
	if !current.IsAir() {
		next = world.AirState
	}
	if err := l.chunk.Set(x, y, z, next); err != nil {
		l.frameError("out_of_bounds", err)
		return
	}
	l.uploaded = false
	l.log.Debug("Block at %d,%d,%d set to %d", x, y, z, next.Block)
}

func (l *Loop) frameError(kind string, err error) {
	l.metrics.FrameError(kind)
	l.log.Warn("%s: %v", kind, err)
}

// syncMesh regenerates and uploads the chunk mesh when it is out of date.
func (l *Loop) syncMesh() error {
	if l.chunk.Dirty() {
		start := time.Now()
		if err := l.chunk.RegenerateMesh(l.catalog, l.generator); err != nil {
			return err
		}
		l.metrics.MeshRebuilt()
		l.uploaded = false
		mesh, _ := l.chunk.Mesh()
		l.log.Debug("Chunk mesh rebuilt: %d vertices in %s", mesh.Count, time.Since(start))
	}
	if !l.uploaded {
		if err := l.chunk.Upload(l.presenter); err != nil {
			return err
		}
		l.uploaded = true
	}
	return nil
}

func (l *Loop) redraw() {
	l.state = Redrawing
	l.presenter.Update(l.lastFrame)

	if err := l.syncMesh(); err != nil {
		kind := "upload"
		if errors.Is(err, world.ErrStaleMesh) {
			kind = "stale_mesh"
		}
		l.frameError(kind, err)
	} else if err := l.presenter.Render(l.camera, []*world.Chunk{l.chunk}); err != nil {
		l.frameError("render", err)
	}

	l.lastFrame = l.clock.Tick()
	l.metrics.ObserveFrame(l.lastFrame)
}
