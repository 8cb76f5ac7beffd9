// Package metrics keeps in-process frame statistics on a private Prometheus
// registry. Nothing is served over the network; Snapshot reads the values
// back for logging.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Frame collects per-frame counters. A nil *Frame is a valid no-op.
type Frame struct {
	Registry *prometheus.Registry

	frames       prometheus.Counter
	frameTime    prometheus.Histogram
	meshRebuilds prometheus.Counter
	frameErrors  *prometheus.CounterVec
}

// NewFrame creates the collectors and registers them on a fresh registry.
func NewFrame() *Frame {
	f := &Frame{
		Registry: prometheus.NewRegistry(),
		frames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxelview",
			Name:      "frames_total",
			Help:      "Frames presented.",
		}),
		frameTime: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "voxelview",
			Name:      "frame_duration_milliseconds",
			Help:      "Wall-clock time between redraws.",
			Buckets:   []float64{1, 2, 4, 8, 16, 33, 66, 133, 266},
		}),
		meshRebuilds: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "voxelview",
			Name:      "mesh_rebuilds_total",
			Help:      "Chunk mesh regenerations.",
		}),
		frameErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "voxelview",
			Name:      "frame_errors_total",
			Help:      "Recoverable errors raised inside the frame loop.",
		}, []string{"kind"}),
	}
	f.Registry.MustRegister(f.frames, f.frameTime, f.meshRebuilds, f.frameErrors)
	return f
}

// ObserveFrame records one presented frame of the given duration.
func (f *Frame) ObserveFrame(d time.Duration) {
	if f == nil {
		return
	}
	f.frames.Inc()
	f.frameTime.Observe(float64(d) / float64(time.Millisecond))
}

func (f *Frame) MeshRebuilt() {
	if f == nil {
		return
	}
	f.meshRebuilds.Inc()
}

// FrameError counts a recoverable error of the given kind.
func (f *Frame) FrameError(kind string) {
	if f == nil {
		return
	}
	f.frameErrors.WithLabelValues(kind).Inc()
}

// Snapshot is a point-in-time read of the collectors.
type Snapshot struct {
	Frames       uint64
	MeanFrameMs  float64
	MeshRebuilds uint64
	Errors       map[string]uint64
}

// Snapshot reads the current values.
func (f *Frame) Snapshot() Snapshot {
	s := Snapshot{Errors: map[string]uint64{}}
	if f == nil {
		return s
	}

	var m dto.Metric
	if err := f.frames.Write(&m); err == nil {
		s.Frames = uint64(m.GetCounter().GetValue())
	}
	m.Reset()
	if err := f.meshRebuilds.Write(&m); err == nil {
		s.MeshRebuilds = uint64(m.GetCounter().GetValue())
	}
	m.Reset()
	if err := f.frameTime.Write(&m); err == nil {
		h := m.GetHistogram()
		if n := h.GetSampleCount(); n > 0 {
			s.MeanFrameMs = h.GetSampleSum() / float64(n)
		}
	}

	families, err := f.Registry.Gather()
	if err != nil {
		return s
	}
	for _, fam := range families {
		if fam.GetName() != "voxelview_frame_errors_total" {
			continue
		}
		for _, metric := range fam.GetMetric() {
			for _, label := range metric.GetLabel() {
				if label.GetName() == "kind" {
					s.Errors[label.GetValue()] = uint64(metric.GetCounter().GetValue())
				}
			}
		}
	}
	return s
}
