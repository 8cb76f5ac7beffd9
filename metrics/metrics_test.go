package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFrameCollectors(t *testing.T) {
	f := NewFrame()
	f.ObserveFrame(10 * time.Millisecond)
	f.ObserveFrame(20 * time.Millisecond)
	f.MeshRebuilt()
	f.FrameError("out_of_bounds")
	f.FrameError("out_of_bounds")
	f.FrameError("render")

	assert.Equal(t, float64(2), testutil.ToFloat64(f.frames))
	assert.Equal(t, float64(1), testutil.ToFloat64(f.meshRebuilds))

	s := f.Snapshot()
	assert.Equal(t, uint64(2), s.Frames)
	assert.Equal(t, uint64(1), s.MeshRebuilds)
	assert.InDelta(t, 15, s.MeanFrameMs, 1e-9)
	assert.Equal(t, map[string]uint64{"out_of_bounds": 2, "render": 1}, s.Errors)
}

func TestNilFrameIsNoop(t *testing.T) {
	var f *Frame
	f.ObserveFrame(time.Millisecond)
	f.MeshRebuilt()
	f.FrameError("render")
	assert.Equal(t, Snapshot{Errors: map[string]uint64{}}, f.Snapshot())
}
