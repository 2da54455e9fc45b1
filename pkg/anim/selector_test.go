package anim

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/neonwire/pkg/scene"
)

func newTestSelector(t *testing.T) (*Selector, *manualClock, *frameRecorder) {
	t.Helper()
	clock := &manualClock{}
	rec := newRecorder()
	s := NewSelector(scene.Default(), 320, 240, nil, WithClock(clock), WithSink(rec.sink))
	t.Cleanup(s.Close)
	return s, clock, rec
}

func TestSelectStartsOnePipeline(t *testing.T) {
	s, clock, rec := newTestSelector(t)
	ctx := context.Background()

	id, ok := s.Active()
	assert.False(t, ok)
	assert.Empty(t, id)
	assert.Equal(t, 0, s.Running())

	require.NoError(t, s.Select(ctx, Selection{Effect: "cube"}))
	id, ok = s.Active()
	assert.True(t, ok)
	assert.Equal(t, "cube", id)
	assert.Equal(t, 1, s.Running())

	require.True(t, clock.latest().fire(time.Second))
	rec.wait(t)
	assert.Equal(t, "cube", rec.frames[0].Scene)
	assert.Len(t, rec.frames[0].Segments, 12)
}

func TestSelectSwapStopsPrevious(t *testing.T) {
	s, clock, rec := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, s.Select(ctx, Selection{Effect: "cube"}))
	first := clock.latest()

	require.NoError(t, s.Select(ctx, Selection{Effect: "dna"}))
	second := clock.latest()
	require.NotSame(t, first, second)

	assert.True(t, first.isStopped(), "old pipeline still ticking")
	assert.False(t, first.fire(20*time.Millisecond))
	assert.Equal(t, 1, s.Running())

	require.True(t, second.fire(time.Second))
	rec.wait(t)
	assert.Equal(t, "dna", rec.frames[len(rec.frames)-1].Scene)
}

func TestSelectUnknownKeepsCurrent(t *testing.T) {
	s, clock, _ := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, s.Select(ctx, Selection{Effect: "cube"}))
	err := s.Select(ctx, Selection{Effect: "teapot"})
	assert.ErrorIs(t, err, scene.ErrUnknownEffect)

	id, ok := s.Active()
	assert.True(t, ok)
	assert.Equal(t, "cube", id)
	assert.Equal(t, 1, s.Running())
	assert.Equal(t, 1, clock.created())
}

func TestSelectBrokenSceneKeepsCurrent(t *testing.T) {
	s, _, _ := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, s.Select(ctx, Selection{Effect: "cube"}))
	err := s.Select(ctx, Selection{Effect: "model"})
	assert.ErrorIs(t, err, scene.ErrNoModelPath)

	id, _ := s.Active()
	assert.Equal(t, "cube", id)
}

func TestSelectSameIsNoop(t *testing.T) {
	s, clock, _ := newTestSelector(t)
	ctx := context.Background()

	sel := Selection{Effect: "saturn", Size: 90}
	require.NoError(t, s.Select(ctx, sel))
	require.NoError(t, s.Select(ctx, sel))
	assert.Equal(t, 1, clock.created())
	assert.Equal(t, sel, s.Current())

	// a different size is a different selection
	require.NoError(t, s.Select(ctx, Selection{Effect: "saturn", Size: 120}))
	assert.Equal(t, 2, clock.created())
}

func TestSelectSameRestartsEndedPipeline(t *testing.T) {
	s, clock, _ := newTestSelector(t)
	ctx, cancel := context.WithCancel(context.Background())

	sel := Selection{Effect: "cube"}
	require.NoError(t, s.Select(ctx, sel))
	cancel()
	require.Eventually(t, func() bool { return s.Running() == 0 }, time.Second, 5*time.Millisecond)

	require.NoError(t, s.Select(context.Background(), sel))
	assert.Equal(t, 2, clock.created())
	assert.Equal(t, 1, s.Running())
	assert.Equal(t, sel, s.Current())
}

func TestSelectNoneStops(t *testing.T) {
	for _, effect := range []string{scene.None, ""} {
		t.Run("effect="+effect, func(t *testing.T) {
			s, clock, _ := newTestSelector(t)
			ctx := context.Background()

			require.NoError(t, s.Select(ctx, Selection{Effect: "cube"}))
			require.NoError(t, s.Select(ctx, Selection{Effect: effect}))

			_, ok := s.Active()
			assert.False(t, ok)
			assert.Equal(t, 0, s.Running())
			assert.True(t, clock.latest().isStopped())
		})
	}
}

func TestResizeRestartsActive(t *testing.T) {
	s, clock, rec := newTestSelector(t)
	ctx := context.Background()

	require.NoError(t, s.Resize(ctx, 100, 100), "resize while idle")
	assert.Equal(t, 0, clock.created())

	require.NoError(t, s.Select(ctx, Selection{Effect: "cube"}))
	require.NoError(t, s.Resize(ctx, 100, 100), "same size")
	assert.Equal(t, 1, clock.created())

	require.NoError(t, s.Resize(ctx, 640, 480))
	assert.Equal(t, 2, clock.created())
	assert.True(t, clock.tickers[0].isStopped())
	assert.Equal(t, 1, s.Running())

	require.True(t, clock.latest().fire(time.Second))
	rec.wait(t)
	f := rec.frames[len(rec.frames)-1]
	require.NotEmpty(t, f.Segments)
	// projected around the new centre
	var sumX float64
	for _, seg := range f.Segments {
		sumX += seg.P1.X + seg.P2.X
	}
	assert.InDelta(t, 320, sumX/float64(2*len(f.Segments)), 5)
}

func TestConcurrentSelectKeepsOneRunning(t *testing.T) {
	s, _, _ := newTestSelector(t)
	ctx := context.Background()
	effects := []string{"cube", "dna", "saturn", "sea", scene.None, "hyperCube"}

	var wg sync.WaitGroup
	for i := range 24 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Select(ctx, Selection{Effect: effects[i%len(effects)]})
			assert.LessOrEqual(t, s.Running(), 1)
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, s.Running(), 1)

	s.Close()
	assert.Equal(t, 0, s.Running())
}
