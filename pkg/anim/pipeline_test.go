package anim

import (
	"context"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taigrr/neonwire/pkg/math3d"
	"github.com/taigrr/neonwire/pkg/render"
	"github.com/taigrr/neonwire/pkg/scene"
)

// stubScene draws fixed lines with no rotation.
type stubScene struct {
	lines    []scene.Line
	advances int
}

func (s *stubScene) Advance() { s.advances++ }

func (s *stubScene) Lines(dst []scene.Line) []scene.Line { return append(dst, s.lines...) }

func (s *stubScene) Rotate(p math3d.Vec3) math3d.Vec3 { return p }

func (s *stubScene) Style(string, float64) render.Style {
	return render.Style{Thickness: 1, Opacity: 1}
}

func line(tag string, z1, z2 float64) scene.Line {
	return scene.Line{P1: math3d.V3(-0.5, 0, z1), P2: math3d.V3(0.5, 0, z2), Tag: tag}
}

// frameRecorder is a FrameSink that keeps every frame.
type frameRecorder struct {
	mu     sync.Mutex
	frames []render.Frame
	got    chan struct{}
}

func newRecorder() *frameRecorder {
	return &frameRecorder{got: make(chan struct{}, 1024)}
}

func (r *frameRecorder) sink(f render.Frame) {
	r.mu.Lock()
	r.frames = append(r.frames, f)
	r.mu.Unlock()
	r.got <- struct{}{}
}

func (r *frameRecorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

func (r *frameRecorder) wait(t *testing.T) {
	t.Helper()
	select {
	case <-r.got:
	case <-time.After(2 * time.Second):
		t.Fatal("no frame delivered")
	}
}

func TestStepSortsBackToFront(t *testing.T) {
	s := &stubScene{lines: []scene.Line{
		line("A", 1, 1),
		line("B", -1, -1),
		line("C", 0.5, -0.5),
	}}
	p := NewPipeline("stub", s, render.NewProjector(200, 200), 50)

	f := p.Step()
	require.Len(t, f.Segments, 3)
	assert.Equal(t, "B", f.Segments[0].Tag)
	assert.Equal(t, "C", f.Segments[1].Tag)
	assert.Equal(t, "A", f.Segments[2].Tag)
	assert.InDelta(t, 0, f.Segments[1].Depth, 1e-12)
	assert.Equal(t, uint64(1), f.Seq)
	assert.Equal(t, "stub", f.Scene)
	assert.Equal(t, 1, s.advances)
	assert.Equal(t, uint64(1), p.Ticks())
}

func TestStepKeepsSourceOrderOnTies(t *testing.T) {
	s := &stubScene{lines: []scene.Line{line("first", 0, 0), line("second", 0, 0), line("third", 0, 0)}}
	p := NewPipeline("stub", s, render.NewProjector(200, 200), 50)

	f := p.Step()
	require.Len(t, f.Segments, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, f.Segments[i].Tag)
		assert.Equal(t, i, f.Segments[i].Index)
	}
}

func TestStepSkipsNonFinite(t *testing.T) {
	s := &stubScene{lines: []scene.Line{
		line("ok", 0, 0),
		{P1: math3d.V3(math.NaN(), 0, 0), P2: math3d.V3(1, 0, 0), Tag: "nan"},
		{P1: math3d.V3(0, 0, 0), P2: math3d.V3(0, math.Inf(1), 0), Tag: "inf"},
	}}
	p := NewPipeline("stub", s, render.NewProjector(200, 200), 50)

	f := p.Step()
	require.Len(t, f.Segments, 1)
	assert.Equal(t, "ok", f.Segments[0].Tag)
}

func TestStepCubeFirstTick(t *testing.T) {
	e, err := scene.Default().Lookup("cube")
	require.NoError(t, err)
	sc, err := e.New(scene.Options{})
	require.NoError(t, err)

	p := NewPipeline("cube", sc, render.NewProjector(400, 800), e.Size)
	f := p.Step()
	require.Len(t, f.Segments, 12)

	for i := 1; i < len(f.Segments); i++ {
		assert.LessOrEqual(t, f.Segments[i-1].Depth, f.Segments[i].Depth)
	}

	// the (-1,-1,-1) corner sits near its unrotated projection (120.4, 320.4)
	corner := math3d.V2(120.398, 320.398)
	found := false
	for _, seg := range f.Segments {
		for _, pt := range []math3d.Vec2{seg.P1, seg.P2} {
			if pt.Distance(corner) < 2 {
				found = true
			}
		}
	}
	assert.True(t, found, "no endpoint near the projected back corner")
}

func TestStartStop(t *testing.T) {
	clock := &manualClock{}
	rec := newRecorder()
	p := NewPipeline("stub", &stubScene{lines: []scene.Line{line("a", 0, 0)}}, render.NewProjector(100, 100), 10,
		WithClock(clock), WithSink(rec.sink))

	assert.Equal(t, Stopped, p.State())
	require.NoError(t, p.Start(context.Background()))
	assert.Equal(t, Running, p.State())
	assert.ErrorIs(t, p.Start(context.Background()), ErrAlreadyRunning)
	assert.Equal(t, 1, clock.created(), "second Start must not spawn a loop")

	tk := clock.latest()
	for range 3 {
		require.True(t, tk.fire(time.Second))
		rec.wait(t)
	}
	assert.Equal(t, 3, rec.count())

	p.Stop()
	assert.Equal(t, Stopped, p.State())
	assert.True(t, tk.isStopped())

	// nobody is listening any more
	assert.False(t, tk.fire(20*time.Millisecond))
	assert.Equal(t, 3, rec.count())
	assert.Equal(t, uint64(3), p.Ticks())

	// Stop is idempotent
	p.Stop()
}

func TestRestartAfterStop(t *testing.T) {
	clock := &manualClock{}
	rec := newRecorder()
	p := NewPipeline("stub", &stubScene{lines: []scene.Line{line("a", 0, 0)}}, render.NewProjector(100, 100), 10,
		WithClock(clock), WithSink(rec.sink))

	for range 3 {
		require.NoError(t, p.Start(context.Background()))
		require.True(t, clock.latest().fire(time.Second))
		rec.wait(t)
		p.Stop()
	}
	assert.Equal(t, 3, clock.created())
	assert.Equal(t, 3, rec.count())
}

func TestContextCancelEndsLoop(t *testing.T) {
	clock := &manualClock{}
	p := NewPipeline("stub", &stubScene{}, render.NewProjector(100, 100), 10, WithClock(clock))

	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, p.Start(ctx))
	cancel()

	assert.Eventually(t, func() bool { return p.State() == Stopped }, time.Second, time.Millisecond)
	require.NoError(t, p.Start(context.Background()), "a pipeline whose context ended can start again")
	p.Stop()
}

func TestPipelineIDsAreUnique(t *testing.T) {
	a := NewPipeline("stub", &stubScene{}, render.NewProjector(1, 1), 1)
	b := NewPipeline("stub", &stubScene{}, render.NewProjector(1, 1), 1)
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.Equal(t, "stopped", a.State().String())
}
