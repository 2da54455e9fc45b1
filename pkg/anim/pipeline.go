package anim

import (
	"context"
	"errors"
	"math"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/taigrr/neonwire/pkg/render"
	"github.com/taigrr/neonwire/pkg/scene"
)

// ErrAlreadyRunning is returned by Start on a running pipeline.
var ErrAlreadyRunning = errors.New("pipeline already running")

// State is a pipeline's lifecycle state.
type State int32

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "stopped"
}

// FrameSink receives every frame a running pipeline produces. It is called
// from the pipeline's goroutine and must not call Stop on that pipeline.
type FrameSink func(render.Frame)

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithClock sets the clock that paces ticks.
func WithClock(c Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// WithInterval sets the time between ticks.
func WithInterval(d time.Duration) Option {
	return func(p *Pipeline) { p.interval = d }
}

// WithSink sets where frames go.
func WithSink(s FrameSink) Option {
	return func(p *Pipeline) { p.sink = s }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(p *Pipeline) { p.log = l }
}

// Pipeline turns one scene into a stream of depth-sorted frames. The scene
// and its angles are private to the pipeline.
type Pipeline struct {
	id       string
	name     string
	scene    scene.Scene
	proj     *render.Projector
	size     float64
	clock    Clock
	interval time.Duration
	sink     FrameSink
	log      *zap.Logger

	// mu guards the lifecycle fields below.
	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}

	// stepMu serialises ticks.
	stepMu sync.Mutex
	lines  []scene.Line
	ticks  atomic.Uint64
}

// NewPipeline creates a stopped pipeline drawing s at size pixels per model
// unit through proj.
func NewPipeline(name string, s scene.Scene, proj *render.Projector, size float64, opts ...Option) *Pipeline {
	p := &Pipeline{
		id:       uuid.NewString(),
		name:     name,
		scene:    s,
		proj:     proj,
		size:     size,
		clock:    WallClock{},
		interval: Interval(scene.TicksPerSecond),
		sink:     func(render.Frame) {},
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With(zap.String("pipeline_id", p.id), zap.String("scene", name))
	return p
}

// ID returns the pipeline's unique id.
func (p *Pipeline) ID() string { return p.id }

// Scene returns the effect id the pipeline was created for.
func (p *Pipeline) Scene() string { return p.name }

// Ticks returns how many ticks have completed.
func (p *Pipeline) Ticks() uint64 { return p.ticks.Load() }

// Step runs one tick synchronously and returns its frame: advance the
// scene, rotate and project every line, compute depth as the mean rotated
// z, resolve the style and sort back to front. Lines with a non-finite
// coordinate are left out of the frame.
func (p *Pipeline) Step() render.Frame {
	p.stepMu.Lock()
	defer p.stepMu.Unlock()

	p.scene.Advance()
	p.lines = p.scene.Lines(p.lines[:0])

	segs := make([]render.Segment, 0, len(p.lines))
	skipped := 0
	for i, l := range p.lines {
		r1, r2 := p.scene.Rotate(l.P1), p.scene.Rotate(l.P2)
		a, b := p.proj.Project(r1, p.size), p.proj.Project(r2, p.size)
		depth := (r1.Z + r2.Z) / 2
		if !a.IsFinite() || !b.IsFinite() || math.IsNaN(depth) || math.IsInf(depth, 0) {
			skipped++
			continue
		}
		segs = append(segs, render.Segment{
			P1:    a.Vec2,
			P2:    b.Vec2,
			Depth: depth,
			Tag:   l.Tag,
			Style: p.scene.Style(l.Tag, depth),
			Index: i,
		})
	}
	if skipped > 0 {
		p.log.Debug("skipped non-finite segments", zap.Int("count", skipped))
	}
	render.SortSegments(segs)

	seq := p.ticks.Add(1)
	return render.Frame{Scene: p.name, Seq: seq, Segments: segs}
}

// State reports whether the tick loop is running.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.stateLocked()
}

func (p *Pipeline) stateLocked() State {
	if p.done == nil {
		return Stopped
	}
	select {
	case <-p.done:
		return Stopped
	default:
		return Running
	}
}

// Start launches the tick loop. The loop ends when Stop is called or ctx
// is cancelled.
func (p *Pipeline) Start(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.stateLocked() == Running {
		return ErrAlreadyRunning
	}
	if p.cancel != nil {
		// the previous loop ended with its parent context
		p.cancel()
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	p.cancel, p.done = cancel, done

	ticker := p.clock.NewTicker(p.interval)
	go p.loop(ctx, ticker, done)

	p.log.Info("pipeline started", zap.Duration("interval", p.interval))
	return nil
}

func (p *Pipeline) loop(ctx context.Context, t Ticker, done chan struct{}) {
	defer close(done)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C():
			frame := p.Step()
			if ctx.Err() != nil {
				return
			}
			p.sink(frame)
		}
	}
}

// Stop cancels the tick loop and waits for it to exit. Once Stop returns
// the sink is not called again. Stopping a stopped pipeline does nothing.
func (p *Pipeline) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel == nil {
		return
	}
	p.cancel()
	<-p.done
	p.cancel, p.done = nil, nil

	p.log.Info("pipeline stopped", zap.Uint64("ticks", p.ticks.Load()))
}
