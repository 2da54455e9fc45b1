package anim

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/taigrr/neonwire/pkg/render"
	"github.com/taigrr/neonwire/pkg/scene"
)

// Selection names the effect to show and the knobs it is built with.
type Selection struct {
	Effect string
	// Size overrides the scene's default scale when positive.
	Size      float64
	Seed      uint64
	ModelPath string
}

func (s Selection) none() bool {
	return s.Effect == "" || s.Effect == scene.None
}

// Selector owns at most one running pipeline and swaps it when the
// selection changes. All methods are safe for concurrent use.
type Selector struct {
	reg  *scene.Registry
	opts []Option
	log  *zap.Logger

	mu      sync.Mutex
	width   int
	height  int
	active  *Pipeline
	current Selection
}

// NewSelector creates a selector for a width x height pixel viewport.
// opts are applied to every pipeline it starts.
func NewSelector(reg *scene.Registry, width, height int, log *zap.Logger, opts ...Option) *Selector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Selector{
		reg:    reg,
		opts:   append(slices.Clip(opts), WithLogger(log)),
		log:    log,
		width:  width,
		height: height,
	}
}

// Select makes sel the active effect. "none" or an empty effect stops the
// active pipeline. An unknown effect, or a scene that fails to build,
// returns an error and leaves the current pipeline running. Selecting what
// is already running does nothing.
func (s *Selector) Select(ctx context.Context, sel Selection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if sel.none() {
		if s.active != nil {
			s.log.Info("effect cleared", zap.String("from", s.current.Effect))
		}
		s.stopLocked()
		return nil
	}
	// a loop that ended with its parent context is restarted
	if s.active != nil && s.active.State() == Running && sel == s.current {
		return nil
	}
	return s.startLocked(ctx, sel)
}

func (s *Selector) startLocked(ctx context.Context, sel Selection) error {
	entry, err := s.reg.Lookup(sel.Effect)
	if err != nil {
		return err
	}
	sc, err := entry.New(scene.Options{Seed: sel.Seed, ModelPath: sel.ModelPath})
	if err != nil {
		return fmt.Errorf("build %s: %w", sel.Effect, err)
	}
	size := sel.Size
	if size <= 0 {
		size = entry.Size
	}
	proj := render.NewProjector(s.width, s.height).WithLens(entry.Lens)
	next := NewPipeline(entry.ID, sc, proj, size, s.opts...)

	prev := s.current.Effect
	s.stopLocked()
	if err := next.Start(ctx); err != nil {
		return fmt.Errorf("start %s: %w", sel.Effect, err)
	}
	s.active, s.current = next, sel

	s.log.Info("effect selected",
		zap.String("from", prev),
		zap.String("to", sel.Effect),
		zap.Float64("size", size),
		zap.String("pipeline_id", next.ID()),
	)
	return nil
}

func (s *Selector) stopLocked() {
	if s.active == nil {
		return
	}
	s.active.Stop()
	s.active, s.current = nil, Selection{}
}

// Active returns the selected effect id, if any.
func (s *Selector) Active() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active == nil {
		return "", false
	}
	return s.current.Effect, true
}

// Current returns the active selection.
func (s *Selector) Current() Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// Running returns how many pipelines are ticking: 0 or 1.
func (s *Selector) Running() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.active != nil && s.active.State() == Running {
		return 1
	}
	return 0
}

// Resize changes the viewport and restarts the active effect from its
// first tick so the projection matches the new size.
func (s *Selector) Resize(ctx context.Context, width, height int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if width == s.width && height == s.height {
		return nil
	}
	s.width, s.height = width, height
	if s.active == nil {
		return nil
	}
	return s.startLocked(ctx, s.current)
}

// Close stops the active pipeline.
func (s *Selector) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}
