package main

import (
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"os/signal"
	"slices"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/harmonica"
	uv "github.com/charmbracelet/ultraviolet"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/taigrr/neonwire/internal/config"
	"github.com/taigrr/neonwire/internal/logging"
	"github.com/taigrr/neonwire/pkg/anim"
	"github.com/taigrr/neonwire/pkg/render"
	"github.com/taigrr/neonwire/pkg/scene"
	"github.com/taigrr/neonwire/pkg/theme"
)

// errQuit ends the player's errgroup without being reported.
var errQuit = errors.New("quit")

// referenceExtent is the viewport side the scenes' default sizes were
// tuned for; smaller terminals scale them down.
const referenceExtent = 400.0

func newPlayCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "play [effect]",
		Short: "Play effects full-screen in the terminal",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				a.cfg.Effect = args[0]
			}
			return play(cmd.Context(), a)
		},
	}
}

// fadeIn eases a freshly selected scene in from the background.
type fadeIn struct {
	spring harmonica.Spring
	pos    float64
	vel    float64
}

func newFadeIn(fps int) fadeIn {
	// critically damped, settles in about half a second
	return fadeIn{spring: harmonica.NewSpring(harmonica.FPS(fps), 8.0, 1.0)}
}

func (f *fadeIn) restart() { f.pos, f.vel = 0, 0 }

func (f *fadeIn) step() float64 {
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, 1)
	return f.pos
}

// player owns the terminal, the selector and the view state.
type player struct {
	log        *zap.Logger
	term       *uv.Terminal
	sel        *anim.Selector
	configPath string
	frame      atomic.Pointer[render.Frame]

	mu        sync.Mutex
	cfg       config.Config
	theme     theme.Theme
	width     int // terminal cells
	height    int
	zoom      float64
	fb        *render.Framebuffer
	painter   *render.Painter
	fade      fadeIn
	lastScene string
	showHUD   bool
}

// playerLogger returns the logger for the player's lifetime. Without a log
// file it discards everything: stderr is the terminal the player draws on
// and the renderer never repaints cells a log line overwrote.
func playerLogger(c config.Config, log *zap.Logger) *zap.Logger {
	if c.Log.File == "" {
		return logging.Nop()
	}
	return log
}

func play(ctx context.Context, a *app) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log := playerLogger(a.cfg, a.log)

	term := uv.DefaultTerminal()
	width, height, err := term.GetSize()
	if err != nil {
		return fmt.Errorf("get terminal size: %w", err)
	}
	if err := term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	term.EnterAltScreen()
	term.HideCursor()
	term.Resize(width, height)
	defer func() {
		term.ExitAltScreen()
		term.ShowCursor()
		term.Shutdown(context.Background())
	}()

	p := &player{
		log:        log,
		term:       term,
		configPath: a.configPath,
		cfg:        a.cfg,
		theme:      a.cfg.Theme(),
		width:      width,
		height:     height,
		zoom:       1,
		fade:       newFadeIn(a.cfg.FPS),
		showHUD:    true,
	}
	p.fb = render.NewFramebuffer(width, height*2)
	p.painter = render.NewPainter(p.fb, p.theme)
	p.sel = anim.NewSelector(scene.Default(), p.fb.Width, p.fb.Height, log,
		anim.WithInterval(anim.Interval(a.cfg.FPS)),
		anim.WithSink(func(f render.Frame) { p.frame.Store(&f) }),
	)
	defer p.sel.Close()

	g, gctx := errgroup.WithContext(ctx)
	p.mu.Lock()
	err = p.selectLocked(gctx)
	p.mu.Unlock()
	if err != nil {
		return err
	}

	g.Go(func() error { return p.events(gctx) })
	g.Go(func() error { return p.render(gctx, a.cfg.FPS) })
	g.Go(func() error {
		return config.Watch(gctx, p.configPath, log, func(c config.Config) { p.apply(gctx, c) })
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errQuit) {
		return err
	}
	return nil
}

// selectLocked asks the selector for the configured effect at the current
// zoom and viewport.
func (p *player) selectLocked(ctx context.Context) error {
	sel := anim.Selection{
		Effect:    p.cfg.Effect,
		Seed:      p.cfg.Seed,
		ModelPath: p.cfg.Model,
	}
	if sel.Effect != "" && sel.Effect != scene.None {
		base := p.cfg.Size
		if base <= 0 {
			e, err := scene.Default().Lookup(sel.Effect)
			if err != nil {
				return err
			}
			base = e.Size
		}
		extent := float64(min(p.fb.Width, p.fb.Height))
		sel.Size = base * p.zoom * extent / referenceExtent
	}
	return p.sel.Select(ctx, sel)
}

// apply takes a reloaded config. The frame rate only changes on restart.
func (p *player) apply(ctx context.Context, c config.Config) {
	p.mu.Lock()
	defer p.mu.Unlock()
	c.FPS = p.cfg.FPS
	p.cfg = c
	p.setThemeLocked(c.Theme())
	if err := p.selectLocked(ctx); err != nil {
		p.log.Warn("reloaded effect not applied", zap.Error(err))
	}
}

func (p *player) setThemeLocked(t theme.Theme) {
	p.theme = t
	p.painter.SetPalette(t)
}

func (p *player) events(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-p.term.Events():
			if !ok {
				return nil
			}
			if err := p.handle(ctx, ev); err != nil {
				return err
			}
		}
	}
}

func (p *player) handle(ctx context.Context, ev uv.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch ev := ev.(type) {
	case uv.WindowSizeEvent:
		p.width, p.height = ev.Width, ev.Height
		p.term.Erase()
		p.term.Resize(p.width, p.height)
		p.fb.Resize(p.width, p.height*2)
		if err := p.sel.Resize(ctx, p.fb.Width, p.fb.Height); err != nil {
			p.log.Warn("resize restart failed", zap.Error(err))
		}
		return p.reselectLocked(ctx)

	case uv.KeyPressEvent:
		switch {
		case ev.MatchString("escape", "q", "ctrl+c"):
			return errQuit
		case ev.MatchString("n", "right"):
			p.cfg.Effect = p.cycle(1)
			return p.reselectLocked(ctx)
		case ev.MatchString("p", "left"):
			p.cfg.Effect = p.cycle(-1)
			return p.reselectLocked(ctx)
		case ev.MatchString("c"):
			t, err := theme.Resolve(p.theme.Mode, theme.Next(p.theme.Name))
			if err != nil {
				return err
			}
			p.cfg.Palette = t.Name
			p.setThemeLocked(t)
		case ev.MatchString("+", "="):
			p.zoom = math.Min(4, p.zoom*1.1)
			return p.reselectLocked(ctx)
		case ev.MatchString("-", "_"):
			p.zoom = math.Max(0.25, p.zoom/1.1)
			return p.reselectLocked(ctx)
		case ev.MatchString("?", "shift+/"):
			p.showHUD = !p.showHUD
		}
	}
	return nil
}

// reselectLocked re-applies the selection after a view change. Failures are
// logged; the previous scene keeps running.
func (p *player) reselectLocked(ctx context.Context) error {
	if err := p.selectLocked(ctx); err != nil {
		p.log.Warn("effect not applied", zap.String("effect", p.cfg.Effect), zap.Error(err))
	}
	return nil
}

// cycle returns the effect dir steps away from the current one. The model
// effect is only offered when a model is configured.
func (p *player) cycle(dir int) string {
	ids := scene.Default().IDs()
	if p.cfg.Model == "" {
		ids = slices.DeleteFunc(ids, func(id string) bool { return id == "model" })
	}
	i := slices.Index(ids, p.cfg.Effect)
	if i < 0 {
		return ids[0]
	}
	return ids[(i+dir+len(ids))%len(ids)]
}

func (p *player) render(ctx context.Context, fps int) error {
	t := time.NewTicker(anim.Interval(fps))
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-t.C:
			if err := p.draw(); err != nil {
				return err
			}
		}
	}
}

func (p *player) draw() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if f := p.frame.Load(); f != nil {
		if f.Scene != p.lastScene {
			p.fade.restart()
			p.lastScene = f.Scene
		}
		p.painter.DrawFrame(*f)
	} else {
		p.fb.Clear(p.theme.Bg)
	}
	if _, ok := p.sel.Active(); !ok {
		p.fb.Clear(p.theme.Bg)
	}
	p.fb.Fade(p.theme.Bg, p.fade.step())

	p.fb.Draw(p.term, uv.Rect(0, 0, p.width, p.height))
	if p.showHUD && p.height > 1 {
		uv.NewStyledString(p.hud()).Draw(p.term, uv.Rect(0, p.height-1, p.width, 1))
	}
	if err := p.term.Display(); err != nil {
		return fmt.Errorf("display: %w", err)
	}
	return nil
}

func (p *player) hud() string {
	id, ok := p.sel.Active()
	if !ok {
		id = scene.None
	}
	name := lipgloss.NewStyle().Foreground(p.theme.Accent).Background(p.theme.Bg).Bold(true).Padding(0, 1)
	help := lipgloss.NewStyle().Foreground(p.theme.Primary).Background(p.theme.Bg).Faint(true).Padding(0, 1)
	return name.Render(id) + help.Render(fmt.Sprintf("%s · n/p scene · c palette · +/- zoom · ? hud · q quit", p.theme.Name))
}
