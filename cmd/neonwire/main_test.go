package main

import (
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/taigrr/neonwire/internal/config"
	"github.com/taigrr/neonwire/internal/logging"
	"github.com/taigrr/neonwire/pkg/scene"
)

func testApp() *app {
	return &app{cfg: config.Default(), log: logging.Nop()}
}

func TestSnapshotWritesPNG(t *testing.T) {
	a := testApp()
	out := filepath.Join(t.TempDir(), "cube.png")

	err := snapshot(a, "cube", snapshotOptions{ticks: 5, width: 120, height: 90, out: out})
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 120 || b.Dy() != 90 {
		t.Errorf("image is %dx%d, want 120x90", b.Dx(), b.Dy())
	}
}

func TestSnapshotErrors(t *testing.T) {
	a := testApp()
	dir := t.TempDir()
	tests := []struct {
		name   string
		effect string
		opts   snapshotOptions
	}{
		{"unknown effect", "teapot", snapshotOptions{width: 10, height: 10, out: filepath.Join(dir, "a.png")}},
		{"model without path", "model", snapshotOptions{width: 10, height: 10, out: filepath.Join(dir, "b.png")}},
		{"empty image", "cube", snapshotOptions{width: 0, height: 10, out: filepath.Join(dir, "c.png")}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := snapshot(a, tt.effect, tt.opts); err == nil {
				t.Error("expected an error")
			}
		})
	}
}

func TestSceneListMarksActive(t *testing.T) {
	a := testApp()
	a.cfg.Effect = "dna"
	out := sceneList(a)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != len(scene.Default().IDs()) {
		t.Fatalf("got %d lines, want one per scene", len(lines))
	}
	marked := 0
	for _, l := range lines {
		if strings.HasPrefix(l, "> ") {
			marked++
			if !strings.Contains(l, "dna") {
				t.Errorf("wrong scene marked: %q", l)
			}
		}
	}
	if marked != 1 {
		t.Errorf("%d scenes marked, want 1", marked)
	}
}

func TestCycle(t *testing.T) {
	p := &player{cfg: config.Default()}
	ids := scene.Default().IDs()

	p.cfg.Effect = ids[len(ids)-1]
	if got := p.cycle(1); got != ids[0] {
		t.Errorf("cycle past the end = %q, want %q", got, ids[0])
	}

	p.cfg.Effect = "unknown"
	if got := p.cycle(-1); got != ids[0] {
		t.Errorf("cycle from unknown = %q, want %q", got, ids[0])
	}

	p.cfg.Effect = "cube"
	for range len(ids) * 2 {
		p.cfg.Effect = p.cycle(1)
		if p.cfg.Effect == "model" {
			t.Fatal("model offered without a model path")
		}
	}
}

func TestPlayerLoggerStaysOffTheTerminal(t *testing.T) {
	cfg := config.Default()
	stderr, err := logging.New("debug", logging.FormatJSON, "")
	if err != nil {
		t.Fatal(err)
	}

	if l := playerLogger(cfg, stderr); l.Core().Enabled(zap.ErrorLevel) {
		t.Error("player logs to stderr without a log file")
	}

	cfg.Log.File = filepath.Join(t.TempDir(), "neonwire.log")
	toFile, err := logging.New("debug", logging.FormatJSON, cfg.Log.File)
	if err != nil {
		t.Fatal(err)
	}
	if l := playerLogger(cfg, toFile); l != toFile {
		t.Error("configured file logger replaced")
	}
}
