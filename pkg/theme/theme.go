// Package theme holds the color palettes that scenes are drawn with.
package theme

import (
	"errors"
	"fmt"
	"image/color"
	"slices"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/taigrr/neonwire/pkg/render"
)

// ErrUnknownPalette is returned when a palette name is not registered.
var ErrUnknownPalette = errors.New("unknown palette")

// ErrUnknownMode is returned for modes other than dark and light.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects the base colors behind a palette.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// DefaultPalette is used when no palette is configured.
const DefaultPalette = "default"

type pair struct{ primary, accent string }

var palettes = map[string]pair{
	"default": {"#5E6AD2", "#A78BFA"},
	"neon":    {"#F700FF", "#00FFFF"},
	"plasma":  {"#9D00FF", "#FF0055"},
	"toxic":   {"#CCFF00", "#00FF66"},
	"glitch":  {"#00FFFF", "#FF0000"},
	"retro":   {"#FF9900", "#FF00CC"},
	"matrix":  {"#00FF41", "#008F11"},
	"sunset":  {"#FF2D55", "#FF9F0A"},
	"ocean":   {"#2AC9DE", "#5856D6"},
	"gold":    {"#FFD700", "#FFA500"},
}

type base struct{ bg, danger, success string }

var bases = map[Mode]base{
	Dark:  {"#0F0F11", "#FF453A", "#32D74B"},
	Light: {"#F2F2F7", "#FF3B30", "#34C759"},
}

// Theme is a resolved palette. It implements render.Palette.
type Theme struct {
	Name    string
	Mode    Mode
	Primary color.RGBA
	Accent  color.RGBA
	Danger  color.RGBA
	Success color.RGBA
	Bg      color.RGBA
}

var _ render.Palette = Theme{}

// Resolve builds the theme for a mode and palette name.
func Resolve(mode Mode, palette string) (Theme, error) {
	if palette == "" {
		palette = DefaultPalette
	}
	if mode == "" {
		mode = Dark
	}
	p, ok := palettes[palette]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownPalette, palette)
	}
	b, ok := bases[mode]
	if !ok {
		return Theme{}, fmt.Errorf("%w: %q", ErrUnknownMode, mode)
	}

	t := Theme{Name: palette, Mode: mode}
	for _, f := range []struct {
		dst *color.RGBA
		hex string
	}{
		{&t.Primary, p.primary},
		{&t.Accent, p.accent},
		{&t.Danger, b.danger},
		{&t.Success, b.success},
		{&t.Bg, b.bg},
	} {
		c, err := parseHex(f.hex)
		if err != nil {
			return Theme{}, err
		}
		*f.dst = c
	}
	return t, nil
}

// MustResolve is Resolve for built-in names; it panics on error.
func MustResolve(mode Mode, palette string) Theme {
	t, err := Resolve(mode, palette)
	if err != nil {
		panic(err)
	}
	return t
}

// Names returns the registered palette names in sorted order.
func Names() []string {
	names := make([]string, 0, len(palettes))
	for n := range palettes {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Next returns the palette after name in sorted order, wrapping around.
func Next(name string) string {
	names := Names()
	i := slices.Index(names, name)
	return names[(i+1)%len(names)]
}

// Color implements render.Palette.
func (t Theme) Color(role render.ColorRole) color.RGBA {
	switch role {
	case render.RoleAccent:
		return t.Accent
	case render.RoleDanger:
		return t.Danger
	case render.RoleSuccess:
		return t.Success
	default:
		return t.Primary
	}
}

// Background implements render.Palette.
func (t Theme) Background() color.RGBA {
	return t.Bg
}

// Blend mixes the theme's primary toward its accent by t in [0, 1] in Lab
// space, which keeps neon hues from going muddy halfway.
func (t Theme) Blend(f float64) color.RGBA {
	a, _ := colorful.MakeColor(t.Primary)
	b, _ := colorful.MakeColor(t.Accent)
	r, g, bl := a.BlendLab(b, f).Clamped().RGB255()
	return color.RGBA{r, g, bl, 255}
}

// Hex renders a color as #rrggbb.
func Hex(c color.RGBA) string {
	cf, _ := colorful.MakeColor(c)
	return cf.Hex()
}

func parseHex(s string) (color.RGBA, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("parse color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 255}, nil
}
