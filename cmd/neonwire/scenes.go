package main

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/taigrr/neonwire/pkg/render"
	"github.com/taigrr/neonwire/pkg/scene"
)

func newScenesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "scenes",
		Short: "List the available effects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprint(cmd.OutOrStdout(), sceneList(a))
			return nil
		},
	}
}

// sceneList renders the registry as a two-column listing in the configured
// palette, marking the configured effect.
func sceneList(a *app) string {
	t := a.cfg.Theme()
	name := lipgloss.NewStyle().Foreground(t.Primary).Width(18)
	active := name.Foreground(t.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(t.Blend(0.5))

	var b strings.Builder
	for _, id := range scene.Default().IDs() {
		e, err := scene.Default().Lookup(id)
		if err != nil {
			continue
		}
		style, marker := name, "  "
		if id == a.cfg.Effect {
			style, marker = active, "> "
		}
		detail := fmt.Sprintf("size %g", e.Size)
		if e.Lens != (render.Lens{}) {
			detail += " (custom lens)"
		}
		b.WriteString(marker + style.Render(id) + dim.Render(detail) + "\n")
	}
	return b.String()
}
