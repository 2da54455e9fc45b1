// neonwire - animated wireframe scenes in the terminal.
//
// Usage:
//
//	neonwire play [effect]      full-screen player
//	neonwire snapshot [effect]  render one frame to PNG
//	neonwire scenes             list the available effects
//
// Player controls:
//
//	N / right   - Next scene
//	P / left    - Previous scene
//	C           - Cycle palette
//	+/-         - Zoom
//	?           - Toggle HUD
//	Esc / Q     - Quit
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/taigrr/neonwire/internal/config"
	"github.com/taigrr/neonwire/internal/logging"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	log *zap.Logger
}

func main() {
	if err := fang.Execute(context.Background(), newRootCmd()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "neonwire",
		Short: "Animated wireframe scenes in the terminal",
		Long: "neonwire rotates, projects and depth-sorts small 3D wireframes\n" +
			"and draws them with anti-aliased lines, in the terminal or to PNG.",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "neonwire.yaml", "path to the YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override the configured log level")

	root.AddCommand(newPlayCmd(a), newSnapshotCmd(a), newScenesCmd(a))
	return root
}

func (a *app) load(*cobra.Command, []string) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	log, err := logging.New(cfg.Log.Level, cfg.Log.Format, cfg.Log.File)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.cfg, a.log = cfg, log
	return nil
}
