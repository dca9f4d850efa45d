package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-engine/internal/platform/desktop"
	"github.com/vovakirdan/tui-engine/internal/platform/tui"
)

var flagDesktop bool

var playCmd = &cobra.Command{
	Use:   "play <level>",
	Short: "Play a level",
	Long: `Start playing the specified level.

Controls (default bindings, see --config):
  Left/Right, A/D  - Move
  Space/Up/W       - Jump / flap
  P                - Pause / resume
  R                - Restart (while paused)
  Q                - Quit (while paused)
  Ctrl+S           - Save a screenshot (terminal)
  Ctrl+C           - Quit immediately (terminal)

Difficulty options:
  easy   - More time, slower enemies
  normal - Default settings
  hard   - Faster enemies from the start
  fixed  - No progression, stays at config's initial level

Examples:
  tengine play platformer
  tengine play flappy --desktop
  tengine play platformer --difficulty hard
  tengine play platformer --config ./my-engine.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagDesktop, "desktop", false, "Open a desktop window instead of using the terminal")
}

func runPlay(_ *cobra.Command, args []string) error {
	s, err := newSetup(nil)
	if err != nil {
		return err
	}
	defer s.Close()

	if !flagDesktop {
		s.useTerminalSize()
	}
	res, err := s.resources(os.Stdout)
	if err != nil {
		return err
	}
	level, env, err := s.level(args[0], res)
	if err != nil {
		return err
	}
	s.logger.Info("playing", "level", level.ID(), "desktop", flagDesktop, "tick_rate", s.runtime.TickRate)

	if flagDesktop {
		if err := desktop.Run(level, env, s.logger); err != nil {
			return fmt.Errorf("running level: %w", err)
		}
		return nil
	}

	if _, err := tui.Run(level, tui.Options{
		Runtime:   s.runtime,
		Config:    s.cfg,
		Resources: res,
		Logger:    s.logger,
	}); err != nil {
		return fmt.Errorf("running level: %w", err)
	}
	return nil
}
