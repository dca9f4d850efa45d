package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-engine/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
Quitting a level (Q while paused, or Ctrl+B) returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Q            - Quit

Examples:
  tengine menu
  tengine menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	s, err := newSetup(nil)
	if err != nil {
		return err
	}
	defer s.Close()
	s.useTerminalSize()

	res, err := s.resources(os.Stdout)
	if err != nil {
		return err
	}

	for {
		result, err := tui.RunMenu(s.runtime)
		if err != nil {
			return err
		}
		if result.Quit {
			return nil
		}
		s.runtime = result.Config

		level, _, err := s.level(result.LevelID, res)
		if err != nil {
			return err
		}
		back, err := tui.Run(level, tui.Options{
			Runtime:   s.runtime,
			Config:    s.cfg,
			Resources: res,
			Logger:    s.logger,
			Menu:      true,
		})
		if err != nil {
			return fmt.Errorf("running level: %w", err)
		}
		if !back {
			return nil
		}
	}
}
