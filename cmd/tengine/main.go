// tengine runs component-based 2D levels in the terminal, in a desktop
// window, headless, or over SSH.
//
// Usage:
//
//	tengine list                 - List available levels
//	tengine play <level>         - Play a level
//	tengine menu                 - Pick levels interactively
//	tengine run <level>          - Run a level headless and print the last frame
//	tengine serve                - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: from config, 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Engine config YAML
//	--difficulty <preset> - easy, normal, hard, fixed
//	--log <path>          - Log file (default: ~/.tengine/tengine.log)
//	--debug               - Log at debug level
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import levels to register them
	_ "github.com/vovakirdan/tui-engine/internal/games/flappy"
	_ "github.com/vovakirdan/tui-engine/internal/games/platformer"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagAtlas      string
	flagLog        string
	flagDebug      bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tengine",
	Short: "tengine - a component-based 2D engine for the terminal",
	Long: `tengine runs levels built from entities and components. The same
level plays in a terminal, in a desktop window, headless or over SSH.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker menu
  run      - Run a level headless for a number of frames
  serve    - Start SSH server for remote play

Examples:
  tengine list
  tengine play platformer
  tengine play platformer --desktop
  tengine run platformer --frames 600
  tengine serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config value)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to engine config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagAtlas, "atlas", "", "Path to sprite atlas YAML (default: built-in)")
	rootCmd.PersistentFlags().StringVar(&flagLog, "log", "", "Log file (default: ~/.tengine/tengine.log)")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(serveCmd)
}
