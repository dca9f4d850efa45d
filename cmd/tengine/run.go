package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/registry"
)

var (
	flagFrames int
	flagWidth  int
	flagHeight int
)

var runCmd = &cobra.Command{
	Use:   "run <level>",
	Short: "Run a level headless",
	Long: `Run a level without a display for a number of frames, then print the
last frame and a hash of it. Frames run in real time at --fps. With
--frames 0 it runs until interrupted.

Examples:
  tengine run platformer --frames 120
  tengine run flappy --frames 300 --seed 42
  tengine run platformer --frames 600 --width 120 --height 30`,
	Args: cobra.ExactArgs(1),
	RunE: runHeadless,
}

func init() {
	runCmd.Flags().IntVar(&flagFrames, "frames", 60, "Number of frames to run (0 = until interrupted)")
	runCmd.Flags().IntVar(&flagWidth, "width", 80, "Screen width in cells")
	runCmd.Flags().IntVar(&flagHeight, "height", 24, "Screen height in cells")
}

// frameBudget quits the engine after a fixed number of frames.
type frameBudget struct {
	*engine.TickerScheduler
	eng   *engine.Engine
	limit uint64
}

func (b *frameBudget) RequestFrame(fn engine.FrameFunc) {
	b.TickerScheduler.RequestFrame(func(now time.Duration) {
		fn(now)
		if b.limit > 0 && b.eng.Frames() >= b.limit {
			b.eng.Quit()
		}
	})
}

func runHeadless(_ *cobra.Command, args []string) error {
	s, err := newSetup(nil)
	if err != nil {
		return err
	}
	defer s.Close()
	s.runtime.ScreenW, s.runtime.ScreenH = flagWidth, flagHeight

	res, err := s.resources(nil)
	if err != nil {
		return err
	}
	level, env, err := s.level(args[0], res)
	if err != nil {
		return err
	}

	screen := core.NewScreen(flagWidth, flagHeight)
	budget := &frameBudget{
		TickerScheduler: engine.NewTickerScheduler(s.runtime.Interval()),
		limit:           uint64(max(flagFrames, 0)),
	}
	budget.eng = registry.NewEngine(level, screen, env, s.logger, engine.WithScheduler(budget))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := budget.eng.Start(); err != nil {
		return err
	}
	if err := budget.TickerScheduler.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	budget.eng.Quit()

	out := screen.String()
	fmt.Println(out)
	fmt.Printf("frames=%d epoch=%d hash=%016x\n", budget.eng.Frames(), budget.eng.Epoch(), xxhash.Sum64String(out))
	return nil
}
