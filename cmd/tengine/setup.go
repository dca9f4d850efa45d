package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/registry"
	"github.com/vovakirdan/tui-engine/internal/resources"
)

// setup is what every command needs before it can build an engine.
type setup struct {
	cfg     config.EngineConfig
	runtime core.RuntimeConfig
	logger  *log.Logger
	logFile io.Closer
}

// newSetup loads the config, applies the difficulty preset and global
// flags, and opens the log. logTo overrides the log file (serve logs to
// stderr).
func newSetup(logTo io.Writer) (*setup, error) {
	cfg, err := config.LoadEngine(flagConfig)
	if err != nil {
		return nil, err
	}
	if flagDifficulty != "" {
		preset, err := config.ParsePreset(flagDifficulty)
		if err != nil {
			return nil, err
		}
		config.ApplyPreset(&cfg, preset)
	}
	if flagFPS > 0 {
		cfg.Engine.TickRate = flagFPS
	}

	s := &setup{cfg: cfg}
	if logTo == nil {
		f, err := openLogFile(flagLog)
		if err != nil {
			return nil, err
		}
		logTo, s.logFile = f, f
	}
	s.logger = log.NewWithOptions(logTo, log.Options{
		ReportTimestamp: true,
		Prefix:          "tengine",
		Level:           logLevel(),
	})

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s.runtime = core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: cfg.Engine.TickRate,
		Seed:     seed,
	}
	return s, nil
}

func logLevel() log.Level {
	if flagDebug {
		return log.DebugLevel
	}
	return log.InfoLevel
}

// openLogFile opens path for appending, defaulting to ~/.tengine/tengine.log.
func openLogFile(path string) (*os.File, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".tengine", "tengine.log")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("cannot create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}

// useTerminalSize sizes the screen to the terminal, when there is one.
func (s *setup) useTerminalSize() {
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		s.runtime.ScreenW, s.runtime.ScreenH = w, h
	}
}

// resources loads the atlas. Sound cues ring the bell on bell when it is
// not nil.
func (s *setup) resources(bell io.Writer) (*resources.Manager, error) {
	res, err := resources.Load(flagAtlas)
	if err != nil {
		return nil, err
	}
	res.SetLogger(s.logger)
	if bell != nil {
		res.SetSounder(resources.BellSounder{W: bell})
	}
	return res, nil
}

// level creates a registered level for this setup.
func (s *setup) level(id string, res *resources.Manager) (registry.Level, registry.Env, error) {
	if !registry.Exists(id) {
		return nil, registry.Env{}, fmt.Errorf("unknown level %q (run 'tengine list' to see available levels)", id)
	}
	env := registry.Env{Runtime: s.runtime, Config: s.cfg, Resources: res}
	l, err := registry.Create(id, env)
	return l, env, err
}

func (s *setup) Close() {
	if s.logFile != nil {
		s.logFile.Close()
	}
}
