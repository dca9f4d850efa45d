package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-engine/internal/core"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg EngineConfig
	if err := yaml.Unmarshal(DefaultYAML(), &cfg); err != nil {
		t.Fatalf("embedded default does not parse: %v", err)
	}
	if !reflect.DeepEqual(cfg, DefaultEngineConfig()) {
		t.Errorf("embedded default = %+v, expected %+v", cfg, DefaultEngineConfig())
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, expected nil", err)
	}
}

func TestLoadEngineCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "engine.yaml")
	data := []byte("engine:\n  tick_rate: 30\nlevel:\n  time_limit: 90\nkeys:\n  pause: [Escape]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("LoadEngine() error = %v", err)
	}
	if cfg.Engine.TickRate != 30 {
		t.Errorf("TickRate = %d, expected 30", cfg.Engine.TickRate)
	}
	if cfg.Level.TimeLimit != 90 {
		t.Errorf("TimeLimit = %v, expected 90", cfg.Level.TimeLimit)
	}
	if !reflect.DeepEqual(cfg.Keys.Pause, []string{"Escape"}) {
		t.Errorf("Keys.Pause = %v, expected [Escape]", cfg.Keys.Pause)
	}
	// Keys not in the file keep their defaults.
	if cfg.Level.CollectiblesToWin != 3 {
		t.Errorf("CollectiblesToWin = %d, expected 3", cfg.Level.CollectiblesToWin)
	}
	if cfg.Engine.MaxDelta != 0.25 {
		t.Errorf("MaxDelta = %v, expected 0.25", cfg.Engine.MaxDelta)
	}
}

func TestLoadEngineCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadEngine(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("LoadEngine(missing) expected error")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("engine: [not, a, map"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEngine(bad); err == nil {
		t.Error("LoadEngine(malformed) expected error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("engine:\n  tick_rate: 0\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadEngine(invalid); err == nil {
		t.Error("LoadEngine(tick_rate 0) expected error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*EngineConfig)
		valid  bool
	}{
		{"defaults", func(*EngineConfig) {}, true},
		{"zero tick rate", func(c *EngineConfig) { c.Engine.TickRate = 0 }, false},
		{"negative max delta", func(c *EngineConfig) { c.Engine.MaxDelta = -1 }, false},
		{"no clamp", func(c *EngineConfig) { c.Engine.MaxDelta = 0 }, true},
		{"zero time limit", func(c *EngineConfig) { c.Level.TimeLimit = 0 }, false},
		{"no collectibles", func(c *EngineConfig) { c.Level.CollectiblesToWin = 0 }, false},
		{"no pause key", func(c *EngineConfig) { c.Keys.Pause = nil }, false},
		{"zero pipe width", func(c *EngineConfig) { c.Flappy.PipeWidth = 0 }, false},
		{"pipes touching", func(c *EngineConfig) { c.Flappy.PipeSpacing = c.Flappy.PipeWidth }, false},
		{"inverted gap", func(c *EngineConfig) { c.Flappy.MinGap, c.Flappy.MaxGap = 9, 8 }, false},
		{"fixed gap", func(c *EngineConfig) { c.Flappy.MaxGap = c.Flappy.MinGap }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultEngineConfig()
			tt.modify(&cfg)
			err := cfg.Validate()
			if (err == nil) != tt.valid {
				t.Errorf("Validate() = %v, expected valid=%v", err, tt.valid)
			}
		})
	}
}

func TestLoopConfigDurations(t *testing.T) {
	l := LoopConfig{TickRate: 50, MaxDelta: 0.25}
	if got := l.Interval().Milliseconds(); got != 20 {
		t.Errorf("Interval() = %dms, expected 20ms", got)
	}
	if got := l.MaxDeltaDuration().Milliseconds(); got != 250 {
		t.Errorf("MaxDeltaDuration() = %dms, expected 250ms", got)
	}
	if got := (LoopConfig{}).Interval().Microseconds(); got != 16666 {
		t.Errorf("zero Interval() = %dus, expected 16666us", got)
	}
}

func TestKeyCodes(t *testing.T) {
	got := KeyCodes([]string{"KeyP", "", "ArrowLeft"})
	expected := []core.KeyCode{core.KeyP, core.KeyArrowLeft}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("KeyCodes() = %v, expected %v", got, expected)
	}
}

func TestParsePreset(t *testing.T) {
	for _, s := range []string{"easy", "normal", "hard", "fixed"} {
		p, err := ParsePreset(s)
		if err != nil || string(p) != s {
			t.Errorf("ParsePreset(%q) = %q, %v", s, p, err)
		}
	}
	if _, err := ParsePreset("nightmare"); err == nil {
		t.Error("ParsePreset(nightmare) expected error")
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := DefaultEngineConfig()
	ApplyPreset(&cfg, DifficultyHard)
	if !cfg.Difficulty.Enabled || cfg.Difficulty.InitialLevel != 0.7 {
		t.Errorf("hard preset difficulty = %+v", cfg.Difficulty)
	}
	if cfg.Level.EnemySpeed != 12 {
		t.Errorf("hard EnemySpeed = %v, expected 12", cfg.Level.EnemySpeed)
	}

	cfg = DefaultEngineConfig()
	ApplyPreset(&cfg, DifficultyEasy)
	if cfg.Level.TimeLimit != 90 {
		t.Errorf("easy TimeLimit = %v, expected 90", cfg.Level.TimeLimit)
	}
	if cfg.Flappy.MaxGap != 12 {
		t.Errorf("easy MaxGap = %d, expected 12", cfg.Flappy.MaxGap)
	}

	cfg = DefaultEngineConfig()
	ApplyPreset(&cfg, DifficultyFixed)
	if cfg.Difficulty.Enabled {
		t.Error("fixed preset should disable progression")
	}
}
