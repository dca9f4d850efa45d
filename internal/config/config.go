// Package config provides YAML-based engine configuration loading and
// difficulty management for levels.
package config

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-engine/internal/core"
)

// EngineConfig contains all configuration for the engine and the bundled
// levels.
type EngineConfig struct {
	Engine     LoopConfig       `yaml:"engine"`
	Camera     CameraConfig     `yaml:"camera"`
	Keys       KeysConfig       `yaml:"keys"`
	Level      LevelConfig      `yaml:"level"`
	Flappy     FlappyConfig     `yaml:"flappy"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// LoopConfig defines frame timing.
type LoopConfig struct {
	TickRate int     `yaml:"tick_rate"` // Frames per second requested from the host
	MaxDelta float64 `yaml:"max_delta"` // Seconds; 0 disables the delta clamp
}

// MaxDeltaDuration returns MaxDelta as a duration.
func (l LoopConfig) MaxDeltaDuration() time.Duration {
	return time.Duration(l.MaxDelta * float64(time.Second))
}

// Interval returns the duration of one frame.
func (l LoopConfig) Interval() time.Duration {
	if l.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(l.TickRate)
}

// CameraConfig defines the world the camera is clamped to.
type CameraConfig struct {
	WorldWidth  float64 `yaml:"world_width"`
	WorldHeight float64 `yaml:"world_height"`
}

// KeysConfig binds actions to DOM-style key codes ("KeyP", "ArrowLeft",
// "Space").
type KeysConfig struct {
	Pause []string `yaml:"pause"`
	Reset []string `yaml:"reset"`
	Quit  []string `yaml:"quit"`
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Jump  []string `yaml:"jump"`
}

// KeyCodes converts configured key names to key codes, skipping blanks.
func KeyCodes(names []string) []core.KeyCode {
	codes := make([]core.KeyCode, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		codes = append(codes, core.KeyCode(n))
	}
	return codes
}

// LevelConfig defines gameplay parameters for the platformer level.
// Distances are in cells, speeds in cells per second.
type LevelConfig struct {
	TimeLimit         float64 `yaml:"time_limit"` // Seconds before the level restarts
	CollectiblesToWin int     `yaml:"collectibles_to_win"`
	Gravity           float64 `yaml:"gravity"`
	JumpImpulse       float64 `yaml:"jump_impulse"`
	MoveSpeed         float64 `yaml:"move_speed"`
	EnemySpeed        float64 `yaml:"enemy_speed"`
	Sound             bool    `yaml:"sound"` // Terminal bell on jump/collect
}

// FlappyConfig defines gameplay parameters for the flappy level.
type FlappyConfig struct {
	Gravity      float64 `yaml:"gravity"`
	FlapImpulse  float64 `yaml:"flap_impulse"`
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	PipeSpeed    float64 `yaml:"pipe_speed"`   // Before difficulty scaling
	PipeSpacing  float64 `yaml:"pipe_spacing"` // Cells between pipe fronts
	PipeWidth    float64 `yaml:"pipe_width"`
	MinGap       int     `yaml:"min_gap"`
	MaxGap       int     `yaml:"max_gap"`
	Margin       int     `yaml:"margin"` // Rows kept clear above and below a gap
}

// Validate reports the first setting the engine cannot run with.
func (c EngineConfig) Validate() error {
	switch {
	case c.Engine.TickRate <= 0:
		return fmt.Errorf("config: engine.tick_rate must be positive, got %d", c.Engine.TickRate)
	case c.Engine.MaxDelta < 0:
		return fmt.Errorf("config: engine.max_delta must not be negative, got %v", c.Engine.MaxDelta)
	case c.Level.TimeLimit <= 0:
		return fmt.Errorf("config: level.time_limit must be positive, got %v", c.Level.TimeLimit)
	case c.Level.CollectiblesToWin <= 0:
		return fmt.Errorf("config: level.collectibles_to_win must be positive, got %d", c.Level.CollectiblesToWin)
	case len(c.Keys.Pause) == 0:
		return fmt.Errorf("config: keys.pause needs at least one key")
	case c.Flappy.PipeWidth <= 0:
		return fmt.Errorf("config: flappy.pipe_width must be positive, got %v", c.Flappy.PipeWidth)
	case c.Flappy.PipeSpacing <= c.Flappy.PipeWidth:
		return fmt.Errorf("config: flappy.pipe_spacing must exceed pipe_width, got %v", c.Flappy.PipeSpacing)
	case c.Flappy.MinGap <= 0 || c.Flappy.MaxGap < c.Flappy.MinGap:
		return fmt.Errorf("config: flappy gap range %d..%d is invalid", c.Flappy.MinGap, c.Flappy.MaxGap)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a level.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "time", "collect", or "none"
	MaxAt float64 `yaml:"max_at"` // Seconds or collectibles at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to enemy speed at max difficulty
	TimeReduction   float64 `yaml:"time_reduction"`   // Seconds cut from the time limit at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name from the command line.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("config: unknown difficulty %q (easy, normal, hard, fixed)", s)
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
