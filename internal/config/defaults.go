package config

import (
	_ "embed"
)

//go:embed defaults/engine.yaml
var defaultEngineYAML []byte

// DefaultEngineConfig returns the hardcoded configuration, used when even
// the embedded YAML cannot be parsed.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Engine: LoopConfig{
			TickRate: 60,
			MaxDelta: 0.25,
		},
		Camera: CameraConfig{
			WorldWidth:  200,
			WorldHeight: 40,
		},
		Keys: KeysConfig{
			Pause: []string{"KeyP"},
			Reset: []string{"KeyR"},
			Quit:  []string{"KeyQ"},
			Left:  []string{"ArrowLeft", "KeyA"},
			Right: []string{"ArrowRight", "KeyD"},
			Jump:  []string{"Space", "ArrowUp", "KeyW"},
		},
		Level: LevelConfig{
			TimeLimit:         60,
			CollectiblesToWin: 3,
			Gravity:           60,
			JumpImpulse:       -26,
			MoveSpeed:         24,
			EnemySpeed:        8,
			Sound:             true,
		},
		Flappy: FlappyConfig{
			Gravity:      60,
			FlapImpulse:  -18,
			MaxFallSpeed: 30,
			PipeSpeed:    20,
			PipeSpacing:  30,
			PipeWidth:    4,
			MinGap:       7,
			MaxGap:       10,
			Margin:       2,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "time",
				MaxAt: 60,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
				TimeReduction:   20,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file, which
// `tengine` writes out as a starting point for user configs.
func DefaultYAML() []byte {
	return defaultEngineYAML
}
