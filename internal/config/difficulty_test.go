package config

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestDifficultyLevel(t *testing.T) {
	tests := []struct {
		name      string
		cfg       DifficultyConfig
		collected int
		elapsed   float64
		expected  float64
	}{
		{"disabled keeps initial", DifficultyConfig{Enabled: false, InitialLevel: 0.3}, 3, 100, 0.3},
		{"none keeps initial", DifficultyConfig{Enabled: true, InitialLevel: 0.3, Progression: ProgressionConfig{Type: "none"}}, 3, 100, 0.3},
		{"time start", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 60}}, 0, 0, 0},
		{"time half", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 60}}, 0, 30, 0.5},
		{"time past max", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 60}}, 0, 600, 1},
		{"time from initial", DifficultyConfig{Enabled: true, InitialLevel: 0.5, Progression: ProgressionConfig{Type: "time", MaxAt: 60}}, 0, 30, 0.75},
		{"collect", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "collect", MaxAt: 4}}, 1, 0, 0.25},
		{"zero max_at", DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "collect"}}, 1, 0, 1},
		{"unknown type", DifficultyConfig{Enabled: true, InitialLevel: 0.2, Progression: ProgressionConfig{Type: "score"}}, 1, 0, 0.2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := NewDifficultyManager(tt.cfg)
			if got := d.Level(tt.collected, tt.elapsed); !approx(got, tt.expected) {
				t.Errorf("Level() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDifficultySpeed(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	})

	if got := d.Speed(8, 0, 0); !approx(got, 8) {
		t.Errorf("Speed() at start = %v, expected 8", got)
	}
	if got := d.Speed(8, 0, 10); !approx(got, 16) {
		t.Errorf("Speed() at max = %v, expected 16", got)
	}
}

func TestDifficultyTimeLimit(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Scaling: ScalingConfig{TimeReduction: 20}})
	if got := d.TimeLimit(60); got != 60 {
		t.Errorf("TimeLimit() = %v, expected 60", got)
	}

	d.SetInitialLevel(0.5)
	if got := d.TimeLimit(60); got != 50 {
		t.Errorf("TimeLimit() = %v, expected 50", got)
	}

	d.SetInitialLevel(5) // clamped to 1
	if got := d.TimeLimit(25); got != 10 {
		t.Errorf("TimeLimit() = %v, expected floor of 10", got)
	}
}

func TestDifficultyToggle(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{Enabled: true, Progression: ProgressionConfig{Type: "time", MaxAt: 10}})
	if !d.IsEnabled() {
		t.Error("IsEnabled() = false, expected true")
	}
	d.SetEnabled(false)
	if d.IsEnabled() {
		t.Error("IsEnabled() = true after SetEnabled(false)")
	}
	if got := d.Level(0, 10); got != 0 {
		t.Errorf("Level() disabled = %v, expected 0", got)
	}
}
