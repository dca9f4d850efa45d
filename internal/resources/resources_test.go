package resources

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
)

func TestDefaultAtlas(t *testing.T) {
	m, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error = %v", err)
	}

	expected := []string{"bird", "coin", "enemy", "player"}
	if got := m.Images(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Images() = %v, expected %v", got, expected)
	}

	player, err := m.Image("player")
	if err != nil {
		t.Fatalf("Image(player) error = %v", err)
	}
	if player.Width() != 3 || player.Height() != 3 {
		t.Errorf("player size = %dx%d, expected 3x3", player.Width(), player.Height())
	}
	if player.Color != core.ColorBrightCyan {
		t.Errorf("player color = %v, expected BrightCyan", player.Color)
	}

	for _, cue := range []string{"jump", "collect", "flap", "crash"} {
		if !m.HasSound(cue) {
			t.Errorf("HasSound(%q) = false, expected true", cue)
		}
	}
}

func TestMissingImage(t *testing.T) {
	m, err := NewManager(Atlas{})
	if err != nil {
		t.Fatal(err)
	}
	img, err := m.Image("ghost")
	if img != nil {
		t.Errorf("Image(ghost) = %v, expected nil", img)
	}
	if !errors.Is(err, ErrResourceUnavailable) {
		t.Errorf("Image(ghost) error = %v, expected ErrResourceUnavailable", err)
	}
}

func TestPlaySoundRespectsState(t *testing.T) {
	m, err := NewManager(Atlas{Sounds: map[string]SoundDef{"jump": {Bells: 1}, "collect": {Bells: 2}}})
	if err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	tests := []struct {
		name     string
		sound    string
		state    engine.State
		played   bool
		expected string
	}{
		{"paused is silent", "jump", engine.StatePaused, false, ""},
		{"playing rings", "jump", engine.StatePlaying, true, "\a"},
		{"two bells", "collect", engine.StatePlaying, true, "\a\a"},
		{"unknown cue", "boom", engine.StatePlaying, false, ""},
	}

	m.SetSounder(BellSounder{W: &out})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out.Reset()
			if got := m.PlaySound(tt.sound, tt.state); got != tt.played {
				t.Errorf("PlaySound() = %v, expected %v", got, tt.played)
			}
			if out.String() != tt.expected {
				t.Errorf("output = %q, expected %q", out.String(), tt.expected)
			}
		})
	}
}

func TestPlaySoundMuted(t *testing.T) {
	m, err := NewManager(Atlas{Sounds: map[string]SoundDef{"jump": {Bells: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	if m.PlaySound("jump", engine.StatePlaying) {
		t.Error("PlaySound() without sounder = true, expected false")
	}
}

type failingSounder struct{}

func (failingSounder) Play(string, SoundDef) error {
	return errors.New("device gone")
}

func TestPlaySoundFailure(t *testing.T) {
	m, err := NewManager(Atlas{Sounds: map[string]SoundDef{"jump": {Bells: 1}}})
	if err != nil {
		t.Fatal(err)
	}
	m.SetSounder(failingSounder{})
	if m.PlaySound("jump", engine.StatePlaying) {
		t.Error("PlaySound() with failing sounder = true, expected false")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "atlas.yaml")
	data := []byte("sprites:\n  box:\n    color: green\n    rows: [\"[]\"]\n")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	img, err := m.Image("box")
	if err != nil {
		t.Fatalf("Image(box) error = %v", err)
	}
	if img.Color != core.ColorGreen || img.Rows[0] != "[]" {
		t.Errorf("Image(box) = %+v", img)
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Load(missing) expected error")
	}

	badColor := filepath.Join(dir, "color.yaml")
	if err := os.WriteFile(badColor, []byte("sprites:\n  x:\n    color: plaid\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(badColor); err == nil {
		t.Error("Load(unknown color) expected error")
	}
}
