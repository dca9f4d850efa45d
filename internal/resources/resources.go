// Package resources supplies named images and sound cues to gameplay
// components. Everything is looked up by name; a missing resource is
// reported with ErrResourceUnavailable and callers degrade (draw a
// fallback, stay silent) instead of failing the frame.
package resources

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
)

// ErrResourceUnavailable is returned for names the manager does not know.
var ErrResourceUnavailable = errors.New("resource unavailable")

//go:embed defaults/atlas.yaml
var defaultAtlasYAML []byte

// Atlas is the on-disk description of sprites and sounds.
type Atlas struct {
	Sprites map[string]SpriteDef `yaml:"sprites"`
	Sounds  map[string]SoundDef  `yaml:"sounds"`
}

// SpriteDef is one ASCII sprite.
type SpriteDef struct {
	Color string   `yaml:"color"`
	Rows  []string `yaml:"rows"`
}

// SoundDef is one sound cue.
type SoundDef struct {
	Bells int `yaml:"bells"`
}

// Sounder plays a cue on some output device.
type Sounder interface {
	Play(name string, def SoundDef) error
}

// BellSounder rings the terminal bell once per SoundDef.Bells.
type BellSounder struct {
	W io.Writer
}

// Play implements Sounder.
func (b BellSounder) Play(_ string, def SoundDef) error {
	if b.W == nil || def.Bells <= 0 {
		return nil
	}
	_, err := io.WriteString(b.W, strings.Repeat("\a", def.Bells))
	return err
}

// Manager holds loaded images and sound cues.
type Manager struct {
	images map[string]*core.Image
	sounds map[string]SoundDef

	mu      sync.Mutex
	sounder Sounder
	logger  *log.Logger
}

// Load reads an atlas file, or the embedded default atlas when path is
// empty.
func Load(path string) (*Manager, error) {
	data := defaultAtlasYAML
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("resources: read %s: %w", path, err)
		}
	}

	var atlas Atlas
	if err := yaml.Unmarshal(data, &atlas); err != nil {
		return nil, fmt.Errorf("resources: parse atlas: %w", err)
	}
	return NewManager(atlas)
}

// NewManager builds a manager from an atlas. Sounds are silent until
// SetSounder is called.
func NewManager(atlas Atlas) (*Manager, error) {
	m := &Manager{
		images: make(map[string]*core.Image, len(atlas.Sprites)),
		sounds: make(map[string]SoundDef, len(atlas.Sounds)),
		logger: log.New(io.Discard),
	}
	for name, def := range atlas.Sprites {
		color := core.ColorDefault
		if def.Color != "" {
			c, ok := core.ParseColor(def.Color)
			if !ok {
				return nil, fmt.Errorf("resources: sprite %q: unknown color %q", name, def.Color)
			}
			color = c
		}
		m.images[name] = &core.Image{Name: name, Rows: slices.Clone(def.Rows), Color: color}
	}
	for name, def := range atlas.Sounds {
		m.sounds[name] = def
	}
	return m, nil
}

// SetSounder sets where sound cues go. nil mutes.
func (m *Manager) SetSounder(s Sounder) {
	m.mu.Lock()
	m.sounder = s
	m.mu.Unlock()
}

// SetLogger sets the logger used for playback failures.
func (m *Manager) SetLogger(l *log.Logger) {
	if l != nil {
		m.logger = l
	}
}

// Image returns the named sprite.
func (m *Manager) Image(name string) (*core.Image, error) {
	img, ok := m.images[name]
	if !ok {
		return nil, fmt.Errorf("resources: image %q: %w", name, ErrResourceUnavailable)
	}
	return img, nil
}

// HasSound reports whether a cue is defined.
func (m *Manager) HasSound(name string) bool {
	_, ok := m.sounds[name]
	return ok
}

// PlaySound plays a cue if the game is playing. The engine state is passed
// in by the caller. It reports whether the cue was played; unknown cues,
// a paused game and a muted manager all stay silent.
func (m *Manager) PlaySound(name string, state engine.State) bool {
	if state != engine.StatePlaying {
		return false
	}
	def, ok := m.sounds[name]
	if !ok {
		m.logger.Debug("sound unavailable", "sound", name)
		return false
	}

	m.mu.Lock()
	s := m.sounder
	m.mu.Unlock()
	if s == nil {
		return false
	}
	if err := s.Play(name, def); err != nil {
		m.logger.Warn("play sound", "sound", name, "err", err)
		return false
	}
	return true
}

// Images returns the sprite names, sorted.
func (m *Manager) Images() []string {
	names := make([]string, 0, len(m.images))
	for name := range m.images {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
