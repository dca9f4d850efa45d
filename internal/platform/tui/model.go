package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/core"
	"github.com/vovakirdan/tui-engine/internal/engine"
	"github.com/vovakirdan/tui-engine/internal/registry"
	"github.com/vovakirdan/tui-engine/internal/resources"
)

// footerHeight is the row under the game reserved for the help line.
const footerHeight = 1

// Options configures a terminal host.
type Options struct {
	Runtime   core.RuntimeConfig
	Config    config.EngineConfig
	Resources *resources.Manager
	Logger    *log.Logger

	// ScreenshotDir is where ctrl+s writes the screen. Empty means
	// ~/.tengine/screenshots.
	ScreenshotDir string

	// Menu enables ctrl+b and reports a stopped engine as BackToMenu
	// instead of IsQuitting. The program still gets tea.Quit; a session
	// model swallows it and shows its menu.
	Menu bool
}

// Env returns the level environment for these options.
func (o Options) Env() registry.Env {
	return registry.Env{Runtime: o.Runtime, Config: o.Config, Resources: o.Resources}
}

// Model is the Bubble Tea model running one engine.
type Model struct {
	id        uint64
	level     registry.Level
	eng       *engine.Engine
	sched     *engine.HostScheduler
	devices   *engine.Devices
	screen    *core.Screen
	keyMapper *KeyMapper
	held      *heldKeys
	keys      HostKeyMap
	help      help.Model
	opts      Options
	logger    *log.Logger
	origin    time.Time

	quitting   bool
	backToMenu bool
}

// NewModel creates a terminal host for level. The level should have been
// created with opts.Env().
func NewModel(level registry.Level, opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(os.Stderr)
	}
	w, h := opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-footerHeight, 0)

	screen := core.NewScreen(w, h)
	sched := &engine.HostScheduler{}
	devices := engine.NewDevices()
	eng := registry.NewEngine(level, screen, opts.Env(), logger,
		engine.WithScheduler(sched),
		engine.WithDevices(devices),
	)

	keys := DefaultHostKeyMap()
	keys.Back.SetEnabled(opts.Menu)

	return Model{
		id:        nextModelID(),
		level:     level,
		eng:       eng,
		sched:     sched,
		devices:   devices,
		screen:    screen,
		keyMapper: NewKeyMapper(),
		held:      newHeldKeys(),
		keys:      keys,
		help:      help.New(),
		opts:      opts,
		logger:    logger,
		origin:    time.Now(),
	}
}

// Init starts the engine and the tick loop.
func (m Model) Init() tea.Cmd {
	if err := m.eng.Start(); err != nil {
		m.logger.Error("start engine", "level", m.level.ID(), "err", err)
		return tea.Quit
	}
	return tickCmd(m.id, m.opts.Runtime.Interval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.ID != m.id {
			return m, nil
		}
		return m.handleTick(msg.Time)
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.eng.Quit()
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, m.keys.Back):
		m.eng.Quit()
		m.backToMenu = true
		return m, tea.Quit
	}

	if code, ok := m.keyMapper.MapKey(msg); ok && m.held.Press(code, time.Now()) {
		m.devices.KeyDown(code)
	}
	return m, nil
}

// handleResize processes window resize events. The world keeps running;
// only the screen and the camera viewport change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.opts.Runtime.ScreenW = msg.Width
	m.opts.Runtime.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.eng.Resize(msg.Width, max(msg.Height-footerHeight, 0))
	return m, nil
}

// handleTick releases keys that stopped repeating and runs a frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	for _, code := range m.held.Expire(now) {
		m.devices.KeyUp(code)
	}
	m.sched.Fire(now.Sub(m.origin))

	if m.eng.Stopped() {
		if m.opts.Menu {
			m.backToMenu = true
		} else {
			m.quitting = true
		}
		return m, tea.Quit
	}
	return m, tickCmd(m.id, m.opts.Runtime.Interval())
}

// saveScreenshot writes the current screen to a text file named after the
// level and a hash of the contents.
func (m *Model) saveScreenshot() (string, error) {
	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		dir = filepath.Join(home, ".tengine", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	text := m.screen.String()
	path := filepath.Join(dir, fmt.Sprintf("%s_%016x.txt", m.level.ID(), xxhash.Sum64String(text)))
	if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
		return "", err
	}
	return path, nil
}

// View renders the last drawn frame and the help line.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

// Engine returns the hosted engine.
func (m Model) Engine() *engine.Engine {
	return m.eng
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the engine stopped and the host should
// return to the menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run hosts level in the terminal until the engine stops or the user
// quits. It reports whether the user asked to go back to the menu.
func Run(level registry.Level, opts Options) (bool, error) {
	p := tea.NewProgram(
		NewModel(level, opts),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := final.(Model)
	return ok && m.BackToMenu(), nil
}
