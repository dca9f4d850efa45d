package registry

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-engine/internal/config"
	"github.com/vovakirdan/tui-engine/internal/engine"
)

// NewEngine wires a level into an engine drawing to surface, with the
// loop settings and key names from env.Config. Hosts append their own
// options (scheduler, devices, quit hook).
func NewEngine(l Level, surface engine.Surface, env Env, logger *log.Logger, opts ...engine.Option) *engine.Engine {
	cfg := env.Config
	base := []engine.Option{
		engine.WithLevel(l.Build),
		engine.WithMaxDelta(cfg.Engine.MaxDeltaDuration()),
		engine.WithPauseText(PauseText(cfg.Keys)...),
	}
	if logger != nil {
		base = append(base, engine.WithLogger(logger.WithPrefix(l.ID())))
	}
	return engine.New(surface, append(base, opts...)...)
}

// PauseText builds the pause overlay lines from the configured keys.
func PauseText(keys config.KeysConfig) []string {
	lines := engine.DefaultPauseText()
	if name := keyLabel(keys.Pause); name != "" {
		lines[1] = fmt.Sprintf("Press %s to Resume", name)
	}
	if name := keyLabel(keys.Reset); name != "" {
		lines[2] = fmt.Sprintf("Press %s to Restart", name)
	}
	if name := keyLabel(keys.Quit); name != "" {
		lines[3] = fmt.Sprintf("Press %s to Quit", name)
	}
	return lines
}

// keyLabel turns the first key name into what is printed on the key:
// "KeyP" reads "P", "Escape" stays "Escape".
func keyLabel(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return strings.TrimPrefix(names[0], "Key")
}
