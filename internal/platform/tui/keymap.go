package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
)

// KeyMap defines the key bindings for a match.
type KeyMap struct {
	LeftUp    key.Binding
	LeftDown  key.Binding
	RightUp   key.Binding
	RightDown key.Binding
	StartStop key.Binding
	Help      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.StartStop, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LeftUp, k.LeftDown},
		{k.RightUp, k.RightDown},
		{k.StartStop, k.Help, k.Quit},
	}
}

// NewKeyMap builds bindings from the configured key names.
func NewKeyMap(s config.KeySettings) KeyMap {
	return KeyMap{
		LeftUp:    binding(s.LeftUp, "left up"),
		LeftDown:  binding(s.LeftDown, "left down"),
		RightUp:   binding(s.RightUp, "right up"),
		RightDown: binding(s.RightDown, "right down"),
		StartStop: binding(s.StartStop, "start/stop"),
		Help:      binding(s.Help, "more keys"),
		Quit:      binding(s.Quit, "quit"),
	}
}

// DefaultKeyMap returns the built-in bindings.
func DefaultKeyMap() KeyMap {
	return NewKeyMap(config.DefaultSettings().Keys)
}

// Action translates a key message to a game action.
func (k KeyMap) Action(msg tea.KeyMsg) core.Action {
	for _, a := range core.Actions() {
		if key.Matches(msg, k.binding(a)) {
			return a
		}
	}
	return core.ActionNone
}

func (k KeyMap) binding(a core.Action) key.Binding {
	switch a {
	case core.ActionLeftUp:
		return k.LeftUp
	case core.ActionLeftDown:
		return k.LeftDown
	case core.ActionRightUp:
		return k.RightUp
	case core.ActionRightDown:
		return k.RightDown
	case core.ActionStartStop:
		return k.StartStop
	case core.ActionHelp:
		return k.Help
	case core.ActionQuit:
		return k.Quit
	}
	return key.NewBinding(key.WithDisabled())
}

func binding(keys []string, desc string) key.Binding {
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(KeyLabel(keys), desc),
	)
}

// KeyLabel joins key names for display, e.g. "space/enter".
func KeyLabel(keys []string) string {
	labels := make([]string, len(keys))
	for i, k := range keys {
		switch k {
		case " ":
			labels[i] = "space"
		case "up":
			labels[i] = "↑"
		case "down":
			labels[i] = "↓"
		default:
			labels[i] = k
		}
	}
	return strings.Join(labels, "/")
}
