// Package config provides YAML-based settings loading for the terminal
// front end: key bindings, audio and display options. Match physics is
// fixed in package game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrInvalidSettings is returned when a settings file is inconsistent.
var ErrInvalidSettings = errors.New("config: invalid settings")

// Settings contains all user-tunable options.
type Settings struct {
	Keys    KeySettings     `yaml:"keys"`
	Audio   AudioSettings   `yaml:"audio"`
	Display DisplaySettings `yaml:"display"`
}

// KeySettings lists the key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String() ("up", "ctrl+c", " ").
type KeySettings struct {
	LeftUp    []string `yaml:"left_up"`
	LeftDown  []string `yaml:"left_down"`
	RightUp   []string `yaml:"right_up"`
	RightDown []string `yaml:"right_down"`
	StartStop []string `yaml:"start_stop"`
	Help      []string `yaml:"help"`
	Quit      []string `yaml:"quit"`
}

// AudioSettings controls the terminal bell used for sound effects.
type AudioSettings struct {
	Bell bool `yaml:"bell"`
	Mute bool `yaml:"mute"`
}

// DisplaySettings controls terminal styling.
type DisplaySettings struct {
	Colors bool `yaml:"colors"`
}

// ByAction returns the keys bound to every action.
func (k KeySettings) ByAction() map[core.Action][]string {
	return map[core.Action][]string{
		core.ActionLeftUp:    k.LeftUp,
		core.ActionLeftDown:  k.LeftDown,
		core.ActionRightUp:   k.RightUp,
		core.ActionRightDown: k.RightDown,
		core.ActionStartStop: k.StartStop,
		core.ActionHelp:      k.Help,
		core.ActionQuit:      k.Quit,
	}
}

// Validate checks that every action is reachable and no key is bound twice.
func (s Settings) Validate() error {
	owner := make(map[string]core.Action)
	bindings := s.Keys.ByAction()

	for _, action := range core.Actions() {
		keys := bindings[action]
		if len(keys) == 0 {
			return fmt.Errorf("%w: no key bound to %s", ErrInvalidSettings, action)
		}
		for _, k := range keys {
			if k == "" {
				return fmt.Errorf("%w: empty key name for %s", ErrInvalidSettings, action)
			}
			if prev, taken := owner[k]; taken {
				return fmt.Errorf("%w: key %q bound to both %s and %s", ErrInvalidSettings, k, prev, action)
			}
			owner[k] = action
		}
	}
	return nil
}
