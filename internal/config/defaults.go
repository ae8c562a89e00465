package config

import (
	_ "embed"
)

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultSettings returns the built-in settings.
func DefaultSettings() Settings {
	return Settings{
		Keys: KeySettings{
			LeftUp:    []string{"w"},
			LeftDown:  []string{"s"},
			RightUp:   []string{"up"},
			RightDown: []string{"down"},
			StartStop: []string{" ", "enter"},
			Help:      []string{"?"},
			Quit:      []string{"q", "ctrl+c"},
		},
		Audio: AudioSettings{
			Bell: true,
		},
		Display: DisplaySettings{
			Colors: true,
		},
	}
}

// DefaultYAML returns the embedded default settings file.
func DefaultYAML() []byte {
	return defaultPongYAML
}
