package tui

import (
	"fmt"
	"io"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/game"
)

// BellAudio plays game sounds on the terminal bell.
type BellAudio struct {
	w       io.Writer
	enabled bool
}

var _ game.Audio = (*BellAudio)(nil)

// NewBellAudio creates a bell writing to w. It is silent when the bell
// is disabled, muted, or w is nil.
func NewBellAudio(w io.Writer, s config.AudioSettings) *BellAudio {
	return &BellAudio{
		w:       w,
		enabled: w != nil && s.Bell && !s.Mute,
	}
}

// PlayScoreSound rings the bell once.
func (b *BellAudio) PlayScoreSound() error {
	return b.ring(1)
}

// PlayGameOverSound rings the bell three times.
func (b *BellAudio) PlayGameOverSound() error {
	return b.ring(3)
}

func (b *BellAudio) ring(n int) error {
	if !b.enabled {
		return nil
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = '\a'
	}
	if _, err := b.w.Write(buf); err != nil {
		return fmt.Errorf("tui: bell: %w", err)
	}
	return nil
}
