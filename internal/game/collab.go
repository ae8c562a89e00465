package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Renderer draws the match. Coordinates are field units; the
// implementation decides how they map to its surface.
type Renderer interface {
	Clear() error
	DrawPaddle(r core.Rect) error
	DrawBall(r core.Rect) error
	DrawScore(side Side, value int) error
	DrawText(message string, pos mgl64.Vec2) error
}

// Audio plays fire-and-forget sound effects.
type Audio interface {
	PlayScoreSound() error
	PlayGameOverSound() error
}

type nopRenderer struct{}

func (nopRenderer) Clear() error                      { return nil }
func (nopRenderer) DrawPaddle(core.Rect) error        { return nil }
func (nopRenderer) DrawBall(core.Rect) error          { return nil }
func (nopRenderer) DrawScore(Side, int) error         { return nil }
func (nopRenderer) DrawText(string, mgl64.Vec2) error { return nil }

type nopAudio struct{}

func (nopAudio) PlayScoreSound() error    { return nil }
func (nopAudio) PlayGameOverSound() error { return nil }
