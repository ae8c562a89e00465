package game

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Paddle is a fixed-size rectangle that only moves vertically and is
// always kept inside [0, fieldHeight].
type Paddle struct {
	rect core.Rect
	rest core.Rect
	maxY float64
}

// NewPaddle creates a paddle at its rest position for the given side.
func NewPaddle(side Side, cfg Config) Paddle {
	rest := cfg.paddleRest(side)
	return Paddle{rect: rest, rest: rest, maxY: cfg.FieldH}
}

// Rect returns the paddle's current bounds.
func (p *Paddle) Rect() core.Rect {
	return p.rect
}

// Move translates the paddle vertically by distance and clamps it to the field.
func (p *Paddle) Move(distance float64) {
	p.rect = core.ClampVertical(p.rect.Translate(mgl64.Vec2{0, distance}), 0, p.maxY)
}

// Reset returns the paddle to its rest position.
func (p *Paddle) Reset() {
	p.rect = p.rest
}
