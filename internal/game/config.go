package game

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Fixed match parameters. Physics is not user configurable.
const (
	DefaultFieldWidth   = 800
	DefaultFieldHeight  = 600
	DefaultPaddleWidth  = 10
	DefaultPaddleHeight = 100
	DefaultPaddleInset  = 50 // Distance from the side edge to the paddle
	DefaultBallSize     = 30
	DefaultPaddleStep   = 50
	DefaultBallSpeedX   = 4
	DefaultBallSpeedY   = 4
	DefaultWinScore     = 5
	DefaultNudge        = 0.5 // Vertical deflection added on paddle contact
	DefaultTickInterval = 20 * time.Millisecond
)

// ErrInvalidConfig is returned when a Config cannot describe a playable field.
var ErrInvalidConfig = errors.New("game: invalid configuration")

// Config holds the geometry and timing of a match.
type Config struct {
	FieldW, FieldH   float64
	PaddleW, PaddleH float64
	PaddleInset      float64
	BallSize         float64
	PaddleStep       float64
	InitialVelocity  mgl64.Vec2
	Nudge            float64
	WinScore         int
	TickInterval     time.Duration
}

// DefaultConfig returns the fixed match configuration.
func DefaultConfig() Config {
	return Config{
		FieldW:          DefaultFieldWidth,
		FieldH:          DefaultFieldHeight,
		PaddleW:         DefaultPaddleWidth,
		PaddleH:         DefaultPaddleHeight,
		PaddleInset:     DefaultPaddleInset,
		BallSize:        DefaultBallSize,
		PaddleStep:      DefaultPaddleStep,
		InitialVelocity: mgl64.Vec2{DefaultBallSpeedX, DefaultBallSpeedY},
		Nudge:           DefaultNudge,
		WinScore:        DefaultWinScore,
		TickInterval:    DefaultTickInterval,
	}
}

// Validate rejects configurations that would produce degenerate
// rectangles or an unplayable layout.
func (c Config) Validate() error {
	switch {
	case c.FieldW <= 0 || c.FieldH <= 0:
		return fmt.Errorf("%w: field must be positive, got %vx%v", ErrInvalidConfig, c.FieldW, c.FieldH)
	case c.PaddleW <= 0 || c.PaddleH <= 0:
		return fmt.Errorf("%w: paddle must be positive, got %vx%v", ErrInvalidConfig, c.PaddleW, c.PaddleH)
	case c.PaddleH > c.FieldH:
		return fmt.Errorf("%w: paddle height %v exceeds field height %v", ErrInvalidConfig, c.PaddleH, c.FieldH)
	case c.PaddleInset < 0 || 2*(c.PaddleInset+c.PaddleW) > c.FieldW:
		return fmt.Errorf("%w: paddles do not fit in field width %v", ErrInvalidConfig, c.FieldW)
	case c.BallSize <= 0 || c.BallSize >= c.FieldW || c.BallSize >= c.FieldH:
		return fmt.Errorf("%w: ball size %v does not fit the field", ErrInvalidConfig, c.BallSize)
	case c.PaddleStep <= 0:
		return fmt.Errorf("%w: paddle step must be positive", ErrInvalidConfig)
	case c.InitialVelocity.X() == 0 || c.InitialVelocity.Y() == 0:
		return fmt.Errorf("%w: initial velocity must be non-zero on both axes", ErrInvalidConfig)
	case c.Nudge < 0:
		return fmt.Errorf("%w: nudge must not be negative", ErrInvalidConfig)
	case c.WinScore <= 0:
		return fmt.Errorf("%w: win score must be positive", ErrInvalidConfig)
	case c.TickInterval <= 0:
		return fmt.Errorf("%w: tick interval must be positive", ErrInvalidConfig)
	}

	ball := c.ballRest()
	if !ball.Valid() {
		return fmt.Errorf("%w: degenerate serving position %+v", ErrInvalidConfig, ball)
	}
	for _, side := range []Side{SideLeft, SideRight} {
		paddle := c.paddleRest(side)
		if !paddle.Valid() {
			return fmt.Errorf("%w: degenerate %s paddle %+v", ErrInvalidConfig, side, paddle)
		}
		if core.Overlaps(ball, paddle) {
			return fmt.Errorf("%w: %s paddle overlaps the serving position", ErrInvalidConfig, side)
		}
	}
	return nil
}

// paddleRest returns the vertically centered rest position of a paddle.
func (c Config) paddleRest(side Side) core.Rect {
	x := c.PaddleInset
	if side == SideRight {
		x = c.FieldW - c.PaddleInset - c.PaddleW
	}
	return core.NewRect(x, (c.FieldH-c.PaddleH)/2, c.PaddleW, c.PaddleH)
}

// ballRest returns the centered serving position of the ball.
func (c Config) ballRest() core.Rect {
	return core.NewRect((c.FieldW-c.BallSize)/2, (c.FieldH-c.BallSize)/2, c.BallSize, c.BallSize)
}
