package game

import (
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// Ball is a square with a velocity applied once per tick.
type Ball struct {
	Rect     core.Rect
	Velocity mgl64.Vec2
}

// NewBall creates a motionless ball at the center of the field.
func NewBall(cfg Config) Ball {
	return Ball{Rect: cfg.ballRest()}
}

// Recenter moves the ball back to the serving position, keeping its velocity.
func (b *Ball) Recenter(cfg Config) {
	b.Rect = cfg.ballRest()
}

// Collision tags what happened to the ball during one step.
// Several tags may be set at once.
type Collision struct {
	Wall   bool // Reflected off the top or bottom wall
	Paddle Side // Paddle that was contacted, SideNone if none
	Scorer Side // Player who scored, SideNone if the ball is still in play
}

// Scored reports whether the step ended a rally.
func (c Collision) Scored() bool {
	return c.Scorer != SideNone
}

// StepResult is the outcome of Advance.
type StepResult struct {
	Ball      Ball
	Collision Collision
}

// Deflector returns the random vertical deflection applied on paddle contact.
type Deflector func() float64

// TwoPointDeflector picks -magnitude or +magnitude with equal probability.
func TwoPointDeflector(rng *rand.Rand, magnitude float64) Deflector {
	return func() float64 {
		if rng.Intn(2) == 0 {
			return -magnitude
		}
		return magnitude
	}
}

// Advance moves the ball one tick and resolves collisions against the
// walls, the paddles and the scoring edges. It does not modify its inputs.
//
// Walls reflect dy without correcting the position, so the ball may
// overshoot a wall by up to one step. Paddle contact requires the ball to
// be fully inside the paddle's vertical span; a corner clip is a miss.
func Advance(b Ball, left, right core.Rect, fieldW, fieldH float64, deflect Deflector) StepResult {
	r := b.Rect.Translate(b.Velocity)
	v := b.Velocity
	var c Collision

	if r.Y1 <= 0 || r.Y2 >= fieldH {
		v[1] = -v[1]
		c.Wall = true
	}

	// Left is checked first; only one paddle may deflect per tick.
	switch {
	case touchesLeft(r, left):
		c.Paddle = SideLeft
	case touchesRight(r, right):
		c.Paddle = SideRight
	}
	if c.Paddle != SideNone {
		v[0] = -v[0]
		if deflect != nil {
			v[1] += deflect()
		}
	}

	switch {
	case r.X1 <= 0:
		c.Scorer = SideRight
	case r.X2 >= fieldW:
		c.Scorer = SideLeft
	}

	return StepResult{Ball: Ball{Rect: r, Velocity: v}, Collision: c}
}

// touchesLeft reports contact between the ball's left edge and the
// left paddle's front edge.
func touchesLeft(ball, paddle core.Rect) bool {
	return ball.X1 <= paddle.X2 && withinSpan(ball, paddle)
}

// touchesRight reports contact between the ball's right edge and the
// right paddle's front edge.
func touchesRight(ball, paddle core.Rect) bool {
	return ball.X2 >= paddle.X1 && withinSpan(ball, paddle)
}

func withinSpan(ball, paddle core.Rect) bool {
	return ball.Y1 >= paddle.Y1 && ball.Y2 <= paddle.Y2
}
