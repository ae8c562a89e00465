package game

import (
	"errors"
	"time"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// fakeScheduler records scheduled callbacks and fires them on demand.
type fakeScheduler struct {
	timers []*fakeTimer
}

type fakeTimer struct {
	delay   time.Duration
	fn      func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (s *fakeScheduler) After(d time.Duration, fn func()) Handle {
	t := &fakeTimer{delay: d, fn: fn}
	s.timers = append(s.timers, t)
	return t
}

// fire runs the most recently scheduled callback regardless of whether it
// was stopped, mimicking a timer that raced with Stop.
func (s *fakeScheduler) fire() {
	t := s.timers[len(s.timers)-1]
	t.fired = true
	t.fn()
}

func (s *fakeScheduler) count() int {
	return len(s.timers)
}

// recordingRenderer remembers the last frame drawn.
type recordingRenderer struct {
	clears  int
	paddles []core.Rect
	ball    core.Rect
	scores  map[Side]int
	texts   []string
}

func (r *recordingRenderer) Clear() error {
	r.clears++
	r.paddles = nil
	r.texts = nil
	r.scores = map[Side]int{}
	return nil
}

func (r *recordingRenderer) DrawPaddle(rect core.Rect) error {
	r.paddles = append(r.paddles, rect)
	return nil
}

func (r *recordingRenderer) DrawBall(rect core.Rect) error {
	r.ball = rect
	return nil
}

func (r *recordingRenderer) DrawScore(side Side, value int) error {
	r.scores[side] = value
	return nil
}

func (r *recordingRenderer) DrawText(message string, _ mgl64.Vec2) error {
	r.texts = append(r.texts, message)
	return nil
}

type countingAudio struct {
	score    int
	gameOver int
}

func (a *countingAudio) PlayScoreSound() error {
	a.score++
	return nil
}

func (a *countingAudio) PlayGameOverSound() error {
	a.gameOver++
	return nil
}

var errBroken = errors.New("device unplugged")

// brokenRenderer fails every call, panicking on DrawBall.
type brokenRenderer struct{}

func (brokenRenderer) Clear() error                      { return errBroken }
func (brokenRenderer) DrawPaddle(core.Rect) error        { return errBroken }
func (brokenRenderer) DrawBall(core.Rect) error          { panic("renderer crashed") }
func (brokenRenderer) DrawScore(Side, int) error         { return errBroken }
func (brokenRenderer) DrawText(string, mgl64.Vec2) error { return errBroken }

type brokenAudio struct{}

func (brokenAudio) PlayScoreSound() error    { return errBroken }
func (brokenAudio) PlayGameOverSound() error { panic("speaker crashed") }

func fixed(v float64) Deflector {
	return func() float64 { return v }
}
