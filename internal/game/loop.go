package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// ErrNoDispatch is returned when a Loop on the wall clock has no way to
// hand ticks back to its owning goroutine.
var ErrNoDispatch = errors.New("game: real-clock loop requires Options.Dispatch")

// GameOverText is displayed at the field center when a match ends.
const GameOverText = "Game Over!"

// EndReason describes why a match finished.
type EndReason string

const (
	EndCompleted EndReason = "completed" // A side reached the winning score
	EndStopped   EndReason = "stopped"   // A player stopped the running match
)

// MatchResult summarises a finished match.
type MatchResult struct {
	Left, Right int
	Winner      Side // SideNone for stopped matches
	Reason      EndReason
	Ticks       uint64
	Duration    time.Duration // Simulated time: Ticks * tick interval
}

// Options wires a Loop to its collaborators. Every field is optional.
type Options struct {
	Renderer  Renderer
	Audio     Audio
	Scheduler Scheduler

	// Dispatch hands a fired tick back to the goroutine that owns the
	// Loop, which must then call Tick(seq). When nil, the tick runs
	// directly on the scheduler's goroutine, which is only safe with a
	// scheduler that fires synchronously under the caller's control,
	// such as a mock clock. Dispatch is required when Scheduler is nil.
	Dispatch func(seq uint64)

	// OnMatchEnd is called once for every completed or stopped match.
	OnMatchEnd func(MatchResult)

	Logger *log.Logger
	Seed   int64
}

// Loop drives a single match. It owns the match state, the ball and both
// paddles, translates input into commands and emits render and audio
// intents. A Loop is not safe for concurrent use: all methods must be
// called from the goroutine that owns it.
type Loop struct {
	cfg   Config
	match MatchState
	ball  Ball
	left  Paddle
	right Paddle

	deflect    Deflector
	renderer   Renderer
	audio      Audio
	sched      Scheduler
	dispatch   func(seq uint64)
	onMatchEnd func(MatchResult)
	logger     *log.Logger

	pending Handle
	seq     uint64 // Sequence of the only tick allowed to run
	ticks   uint64 // Ticks simulated in the current match
}

// New creates an idle Loop. It fails with ErrInvalidConfig when cfg cannot
// describe a playable field, and with ErrNoDispatch when it would run on
// the wall clock without a Dispatch func.
func New(cfg Config, opts Options) (*Loop, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if opts.Scheduler == nil && opts.Dispatch == nil {
		return nil, ErrNoDispatch
	}

	l := &Loop{
		cfg:        cfg,
		match:      NewMatchState(cfg.WinScore),
		ball:       NewBall(cfg),
		left:       NewPaddle(SideLeft, cfg),
		right:      NewPaddle(SideRight, cfg),
		deflect:    TwoPointDeflector(rand.New(rand.NewSource(opts.Seed)), cfg.Nudge),
		renderer:   opts.Renderer,
		audio:      opts.Audio,
		sched:      opts.Scheduler,
		dispatch:   opts.Dispatch,
		onMatchEnd: opts.OnMatchEnd,
		logger:     opts.Logger,
	}

	if l.renderer == nil {
		l.renderer = nopRenderer{}
	}
	if l.audio == nil {
		l.audio = nopAudio{}
	}
	if l.sched == nil {
		l.sched = NewClockScheduler(nil)
	}
	if l.dispatch == nil {
		l.dispatch = func(seq uint64) { l.Tick(seq) }
	}
	if l.logger == nil {
		l.logger = log.New(io.Discard)
	}

	return l, nil
}

// Config returns the match configuration.
func (l *Loop) Config() Config {
	return l.cfg
}

// Phase returns the current phase.
func (l *Loop) Phase() Phase {
	return l.match.Phase()
}

// Score returns the score of the given side.
func (l *Loop) Score(side Side) int {
	return l.match.Score(side)
}

// Winner returns the winner of a finished match, SideNone otherwise.
func (l *Loop) Winner() Side {
	return l.match.Winner()
}

// Ball returns a copy of the ball.
func (l *Loop) Ball() Ball {
	return l.ball
}

// Paddle returns the bounds of the given side's paddle.
func (l *Loop) Paddle(side Side) core.Rect {
	if side == SideRight {
		return l.right.Rect()
	}
	return l.left.Rect()
}

// Ticks returns the number of ticks simulated in the current match.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Pending reports whether a tick is scheduled.
func (l *Loop) Pending() bool {
	return l.pending != nil
}

// OnStartStopClick starts an idle match, stops a running one, or starts a
// fresh match after game over.
func (l *Loop) OnStartStopClick() {
	switch l.match.Phase() {
	case PhaseIdle:
		l.start()
	case PhaseRunning:
		l.stop()
	case PhaseGameOver:
		l.resetLayout()
		l.start()
	}
}

// OnPaddleMove moves a paddle one step. Moves are ignored after game over.
// It reports whether the input was applied.
func (l *Loop) OnPaddleMove(side Side, dir Direction) bool {
	if l.match.Phase() == PhaseGameOver {
		l.logger.Debug("paddle move ignored", "side", side, "phase", l.match.Phase())
		return false
	}

	distance := float64(dir) * l.cfg.PaddleStep
	switch side {
	case SideLeft:
		l.left.Move(distance)
	case SideRight:
		l.right.Move(distance)
	default:
		return false
	}

	l.draw()
	return true
}

// Tick advances a running match by one step. A tick whose sequence is
// not the most recently scheduled one, or which arrives outside Running,
// is stale and does nothing. It reports whether the tick was applied.
func (l *Loop) Tick(seq uint64) bool {
	if l.match.Phase() != PhaseRunning || seq != l.seq || l.pending == nil {
		l.logger.Debug("stale tick dropped", "seq", seq, "current", l.seq, "phase", l.match.Phase())
		return false
	}
	l.pending = nil
	l.ticks++

	res := Advance(l.ball, l.left.Rect(), l.right.Rect(), l.cfg.FieldW, l.cfg.FieldH, l.deflect)
	l.ball = res.Ball

	if res.Collision.Scored() {
		outcome := l.match.ApplyScore(res.Collision.Scorer)
		l.ball.Recenter(l.cfg)
		l.logger.Info("point scored",
			"scorer", res.Collision.Scorer,
			"left", l.match.Score(SideLeft),
			"right", l.match.Score(SideRight),
		)
		l.call("score sound", l.audio.PlayScoreSound)

		if !outcome.Continue() {
			l.call("game over sound", l.audio.PlayGameOverSound)
			l.logger.Info("match over", "winner", outcome.Winner)
			l.draw()
			l.finish(EndCompleted)
			return true
		}
	}

	l.draw()
	l.schedule()
	return true
}

// Redraw emits a full set of render intents for the current state.
func (l *Loop) Redraw() {
	l.draw()
}

// Close cancels any pending tick. The Loop must not be used afterwards.
func (l *Loop) Close() {
	l.cancel()
}

func (l *Loop) start() {
	if !l.match.Start() {
		return
	}
	l.ticks = 0
	l.ball.Velocity = l.cfg.InitialVelocity
	l.logger.Debug("phase changed", "phase", l.match.Phase())
	l.draw()
	l.schedule()
}

func (l *Loop) stop() {
	l.cancel()
	if l.ticks > 0 {
		l.finish(EndStopped)
	}
	l.resetLayout()
	l.logger.Debug("phase changed", "phase", l.match.Phase())
	l.draw()
}

// resetLayout puts paddles, ball and scoreboard back to their initial state.
func (l *Loop) resetLayout() {
	l.cancel()
	l.left.Reset()
	l.right.Reset()
	l.ball = NewBall(l.cfg)
	l.match.Reset()
}

// schedule arms the next tick. Any previously issued sequence becomes stale.
func (l *Loop) schedule() {
	l.seq++
	seq := l.seq
	l.pending = l.sched.After(l.cfg.TickInterval, func() {
		l.dispatch(seq)
	})
}

// cancel stops the pending tick and invalidates any tick already in flight.
func (l *Loop) cancel() {
	if l.pending != nil {
		l.pending.Stop()
		l.pending = nil
	}
	l.seq++
}

func (l *Loop) finish(reason EndReason) {
	if l.onMatchEnd == nil {
		return
	}
	res := MatchResult{
		Left:     l.match.Score(SideLeft),
		Right:    l.match.Score(SideRight),
		Winner:   l.match.Winner(),
		Reason:   reason,
		Ticks:    l.ticks,
		Duration: time.Duration(l.ticks) * l.cfg.TickInterval,
	}
	l.call("match end hook", func() error {
		l.onMatchEnd(res)
		return nil
	})
}

func (l *Loop) draw() {
	r := l.renderer
	l.call("clear", r.Clear)
	l.call("draw paddle", func() error { return r.DrawPaddle(l.left.Rect()) })
	l.call("draw paddle", func() error { return r.DrawPaddle(l.right.Rect()) })
	l.call("draw ball", func() error { return r.DrawBall(l.ball.Rect) })
	l.call("draw score", func() error { return r.DrawScore(SideLeft, l.match.Score(SideLeft)) })
	l.call("draw score", func() error { return r.DrawScore(SideRight, l.match.Score(SideRight)) })

	if l.match.Phase() == PhaseGameOver {
		center := core.NewRect(0, 0, l.cfg.FieldW, l.cfg.FieldH).Center()
		l.call("draw text", func() error { return r.DrawText(GameOverText, center) })
	}
}

// call invokes a collaborator, logging and swallowing errors and panics
// so that a failing renderer or speaker never corrupts the match.
func (l *Loop) call(what string, fn func() error) {
	defer func() {
		if rec := recover(); rec != nil {
			l.logger.Warn("collaborator panicked", "call", what, "panic", fmt.Sprint(rec))
		}
	}()
	if err := fn(); err != nil {
		l.logger.Warn("collaborator failed", "call", what, "error", err)
	}
}
