package game

import (
	"bytes"
	"math"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/core"
)

type loopFixture struct {
	loop    *Loop
	sched   *fakeScheduler
	render  *recordingRenderer
	audio   *countingAudio
	results []MatchResult
}

func newLoopFixture(t *testing.T) *loopFixture {
	t.Helper()
	f := &loopFixture{
		sched:  &fakeScheduler{},
		render: &recordingRenderer{scores: map[Side]int{}},
		audio:  &countingAudio{},
	}
	l, err := New(DefaultConfig(), Options{
		Renderer:   f.render,
		Audio:      f.audio,
		Scheduler:  f.sched,
		OnMatchEnd: func(r MatchResult) { f.results = append(f.results, r) },
		Seed:       42,
	})
	require.NoError(t, err)
	f.loop = l
	return f
}

// placeForLeftPoint puts the ball one step away from the right scoring edge,
// clear of the right paddle's vertical span.
func (f *loopFixture) placeForLeftPoint() {
	f.loop.ball.Rect = core.NewRect(767, 10, 30, 30)
	f.loop.ball.Velocity = mgl64.Vec2{4, 4}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero field", func(c *Config) { c.FieldW, c.FieldH = 0, 0 }},
		{"zero width field", func(c *Config) { c.FieldW = 0 }},
		{"paddle taller than field", func(c *Config) { c.PaddleH = 700 }},
		{"ball larger than field", func(c *Config) { c.BallSize = 600 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"zero win score", func(c *Config) { c.WinScore = 0 }},
		{"zero velocity", func(c *Config) { c.InitialVelocity = mgl64.Vec2{4, 0} }},
		{"paddle covers serve", func(c *Config) { c.PaddleInset = 380 }},
		{"NaN field height", func(c *Config) { c.FieldH = math.NaN() }},
		{"NaN paddle height", func(c *Config) { c.PaddleH = math.NaN() }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)

			l, err := New(cfg, Options{})

			assert.Nil(t, l)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestNewRequiresDispatchOnWallClock(t *testing.T) {
	l, err := New(DefaultConfig(), Options{})
	assert.Nil(t, l)
	assert.ErrorIs(t, err, ErrNoDispatch)

	l, err = New(DefaultConfig(), Options{Dispatch: func(uint64) {}})
	require.NoError(t, err)
	l.Close()
}

func TestDefaultConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestLoopStartsIdleAtRest(t *testing.T) {
	f := newLoopFixture(t)

	assert.Equal(t, PhaseIdle, f.loop.Phase())
	assert.Equal(t, core.NewRect(385, 285, 30, 30), f.loop.Ball().Rect)
	assert.Equal(t, mgl64.Vec2{}, f.loop.Ball().Velocity)
	assert.Zero(t, f.sched.count())
}

func TestLoopStartSchedulesFirstTick(t *testing.T) {
	f := newLoopFixture(t)

	f.loop.OnStartStopClick()

	assert.Equal(t, PhaseRunning, f.loop.Phase())
	assert.Equal(t, mgl64.Vec2{4, 4}, f.loop.Ball().Velocity)
	require.Equal(t, 1, f.sched.count())
	assert.Equal(t, DefaultTickInterval, f.sched.timers[0].delay)
	assert.True(t, f.loop.Pending())
}

func TestLoopSingleTick(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnStartStopClick()

	f.sched.fire()

	assert.Equal(t, core.NewRect(389, 289, 30, 30), f.loop.Ball().Rect)
	assert.Equal(t, 2, f.sched.count(), "exactly one further tick")
	assert.Equal(t, PhaseRunning, f.loop.Phase())
	assert.Equal(t, uint64(1), f.loop.Ticks())
	assert.Equal(t, f.loop.Ball().Rect, f.render.ball)
}

func TestLoopScoreRecentersBall(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnStartStopClick()
	f.loop.ball.Rect = core.NewRect(2, 100, 30, 30)
	f.loop.ball.Velocity = mgl64.Vec2{-4, 4}

	f.sched.fire()

	assert.Equal(t, 1, f.loop.Score(SideRight))
	assert.Equal(t, 0, f.loop.Score(SideLeft))
	assert.Equal(t, core.NewRect((800-30)/2, (600-30)/2, 30, 30), f.loop.Ball().Rect)
	assert.Equal(t, 1, f.audio.score)
	assert.Zero(t, f.audio.gameOver)
	assert.Equal(t, 1, f.render.scores[SideRight])
	assert.Equal(t, PhaseRunning, f.loop.Phase())
	assert.Equal(t, 2, f.sched.count())
}

func TestLoopFiveNilEndsMatchOnce(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnStartStopClick()

	for i := 0; i < DefaultWinScore; i++ {
		require.Equal(t, PhaseRunning, f.loop.Phase())
		f.placeForLeftPoint()
		f.sched.fire()
	}

	assert.Equal(t, PhaseGameOver, f.loop.Phase())
	assert.Equal(t, 5, f.loop.Score(SideLeft))
	assert.Equal(t, 0, f.loop.Score(SideRight))
	assert.Equal(t, SideLeft, f.loop.Winner())
	assert.Equal(t, DefaultWinScore, f.sched.count(), "no tick after game over")
	assert.False(t, f.loop.Pending())
	assert.Equal(t, DefaultWinScore, f.audio.score)
	assert.Equal(t, 1, f.audio.gameOver)
	assert.Contains(t, f.render.texts, GameOverText)

	require.Len(t, f.results, 1)
	assert.Equal(t, MatchResult{
		Left:     5,
		Winner:   SideLeft,
		Reason:   EndCompleted,
		Ticks:    5,
		Duration: 5 * DefaultTickInterval,
	}, f.results[0])

	// A late fire of the last timer must not revive the match.
	f.sched.fire()
	assert.Equal(t, PhaseGameOver, f.loop.Phase())
	assert.Equal(t, 1, f.audio.gameOver)
	assert.Len(t, f.results, 1)
}

func TestLoopStopResetsEverything(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnStartStopClick()
	f.loop.OnPaddleMove(SideLeft, DirUp)
	f.loop.ball.Rect = core.NewRect(2, 100, 30, 30)
	f.loop.ball.Velocity = mgl64.Vec2{-4, 4}
	f.sched.fire()
	require.Equal(t, 1, f.loop.Score(SideRight))

	f.loop.OnStartStopClick()

	assert.Equal(t, PhaseIdle, f.loop.Phase())
	assert.Equal(t, 0, f.loop.Score(SideRight))
	assert.Equal(t, DefaultConfig().paddleRest(SideLeft), f.loop.Paddle(SideLeft))
	assert.Equal(t, core.NewRect(385, 285, 30, 30), f.loop.Ball().Rect)
	assert.True(t, f.sched.timers[len(f.sched.timers)-1].stopped)
	assert.False(t, f.loop.Pending())

	require.Len(t, f.results, 1)
	assert.Equal(t, EndStopped, f.results[0].Reason)
	assert.Equal(t, 1, f.results[0].Right)
	assert.Equal(t, SideNone, f.results[0].Winner)
}

func TestLoopStaleTickAfterStopIsNoop(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnStartStopClick()
	count := f.sched.count()

	f.loop.OnStartStopClick()
	f.sched.fire()

	assert.Equal(t, PhaseIdle, f.loop.Phase())
	assert.Equal(t, core.NewRect(385, 285, 30, 30), f.loop.Ball().Rect)
	assert.Equal(t, count, f.sched.count(), "stale tick must not reschedule")
	assert.Zero(t, f.loop.Ticks())
}

func TestLoopStaleTickAfterRestartIsNoop(t *testing.T) {
	var seqs []uint64
	sched := &fakeScheduler{}
	l, err := New(DefaultConfig(), Options{
		Scheduler: sched,
		Dispatch:  func(seq uint64) { seqs = append(seqs, seq) },
	})
	require.NoError(t, err)

	l.OnStartStopClick()
	sched.fire()
	require.Len(t, seqs, 1)
	stale := seqs[0]

	// Stop then start again: the old sequence must never apply.
	l.OnStartStopClick()
	l.OnStartStopClick()
	require.Equal(t, PhaseRunning, l.Phase())

	assert.False(t, l.Tick(stale))
	assert.Zero(t, l.Ticks())

	sched.fire()
	require.Len(t, seqs, 2)
	assert.True(t, l.Tick(seqs[1]))
	assert.Equal(t, uint64(1), l.Ticks())
}

func TestLoopRestartAfterGameOver(t *testing.T) {
	f := newLoopFixture(t)
	f.loop.OnStartStopClick()
	for i := 0; i < DefaultWinScore; i++ {
		f.placeForLeftPoint()
		f.sched.fire()
	}
	require.Equal(t, PhaseGameOver, f.loop.Phase())

	f.loop.OnStartStopClick()

	assert.Equal(t, PhaseRunning, f.loop.Phase())
	assert.Equal(t, 0, f.loop.Score(SideLeft))
	assert.Equal(t, core.NewRect(385, 285, 30, 30), f.loop.Ball().Rect)
	assert.Equal(t, mgl64.Vec2{4, 4}, f.loop.Ball().Velocity)
	assert.True(t, f.loop.Pending())
	assert.NotContains(t, f.render.texts, GameOverText)
}

func TestLoopPaddleMovePolicy(t *testing.T) {
	f := newLoopFixture(t)

	assert.True(t, f.loop.OnPaddleMove(SideRight, DirDown), "idle accepts moves")
	assert.Equal(t, 300.0, f.loop.Paddle(SideRight).Y1)

	f.loop.OnStartStopClick()
	assert.True(t, f.loop.OnPaddleMove(SideLeft, DirUp), "running accepts moves")
	assert.Equal(t, 200.0, f.loop.Paddle(SideLeft).Y1)

	for i := 0; i < DefaultWinScore; i++ {
		f.placeForLeftPoint()
		f.sched.fire()
	}
	require.Equal(t, PhaseGameOver, f.loop.Phase())

	before := f.loop.Paddle(SideLeft)
	assert.False(t, f.loop.OnPaddleMove(SideLeft, DirDown), "game over ignores moves")
	assert.Equal(t, before, f.loop.Paddle(SideLeft))
	assert.False(t, f.loop.OnPaddleMove(SideNone, DirDown))
}

func TestLoopSurvivesBrokenCollaborators(t *testing.T) {
	var buf bytes.Buffer
	sched := &fakeScheduler{}
	l, err := New(DefaultConfig(), Options{
		Renderer:  brokenRenderer{},
		Audio:     brokenAudio{},
		Scheduler: sched,
		Logger:    log.NewWithOptions(&buf, log.Options{Level: log.WarnLevel}),
	})
	require.NoError(t, err)

	l.OnStartStopClick()
	for i := 0; i < DefaultWinScore; i++ {
		l.ball.Rect = core.NewRect(767, 10, 30, 30)
		sched.fire()
	}

	assert.Equal(t, PhaseGameOver, l.Phase())
	assert.Equal(t, DefaultWinScore, l.Score(SideLeft))
	assert.Contains(t, buf.String(), "collaborator failed")
	assert.Contains(t, buf.String(), "collaborator panicked")
}

func TestLoopRedrawEmitsFullFrame(t *testing.T) {
	f := newLoopFixture(t)
	clears := f.render.clears

	f.loop.Redraw()

	assert.Equal(t, clears+1, f.render.clears)
	assert.Len(t, f.render.paddles, 2)
	assert.Equal(t, map[Side]int{SideLeft: 0, SideRight: 0}, f.render.scores)
	assert.Empty(t, f.render.texts)
}
