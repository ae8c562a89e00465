package tui

import (
	"errors"
	"math"
	"strconv"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/game"
)

// Glyphs used for the field.
const (
	PaddleRune = '█'
	BallRune   = '●'
	NetRune    = '┊'
)

// scoreRow is the field y coordinate of the score labels.
const scoreRow = 50

var errNoScreen = errors.New("tui: renderer has no screen")

// ScreenRenderer draws game intents into a cell buffer, scaling field
// coordinates onto however many cells the screen has.
type ScreenRenderer struct {
	screen *core.Screen
	fieldW float64
	fieldH float64
}

var _ game.Renderer = (*ScreenRenderer)(nil)

// NewScreenRenderer creates a renderer for a field of the given config.
func NewScreenRenderer(screen *core.Screen, cfg game.Config) *ScreenRenderer {
	return &ScreenRenderer{
		screen: screen,
		fieldW: cfg.FieldW,
		fieldH: cfg.FieldH,
	}
}

// Clear blanks the screen and draws the net.
func (r *ScreenRenderer) Clear() error {
	if r.screen == nil {
		return errNoScreen
	}
	r.screen.Clear()
	r.screen.DrawVLine(r.screen.Width()/2, 0, r.screen.Height(), NetRune, core.ColorGray)
	return nil
}

// DrawPaddle fills the paddle's cells.
func (r *ScreenRenderer) DrawPaddle(rect core.Rect) error {
	if r.screen == nil {
		return errNoScreen
	}
	r.screen.DrawRect(r.cells(rect), PaddleRune, core.ColorYellow)
	return nil
}

// DrawBall fills the ball's cells.
func (r *ScreenRenderer) DrawBall(rect core.Rect) error {
	if r.screen == nil {
		return errNoScreen
	}
	r.screen.DrawRect(r.cells(rect), BallRune, core.ColorRed)
	return nil
}

// DrawScore writes a side's score at a quarter of the field width.
func (r *ScreenRenderer) DrawScore(side game.Side, score int) error {
	if r.screen == nil {
		return errNoScreen
	}
	x := r.fieldW / 4
	if side == game.SideRight {
		x = 3 * r.fieldW / 4
	}
	col, row := r.point(mgl64.Vec2{x, scoreRow})
	r.screen.DrawTextCentered(col, row, strconv.Itoa(score), core.ColorBrightWhite)
	return nil
}

// DrawText writes a message centered on pos.
func (r *ScreenRenderer) DrawText(text string, pos mgl64.Vec2) error {
	if r.screen == nil {
		return errNoScreen
	}
	col, row := r.point(pos)
	r.screen.DrawTextCentered(col, row, text, core.ColorBrightWhite)
	return nil
}

// point maps a field position to the cell containing it, kept on screen.
func (r *ScreenRenderer) point(p mgl64.Vec2) (int, int) {
	w, h := r.screen.Width(), r.screen.Height()
	col := int(math.Floor(p.X() * float64(w) / r.fieldW))
	row := int(math.Floor(p.Y() * float64(h) / r.fieldH))
	return core.Clamp(col, 0, max(w-1, 0)), core.Clamp(row, 0, max(h-1, 0))
}

// cells maps a field rectangle to the cells it covers. Anything with a
// positive size covers at least one cell.
func (r *ScreenRenderer) cells(rect core.Rect) core.Area {
	sx := float64(r.screen.Width()) / r.fieldW
	sy := float64(r.screen.Height()) / r.fieldH

	x1 := int(math.Floor(rect.X1 * sx))
	y1 := int(math.Floor(rect.Y1 * sy))
	x2 := max(int(math.Ceil(rect.X2*sx)), x1+1)
	y2 := max(int(math.Ceil(rect.Y2*sy)), y1+1)

	return core.NewArea(x1, y1, x2-x1, y2-y1)
}
