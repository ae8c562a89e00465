// Package tui provides the Bubble Tea integration for the pong game.
// It handles the terminal UI loop, input mapping, drawing and the bell.
package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg asks the model to run the game tick with the given sequence.
type TickMsg struct {
	Seq uint64
}

// tickPump carries fired timers from the clock goroutine into the
// Bubble Tea event loop, so the game is only ever touched by Update.
type tickPump struct {
	ch     chan uint64
	ctx    context.Context
	cancel context.CancelFunc
	once   sync.Once
}

func newTickPump(ctx context.Context) *tickPump {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	return &tickPump{
		ch:     make(chan uint64, 4),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Dispatch is called by the scheduler when a tick fires.
func (p *tickPump) Dispatch(seq uint64) {
	select {
	case p.ch <- seq:
	case <-p.ctx.Done():
	}
}

// wait returns a command that delivers the next fired tick.
func (p *tickPump) wait() tea.Cmd {
	return func() tea.Msg {
		select {
		case seq := <-p.ch:
			return TickMsg{Seq: seq}
		case <-p.ctx.Done():
			return nil
		}
	}
}

// Close releases any goroutine blocked in Dispatch or wait.
func (p *tickPump) Close() {
	p.once.Do(p.cancel)
}
