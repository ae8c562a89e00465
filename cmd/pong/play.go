package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

// localSession names the ledger session of a terminal run.
const localSession = "local"

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a match",
	Long: `Start a hot-seat match: both players share this keyboard.

Controls (defaults, see 'pong keys'):
  W/S          - Left paddle up/down
  Up/Down      - Right paddle up/down
  Space/Enter  - Start or stop the match (mouse click works too)
  ?            - Show all keys
  Q/Ctrl+C     - Quit

Results are kept for this run only and summarised on exit.

Examples:
  pong play
  pong play --seed 42
  pong play --log-file pong.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	// The alt screen owns stdout, so logs go nowhere unless --log-file is set.
	logger, closeLog, err := newLogger("pong", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	runtime := core.DefaultConfig()
	runtime.Seed = flagSeed
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	ledger, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("could not open session ledger", "error", err)
		// Continue without a ledger - game still works
		ledger = nil
	}

	runErr := tui.Run(tui.Options{
		Settings: settings,
		Ledger:   ledger,
		Session:  localSession,
		Bell:     os.Stderr,
		Logger:   logger,
		Runtime:  runtime,
	})

	if ledger != nil {
		printSummary(cmd.OutOrStdout(), ledger)
		ledger.Close()
	}

	if runErr != nil {
		return fmt.Errorf("error running game: %w", runErr)
	}
	return nil
}

// printSummary writes the matches of this run.
func printSummary(w io.Writer, ledger *storage.Ledger) {
	tally, err := ledger.Tally(localSession)
	if err != nil || tally.Matches == 0 {
		return
	}
	recs, err := ledger.Recent(localSession, tally.Matches)
	if err != nil {
		return
	}

	fmt.Fprintln(w, "Session summary")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "  %-3s  %-7s  %-7s  %-10s  %s\n", "#", "Score", "Winner", "Result", "Duration")
	fmt.Fprintf(w, "  %-3s  %-7s  %-7s  %-10s  %s\n", "-", "-----", "------", "------", "--------")

	// Oldest first reads like a match log.
	for i := len(recs) - 1; i >= 0; i-- {
		r := recs[i]
		winner := r.Winner
		if winner == "" {
			winner = "-"
		}
		score := fmt.Sprintf("%d:%d", r.Left, r.Right)
		fmt.Fprintf(w, "  %-3d  %-7s  %-7s  %-10s  %s\n", len(recs)-i, score, winner, r.EndReason, r.Duration)
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Left won %d, right won %d, %d stopped\n", tally.LeftWins, tally.RightWins, tally.Stopped)
}
