package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-pong/internal/game"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		flagConfig = ""
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestKeysCommand(t *testing.T) {
	out, err := execute(t, "keys")
	require.NoError(t, err)

	assert.Contains(t, out, "left_up")
	assert.Contains(t, out, "space/enter")
	assert.Contains(t, out, "q/ctrl+c")
}

func TestKeysCommandSingleAction(t *testing.T) {
	out, err := execute(t, "keys", "right_down")
	require.NoError(t, err)

	assert.Contains(t, out, "right_down")
	assert.NotContains(t, out, "left_up")
}

func TestKeysCommandUnknownAction(t *testing.T) {
	_, err := execute(t, "keys", "jump")
	assert.ErrorContains(t, err, `unknown action "jump"`)
}

func TestPrintSummary(t *testing.T) {
	ledger, err := storage.OpenMemory()
	require.NoError(t, err)
	defer ledger.Close()

	var out bytes.Buffer
	printSummary(&out, ledger)
	assert.Empty(t, out.String(), "nothing to summarise")

	require.NoError(t, ledger.SaveMatchResult(localSession, game.MatchResult{
		Left: 5, Right: 2, Winner: game.SideLeft, Reason: game.EndCompleted, Duration: 3 * time.Second,
	}))
	require.NoError(t, ledger.SaveMatchResult(localSession, game.MatchResult{
		Left: 0, Right: 1, Reason: game.EndStopped, Duration: 500 * time.Millisecond,
	}))

	printSummary(&out, ledger)
	s := out.String()
	assert.Contains(t, s, "Session summary")
	assert.Contains(t, s, "5:2")
	assert.Contains(t, s, "0:1")
	assert.Contains(t, s, "Left won 1, right won 0, 1 stopped")
	assert.Less(t, bytes.Index(out.Bytes(), []byte("5:2")), bytes.Index(out.Bytes(), []byte("0:1")), "oldest first")
}
