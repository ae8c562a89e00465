// pong is a two-player paddle-and-ball game for the terminal.
//
// Usage:
//
//	pong play    - Play a hot-seat match in this terminal
//	pong serve   - Start SSH server; every session gets its own match
//	pong keys    - Show the effective key bindings
//
// Global flags:
//
//	--seed <value>       - Set RNG seed for reproducible paddle deflection
//	--config <path>      - Settings YAML (keys, audio, display)
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file (play logs nowhere by default)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "pong",
	Short: "Pong - two players, one keyboard, one terminal",
	Long: `Pong is a classic two-player paddle-and-ball game for the terminal.
The first side to score 5 points wins the match.

Available commands:
  play     - Play a match directly
  serve    - Start SSH server for remote play
  keys     - Show key bindings

Examples:
  pong play
  pong play --seed 42
  pong serve --ssh :2222
  pong keys --config ./my-pong.yaml`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to settings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(keysCmd)
}
