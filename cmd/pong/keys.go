package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
)

var keysCmd = &cobra.Command{
	Use:   "keys [action]",
	Short: "Show key bindings",
	Long: `Print the key bindings that 'play' and 'serve' will use, after
applying the settings file. Pass an action name (as used in the
settings file, e.g. left_up) to show only that action.

Examples:
  pong keys
  pong keys start_stop
  pong keys --config ./my-pong.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runKeys,
}

func runKeys(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	actions := core.Actions()
	if len(args) == 1 {
		a, ok := core.ParseAction(args[0])
		if !ok {
			return fmt.Errorf("unknown action %q", args[0])
		}
		actions = []core.Action{a}
	}

	w := cmd.OutOrStdout()
	byAction := settings.Keys.ByAction()

	// Calculate column widths
	maxLen := len("Action")
	for _, a := range actions {
		maxLen = max(maxLen, len(a.String()))
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "Action", "Keys")
	fmt.Fprintf(w, "  %-*s  %s\n", maxLen, "------", "----")
	for _, a := range actions {
		fmt.Fprintf(w, "  %-*s  %s\n", maxLen, a, tui.KeyLabel(byAction[a]))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "A left mouse click also starts or stops the match.")
	return nil
}
