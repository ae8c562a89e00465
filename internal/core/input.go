package core

// Action represents a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionLeftUp           // W - left paddle up
	ActionLeftDown         // S - left paddle down
	ActionRightUp          // Up arrow - right paddle up
	ActionRightDown        // Down arrow - right paddle down
	ActionStartStop        // Space, Enter, mouse click - start or stop the match
	ActionHelp             // ? - toggle full help
	ActionQuit             // Q, Ctrl+C - exit
)

var actionNames = map[Action]string{
	ActionNone:      "none",
	ActionLeftUp:    "left_up",
	ActionLeftDown:  "left_down",
	ActionRightUp:   "right_up",
	ActionRightDown: "right_down",
	ActionStartStop: "start_stop",
	ActionHelp:      "help",
	ActionQuit:      "quit",
}

// Actions lists every bindable action in display order.
func Actions() []Action {
	return []Action{
		ActionLeftUp,
		ActionLeftDown,
		ActionRightUp,
		ActionRightDown,
		ActionStartStop,
		ActionHelp,
		ActionQuit,
	}
}

// String returns the settings-file name for the action.
func (a Action) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// ParseAction resolves a settings-file name to an Action.
func ParseAction(name string) (Action, bool) {
	for a, n := range actionNames {
		if n == name && a != ActionNone {
			return a, true
		}
	}
	return ActionNone, false
}
