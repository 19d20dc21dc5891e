package input

import "strings"

// Action is the semantic result of one key press
type Action uint8

const (
	ActionNone Action = iota

	// Menus
	ActionConfirm // Enter: start from the menu
	ActionScores  // s on the menu
	ActionBack    // b on the score screen
	ActionQuit    // q, Esc, Ctrl+C
	ActionRestart // r

	// Play
	ActionToggleFog
	ActionShoot
	ActionDropTorch
	ActionMoveUp
	ActionMoveDown
	ActionMoveLeft
	ActionMoveRight

	actionCount
)

// actionNames are the canonical names used in key binding config
var actionNames = [actionCount]string{
	ActionNone:      "none",
	ActionConfirm:   "confirm",
	ActionScores:    "scores",
	ActionBack:      "back",
	ActionQuit:      "quit",
	ActionRestart:   "restart",
	ActionToggleFog: "toggle_fog",
	ActionShoot:     "shoot",
	ActionDropTorch: "drop_torch",
	ActionMoveUp:    "move_up",
	ActionMoveDown:  "move_down",
	ActionMoveLeft:  "move_left",
	ActionMoveRight: "move_right",
}

func (a Action) String() string {
	if a >= actionCount {
		return "unknown"
	}
	return actionNames[a]
}

// IsMove reports whether the action is one of the four movement directions
func (a Action) IsMove() bool {
	return a >= ActionMoveUp && a <= ActionMoveRight
}

// ActionByName resolves a config action name, case-insensitive
func ActionByName(name string) (Action, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for a, n := range actionNames {
		if n == name {
			return Action(a), true
		}
	}
	return ActionNone, false
}
