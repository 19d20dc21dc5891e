package input

import (
	"maps"

	"github.com/gdamore/tcell/v2"
)

// Context selects which rune bindings apply
type Context uint8

const (
	ContextPlay Context = iota
	ContextMenu // start menu, score screen, game over
)

// KeyTable maps terminal keys to actions
type KeyTable struct {
	// Special keys (Enter, Esc, Ctrl+*, arrows), all contexts
	Keys map[tcell.Key]Action

	// Printable keys during play
	Play map[rune]Action

	// Printable keys on menu screens
	Menu map[rune]Action
}

// DefaultKeyTable returns the default bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		Keys: map[tcell.Key]Action{
			tcell.KeyEnter:  ActionConfirm,
			tcell.KeyEscape: ActionQuit,
			tcell.KeyCtrlC:  ActionQuit,
			tcell.KeyUp:     ActionMoveUp,
			tcell.KeyDown:   ActionMoveDown,
			tcell.KeyLeft:   ActionMoveLeft,
			tcell.KeyRight:  ActionMoveRight,
		},
		Play: map[rune]Action{
			'w': ActionMoveUp,
			'a': ActionMoveLeft,
			's': ActionMoveDown,
			'd': ActionMoveRight,
			' ': ActionShoot,
			'f': ActionDropTorch,
			'z': ActionToggleFog,
			'r': ActionRestart,
			'q': ActionQuit,
		},
		Menu: map[rune]Action{
			's': ActionScores,
			'b': ActionBack,
			'r': ActionRestart,
			'q': ActionQuit,
		},
	}
}

// Clone returns a deep copy
func (kt *KeyTable) Clone() *KeyTable {
	return &KeyTable{
		Keys: maps.Clone(kt.Keys),
		Play: maps.Clone(kt.Play),
		Menu: maps.Clone(kt.Menu),
	}
}

// Translate resolves a tcell key event in ctx
func (kt *KeyTable) Translate(ev *tcell.EventKey, ctx Context) Action {
	if ev == nil {
		return ActionNone
	}
	return kt.Lookup(ev.Key(), ev.Rune(), ctx)
}

// Lookup resolves a key and rune pair as reported by tcell. Rune lookups
// fall back to lower case so Shift does not unbind a key.
func (kt *KeyTable) Lookup(key tcell.Key, r rune, ctx Context) Action {
	if key != tcell.KeyRune {
		return kt.Keys[key]
	}
	runes := kt.Play
	if ctx == ContextMenu {
		runes = kt.Menu
	}
	if a, ok := runes[r]; ok {
		return a
	}
	if r >= 'A' && r <= 'Z' {
		return runes[r+('a'-'A')]
	}
	return ActionNone
}

// MergeKeyTable returns base with override entries applied.
// Override entries bound to ActionNone delete the key.
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Play, override.Play)
	mergeMap(result.Menu, override.Menu)
	return result
}

func mergeMap[K comparable](base, override map[K]Action) {
	for k, v := range override {
		if v == ActionNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
