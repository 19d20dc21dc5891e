package input

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// ErrUnknownAction reports a binding to an action name that does not exist
var ErrUnknownAction = errors.New("unknown action")

// ErrUnknownKey reports a binding for a key name that cannot be resolved
var ErrUnknownKey = errors.New("unknown key")

// Rune aliases for keys that are awkward as bare config keys
var runeAliases = map[string]rune{
	"space": ' ',
}

// Bindings is the config file shape: section → key name → action name
type Bindings struct {
	Special map[string]string `yaml:"special"`
	Play    map[string]string `yaml:"play"`
	Menu    map[string]string `yaml:"menu"`
}

// ParseBindings converts config bindings into a sparse override KeyTable.
// Only sections present in b are populated.
func ParseBindings(b Bindings) (*KeyTable, error) {
	kt := &KeyTable{}
	var err error

	if b.Special != nil {
		if kt.Keys, err = parseSpecialSection("special", b.Special); err != nil {
			return nil, err
		}
	}
	if b.Play != nil {
		if kt.Play, err = parseRuneSection("play", b.Play); err != nil {
			return nil, err
		}
	}
	if b.Menu != nil {
		if kt.Menu, err = parseRuneSection("menu", b.Menu); err != nil {
			return nil, err
		}
	}
	return kt, nil
}

func parseRuneSection(section string, data map[string]string) (map[rune]Action, error) {
	result := make(map[rune]Action, len(data))
	for keyStr, actionName := range data {
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[%s] key %q: %w", section, keyStr, err)
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[%s] key %q: %w: %q", section, keyStr, ErrUnknownAction, actionName)
		}
		result[r] = a
	}
	return result, nil
}

func parseSpecialSection(section string, data map[string]string) (map[tcell.Key]Action, error) {
	result := make(map[tcell.Key]Action, len(data))
	for keyStr, actionName := range data {
		k, ok := keyByName(keyStr)
		if !ok {
			return nil, fmt.Errorf("[%s] %w: %q", section, ErrUnknownKey, keyStr)
		}
		a, ok := ActionByName(actionName)
		if !ok {
			return nil, fmt.Errorf("[%s] key %q: %w: %q", section, keyStr, ErrUnknownAction, actionName)
		}
		result[k] = a
	}
	return result, nil
}

// resolveRune accepts single characters and named aliases
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("%w: %q (expected single character or alias)", ErrUnknownKey, s)
}

// keyByName resolves tcell's display names ("Enter", "Up", "Ctrl-C"), case-insensitive
func keyByName(name string) (tcell.Key, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k, n := range tcell.KeyNames {
		if strings.ToLower(n) == name {
			return k, true
		}
	}
	return 0, false
}
