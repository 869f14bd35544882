package input

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrUnknownAction = errors.New("unknown action")
	ErrUnknownKey    = errors.New("unknown key name")
	ErrDuplicateKey  = errors.New("key bound more than once")
)

// specialKeys are the non-printable key names accepted in config files
var specialKeys = map[string]tcell.Key{
	"up":     tcell.KeyUp,
	"down":   tcell.KeyDown,
	"left":   tcell.KeyLeft,
	"right":  tcell.KeyRight,
	"esc":    tcell.KeyEscape,
	"escape": tcell.KeyEscape,
	"enter":  tcell.KeyEnter,
	"tab":    tcell.KeyTab,
	"ctrl+c": tcell.KeyCtrlC,
	"ctrl+q": tcell.KeyCtrlQ,
}

// Rune aliases for keys that can't be bare single-char TOML keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// ParseBindings converts key name -> action name pairs into a sparse override KeyMap
// Returns error on unknown action names, invalid key names, or two names for one key
// (e.g. "esc" and "escape")
func ParseBindings(bindings map[string]string) (*KeyMap, error) {
	km := &KeyMap{
		Runes: make(map[rune]Command),
		Keys:  make(map[tcell.Key]Command),
	}

	names := make([]string, 0, len(bindings))
	for keyStr := range bindings {
		names = append(names, keyStr)
	}
	slices.Sort(names)

	runeFrom := make(map[rune]string)
	keyFrom := make(map[tcell.Key]string)

	for _, keyStr := range names {
		cmd, err := resolveAction(bindings[keyStr])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", keyStr, err)
		}

		if r, ok := resolveRune(keyStr); ok {
			if prev, dup := runeFrom[r]; dup {
				return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateKey, prev, keyStr)
			}
			runeFrom[r] = keyStr
			km.Runes[r] = cmd
			continue
		}

		k, ok := specialKeys[strings.ToLower(keyStr)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownKey, keyStr)
		}
		if prev, dup := keyFrom[k]; dup {
			return nil, fmt.Errorf("%w: %q and %q", ErrDuplicateKey, prev, keyStr)
		}
		keyFrom[k] = keyStr
		km.Keys[k] = cmd
	}

	return km, nil
}

// resolveRune converts a config key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}

	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// resolveAction converts an action name string to a Command
func resolveAction(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	cmd, ok := CommandByName(name)
	if !ok {
		return CommandNone, fmt.Errorf("%w: %q", ErrUnknownAction, name)
	}
	return cmd, nil
}
