package input

import (
	"slices"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// KeyMap resolves terminal key presses to commands
// Printable keys are matched by rune, everything else by tcell.Key
type KeyMap struct {
	Runes map[rune]Command
	Keys  map[tcell.Key]Command
}

// DefaultKeyMap returns the stock bindings: wasd and arrows steer, m stops, n restarts, q quits
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Runes: map[rune]Command{
			'q': CommandQuit,
			'w': CommandUp,
			'a': CommandLeft,
			's': CommandDown,
			'd': CommandRight,
			'm': CommandStop,
			'n': CommandRestart,
		},
		Keys: map[tcell.Key]Command{
			tcell.KeyCtrlC: CommandQuit,
			tcell.KeyUp:    CommandUp,
			tcell.KeyDown:  CommandDown,
			tcell.KeyLeft:  CommandLeft,
			tcell.KeyRight: CommandRight,
		},
	}
}

// Translate returns the command bound to a key, CommandNone when unbound
func (km *KeyMap) Translate(key tcell.Key, r rune) Command {
	if key == tcell.KeyRune {
		return km.Runes[r]
	}
	return km.Keys[key]
}

// Clone returns a deep copy
func (km *KeyMap) Clone() *KeyMap {
	out := &KeyMap{
		Runes: make(map[rune]Command, len(km.Runes)),
		Keys:  make(map[tcell.Key]Command, len(km.Keys)),
	}
	for r, c := range km.Runes {
		out.Runes[r] = c
	}
	for k, c := range km.Keys {
		out.Keys[k] = c
	}
	return out
}

// Merge returns a copy of km with override bindings applied
// Bindings to CommandNone remove the key
func (km *KeyMap) Merge(override *KeyMap) *KeyMap {
	result := km.Clone()
	if override == nil {
		return result
	}
	for r, c := range override.Runes {
		if c == CommandNone {
			delete(result.Runes, r)
		} else {
			result.Runes[r] = c
		}
	}
	for k, c := range override.Keys {
		if c == CommandNone {
			delete(result.Keys, k)
		} else {
			result.Keys[k] = c
		}
	}
	return result
}

// Label returns a short display name for the key bound to cmd
// Rune bindings win over special keys; ties resolve to the lowest rune for stable output
func (km *KeyMap) Label(cmd Command) string {
	var runes []rune
	for r, c := range km.Runes {
		if c == cmd {
			runes = append(runes, r)
		}
	}
	if len(runes) > 0 {
		slices.Sort(runes)
		if name, ok := runeLabels[runes[0]]; ok {
			return name
		}
		return string(runes[0])
	}

	var keys []tcell.Key
	for k, c := range km.Keys {
		if c == cmd {
			keys = append(keys, k)
		}
	}
	if len(keys) > 0 {
		slices.Sort(keys)
		if name, ok := tcell.KeyNames[keys[0]]; ok {
			return name
		}
	}
	return "?"
}

// MoveLabel joins the up, left, down, right labels in that order ("wasd" by default)
func (km *KeyMap) MoveLabel() string {
	labels := []string{
		km.Label(CommandUp),
		km.Label(CommandLeft),
		km.Label(CommandDown),
		km.Label(CommandRight),
	}
	for _, l := range labels {
		if len([]rune(l)) != 1 {
			return strings.Join(labels, "/")
		}
	}
	return strings.Join(labels, "")
}

var runeLabels = map[rune]string{
	' ': "space",
}
