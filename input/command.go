package input

import "github.com/lixenwraith/vi-snake/core"

// Command is a semantic action decoded from a key press
type Command uint8

const (
	CommandNone Command = iota
	CommandQuit
	CommandUp
	CommandDown
	CommandLeft
	CommandRight
	CommandStop
	CommandRestart
)

// commandNames maps config action names to commands
// "none" unbinds a key when merged over the defaults
var commandNames = map[string]Command{
	"none":    CommandNone,
	"quit":    CommandQuit,
	"up":      CommandUp,
	"down":    CommandDown,
	"left":    CommandLeft,
	"right":   CommandRight,
	"stop":    CommandStop,
	"restart": CommandRestart,
}

// CommandByName resolves a config action name
func CommandByName(name string) (Command, bool) {
	c, ok := commandNames[name]
	return c, ok
}

// Direction returns the heading requested by a movement command
func (c Command) Direction() (core.Direction, bool) {
	switch c {
	case CommandUp:
		return core.DirUp, true
	case CommandDown:
		return core.DirDown, true
	case CommandLeft:
		return core.DirLeft, true
	case CommandRight:
		return core.DirRight, true
	case CommandStop:
		return core.DirStopped, true
	default:
		return core.DirStopped, false
	}
}

func (c Command) String() string {
	for name, cmd := range commandNames {
		if cmd == c {
			return name
		}
	}
	return "unknown"
}
