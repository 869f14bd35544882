package input

import (
	"errors"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"
)

// ErrSourceClosed is returned once the screen stops delivering events
var ErrSourceClosed = errors.New("input source closed")

// eventBufferSize bounds key presses queued between ticks
const eventBufferSize = 100

// TerminalSource delivers commands decoded from tcell screen events
// A pump goroutine forwards PollEvent results; Poll is a timeout-bounded receive
type TerminalSource struct {
	screen    tcell.Screen
	keys      *KeyMap
	events    chan tcell.Event
	done      chan struct{}
	closeOnce sync.Once
}

// NewTerminalSource starts pumping events from an initialized screen
func NewTerminalSource(screen tcell.Screen, keys *KeyMap) *TerminalSource {
	return newTerminalSource(screen, keys, eventBufferSize)
}

func newTerminalSource(screen tcell.Screen, keys *KeyMap, buffer int) *TerminalSource {
	if keys == nil {
		keys = DefaultKeyMap()
	}
	s := &TerminalSource{
		screen: screen,
		keys:   keys,
		events: make(chan tcell.Event, buffer),
		done:   make(chan struct{}),
	}
	go s.pump()
	return s
}

// Close stops forwarding events; call before finalizing the screen
// Safe to call more than once
func (s *TerminalSource) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// KeyMap returns the active bindings
func (s *TerminalSource) KeyMap() *KeyMap {
	return s.keys
}

func (s *TerminalSource) pump() {
	defer close(s.events)
	for {
		ev := s.screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}
		select {
		case <-s.done:
			return
		default:
		}
		select {
		case s.events <- ev:
		case <-s.done:
			return
		}
	}
}

// Poll waits up to timeout for one event
// Returns CommandNone with nil error when nothing arrives, or for events that carry no command
func (s *TerminalSource) Poll(timeout time.Duration) (Command, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ev, ok := <-s.events:
		if !ok {
			return CommandNone, ErrSourceClosed
		}
		return s.decode(ev)
	case <-timer.C:
		return CommandNone, nil
	}
}

func (s *TerminalSource) decode(ev tcell.Event) (Command, error) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return s.keys.Translate(ev.Key(), ev.Rune()), nil
	case *tcell.EventError:
		return CommandNone, ev
	case *tcell.EventResize:
		// Arena is fixed at startup, only repaint
		s.screen.Sync()
		return CommandNone, nil
	default:
		return CommandNone, nil
	}
}
