package engine

import (
	"fmt"
	"time"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/input"
)

// InputSource delivers at most one command per call, waiting no longer than timeout
// An empty poll returns CommandNone and a nil error
type InputSource interface {
	Poll(timeout time.Duration) (input.Command, error)
}

// Renderer draws one frame per tick
type Renderer interface {
	RenderPlaying(gs *GameState)
	RenderGameOver(gs *GameState)
}

// SoundPlayer plays fire-and-forget sound cues
type SoundPlayer interface {
	Play(sound audio.SoundType)
}

// Game runs the fixed-rate loop: poll, update, render
type Game struct {
	State    *GameState
	input    InputSource
	renderer Renderer
	sounds   SoundPlayer
	clock    TimeProvider
	tick     time.Duration
}

// NewGame wires the loop collaborators; sounds and clock may be nil
func NewGame(state *GameState, src InputSource, renderer Renderer, sounds SoundPlayer, clock TimeProvider) *Game {
	if clock == nil {
		clock = NewMonotonicTimeProvider()
	}
	return &Game{
		State:    state,
		input:    src,
		renderer: renderer,
		sounds:   sounds,
		clock:    clock,
		tick:     constants.TickInterval,
	}
}

// Run loops until a quit command or an input error
// Input errors are fatal and returned wrapped for the caller to report
func (g *Game) Run() error {
	g.play(audio.SoundStart)

	for {
		start := g.clock.Now()

		cmd, err := g.input.Poll(g.tick)
		if err != nil {
			return fmt.Errorf("input source: %w", err)
		}

		if !g.Step(cmd) {
			return nil
		}

		// Keep the tick rate when a key cut the poll short
		if remaining := g.tick - g.clock.Now().Sub(start); remaining > 0 && cmd != input.CommandNone {
			g.clock.Sleep(remaining)
		}
	}
}

// Step runs one loop iteration for cmd, returns false on quit
func (g *Game) Step(cmd input.Command) bool {
	gs := g.State

	switch cmd {
	case input.CommandQuit:
		return false
	case input.CommandRestart:
		if gs.Restart() {
			g.play(audio.SoundStart)
		}
	default:
		if d, ok := cmd.Direction(); ok && !gs.IsGameOver() {
			gs.SetDirection(d)
		}
	}

	if gs.IsGameOver() {
		g.renderer.RenderGameOver(gs)
		return true
	}

	res := gs.Update()
	if res.Crashed {
		g.play(audio.SoundCrash)
	} else if res.Ate {
		g.play(audio.SoundEat)
	}
	g.renderer.RenderPlaying(gs)
	return true
}

func (g *Game) play(sound audio.SoundType) {
	if g.sounds != nil {
		g.sounds.Play(sound)
	}
}
