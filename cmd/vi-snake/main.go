package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/core"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	boundaryFlag = flag.String("boundary", "", "Arena edges: wrap, solid (overrides config)")
	seedFlag     = flag.Int64("seed", 0, "Food placement seed, 0 = time seeded (overrides config)")
	muteFlag     = flag.Bool("mute", false, "Disable sound effects")
	debugFlag    = flag.Bool("debug", false, "Write logs/vi-snake.log and show the debug line")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

// resolveConfig layers flags over env and file settings
func resolveConfig() (*config.Config, error) {
	cfg, err := config.Load(*configFlag)
	if err != nil {
		return nil, err
	}

	if *boundaryFlag != "" {
		b, err := core.ParseBoundary(*boundaryFlag)
		if err != nil {
			return nil, fmt.Errorf("-boundary: %w", err)
		}
		cfg.Boundary = b
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	return cfg, nil
}

func run() error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic Recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	screen.HideCursor()
	screen.Clear()

	width, height := screen.Size()
	arena, err := core.NewArena(width, height, cfg.Boundary)
	if err != nil {
		return err
	}
	log.Printf("Arena %dx%d, boundary %v, seed %d", arena.Width, arena.Height, arena.Boundary, cfg.Seed)

	audioCfg := audio.LoadAudioConfig()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	sounds := audio.NewSoundManager(audioCfg)
	if err := sounds.Initialize(); err != nil {
		// Non-fatal, game can run without sound
		log.Printf("Audio initialization failed: %v", err)
	}
	defer sounds.Cleanup()

	state := engine.NewGameState(arena, engine.NewFoodSpawner(cfg.Seed))
	source := input.NewTerminalSource(screen, cfg.Keys)
	defer source.Close()
	renderer := render.NewTerminalRenderer(screen, source.KeyMap(), *debugFlag)

	game := engine.NewGame(state, source, renderer, sounds, nil)
	if err := game.Run(); err != nil {
		return err
	}

	log.Printf("Quit with score %d", state.Score)
	return nil
}
