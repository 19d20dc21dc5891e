package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/lixenwraith/minotaur/audio"
	"github.com/lixenwraith/minotaur/config"
	"github.com/lixenwraith/minotaur/event"
	"github.com/lixenwraith/minotaur/game"
)

var (
	seed  int64
	noFog bool
	mute  bool
)

func init() {
	rootCmd.Flags().Int64Var(&seed, "seed", 0, "random seed for every run (0 = time based)")
	rootCmd.Flags().BoolVar(&noFog, "no-fog", false, "start with fog of war disabled")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable sound")
}

// logSink writes level and run transitions to the debug log
var logSink = event.SinkFunc(func(ev event.GameEvent) {
	switch ev.Type {
	case event.EventTrackStart, event.EventLevelComplete, event.EventRunWon, event.EventRunLost:
		if ev.Payload != nil {
			log.Printf("%s %+v", ev.Type, ev.Payload)
		} else {
			log.Printf("%s", ev.Type)
		}
	}
})

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	scores, err := openLedger(ctx)
	if err != nil {
		return err
	}
	defer scores.Close()

	sound := audio.NewSoundManager()
	if mute {
		sound.SetMuted(true)
	} else if err := sound.Initialize(); err != nil {
		log.Printf("audio init failed, continuing without audio: %v", err)
	}
	defer sound.Cleanup()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.Printf("crash: %v\n%s", r, debug.Stack())
			fmt.Fprintf(os.Stderr, "\n\x1b[31mMINOTAUR CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	app, err := game.New(&game.Config{
		Screen: screen,
		Levels: cfg.Levels,
		Keys:   cfg.Keys,
		Ledger: scores,
		Sink:   event.Fanout{sound, logSink},
		Seed:   seed,
		NoFog:  noFog,
		Muted:  mute,
	})
	if err != nil {
		return err
	}
	return app.Run(ctx)
}
