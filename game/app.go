// Package game is the terminal shell around a run: it owns the screen loop,
// translates keys into actions and switches between the menu, score,
// playing and game-over screens.
package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/minotaur/clock"
	"github.com/lixenwraith/minotaur/event"
	"github.com/lixenwraith/minotaur/input"
	"github.com/lixenwraith/minotaur/ledger"
	"github.com/lixenwraith/minotaur/level"
	"github.com/lixenwraith/minotaur/parameter"
	"github.com/lixenwraith/minotaur/render"
	"github.com/lixenwraith/minotaur/session"
	"github.com/lixenwraith/minotaur/visibility"
)

// ErrInvalidConfig reports an App built without its dependencies
var ErrInvalidConfig = errors.New("game: invalid config")

// Screen is the shell's current view
type Screen int

const (
	ScreenMenu Screen = iota
	ScreenScores
	ScreenPlaying
	ScreenGameOver
)

func (s Screen) String() string {
	switch s {
	case ScreenMenu:
		return "menu"
	case ScreenScores:
		return "scores"
	case ScreenPlaying:
		return "playing"
	case ScreenGameOver:
		return "game over"
	}
	return "unknown"
}

// Loss and win messages
const (
	MessageChaserLoss    = "The minotaur caught you!"
	MessagePatrollerLoss = "A patrolling enemy caught you!"
	messageWin           = "You escaped the dungeon in %.2f seconds! Score: %.2f"
)

// Config contains the dependencies of an App
type Config struct {
	Screen tcell.Screen
	Levels level.Table
	Ledger *ledger.Ledger

	// Keys nil uses the default bindings
	Keys *input.KeyTable

	// Sink receives game events, typically audio; nil discards
	Sink event.Sink

	// Clock nil uses wall time
	Clock clock.TimeProvider

	// Seed 0 seeds each run from its start time
	Seed int64

	NoFog bool
	Muted bool
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
	}
	if cfg.Screen == nil {
		return fmt.Errorf("%w: screen cannot be nil", ErrInvalidConfig)
	}
	if cfg.Ledger == nil {
		return fmt.Errorf("%w: ledger cannot be nil", ErrInvalidConfig)
	}
	return nil
}

// App drives one terminal session: menus, runs and score screens
type App struct {
	screen   tcell.Screen
	renderer *render.TerminalRenderer
	ledger   *ledger.Ledger
	keys     *input.KeyTable
	clock    clock.TimeProvider
	run      *session.Run
	held     *input.Held
	fog      visibility.Model
	muted    bool

	view    Screen
	message string
	top     []ledger.Record
	quit    bool
}

// New creates an App showing the start menu
func New(cfg *Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	run, err := session.NewRun(session.RunConfig{
		Levels:   cfg.Levels,
		Recorder: cfg.Ledger,
		Sink:     cfg.Sink,
		Seed:     cfg.Seed,
	})
	if err != nil {
		return nil, err
	}

	a := &App{
		screen:   cfg.Screen,
		renderer: render.NewTerminalRenderer(cfg.Screen),
		ledger:   cfg.Ledger,
		keys:     cfg.Keys,
		clock:    cfg.Clock,
		run:      run,
		held:     input.NewHeld(),
		fog:      visibility.Default(),
		muted:    cfg.Muted,
		view:     ScreenMenu,
	}
	if a.keys == nil {
		a.keys = input.DefaultKeyTable()
	}
	if a.clock == nil {
		a.clock = clock.New()
	}
	if cfg.NoFog {
		a.fog.Enabled = false
	}
	return a, nil
}

// Run polls terminal events and ticks at parameter.FrameInterval until quit
// or ctx is cancelled. A ledger write failure ends the loop with its error.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	eventChan := make(chan tcell.Event, parameter.EventChannelSize)
	// A poller panic is handed to this goroutine so the caller's crash
	// handler can restore the terminal
	pollPanic := make(chan string, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				pollPanic <- fmt.Sprintf("event poller: %v\n%s", r, debug.Stack())
			}
		}()
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case eventChan <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(parameter.FrameInterval)
	defer ticker.Stop()

	a.Draw(a.clock.Now())
	for {
		if a.quit {
			return nil
		}
		select {
		case <-ctx.Done():
			return nil

		case p := <-pollPanic:
			panic(p)

		case ev := <-eventChan:
			if err := a.HandleEvent(ctx, ev); err != nil {
				return err
			}

		case <-ticker.C:
			now := a.clock.Now()
			if err := a.Update(ctx, now); err != nil {
				return err
			}
			a.Draw(now)
		}
	}
}

// HandleEvent applies one terminal event
func (a *App) HandleEvent(ctx context.Context, ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.HandleAction(ctx, a.keys.Translate(ev, a.keyContext()), a.clock.Now())
	case *tcell.EventResize:
		a.screen.Sync()
	}
	return nil
}

func (a *App) keyContext() input.Context {
	if a.view == ScreenPlaying {
		return input.ContextPlay
	}
	return input.ContextMenu
}

// HandleAction applies one key-down action for the current screen
func (a *App) HandleAction(ctx context.Context, act input.Action, now time.Time) error {
	if act == input.ActionQuit {
		a.quit = true
		return nil
	}

	switch a.view {
	case ScreenMenu:
		switch act {
		case input.ActionConfirm:
			return a.start(now)
		case input.ActionScores:
			a.loadTop(ctx)
			a.view = ScreenScores
		}

	case ScreenScores:
		if act == input.ActionBack {
			a.view = ScreenMenu
		}

	case ScreenPlaying:
		if dir, ok := input.Direction(act); ok {
			a.held.Press(dir, now)
			return nil
		}
		switch act {
		case input.ActionShoot:
			a.run.Shoot()
		case input.ActionDropTorch:
			a.run.DropTorch()
		case input.ActionToggleFog:
			a.fog.Toggle()
		case input.ActionRestart:
			return a.start(now)
		}

	case ScreenGameOver:
		if act == input.ActionRestart {
			return a.start(now)
		}
	}
	return nil
}

func (a *App) start(now time.Time) error {
	a.held.Reset()
	a.message = ""
	if err := a.run.Restart(now); err != nil {
		return err
	}
	a.view = ScreenPlaying
	return nil
}

// Update advances the run by one tick while playing
func (a *App) Update(ctx context.Context, now time.Time) error {
	if a.view != ScreenPlaying {
		return nil
	}
	rep, err := a.run.Tick(ctx, now, session.Input{Move: a.held.Current(now)})
	if err != nil {
		log.Printf("ledger write failed: %v", err)
		return err
	}
	if rep.Stepped {
		a.held.Consume()
	}

	switch a.run.State() {
	case session.StateWon:
		score, _, _ := a.run.Final()
		a.gameOver(ctx, fmt.Sprintf(messageWin, a.run.Elapsed(now).Seconds(), score))
	case session.StateLost:
		_, _, cause := a.run.Final()
		msg := MessageChaserLoss
		if cause == session.CausePatroller {
			msg = MessagePatrollerLoss
		}
		a.gameOver(ctx, msg)
	}
	return nil
}

func (a *App) gameOver(ctx context.Context, msg string) {
	a.message = msg
	a.held.Reset()
	a.loadTop(ctx)
	a.view = ScreenGameOver
}

// loadTop refreshes the cached leaderboard; a read failure shows it empty
func (a *App) loadTop(ctx context.Context) {
	top, err := a.ledger.Top(ctx, parameter.TopScores)
	if err != nil {
		log.Printf("leaderboard read failed: %v", err)
		top = nil
	}
	a.top = top
}

// Draw renders the current screen
func (a *App) Draw(now time.Time) {
	switch a.view {
	case ScreenMenu:
		a.renderer.RenderMenu()
	case ScreenScores:
		a.renderer.RenderScores(a.top)
	case ScreenPlaying:
		a.renderer.RenderFrame(render.Frame{
			Session: a.run.Session(),
			Fog:     a.fog,
			Levels:  a.run.Levels(),
			Elapsed: a.run.Elapsed(now),
			Muted:   a.muted,
		})
	case ScreenGameOver:
		a.renderer.RenderGameOver(a.message, a.top)
	}
}

// View returns the current screen
func (a *App) View() Screen { return a.view }

// Message returns the game-over text
func (a *App) Message() string { return a.message }

// Quitting reports whether a quit action was received
func (a *App) Quitting() bool { return a.quit }
