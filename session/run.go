package session

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/lixenwraith/minotaur/event"
	"github.com/lixenwraith/minotaur/ledger"
	"github.com/lixenwraith/minotaur/level"
	"github.com/lixenwraith/minotaur/parameter"
)

// State is the run's phase
type State int

const (
	StateReady State = iota
	StatePlaying
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

// Recorder persists one record per completed level or lost run.
// *ledger.Ledger satisfies it.
type Recorder interface {
	Record(ctx context.Context, elapsed time.Duration, kills int, score float64) (ledger.Record, error)
}

// RunConfig contains the dependencies of a Run
type RunConfig struct {
	Levels   level.Table
	Recorder Recorder
	Sink     event.Sink // nil discards events
	Seed     int64      // 0 seeds from the start time
}

// Run strings levels together and owns the run-scoped values that survive a
// level change: start time, kill count and health
type Run struct {
	levels   level.Table
	recorder Recorder
	sink     event.Sink
	seed     int64
	rng      *rand.Rand

	state   State
	index   int
	start   time.Time
	session *Session

	finalElapsed time.Duration
	finalScore   float64
	finalKills   int
	cause        Cause
}

// NewRun validates the level table and returns a run in StateReady
func NewRun(cfg RunConfig) (*Run, error) {
	if err := cfg.Levels.Validate(); err != nil {
		return nil, err
	}
	if cfg.Recorder == nil {
		return nil, fmt.Errorf("session: recorder cannot be nil")
	}
	sink := cfg.Sink
	if sink == nil {
		sink = event.Discard
	}
	return &Run{levels: cfg.Levels, recorder: cfg.Recorder, sink: sink, seed: cfg.Seed}, nil
}

// Start begins a fresh run at the first level
func (r *Run) Start(now time.Time) error {
	seed := r.seed
	if seed == 0 {
		seed = now.UnixNano()
	}
	r.rng = rand.New(rand.NewSource(seed))
	r.start = now
	r.index = 0
	r.finalElapsed, r.finalScore, r.finalKills, r.cause = 0, 0, 0, CauseNone

	if err := r.enter(now, 0, parameter.PlayerHealth, 0); err != nil {
		return err
	}
	r.state = StatePlaying
	return nil
}

// Restart discards the current level and starts over from the first
func (r *Run) Restart(now time.Time) error {
	if r.session != nil {
		r.sink.Handle(event.GameEvent{Type: event.EventTrackStop})
	}
	return r.Start(now)
}

// enter builds level idx and makes it current; on failure the run keeps its
// previous index and session
func (r *Run) enter(now time.Time, idx, health, kills int) error {
	d, _ := r.levels.At(idx)
	s, err := New(Config{
		Descriptor: d,
		Level:      idx + 1,
		Health:     health,
		Kills:      kills,
		RunStart:   r.start,
		Now:        now,
		Rand:       r.rng,
	})
	if err != nil {
		return err
	}
	r.index = idx
	r.session = s
	event.Dispatch(r.sink, s.Drain())
	return nil
}

// Tick advances the current level. A level change or loss persists a record;
// a failed write is returned and leaves the run where it was.
func (r *Run) Tick(ctx context.Context, now time.Time, in Input) (Report, error) {
	if r.state != StatePlaying {
		return Report{}, nil
	}
	rep := r.session.Tick(now, in)
	event.Dispatch(r.sink, rep.Events)

	switch rep.Outcome {
	case OutcomeLevelComplete:
		kills := r.session.Kills
		if _, err := r.recorder.Record(ctx, rep.Elapsed, kills, rep.Score); err != nil {
			return rep, fmt.Errorf("record level %d: %w", r.session.Level, err)
		}
		r.sink.Handle(event.GameEvent{Type: event.EventTrackStop})

		next := r.index + 1
		if next >= r.levels.Len() {
			r.index = next
			r.finish(StateWon, rep, kills)
			r.sink.Handle(event.GameEvent{Type: event.EventRunWon})
			return rep, nil
		}
		if err := r.enter(now, next, r.session.Player.Health, kills); err != nil {
			// The finished level is already recorded; stop rather than replay it
			r.state = StateReady
			return rep, err
		}
		return rep, nil

	case OutcomeLost:
		kills := r.session.Kills
		if _, err := r.recorder.Record(ctx, rep.Elapsed, kills, 0); err != nil {
			return rep, fmt.Errorf("record loss: %w", err)
		}
		r.finish(StateLost, rep, kills)
		r.sink.Handle(event.GameEvent{Type: event.EventTrackStop})
		r.sink.Handle(event.GameEvent{Type: event.EventRunLost})
	}
	return rep, nil
}

func (r *Run) finish(st State, rep Report, kills int) {
	r.state = st
	r.finalElapsed = rep.Elapsed
	r.finalScore = rep.Score
	r.finalKills = kills
	r.cause = rep.Cause
}

// Shoot fires from the player when a level is in play
func (r *Run) Shoot() bool {
	if r.state != StatePlaying {
		return false
	}
	ok := r.session.Shoot()
	event.Dispatch(r.sink, r.session.Drain())
	return ok
}

// DropTorch drops a torch when a level is in play
func (r *Run) DropTorch() bool {
	if r.state != StatePlaying {
		return false
	}
	ok := r.session.DropTorch()
	event.Dispatch(r.sink, r.session.Drain())
	return ok
}

// State returns the run phase
func (r *Run) State() State { return r.state }

// Session returns the level in play; nil before Start
func (r *Run) Session() *Session { return r.session }

// Levels returns the number of levels in the run
func (r *Run) Levels() int { return r.levels.Len() }

// Elapsed returns time since run start, frozen once the run ends
func (r *Run) Elapsed(now time.Time) time.Duration {
	if r.state == StateWon || r.state == StateLost {
		return r.finalElapsed
	}
	return now.Sub(r.start)
}

// Final returns the score, kill count and loss cause of a finished run
func (r *Run) Final() (score float64, kills int, cause Cause) {
	return r.finalScore, r.finalKills, r.cause
}
