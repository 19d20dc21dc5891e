// Package ledger records finished levels and lost runs and ranks them by score.
// The ledger is append-only; stores differ only in where records live.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lixenwraith/minotaur/clock"
)

// Config contains the dependencies of a Ledger
type Config struct {
	Store Store

	// Clock stamps DateTime; nil uses wall time
	Clock clock.TimeProvider

	// NewID generates record IDs; nil uses random UUIDs
	NewID func() string
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
	}
	if cfg.Store == nil {
		return fmt.Errorf("%w: store cannot be nil", ErrInvalidConfig)
	}
	return nil
}

// Ledger stamps and appends records and answers top-N queries
type Ledger struct {
	store Store
	clock clock.TimeProvider
	newID func() string
}

// New creates a ledger over cfg.Store
func New(cfg *Config) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	l := &Ledger{store: cfg.Store, clock: cfg.Clock, newID: cfg.NewID}
	if l.clock == nil {
		l.clock = clock.New()
	}
	if l.newID == nil {
		l.newID = uuid.NewString
	}
	return l, nil
}

// Record appends a score for elapsed run time and kill count
func (l *Ledger) Record(ctx context.Context, elapsed time.Duration, kills int, score float64) (Record, error) {
	rec := Record{
		ID:            l.newID(),
		DateTime:      l.clock.Now().Format(DateTimeLayout),
		Time:          elapsed.Seconds(),
		EnemiesKilled: kills,
		Score:         score,
	}
	if err := rec.Validate(); err != nil {
		return Record{}, err
	}
	if err := l.store.Append(ctx, rec); err != nil {
		return Record{}, fmt.Errorf("append score: %w", err)
	}
	return rec, nil
}

// All returns the whole ledger in append order
func (l *Ledger) All(ctx context.Context) ([]Record, error) {
	return l.store.All(ctx)
}

// Top returns the n best records by score
func (l *Ledger) Top(ctx context.Context, n int) ([]Record, error) {
	all, err := l.store.All(ctx)
	if err != nil {
		return nil, err
	}
	return TopN(all, n), nil
}

// Close closes the store
func (l *Ledger) Close() error {
	return l.store.Close()
}
