package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"
)

// DateTimeLayout is the wall-clock format of Record.DateTime
const DateTimeLayout = "2006-01-02 15:04:05"

var (
	// ErrInvalidRecord reports a record with negative or unparsable fields
	ErrInvalidRecord = errors.New("ledger: invalid record")

	// ErrInvalidConfig reports a ledger or store built without its dependencies
	ErrInvalidConfig = errors.New("ledger: invalid config")
)

// Record is one finished level or lost run. Immutable once written.
type Record struct {
	ID            string  `json:"id,omitempty"`
	DateTime      string  `json:"datetime"`
	Time          float64 `json:"time"` // elapsed seconds since run start
	EnemiesKilled int     `json:"enemies_killed"`
	Score         float64 `json:"score"`
}

// Validate checks field ranges and the datetime layout
func (r Record) Validate() error {
	switch {
	case r.Time < 0:
		return fmt.Errorf("%w: negative time %f", ErrInvalidRecord, r.Time)
	case r.EnemiesKilled < 0:
		return fmt.Errorf("%w: negative kills %d", ErrInvalidRecord, r.EnemiesKilled)
	case r.Score < 0:
		return fmt.Errorf("%w: negative score %f", ErrInvalidRecord, r.Score)
	}
	if _, err := time.Parse(DateTimeLayout, r.DateTime); err != nil {
		return fmt.Errorf("%w: datetime %q", ErrInvalidRecord, r.DateTime)
	}
	return nil
}

// TopN returns up to n records ordered by descending score. Equal scores keep
// ledger order. The input is not modified. n <= 0 returns every record.
func TopN(records []Record, n int) []Record {
	out := make([]Record, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
