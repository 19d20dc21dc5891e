package ledger

//go:generate mockgen -destination=mock/mock_store.go -package=ledgermock github.com/lixenwraith/minotaur/ledger Store

import "context"

// Store persists records in append order
type Store interface {
	// Append adds one record at the end of the ledger
	// Returns a wrapped I/O error when the write fails
	Append(ctx context.Context, rec Record) error

	// All returns every record in append order
	All(ctx context.Context) ([]Record, error)

	// Close releases the backing connection or file
	Close() error
}
