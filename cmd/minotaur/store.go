package main

import (
	"context"
	"fmt"

	"github.com/lixenwraith/minotaur/ledger"
)

// Store kinds accepted by --store
const (
	storeJSON     = "json"
	storeSQLite   = "sqlite"
	storePostgres = "postgres"
	storeRedis    = "redis"
)

const defaultSQLitePath = "scores.db"

// openStore builds the score store named by kind. The json store reads
// path; the others read dsn.
func openStore(ctx context.Context, kind, path, dsn string) (ledger.Store, error) {
	switch kind {
	case storeJSON, "":
		return ledger.NewFileStore(path)
	case storeSQLite:
		if dsn == "" {
			dsn = defaultSQLitePath
		}
		return ledger.OpenSQL(ledger.DriverSQLite, dsn)
	case storePostgres:
		if dsn == "" {
			return nil, fmt.Errorf("--dsn is required for the %s store", kind)
		}
		return ledger.OpenSQL(ledger.DriverPostgres, dsn)
	case storeRedis:
		if dsn == "" {
			dsn = "localhost:6379"
		}
		return ledger.DialRedis(ctx, dsn)
	}
	return nil, fmt.Errorf("unknown store %q", kind)
}

// openLedger opens the configured store and wraps it in a ledger
func openLedger(ctx context.Context) (*ledger.Ledger, error) {
	store, err := openStore(ctx, storeKind, scoresPath, storeDSN)
	if err != nil {
		return nil, fmt.Errorf("open %s store: %w", storeKind, err)
	}
	l, err := ledger.New(&ledger.Config{Store: store})
	if err != nil {
		store.Close()
		return nil, err
	}
	return l, nil
}
