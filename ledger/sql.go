package ledger

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Driver names accepted by OpenSQL
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

type dialect struct {
	schema string
	insert string
}

var dialects = map[string]dialect{
	DriverSQLite: {
		schema: `CREATE TABLE IF NOT EXISTS scores (
			seq INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			datetime TEXT NOT NULL,
			time REAL NOT NULL,
			enemies_killed INTEGER NOT NULL,
			score REAL NOT NULL
		);`,
		insert: `INSERT INTO scores (id, datetime, time, enemies_killed, score) VALUES (?, ?, ?, ?, ?)`,
	},
	DriverPostgres: {
		schema: `CREATE TABLE IF NOT EXISTS scores (
			seq BIGSERIAL PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			datetime TEXT NOT NULL,
			time DOUBLE PRECISION NOT NULL,
			enemies_killed INTEGER NOT NULL,
			score DOUBLE PRECISION NOT NULL
		);`,
		insert: `INSERT INTO scores (id, datetime, time, enemies_killed, score) VALUES ($1, $2, $3, $4, $5)`,
	},
}

const selectAll = `SELECT id, datetime, time, enemies_killed, score FROM scores ORDER BY seq ASC`

// SQLStore keeps records in a scores table on SQLite or PostgreSQL
type SQLStore struct {
	db      *sql.DB
	dialect dialect
}

// OpenSQL connects to dsn with driver and creates the scores table.
// For SQLite the dsn is a file path whose directory is created if missing.
func OpenSQL(driver, dsn string) (*SQLStore, error) {
	d, ok := dialects[driver]
	if !ok {
		return nil, errors.Wrapf(ErrInvalidConfig, "unsupported sql driver %q", driver)
	}
	if driver == DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create database directory")
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open %s database", driver)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, errors.Wrapf(err, "failed to ping %s database", driver)
	}
	if _, err := db.Exec(d.schema); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "failed to create schema")
	}
	return &SQLStore{db: db, dialect: d}, nil
}

func (s *SQLStore) Append(ctx context.Context, rec Record) error {
	_, err := s.db.ExecContext(ctx, s.dialect.insert,
		rec.ID, rec.DateTime, rec.Time, rec.EnemiesKilled, rec.Score)
	if err != nil {
		return errors.Wrapf(err, "failed to insert score %s", rec.ID)
	}
	return nil
}

func (s *SQLStore) All(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, selectAll)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query scores")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.DateTime, &r.Time, &r.EnemiesKilled, &r.Score); err != nil {
			return nil, errors.Wrap(err, "failed to scan score")
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate scores: %w", err)
	}
	return records, nil
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}
