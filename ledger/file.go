package ledger

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// FileStore keeps the ledger as one JSON array, read and rewritten whole on
// every append. A missing or malformed file reads as an empty ledger.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store at path; the file is created on first append
func NewFileStore(path string) (*FileStore, error) {
	if path == "" {
		return nil, errors.Wrap(ErrInvalidConfig, "file store path cannot be empty")
	}
	return &FileStore{path: path}, nil
}

// Path returns the backing file
func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Append(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load()
	records = append(records, rec)

	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return errors.Wrap(err, "failed to marshal scores")
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return errors.Wrapf(err, "failed to create score directory %s", dir)
		}
	}
	if err := os.WriteFile(s.path, data, 0644); err != nil {
		return errors.Wrapf(err, "failed to write scores to %s", s.path)
	}
	return nil
}

func (s *FileStore) All(_ context.Context) ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(), nil
}

func (s *FileStore) Close() error { return nil }

// load reads the file, recovering any read or parse failure as empty
func (s *FileStore) load() []Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("ledger: read %s: %v, starting empty", s.path, err)
		}
		return nil
	}
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		log.Printf("ledger: parse %s: %v, starting empty", s.path, err)
		return nil
	}
	return records
}
