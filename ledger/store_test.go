package ledger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecords() []Record {
	return []Record{
		{ID: "r1", DateTime: "2024-01-02 03:04:05", Time: 12.5, EnemiesKilled: 2, Score: 16},
		{ID: "r2", DateTime: "2024-01-02 03:09:00", Time: 40, EnemiesKilled: 0, Score: 0},
	}
}

// exerciseStore appends samples and expects them back in order
func exerciseStore(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	empty, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, empty)

	for _, r := range sampleRecords() {
		require.NoError(t, s.Append(ctx, r))
	}
	got, err := s.All(ctx)
	require.NoError(t, err)
	assert.Equal(t, sampleRecords(), got)
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "scores.json")
	s, err := NewFileStore(path)
	require.NoError(t, err)
	exerciseStore(t, s)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"enemies_killed": 2`)
	assert.Contains(t, string(data), `"datetime": "2024-01-02 03:04:05"`)
}

func TestFileStoreRecoversMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	got, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got)

	// Next append replaces the garbage with a valid ledger
	rec := sampleRecords()[0]
	require.NoError(t, s.Append(context.Background(), rec))
	got, err = s.All(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []Record{rec}, got)
}

func TestFileStoreWriteFailure(t *testing.T) {
	dir := t.TempDir()
	// A directory at the file path makes the write fail
	path := filepath.Join(dir, "scores.json")
	require.NoError(t, os.Mkdir(path, 0755))

	s, err := NewFileStore(path)
	require.NoError(t, err)
	assert.Error(t, s.Append(context.Background(), sampleRecords()[0]))
}

func TestNewFileStoreEmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQL(DriverSQLite, filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)
}

func TestOpenSQLUnknownDriver(t *testing.T) {
	_, err := OpenSQL("mysql", "whatever")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	s, err := NewRedis(&RedisConfig{Client: client})
	require.NoError(t, err)
	defer s.Close()
	exerciseStore(t, s)

	entries, err := mr.List(DefaultRedisKey)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := DialRedis(context.Background(), "redis://"+mr.Addr())
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Append(context.Background(), sampleRecords()[0]))
	got, err := s.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestNewRedisValidation(t *testing.T) {
	_, err := NewRedis(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = NewRedis(&RedisConfig{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
