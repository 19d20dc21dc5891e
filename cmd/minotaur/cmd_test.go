package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/minotaur/ledger"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	js, err := openStore(ctx, storeJSON, filepath.Join(dir, "scores.json"), "")
	require.NoError(t, err)
	assert.IsType(t, &ledger.FileStore{}, js)

	lite, err := openStore(ctx, storeSQLite, "", filepath.Join(dir, "scores.db"))
	require.NoError(t, err)
	assert.IsType(t, &ledger.SQLStore{}, lite)
	require.NoError(t, lite.Close())

	mr := miniredis.RunT(t)
	rs, err := openStore(ctx, storeRedis, "", mr.Addr())
	require.NoError(t, err)
	assert.IsType(t, &ledger.RedisStore{}, rs)
	require.NoError(t, rs.Close())

	_, err = openStore(ctx, storePostgres, "", "")
	assert.ErrorContains(t, err, "--dsn")

	_, err = openStore(ctx, "mongo", "", "")
	assert.ErrorContains(t, err, "unknown store")
}

func TestPrintScores(t *testing.T) {
	var buf bytes.Buffer
	printScores(&buf, nil)
	assert.Equal(t, "No scores available.\n", buf.String())

	buf.Reset()
	printScores(&buf, []ledger.Record{
		{DateTime: "2024-03-09 14:05:30", Time: 42.5, EnemiesKilled: 3, Score: 7.06},
	})
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Date                Time (s)  Enemies Killed Score     ", lines[0])
	assert.Equal(t, strings.Repeat("-", 55), lines[1])
	assert.Equal(t, "2024-03-09 14:05:30 42.50     3              7.06      ", lines[2])
}

func TestScoreTable(t *testing.T) {
	table := scoreTable([]ledger.Record{
		{DateTime: "2024-03-09 14:05:30", Time: 42.5, EnemiesKilled: 3, Score: 7.06},
		{DateTime: "2024-03-09 14:09:00", Time: 80, EnemiesKilled: 0, Score: 0},
	})
	assert.Equal(t, 3, table.GetRowCount())
	assert.Equal(t, len(scoreColumns), table.GetColumnCount())
	assert.Equal(t, "Date", table.GetCell(0, 1).Text)
	assert.Equal(t, "2024-03-09 14:09:00", table.GetCell(2, 1).Text)
	assert.Equal(t, "7.06", table.GetCell(1, 4).Text)
}

func TestScoresCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	store, err := ledger.NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Append(context.Background(), ledger.Record{
		DateTime: "2024-03-09 14:05:30", Time: 10, EnemiesKilled: 2, Score: 20,
	}))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"scores", "--scores", path, "--store", storeJSON})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "2024-03-09 14:05:30 10.00")
}

func TestMazeCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"maze", "--seed", "5", "--level", "1"})
	require.NoError(t, rootCmd.Execute())

	text := out.String()
	assert.Contains(t, text, "Generated 40x30")
	assert.Contains(t, text, "Rooms:")
	assert.Equal(t, 1, strings.Count(text, "S"))

	rootCmd.SetArgs([]string{"maze", "--level", "9"})
	assert.ErrorContains(t, rootCmd.Execute(), "no level 9")
}
