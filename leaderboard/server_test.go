package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/minotaur/clock"
	"github.com/lixenwraith/minotaur/ledger"
)

type fakeSource struct {
	mu      sync.Mutex
	records []ledger.Record
	err     error
}

func (f *fakeSource) Top(_ context.Context, n int) ([]ledger.Record, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	return ledger.TopN(f.records, n), nil
}

func (f *fakeSource) set(records ...ledger.Record) {
	f.mu.Lock()
	f.records = records
	f.mu.Unlock()
}

func rec(score float64) ledger.Record {
	return ledger.Record{DateTime: "2024-03-09 14:05:30", Time: 10, EnemiesKilled: 1, Score: score}
}

func getTop(t *testing.T, url string) (int, []ledger.Record) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return resp.StatusCode, nil
	}
	var out []ledger.Record
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestNewValidation(t *testing.T) {
	_, err := New(nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = New(&Config{})
	assert.ErrorIs(t, err, ErrInvalidConfig)
	_, err = New(&Config{Source: &fakeSource{}, Limit: -1})
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestTopFromLedger(t *testing.T) {
	store, err := ledger.NewFileStore(filepath.Join(t.TempDir(), "scores.json"))
	require.NoError(t, err)
	l, err := ledger.New(&ledger.Config{Store: store, Clock: clock.NewMock(time.Date(2024, 3, 9, 14, 5, 30, 0, time.UTC))})
	require.NoError(t, err)

	ctx := context.Background()
	for _, score := range []float64{5, 50, 20} {
		_, err := l.Record(ctx, 10*time.Second, 1, score)
		require.NoError(t, err)
	}

	s, err := New(&Config{Source: l, Limit: 2})
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	code, top := getTop(t, srv.URL+"/scores")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, top, 2)
	assert.Equal(t, 50.0, top[0].Score)
	assert.Equal(t, 20.0, top[1].Score)
	assert.Equal(t, "2024-03-09 14:05:30", top[0].DateTime)

	code, top = getTop(t, srv.URL+"/scores?limit=10")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, top, 3)
}

func TestTopErrors(t *testing.T) {
	src := &fakeSource{}
	s, err := New(&Config{Source: src})
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	code, top := getTop(t, srv.URL+"/scores")
	assert.Equal(t, http.StatusOK, code)
	assert.NotNil(t, top, "empty ledger encodes as []")
	assert.Empty(t, top)

	for _, q := range []string{"0", "-3", "ten"} {
		code, _ = getTop(t, srv.URL+"/scores?limit="+q)
		assert.Equal(t, http.StatusBadRequest, code, q)
	}

	resp, err := http.Post(srv.URL+"/scores", "application/json", strings.NewReader("{}"))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)

	src.err = errors.New("connection refused")
	code, _ = getTop(t, srv.URL+"/scores")
	assert.Equal(t, http.StatusInternalServerError, code)
}

func TestLivePushesChanges(t *testing.T) {
	src := &fakeSource{}
	src.set(rec(10))
	s, err := New(&Config{Source: src, PollInterval: 10 * time.Millisecond})
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/scores/live?limit=2"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))

	var snapshot []ledger.Record
	require.NoError(t, conn.ReadJSON(&snapshot))
	require.Len(t, snapshot, 1)
	assert.Equal(t, 10.0, snapshot[0].Score)

	src.set(rec(10), rec(30), rec(5))

	var update []ledger.Record
	require.NoError(t, conn.ReadJSON(&update))
	require.Len(t, update, 2)
	assert.Equal(t, 30.0, update[0].Score)
	assert.Equal(t, 10.0, update[1].Score)
}

func TestLiveRejectsBadLimit(t *testing.T) {
	s, err := New(&Config{Source: &fakeSource{}})
	require.NoError(t, err)
	srv := httptest.NewServer(s.Handler())
	defer srv.Close()

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/scores/live?limit=x"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	s, err := New(&Config{Source: &fakeSource{}})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe(ctx, "127.0.0.1:0") }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}
