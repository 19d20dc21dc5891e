// Package leaderboard serves the score ledger read-only over HTTP. GET /scores
// returns the top records as JSON and /scores/live pushes the top list over a
// websocket whenever it changes.
package leaderboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"slices"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/minotaur/ledger"
	"github.com/lixenwraith/minotaur/parameter"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second
	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second
	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10
	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

// ErrInvalidConfig reports a server built without a score source
var ErrInvalidConfig = errors.New("leaderboard: invalid config")

// Source answers top-N queries; *ledger.Ledger satisfies it
type Source interface {
	Top(ctx context.Context, n int) ([]ledger.Record, error)
}

// Config contains the dependencies of a Server
type Config struct {
	Source Source

	// Limit is the default list length, 0 uses parameter.TopScores
	Limit int

	// PollInterval is the live refresh period, 0 uses parameter.LeaderboardPoll
	PollInterval time.Duration
}

// Validate validates the Config
func (cfg *Config) Validate() error {
	if cfg == nil {
		return fmt.Errorf("%w: config cannot be nil", ErrInvalidConfig)
	}
	if cfg.Source == nil {
		return fmt.Errorf("%w: source cannot be nil", ErrInvalidConfig)
	}
	if cfg.Limit < 0 || cfg.PollInterval < 0 {
		return fmt.Errorf("%w: negative limit or poll interval", ErrInvalidConfig)
	}
	return nil
}

// Server routes leaderboard requests
type Server struct {
	source   Source
	limit    int
	poll     time.Duration
	router   *mux.Router
	upgrader websocket.Upgrader
}

// New creates a Server with its routes registered
func New(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	s := &Server{
		source: cfg.Source,
		limit:  cfg.Limit,
		poll:   cfg.PollInterval,
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
	if s.limit == 0 {
		s.limit = parameter.TopScores
	}
	if s.poll == 0 {
		s.poll = parameter.LeaderboardPoll
	}

	s.router.HandleFunc("/scores", s.handleTop).Methods(http.MethodGet)
	s.router.HandleFunc("/scores/live", s.handleLive).Methods(http.MethodGet)
	return s, nil
}

// Handler returns the routed handler
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: writeWait,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// parseLimit reads ?limit=, defaulting to the configured length
func (s *Server) parseLimit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.limit, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid limit %q", raw)
	}
	return min(n, parameter.LeaderboardMaxLimit), nil
}

func (s *Server) handleTop(w http.ResponseWriter, r *http.Request) {
	n, err := s.parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	top, err := s.source.Top(r.Context(), n)
	if err != nil {
		log.Printf("leaderboard: top %d: %v", n, err)
		http.Error(w, "ledger unavailable", http.StatusInternalServerError)
		return
	}
	if top == nil {
		top = []ledger.Record{}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(top); err != nil {
		log.Printf("leaderboard: encode: %v", err)
	}
}

func (s *Server) handleLive(w http.ResponseWriter, r *http.Request) {
	n, err := s.parseLimit(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("leaderboard: upgrade: %v", err)
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go readPump(conn, cancel)

	if err := s.writePump(ctx, conn, n); err != nil {
		log.Printf("leaderboard: live client %s: %v", r.RemoteAddr, err)
	}
}

// readPump discards client messages and cancels on disconnect
func readPump(conn *websocket.Conn, cancel context.CancelFunc) {
	defer cancel()
	conn.SetReadLimit(maxMessageSize)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("leaderboard: read: %v", err)
			}
			return
		}
	}
}

// writePump sends the current top list, then every changed list
func (s *Server) writePump(ctx context.Context, conn *websocket.Conn, n int) error {
	poll := time.NewTicker(s.poll)
	ping := time.NewTicker(pingPeriod)
	defer poll.Stop()
	defer ping.Stop()

	var last []ledger.Record
	push := func(first bool) error {
		top, err := s.source.Top(ctx, n)
		if err != nil {
			return err
		}
		if top == nil {
			top = []ledger.Record{}
		}
		if !first && slices.Equal(top, last) {
			return nil
		}
		last = top
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(top)
	}

	if err := push(true); err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return nil
		case <-poll.C:
			if err := push(false); err != nil {
				return err
			}
		case <-ping.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return err
			}
		}
	}
}
