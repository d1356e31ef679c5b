package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/urfave/cli/v3"

	"github.com/pdrpinto/gridastar"
	"github.com/pdrpinto/gridastar/internal"
	"github.com/pdrpinto/gridastar/internal/gridmap"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer.
	maxMessageSize = 512

	// Largest grid side a session may request.
	maxSide = 256

	// Sessions live until DELETE; creation fails once this many exist.
	maxSessions = 1024
)

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "step random scenarios over HTTP and websockets",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Value:   ":8080",
				Usage:   "listen address",
				Sources: cli.EnvVars("GRIDASTAR_ADDR"),
			},
			&cli.DurationFlag{
				Name:  "step-interval",
				Value: 30 * time.Millisecond,
				Usage: "delay between streamed steps",
			},
		},
		Action: runServe,
	}
}

func runServe(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	srv := newServer(cfg, cmd.Duration("step-interval"))
	httpServer := &http.Server{
		Addr:              cmd.String("addr"),
		Handler:           srv.routes(),
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ln, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return err
	}
	log.Printf("serving on http://%s", ln.Addr())

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.Serve(ln) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	}
}

// session is one random scenario and the search stepping through it.
type session struct {
	mu         sync.Mutex
	id         string
	scenario   *gridmap.Map
	pathfinder *gridastar.Pathfinder
	search     *gridastar.Search
}

type server struct {
	defaults     config
	stepInterval time.Duration
	upgrader     websocket.Upgrader

	mu          sync.Mutex
	sessions    map[string]*session
	maxSessions int
}

func newServer(defaults config, stepInterval time.Duration) *server {
	if stepInterval <= 0 {
		stepInterval = time.Millisecond
	}
	return &server{
		defaults:     defaults,
		stepInterval: stepInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The API is meant for local visualisers
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		sessions:    make(map[string]*session),
		maxSessions: maxSessions,
	}
}

func (s *server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", s.handleCreate)
	mux.HandleFunc("GET /sessions/{id}", s.handleState)
	mux.HandleFunc("GET /sessions/{id}/next", s.handleNext)
	mux.HandleFunc("GET /sessions/{id}/ws", s.handleStream)
	mux.HandleFunc("DELETE /sessions/{id}", s.handleDelete)
	return mux
}

// sessionState describes a scenario for clients drawing the grid.
type sessionState struct {
	ID         string            `json:"id"`
	W          int               `json:"w"`
	H          int               `json:"h"`
	CutCorners bool              `json:"cut_corners"`
	Walls      []gridastar.Coord `json:"walls"`
	Start      gridastar.Coord   `json:"start"`
	Goal       gridastar.Coord   `json:"goal"`
	Outcome    string            `json:"outcome"`
}

type stepMessage struct {
	ID string `json:"id"`
	gridastar.StepSnapshot
}

var errTooManySessions = errors.New("too many sessions, delete one first")

func (s *server) handleCreate(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	full := len(s.sessions) >= s.maxSessions
	s.mu.Unlock()
	if full {
		writeError(w, http.StatusServiceUnavailable, errTooManySessions)
		return
	}

	q := r.URL.Query()
	width, height := s.defaults.rows, s.defaults.columns
	cut := s.defaults.cutCorners
	wallConfig := gridmap.DefaultRandomConfig()
	seed := time.Now().UnixNano()

	if v, err := strconv.Atoi(q.Get("w")); err == nil {
		width = v
	}
	if v, err := strconv.Atoi(q.Get("h")); err == nil {
		height = v
	}
	width, height = internal.Clamp(width, 2, maxSide), internal.Clamp(height, 2, maxSide)
	if v, err := strconv.Atoi(q.Get("clusters")); err == nil && v >= 0 {
		wallConfig.Clusters = v
	}
	if v, err := strconv.Atoi(q.Get("steps")); err == nil && v >= 0 {
		wallConfig.Steps = v
	}
	if v, err := strconv.ParseFloat(q.Get("density"), 64); err == nil && v >= 0 && v <= 1 {
		wallConfig.Density = v
	}
	if v, err := strconv.ParseBool(q.Get("cut")); err == nil {
		cut = v
	}
	if v, err := strconv.ParseInt(q.Get("seed"), 10, 64); err == nil {
		seed = v
	}

	scenario := gridmap.Random(rand.New(rand.NewSource(seed)), width, height, wallConfig)
	pathfinder, err := scenario.NewPathfinder(gridastar.WithCutCorners(cut))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	search, err := pathfinder.Begin()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}

	sess := &session{
		id:         uuid.NewString(),
		scenario:   scenario,
		pathfinder: pathfinder,
		search:     search,
	}
	state := sess.state()
	s.mu.Lock()
	if len(s.sessions) >= s.maxSessions {
		s.mu.Unlock()
		writeError(w, http.StatusServiceUnavailable, errTooManySessions)
		return
	}
	s.sessions[sess.id] = sess
	s.mu.Unlock()

	log.Printf("Created session %s (%dx%d, %d walls, seed %d)", sess.id, width, height, len(scenario.Blocked), seed)
	writeJSON(w, http.StatusCreated, state)
}

func (s *server) lookup(w http.ResponseWriter, r *http.Request) (*session, bool) {
	s.mu.Lock()
	sess, ok := s.sessions[r.PathValue("id")]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, errors.New("unknown session"))
	}
	return sess, ok
}

func (s *server) handleState(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	state := sess.state()
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, state)
}

func (s *server) handleNext(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	sess.mu.Lock()
	snap, err := sess.search.Step()
	sess.mu.Unlock()
	if err != nil {
		writeError(w, http.StatusConflict, err)
		return
	}
	writeJSON(w, http.StatusOK, stepMessage{ID: sess.id, StepSnapshot: snap})
}

// handleStream upgrades to a websocket and pushes one snapshot per step
// until the search is done, then closes normally.
func (s *server) handleStream(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed for %s: %v", sess.id, err)
		return
	}
	defer conn.Close()

	// Drain control frames; a read error means the peer went away
	gone := make(chan struct{})
	conn.SetReadLimit(maxMessageSize)
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.stepInterval)
	defer ticker.Stop()
	for {
		sess.mu.Lock()
		snap, err := sess.search.Step()
		sess.mu.Unlock()
		if err != nil {
			log.Printf("WebSocket step error for %s: %v", sess.id, err)
			return
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(stepMessage{ID: sess.id, StepSnapshot: snap}); err != nil {
			log.Printf("WebSocket write error for %s: %v", sess.id, err)
			return
		}
		if snap.Done {
			msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "search done")
			_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(writeWait))
			return
		}

		select {
		case <-gone:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
		}
	}
}

func (s *server) handleDelete(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(w, r)
	if !ok {
		return
	}
	s.mu.Lock()
	delete(s.sessions, sess.id)
	s.mu.Unlock()

	sess.mu.Lock()
	sess.pathfinder.Reset()
	sess.mu.Unlock()

	log.Printf("Deleted session %s", sess.id)
	w.WriteHeader(http.StatusNoContent)
}

// state must be called with sess.mu held.
func (sess *session) state() sessionState {
	return sessionState{
		ID:         sess.id,
		W:          sess.scenario.Rows,
		H:          sess.scenario.Columns,
		CutCorners: sess.pathfinder.CutCorners(),
		Walls:      sess.scenario.Blocked,
		Start:      sess.scenario.Start,
		Goal:       sess.scenario.Target,
		Outcome:    sess.pathfinder.Outcome().String(),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
