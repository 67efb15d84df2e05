// Copyright (c) 2026, The AereaConfiavel Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package server exposes the scenario computations over HTTP, and
// pushes a fresh report to WebSocket clients whenever the config
// changes.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/PedroRussoUnB/AereaConfiavel/base/errors"
	"github.com/PedroRussoUnB/AereaConfiavel/config"
	"github.com/PedroRussoUnB/AereaConfiavel/decision"
	"github.com/PedroRussoUnB/AereaConfiavel/distrib"
	"github.com/PedroRussoUnB/AereaConfiavel/overbook"
	"github.com/PedroRussoUnB/AereaConfiavel/report"
	"github.com/PedroRussoUnB/AereaConfiavel/roi"
	"github.com/gorilla/websocket"
)

// Server serves reports for the current config.
type Server struct {
	mu     sync.RWMutex
	cfg    *config.Config
	latest *report.Report

	upgrader websocket.Upgrader
	clients  map[*client]struct{}
	cmu      sync.Mutex
}

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(v any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// New returns a new server for the given config.
func New(cfg *config.Config) *Server {
	return &Server{cfg: cfg, clients: map[*client]struct{}{}}
}

// Config returns the current config.
func (s *Server) Config() *config.Config {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cfg
}

// SetConfig replaces the config, rebuilds the full report and sends
// it to every connected WebSocket client.
func (s *Server) SetConfig(cfg *config.Config) {
	rep, err := report.Build(cfg)
	if errors.Log(err) != nil {
		return
	}
	s.mu.Lock()
	s.cfg = cfg
	s.latest = rep
	s.mu.Unlock()
	s.broadcast(rep)
}

// Latest returns the most recent full report, building it if needed.
func (s *Server) Latest() (*report.Report, error) {
	s.mu.RLock()
	rep, cfg := s.latest, s.cfg
	s.mu.RUnlock()
	if rep != nil {
		return rep, nil
	}
	rep, err := report.Build(cfg)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	if s.latest == nil {
		s.latest = rep
	}
	s.mu.Unlock()
	return rep, nil
}

func (s *Server) broadcast(rep *report.Report) {
	s.cmu.Lock()
	defer s.cmu.Unlock()
	for c := range s.clients {
		if err := c.send(rep); err != nil {
			slog.Debug("dropping websocket client", "err", err)
			c.conn.Close()
			delete(s.clients, c)
		}
	}
	slog.Info("pushed report", "id", rep.ID, "clients", len(s.clients))
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/report", s.handleReport)
	mux.HandleFunc("GET /api/report/{section}", s.handleReport)
	mux.HandleFunc("GET /api/risk", handleRisk)
	mux.HandleFunc("GET /api/roi", handleROI)
	mux.HandleFunc("GET /api/interval", handleInterval)
	mux.HandleFunc("GET /ws", s.handleWS)
	return mux
}

// apiError is the JSON body of an error response.
type apiError struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	errors.Log(json.NewEncoder(w).Encode(v))
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, apiError{Error: err.Error()})
}

// handleReport serves the full report, or one section of it.
// A seed query parameter overrides the configured seed.
func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	var sections []report.Section
	if name := r.PathValue("section"); name != "" {
		sec, err := report.ParseSection(name)
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		sections = append(sections, sec)
		if sec == report.Decision {
			sections = append(sections, report.ROI)
		}
	}
	cfg := *s.Config()
	if sd := r.URL.Query().Get("seed"); sd != "" {
		seed, err := strconv.ParseInt(sd, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("seed: %w", err))
			return
		}
		cfg.Seed = seed
	}
	rep, err := report.Build(&cfg, sections...)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	writeJSON(w, http.StatusOK, rep)
}

// query parses named float query parameters, collecting every error.
type query struct {
	r    *http.Request
	errs []error
}

func (q *query) get(name string) (string, bool) {
	s := strings.TrimSpace(q.r.URL.Query().Get(name))
	if s == "" {
		q.errs = append(q.errs, fmt.Errorf("missing parameter %q", name))
		return "", false
	}
	return s, true
}

func (q *query) float(name string) float64 {
	s, ok := q.get(name)
	if !ok {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		q.errs = append(q.errs, fmt.Errorf("parameter %q: %w", name, err))
	}
	return v
}

// int parses a whole number; fractions and out of range values are errors.
func (q *query) int(name string) int {
	s, ok := q.get(name)
	if !ok {
		return 0
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		q.errs = append(q.errs, fmt.Errorf("parameter %q: %w", name, err))
	}
	return v
}

func (q *query) err() error {
	return errors.Join(q.errs...)
}

type riskResponse struct {
	Capacity int     `json:"capacity"`
	Sold     int     `json:"sold"`
	ShowUp   float64 `json:"show_up"`
	Risk     float64 `json:"risk"`
}

func handleRisk(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	resp := riskResponse{Capacity: q.int("capacity"), Sold: q.int("sold"), ShowUp: q.float("p")}
	if err := q.err(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	risk, err := overbook.Risk(resp.Capacity, resp.Sold, resp.ShowUp)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	resp.Risk = risk
	writeJSON(w, http.StatusOK, resp)
}

type roiResponse struct {
	roi.Result
	Recommendation *decision.Recommendation `json:"recommendation,omitempty"`
}

// handleROI computes the ROI, and a recommendation when a target
// percentage is given.
func handleROI(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	inv, rev, opex := q.float("investment"), q.float("revenue"), q.float("opex")
	if err := q.err(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	res, err := roi.Compute(inv, rev, opex)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	resp := roiResponse{Result: res}
	if r.URL.Query().Has("target") {
		target := q.float("target")
		if err := q.err(); err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		rec, err := decision.Recommend(res, target)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		resp.Recommendation = &rec
	}
	writeJSON(w, http.StatusOK, resp)
}

type intervalResponse struct {
	Mean        float64 `json:"mean"`
	SD          float64 `json:"sd"`
	Lower       float64 `json:"lower"`
	Upper       float64 `json:"upper"`
	Probability float64 `json:"probability"`
}

func handleInterval(w http.ResponseWriter, r *http.Request) {
	q := &query{r: r}
	resp := intervalResponse{Mean: q.float("mean"), SD: q.float("sd"), Lower: q.float("lower"), Upper: q.float("upper")}
	if err := q.err(); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	p, err := distrib.NormalInterval(resp.Mean, resp.SD, resp.Lower, resp.Upper)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	resp.Probability = p
	writeJSON(w, http.StatusOK, resp)
}

// handleWS upgrades the connection, sends the latest report and then
// every report built by [Server.SetConfig] until the client leaves.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if errors.Log(err) != nil {
		return
	}
	c := &client{conn: conn}
	// held across the first send so that no broadcast falls between
	// reading the latest report and joining the clients
	s.cmu.Lock()
	rep, err := s.Latest()
	if err == nil {
		err = c.send(rep)
	}
	if errors.Log(err) != nil {
		s.cmu.Unlock()
		conn.Close()
		return
	}
	s.clients[c] = struct{}{}
	s.cmu.Unlock()
	slog.Debug("websocket client connected", "remote", r.RemoteAddr)

	// drain reads so close frames are processed
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	s.cmu.Lock()
	delete(s.clients, c)
	s.cmu.Unlock()
	conn.Close()
	slog.Debug("websocket client left", "remote", r.RemoteAddr)
}
