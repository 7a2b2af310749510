// Package api serves the catalog and character data consumed by the
// explorer frontend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/RemiKalbe/unicode-explorer/logger"
	"github.com/RemiKalbe/unicode-explorer/names"
)

type Server struct {
	loader    *names.Loader
	pageLimit int
	srv       *http.Server
}

func NewServer(addr string, loader *names.Loader, pageLimit int) *Server {
	s := &Server{
		loader:    loader,
		pageLimit: pageLimit,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/blocks", instrument("blocks", s.handleBlocks))
	mux.HandleFunc("GET /api/blocks/{slug}", instrument("block", s.handleBlock))
	mux.HandleFunc("GET /api/char/{cp}", instrument("char", s.handleChar))
	mux.HandleFunc("GET /api/search", instrument("search", s.handleSearch))
	mux.Handle("GET /metrics", promhttp.Handler())

	s.srv = &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return s
}

// Handler exposes the routing for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}

func (s *Server) ListenAndServe() error {
	logger.Info("api listening", zap.String("addr", s.srv.Addr))
	err := s.srv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("writing response", zap.Error(err))
	}
}

type errorBody struct {
	Error string `json:"error"`
}

func writeNotFound(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusNotFound, errorBody{Error: msg})
}
