// Package server serves a catalog through the same query API the app's CMS
// client speaks, plus a contact endpoint and an HTML overview. It backs
// offline previews and kiosks without a hosted CMS.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/depeter/shutterfolio/internal/contact"
	"github.com/depeter/shutterfolio/internal/content"
)

var typeFilter = regexp.MustCompile(`_type\s*==\s*"([A-Za-z0-9_]+)"`)

// Server holds the catalog being served and the messages received.
type Server struct {
	catalog *content.Catalog
	dataset string
	logger  *zap.Logger

	mu    sync.Mutex
	inbox []contact.Message
}

// New serves cat under dataset. A nil catalog serves the bundled one.
func New(cat *content.Catalog, dataset string, logger *zap.Logger) *Server {
	if cat == nil {
		cat = content.Fallback()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if dataset == "" {
		dataset = "production"
	}
	return &Server{catalog: cat, dataset: dataset, logger: logger}
}

// Routes builds the router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(15 * time.Second))

	r.Get("/", s.index)
	r.Get("/healthz", s.healthz)
	r.Get("/v{version}/data/query/{dataset}", s.query)
	r.Post("/api/contact", s.contact)
	return r
}

// Messages returns a copy of the contact messages received so far.
func (s *Server) Messages() []contact.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]contact.Message(nil), s.inbox...)
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("took", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}

func (s *Server) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

type queryResponse struct {
	Query  string      `json:"query"`
	Result interface{} `json:"result"`
	MS     int64       `json:"ms"`
}

func (s *Server) query(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	if chi.URLParam(r, "dataset") != s.dataset {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "dataset not found"})
		return
	}
	q := r.URL.Query().Get("query")
	if q == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing query"})
		return
	}

	var result interface{}
	docType := ""
	if m := typeFilter.FindStringSubmatch(q); m != nil {
		docType = m[1]
	}
	switch docType {
	case "project":
		result = s.catalog.Projects
	case "service":
		result = s.catalog.Services
	case "about":
		result = s.catalog.About
	}
	writeJSON(w, http.StatusOK, queryResponse{
		Query:  q,
		Result: result,
		MS:     time.Since(start).Milliseconds(),
	})
}

func (s *Server) contact(w http.ResponseWriter, r *http.Request) {
	var msg contact.Message
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64<<10))
	if err := dec.Decode(&msg); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	msg = msg.Normalize()
	if err := msg.Validate(); err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": err.Error()})
		return
	}

	s.mu.Lock()
	s.inbox = append(s.inbox, msg)
	s.mu.Unlock()

	s.logger.Info("contact message received",
		zap.String("name", msg.Name),
		zap.String("email", msg.Email),
		zap.String("subject", msg.Subject),
		zap.Int("length", len(msg.Body)),
	)
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "received"})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// ListenAndServe runs handler on addr until ctx is cancelled, then shuts
// down gracefully.
func ListenAndServe(ctx context.Context, addr string, handler http.Handler, logger *zap.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("content server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		<-errCh
		logger.Info("content server stopped")
		return nil
	}
}
