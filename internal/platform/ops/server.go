package ops

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/vovakirdan/tui-barista/internal/games/barista/core"
	"github.com/vovakirdan/tui-barista/internal/storage"
)

const (
	defaultSolveLimit = 10
	maxSolveLimit     = 100
)

// SolveLister is the part of the solve store the HTTP endpoint reads.
type SolveLister interface {
	BestSolves(difficulty string, limit int) ([]storage.Solve, error)
}

// Server serves health, metrics and solve listings over HTTP.
type Server struct {
	r      *chi.Mux
	solves SolveLister
	logger *log.Logger
}

// solveJSON is the wire form of a solve.
type solveJSON struct {
	RoundID    string    `json:"round_id"`
	Difficulty string    `json:"difficulty"`
	Moves      int       `json:"moves"`
	DurationMs int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewServer builds the router. solves may be nil, in which case /solves
// reports the store as unavailable.
func NewServer(gatherer prometheus.Gatherer, solves SolveLister, logger *log.Logger) *Server {
	s := &Server{r: chi.NewRouter(), solves: solves, logger: logger}

	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(10 * time.Second))

	s.r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	s.r.Get("/solves", s.handleSolves)
	s.r.Get("/solves/{difficulty}", s.handleSolves)

	return s
}

// Router exposes the router for tests.
func (s *Server) Router() chi.Router { return s.r }

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
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
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Server) handleSolves(w http.ResponseWriter, r *http.Request) {
	if s.solves == nil {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "solve history unavailable"})
		return
	}

	difficulty := chi.URLParam(r, "difficulty")
	if difficulty != "" {
		d, ok := core.ParseDifficulty(difficulty)
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown difficulty"})
			return
		}
		difficulty = d.String()
	}

	limit := defaultSolveLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "limit must be a positive integer"})
			return
		}
		limit = min(n, maxSolveLimit)
	}

	solves, err := s.solves.BestSolves(difficulty, limit)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("list solves", "difficulty", difficulty, "error", err)
		}
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "cannot list solves"})
		return
	}

	out := make([]solveJSON, 0, len(solves))
	for _, sv := range solves {
		out = append(out, solveJSON{
			RoundID:    sv.RoundID,
			Difficulty: sv.Difficulty,
			Moves:      sv.Moves,
			DurationMs: sv.Duration.Milliseconds(),
			CreatedAt:  sv.CreatedAt,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
