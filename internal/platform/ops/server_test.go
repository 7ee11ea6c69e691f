package ops

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-barista/internal/storage"
)

type fakeLister struct {
	solves     []storage.Solve
	err        error
	difficulty string
	limit      int
}

func (f *fakeLister) BestSolves(difficulty string, limit int) ([]storage.Solve, error) {
	f.difficulty = difficulty
	f.limit = limit
	return f.solves, f.err
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	s := NewServer(prometheus.NewRegistry(), nil, nil)
	rec := get(t, s, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestMetricsEndpoint(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg).Solved("medium", 30)

	rec := get(t, NewServer(reg, nil, nil), "/metrics")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `barista_rounds_solved_total{difficulty="medium"} 1`)
}

func TestSolves(t *testing.T) {
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	lister := &fakeLister{solves: []storage.Solve{
		{RoundID: "r1", Difficulty: "easy", Moves: 7, Duration: 1500 * time.Millisecond, CreatedAt: created},
	}}
	s := NewServer(prometheus.NewRegistry(), lister, nil)

	rec := get(t, s, "/solves/e?limit=500")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "easy", lister.difficulty)
	assert.Equal(t, maxSolveLimit, lister.limit)

	var out []solveJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.Len(t, out, 1)
	assert.Equal(t, "r1", out[0].RoundID)
	assert.Equal(t, int64(1500), out[0].DurationMs)
	assert.True(t, created.Equal(out[0].CreatedAt))

	rec = get(t, s, "/solves")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "", lister.difficulty)
	assert.Equal(t, defaultSolveLimit, lister.limit)
}

func TestSolvesErrors(t *testing.T) {
	tests := []struct {
		name   string
		lister SolveLister
		path   string
		code   int
	}{
		{"no store", nil, "/solves", http.StatusServiceUnavailable},
		{"unknown difficulty", &fakeLister{}, "/solves/extreme", http.StatusNotFound},
		{"bad limit", &fakeLister{}, "/solves?limit=zero", http.StatusBadRequest},
		{"negative limit", &fakeLister{}, "/solves?limit=-2", http.StatusBadRequest},
		{"store error", &fakeLister{err: errors.New("boom")}, "/solves", http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := get(t, NewServer(prometheus.NewRegistry(), tt.lister, nil), tt.path)
			assert.Equal(t, tt.code, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json"))
		})
	}
}
