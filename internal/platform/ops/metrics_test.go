package ops

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// metricValue returns the value of a counter or gauge sample with the
// given label set, or -1 when it was not gathered.
func metricValue(t *testing.T, reg *prometheus.Registry, name string, labels map[string]string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			match := true
			for _, lp := range m.GetLabel() {
				if labels[lp.GetName()] != lp.GetValue() {
					match = false
				}
			}
			if !match {
				continue
			}
			if c := m.GetCounter(); c != nil {
				return c.GetValue()
			}
			if g := m.GetGauge(); g != nil {
				return g.GetValue()
			}
			if h := m.GetHistogram(); h != nil {
				return float64(h.GetSampleCount())
			}
		}
	}
	return -1
}

func TestMetricsRecord(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	m.SessionStarted()
	m.SessionStarted()
	m.SessionEnded()
	m.RoundStarted("easy")
	m.Poured("easy", 3)
	m.Poured("easy", 0)
	m.Solved("easy", 12)

	assert.Equal(t, 2.0, metricValue(t, reg, "barista_ssh_sessions_total", nil))
	assert.Equal(t, 1.0, metricValue(t, reg, "barista_ssh_active_sessions", nil))
	easy := map[string]string{"difficulty": "easy"}
	assert.Equal(t, 1.0, metricValue(t, reg, "barista_rounds_started_total", easy))
	assert.Equal(t, 3.0, metricValue(t, reg, "barista_rounds_pours_total", easy))
	assert.Equal(t, 1.0, metricValue(t, reg, "barista_rounds_solved_total", easy))
	assert.Equal(t, 1.0, metricValue(t, reg, "barista_rounds_solve_moves", easy))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.SessionStarted()
		m.SessionEnded()
		m.RoundStarted("hard")
		m.Poured("hard", 1)
		m.Solved("hard", 1)
	})
}
