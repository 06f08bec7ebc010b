package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewManager_Counters(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()

	m.CounterWorkoutsAdded.WithLabelValues("Workout").Inc()
	m.CounterWorkoutsAdded.WithLabelValues("Workout").Inc()
	m.CounterWorkoutsAdded.WithLabelValues("Warm-up").Inc()
	m.CounterRejectedEntries.WithLabelValues("invalid_duration").Inc()
	m.CounterWorkoutsDeleted.Inc()
	m.GaugeLedgerEntries.Set(2)

	assert.Equal(t, float64(2), testutil.ToFloat64(m.CounterWorkoutsAdded.WithLabelValues("Workout")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterWorkoutsAdded.WithLabelValues("Warm-up")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterRejectedEntries.WithLabelValues("invalid_duration")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.CounterWorkoutsDeleted))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.GaugeLedgerEntries))

	families, err := reg.Gather()
	require.NoError(t, err)

	var found *dto.MetricFamily
	for _, mf := range families {
		if mf.GetName() == "fitlog_test_server_workouts_added" {
			found = mf
		}
	}
	require.NotNil(t, found)
	assert.Equal(t, dto.MetricType_COUNTER, found.GetType())
	assert.Len(t, found.GetMetric(), 2)
}

func TestNewManager_SeparateRegistries(t *testing.T) {
	// registering twice into separate registries must not panic
	m1 := NewTestManager()
	m2 := NewTestManager()
	m1.CounterRateLimitedRequests.Inc()
	assert.Equal(t, float64(1), testutil.ToFloat64(m1.CounterRateLimitedRequests))
	assert.Equal(t, float64(0), testutil.ToFloat64(m2.CounterRateLimitedRequests))
}

func TestHistogramRenderDuration(t *testing.T) {
	m, reg := NewTestManagerAndRegistry()
	m.HistogramRenderDuration.WithLabelValues("bar").Observe(0.02)
	m.HistogramRenderDuration.WithLabelValues("bar").Observe(0.3)

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "fitlog_test_server_render_duration_seconds" {
			continue
		}
		require.Len(t, mf.GetMetric(), 1)
		h := mf.GetMetric()[0].GetHistogram()
		assert.Equal(t, uint64(2), h.GetSampleCount())
		assert.InDelta(t, 0.32, h.GetSampleSum(), 1e-9)
		return
	}
	t.Fatal("render duration histogram not gathered")
}

func TestSetupPrometheusAndHandler(t *testing.T) {
	reg := SetupPrometheus()
	m := NewManager("fitlog", "main", reg)
	m.GaugeLifeSignal.Set(1)

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	Handler(reg).ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := rr.Body.String()
	assert.True(t, strings.Contains(body, "fitlog_main_life_signal 1"))
	assert.Contains(t, body, "go_goroutines")
}
