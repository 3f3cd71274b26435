package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCountersRecordOnPrivateRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	counters := newCounters(reg)

	counters.RemoteRequests.Inc(OutcomeRetry)
	counters.RemoteRequests.Inc(OutcomeRetry)
	counters.Queries.Inc("Events", "ok")
	counters.ConnectivityUp.Set(1)

	remote := counters.RemoteRequests.(*PrometheusCounter).counter
	assert.Equal(t, 2.0, testutil.ToFloat64(remote.WithLabelValues(OutcomeRetry)))
	assert.Equal(t, 1.0, testutil.ToFloat64(counters.ConnectivityUp.(*PrometheusGauge).gauge))

	n, err := testutil.GatherAndCount(reg, "datasource_queries_total")
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNewTestCountersCanBeBuiltTwice(t *testing.T) {
	assert.NotPanics(t, func() {
		NewTestCounters()
		NewTestCounters()
	})
}

func TestConfigureRouterServesMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	ConfigureRouter(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "go_goroutines")
}
