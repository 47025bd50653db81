package observability

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMetricsCountersAreIsolatedPerRegistry(t *testing.T) {
	t.Parallel()

	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveRedirect("/warehouse.php")
	m.ObserveRedirect("/warehouse.php")
	m.ObserveHeadSyncFailure("structured_data")

	require.Equal(t, 2.0, testutil.ToFloat64(m.RedirectsTotal.WithLabelValues("/warehouse.php")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.HeadSyncFailuresTotal.WithLabelValues("structured_data")))

	// a second set on its own registry must not panic on duplicate registration
	other := NewMetrics(nil)
	require.Equal(t, 0.0, testutil.ToFloat64(other.RedirectsTotal.WithLabelValues("/warehouse.php")))
}

func TestMetricsHandlerExposesCounters(t *testing.T) {
	t.Parallel()

	m := NewMetrics(nil)
	m.ObservePageRendered("service")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `tsg_web_pages_rendered_total{kind="service"} 1`)
}

func TestNilMetricsAreSafe(t *testing.T) {
	t.Parallel()

	var m *Metrics
	require.NotPanics(t, func() {
		m.ObserveRedirect("/x")
		m.ObserveHeadSyncFailure("x")
		m.ObservePageRendered("x")
	})
}
