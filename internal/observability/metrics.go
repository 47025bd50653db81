package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics groups the counters recorded by the web frontend.
type Metrics struct {
	RedirectsTotal        *prometheus.CounterVec
	HeadSyncFailuresTotal *prometheus.CounterVec
	PagesRenderedTotal    *prometheus.CounterVec

	gatherer prometheus.Gatherer
}

// NewMetrics registers the counters on reg. A nil registry gets a fresh one so tests
// never collide on the global default registerer.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	factory := promauto.With(reg)
	return &Metrics{
		RedirectsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tsg_web_redirects_total",
			Help: "Total number of legacy URL redirects served, by source path",
		}, []string{"from"}),
		HeadSyncFailuresTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tsg_web_head_sync_failures_total",
			Help: "Total number of document head synchronizations that failed",
		}, []string{"reason"}),
		PagesRenderedTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "tsg_web_pages_rendered_total",
			Help: "Total number of pages rendered, by page kind",
		}, []string{"kind"}),
		gatherer: reg,
	}
}

// ObserveRedirect counts one redirect from the given legacy path.
func (m *Metrics) ObserveRedirect(from string) {
	if m == nil {
		return
	}
	m.RedirectsTotal.WithLabelValues(from).Inc()
}

// ObserveHeadSyncFailure counts one failed head synchronization.
func (m *Metrics) ObserveHeadSyncFailure(reason string) {
	if m == nil {
		return
	}
	m.HeadSyncFailuresTotal.WithLabelValues(reason).Inc()
}

// ObservePageRendered counts one rendered page.
func (m *Metrics) ObservePageRendered(kind string) {
	if m == nil {
		return
	}
	m.PagesRenderedTotal.WithLabelValues(kind).Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
