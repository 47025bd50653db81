// Package handlers serves the marketing pages: each request clones the HTML shell,
// navigates it to the requested route and writes the result.
package handlers

import (
	"bytes"
	"net/http"

	"go.uber.org/zap"

	"tsgfulfillment.com/web/internal/headdoc"
	"tsgfulfillment.com/web/internal/middleware"
	"tsgfulfillment.com/web/internal/observability"
	"tsgfulfillment.com/web/internal/pages"
	"tsgfulfillment.com/web/internal/redirects"
	"tsgfulfillment.com/web/internal/router"
	"tsgfulfillment.com/web/internal/seo"
)

// Metrics records page handler outcomes.
type Metrics interface {
	router.Observer
	ObservePageRendered(kind string)
}

// Pages renders catalog pages into the shell document.
type Pages struct {
	shell       *headdoc.Document
	catalog     *pages.Catalog
	redirects   *redirects.Table
	metrics     Metrics
	defaultLang string
}

// NewPages returns the page handler. shell may be nil, in which case a blank document
// is used. table and metrics may be nil.
func NewPages(shell *headdoc.Document, catalog *pages.Catalog, table *redirects.Table, metrics Metrics, defaultLang string) *Pages {
	if shell == nil {
		shell = headdoc.New()
	}
	if defaultLang == "" {
		defaultLang = "en"
	}
	return &Pages{shell: shell, catalog: catalog, redirects: table, metrics: metrics, defaultLang: defaultLang}
}

func (h *Pages) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := observability.FromContext(r.Context())
	doc := h.shell.Clone()
	target := r.URL.RequestURI()
	history := router.NewMemoryHistory(target)

	opts := []router.Option{router.WithLogger(logger)}
	if h.metrics != nil {
		opts = append(opts, router.WithObserver(h.metrics))
	}
	nav := router.New(h.redirects, h.catalog, seo.NewSynchronizer(doc, h.catalog.Site()), history, opts...)

	res, err := nav.Navigate(r.Context(), target)
	if err != nil {
		logger.Error("navigation failed", zap.String("path", r.URL.Path), zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if res.RedirectedFrom != "" {
		http.Redirect(w, r, history.Current(), http.StatusMovedPermanently)
		return
	}

	lang := middleware.Lang(r.Context(), h.defaultLang)
	status := http.StatusOK
	kind := "not_found"
	var body string
	if res.NotFound {
		status = http.StatusNotFound
		body, err = h.catalog.NotFoundBody(res.Path, lang)
	} else {
		page, _ := h.catalog.Lookup(res.Path)
		kind = string(page.Kind)
		body, err = h.catalog.Body(res.Path, res.Page, lang)
	}
	if err != nil {
		logger.Error("page render failed", zap.String("path", res.Path), zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}

	doc.SetLang(lang)
	if err := doc.SetInnerHTML("#root", body); err != nil {
		logger.Warn("shell has no app root", zap.Error(err))
	}
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		logger.Error("document render failed", zap.String("path", res.Path), zap.Error(err))
		middleware.WriteError(w, r, http.StatusInternalServerError, "internal error")
		return
	}
	if h.metrics != nil {
		h.metrics.ObservePageRendered(kind)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}
