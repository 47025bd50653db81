package main

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tsgfulfillment.com/web/internal/config"
	"tsgfulfillment.com/web/internal/observability"
	"tsgfulfillment.com/web/internal/redirects"
)

func newTestServer(t *testing.T, env map[string]string) http.Handler {
	t.Helper()
	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvMap(env))
	require.NoError(t, err)
	h, err := newServer(cfg, zap.NewNop(), observability.NewMetrics(nil))
	require.NoError(t, err)
	return h
}

func do(t *testing.T, h http.Handler, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealthz(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "ok", rec.Body.String())
}

func TestLegacyRedirectsAreCountedAndExposed(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	rec := do(t, h, http.MethodGet, "/warehouse.php?utm_source=old")
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "/services/warehousing-services?utm_source=old", rec.Header().Get("Location"))

	rec = do(t, h, http.MethodGet, "/services/warehousing-services?utm_source=old")
	require.Equal(t, http.StatusOK, rec.Code)

	metrics := do(t, h, http.MethodGet, "/metrics")
	require.Equal(t, http.StatusOK, metrics.Code)
	require.Contains(t, metrics.Body.String(), `tsg_web_redirects_total{from="/warehouse.php"} 1`)
	require.Contains(t, metrics.Body.String(), `tsg_web_pages_rendered_total{kind="service"} 1`)
}

func TestEveryLegacyTargetRendersWithCanonical(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil)

	for _, rule := range redirects.Legacy {
		rec := do(t, h, http.MethodGet, rule.To)
		require.Equal(t, http.StatusOK, rec.Code, rule.To)
		doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
		require.NoError(t, err)
		require.Equal(t, 1, doc.Find("link[rel=canonical]").Length(), rule.To)
		require.Equal(t, "https://tsgfulfillment.com"+rule.To, doc.Find("link[rel=canonical]").AttrOr("href", ""), rule.To)
	}
}

func TestConfiguredShellRedirectsAndOrigin(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	shell := filepath.Join(dir, "index.html")
	require.NoError(t, os.WriteFile(shell, []byte(`<!DOCTYPE html><html><head><title>App</title><script src="/assets/app.js"></script></head><body><div id="root"></div></body></html>`), 0o644))
	rules := filepath.Join(dir, "redirects.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("- from: /old-quote\n  to: /quote\n"), 0o644))

	h := newTestServer(t, map[string]string{
		"TSG_WEB_SHELL":          shell,
		"TSG_WEB_REDIRECTS_FILE": rules,
		"TSG_WEB_ORIGIN":         "https://staging.tsgfulfillment.com/",
	})

	rec := do(t, h, http.MethodGet, "/old-quote")
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "/quote", rec.Header().Get("Location"))

	rec = do(t, h, http.MethodGet, "/quote")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	require.Equal(t, "https://staging.tsgfulfillment.com/quote", doc.Find("link[rel=canonical]").AttrOr("href", ""))
	require.Equal(t, 1, doc.Find(`script[src="/assets/app.js"]`).Length())
	require.Equal(t, "Request a Quote", doc.Find("#root h1").Text())
}

func TestShellWithoutRootIsRejected(t *testing.T) {
	t.Parallel()
	shell := filepath.Join(t.TempDir(), "index.html")
	require.NoError(t, os.WriteFile(shell, []byte(`<html><head></head><body></body></html>`), 0o644))

	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvMap(map[string]string{"TSG_WEB_SHELL": shell}))
	require.NoError(t, err)
	_, err = newServer(cfg, zap.NewNop(), observability.NewMetrics(nil))
	require.Error(t, err)
}

func TestDuplicateRedirectFileFailsStartup(t *testing.T) {
	t.Parallel()
	rules := filepath.Join(t.TempDir(), "redirects.yaml")
	require.NoError(t, os.WriteFile(rules, []byte("- from: /WAREHOUSE.php\n  to: /quote\n"), 0o644))

	cfg, err := config.Load(config.WithoutSystemEnv(), config.WithEnvMap(map[string]string{"TSG_WEB_REDIRECTS_FILE": rules}))
	require.NoError(t, err)
	_, err = newServer(cfg, zap.NewNop(), observability.NewMetrics(nil))
	require.ErrorIs(t, err, redirects.ErrDuplicateRule)
}

func TestAssetsAreServedWithCacheHeaders(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "assets"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "assets", "app.js"), []byte("console.log(1)"), 0o644))

	h := newTestServer(t, map[string]string{"TSG_WEB_PUBLIC_DIR": dir})
	rec := do(t, h, http.MethodGet, "/assets/app.js")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("ETag"))
}

func TestFrenchPagesUseTranslatedChrome(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, map[string]string{"TSG_WEB_LANGUAGES": "en,fr"})

	rec := do(t, h, http.MethodGet, "/about?lang=fr")
	require.Equal(t, http.StatusOK, rec.Code)
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rec.Body.String()))
	require.NoError(t, err)
	require.Equal(t, "fr", doc.Find("html").AttrOr("lang", ""))
	require.Equal(t, "À propos", doc.Find(`header a[href="/about"]`).Text())
	require.Equal(t, 3, doc.Find("link[rel=alternate][hreflang]").Length())
}
