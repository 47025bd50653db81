package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAssetsWithCacheServesAndRevalidates(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "css"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "css", "site.css"), []byte("body{}"), 0o644))
	h := AssetsWithCache(dir, "/assets/")

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "body{}", rec.Body.String())
	etag := rec.Header().Get("ETag")
	require.NotEmpty(t, etag)
	require.Contains(t, rec.Header().Get("Cache-Control"), "max-age=604800")

	req := httptest.NewRequest(http.MethodGet, "/assets/css/site.css", nil)
	req.Header.Set("If-None-Match", `"other", `+etag)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotModified, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/assets/missing.js", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLanguageNegotiation(t *testing.T) {
	t.Parallel()
	var got string
	h := Language([]string{"en", "fr-CA"})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = Lang(r.Context(), "")
	}))

	cases := []struct {
		name   string
		target string
		accept string
		want   string
	}{
		{name: "default", target: "/", want: "en"},
		{name: "query", target: "/?lang=fr-CA", want: "fr-CA"},
		{name: "query wins over header", target: "/?lang=en", accept: "fr-CA", want: "en"},
		{name: "header", target: "/", accept: "fr-CA,fr;q=0.9", want: "fr-CA"},
		{name: "unsupported", target: "/?lang=de", want: "en"},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, tc.target, nil)
		if tc.accept != "" {
			req.Header.Set("Accept-Language", tc.accept)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, tc.want, got, tc.name)
		require.Equal(t, tc.want, rec.Header().Get("Content-Language"), tc.name)
	}
}

func TestLanguageVariesOnAcceptLanguage(t *testing.T) {
	t.Parallel()
	noop := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {})
	multi := Language([]string{"en", "fr-CA"})(noop)

	for _, target := range []string{"/", "/?lang=fr-CA"} {
		rec := httptest.NewRecorder()
		multi.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
		require.Contains(t, rec.Header().Values("Vary"), "Accept-Language", target)
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept-Language", "fr-CA")
	Language([]string{"en"})(noop).ServeHTTP(rec, req)
	require.Empty(t, rec.Header().Values("Vary"))
}

func TestLangFallback(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	require.Equal(t, "en", Lang(req.Context(), "en"))
}

func TestWriteErrorNegotiatesJSON(t *testing.T) {
	t.Parallel()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "application/json")
	rec := httptest.NewRecorder()
	WriteError(rec, req, http.StatusInternalServerError, "render failed")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.JSONEq(t, `{"error":"render failed"}`, rec.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Accept", "text/html,application/json")
	rec = httptest.NewRecorder()
	WriteError(rec, req, http.StatusInternalServerError, "render failed")
	require.Equal(t, "render failed\n", rec.Body.String())
}
