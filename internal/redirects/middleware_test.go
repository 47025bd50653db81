package redirects

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type redirectCounter map[string]int

func (c redirectCounter) ObserveRedirect(from string) { c[from]++ }

func TestMiddlewareRedirectsLegacyPaths(t *testing.T) {
	t.Parallel()

	counter := redirectCounter{}
	h := Middleware(MustNew(Legacy), counter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Warehouse.php?utm_source=mail", nil))

	require.Equal(t, http.StatusMovedPermanently, rec.Code)
	require.Equal(t, "/services/warehousing-services?utm_source=mail", rec.Header().Get("Location"))
	require.Equal(t, 1, counter["/warehouse.php"])
}

func TestMiddlewarePassesThroughUnknownPathsAndUnsafeMethods(t *testing.T) {
	t.Parallel()

	var served int
	h := Middleware(MustNew(Legacy), nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		served++
		w.WriteHeader(http.StatusNoContent)
	}))

	for _, req := range []*http.Request{
		httptest.NewRequest(http.MethodGet, "/services/warehousing-services", nil),
		httptest.NewRequest(http.MethodPost, "/warehouse.php", nil),
	} {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusNoContent, rec.Code)
	}
	require.Equal(t, 2, served)
}

func TestMiddlewareIgnoresSelfRedirects(t *testing.T) {
	t.Parallel()

	table := MustNew([]Rule{{From: "/Loop", To: "/loop"}})
	h := Middleware(table, nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/loop", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/Loop", nil))
	require.Equal(t, http.StatusMovedPermanently, rec.Code)
}
