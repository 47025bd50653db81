package redirects

import (
	"net/http"

	"go.uber.org/zap"

	"tsgfulfillment.com/web/internal/observability"
)

// Observer is notified of every redirect served.
type Observer interface {
	ObserveRedirect(from string)
}

// Middleware answers GET and HEAD requests for legacy paths with a permanent redirect.
// The original query string is carried over; the target is not resolved again.
func Middleware(t *Table, obs Observer) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet && r.Method != http.MethodHead {
				next.ServeHTTP(w, r)
				return
			}
			rule, ok := t.Match(r.URL.Path)
			to := rule.To
			if !ok || to == r.URL.Path {
				next.ServeHTTP(w, r)
				return
			}
			location := to
			if r.URL.RawQuery != "" {
				location += "?" + r.URL.RawQuery
			}
			observability.FromContext(r.Context()).Debug("legacy redirect",
				zap.String("from", r.URL.Path),
				zap.String("to", to),
			)
			if obs != nil {
				obs.ObserveRedirect(rule.From)
			}
			http.Redirect(w, r, location, http.StatusMovedPermanently)
		})
	}
}
