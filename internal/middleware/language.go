package middleware

import (
	"net/http"
	"strings"

	"golang.org/x/text/language"
)

// Language negotiates the response language from the `lang` query parameter, then
// Accept-Language, against the supported list. The first supported language is the
// default. The result is stored in the request context and echoed as Content-Language.
// With more than one supported language every response carries Vary: Accept-Language.
func Language(supported []string) func(http.Handler) http.Handler {
	tags := make([]language.Tag, 0, len(supported))
	names := make([]string, 0, len(supported))
	for _, s := range supported {
		tag, err := language.Parse(strings.TrimSpace(s))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		names = append(names, tag.String())
	}
	if len(tags) == 0 {
		tags = []language.Tag{language.English}
		names = []string{"en"}
	}
	matcher := language.NewMatcher(tags)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// the representation depends on Accept-Language even when the header is absent
			if len(names) > 1 {
				w.Header().Add("Vary", "Accept-Language")
			}
			lang := names[0]
			if q := strings.TrimSpace(r.URL.Query().Get("lang")); q != "" {
				_, idx, conf := matcher.Match(language.Make(q))
				if conf != language.No {
					lang = names[idx]
				}
			} else if header := r.Header.Get("Accept-Language"); header != "" {
				if prefs, _, err := language.ParseAcceptLanguage(header); err == nil && len(prefs) > 0 {
					_, idx, conf := matcher.Match(prefs...)
					if conf != language.No {
						lang = names[idx]
					}
				}
			}
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(WithLang(r.Context(), lang)))
		})
	}
}
