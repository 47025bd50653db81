package redirects

import "strings"

// CanonicalSetter owns the document's single canonical link.
type CanonicalSetter interface {
	SetCanonical(href string) error
}

// ApplyCanonical points the canonical link at origin+path, creating the link when
// absent and updating it in place otherwise. The navigator calls it as soon as a rule
// matches, before the destination page is entered.
func ApplyCanonical(doc CanonicalSetter, origin, path string) error {
	path = stripQuery(path)
	if path == "" {
		path = "/"
	}
	return doc.SetCanonical(strings.TrimRight(origin, "/") + path)
}
