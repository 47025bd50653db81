package pages

import (
	"bytes"
	"fmt"
	"sync"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts page markdown into sanitized HTML. Results are cached per source.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy

	mu    sync.RWMutex
	cache map[string]string
}

// NewRenderer returns a renderer with GitHub-flavoured markdown and a UGC sanitizing policy.
func NewRenderer() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
		policy: newBodyPolicy(),
		cache:  make(map[string]string),
	}
}

func newBodyPolicy() *bluemonday.Policy {
	policy := bluemonday.UGCPolicy()
	policy.AllowElements("figure", "figcaption", "section")
	policy.AllowAttrs("class").OnElements("figure", "figcaption", "p", "span", "section")
	policy.AllowAttrs("id").OnElements("h1", "h2", "h3", "h4")
	policy.AllowAttrs("loading").OnElements("img")
	return policy
}

// Markdown renders src to HTML.
func (r *Renderer) Markdown(src string) (string, error) {
	r.mu.RLock()
	out, ok := r.cache[src]
	r.mu.RUnlock()
	if ok {
		return out, nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("pages: render markdown: %w", err)
	}
	out = r.policy.Sanitize(buf.String())
	r.mu.Lock()
	r.cache[src] = out
	r.mu.Unlock()
	return out, nil
}
