// Package pages holds the site's page catalog and turns each route into the head
// descriptor and body markup it is rendered with.
package pages

import (
	"errors"
	"strings"

	"tsgfulfillment.com/web/internal/seo"
)

// ErrNotFound is returned for paths that have no page.
var ErrNotFound = errors.New("pages: not found")

// Kind classifies pages for structured data and listings.
type Kind string

const (
	KindHome     Kind = "home"
	KindService  Kind = "service"
	KindIndustry Kind = "industry"
	KindListing  Kind = "listing"
	KindPage     Kind = "page"
)

// Page is one routable page of the marketing site.
type Page struct {
	Path        string
	Kind        Kind
	Title       string
	Heading     string
	Description string
	Body        string // markdown
	OGImage     string
	OGType      seo.OGType
	NoIndex     bool
	Order       int
	FAQ         []seo.Question
	// Lists names the kind of pages a listing page enumerates.
	Lists Kind
}

func (p Page) heading() string {
	if strings.TrimSpace(p.Heading) != "" {
		return p.Heading
	}
	return p.Title
}

type frontMatter struct {
	Path        string           `yaml:"path"`
	Kind        string           `yaml:"kind"`
	Title       string           `yaml:"title"`
	Heading     string           `yaml:"heading"`
	Description string           `yaml:"description"`
	OGImage     string           `yaml:"og_image"`
	OGType      string           `yaml:"og_type"`
	NoIndex     bool             `yaml:"noindex"`
	Order       int              `yaml:"order"`
	Lists       string           `yaml:"lists"`
	FAQ         []frontMatterFAQ `yaml:"faq"`
}

type frontMatterFAQ struct {
	Question string `yaml:"q"`
	Answer   string `yaml:"a"`
}

func normalizePath(p string) string {
	p = strings.TrimSpace(p)
	if i := strings.IndexAny(p, "?#"); i != -1 {
		p = p[:i]
	}
	if p == "" || p == "/" {
		return "/"
	}
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	return strings.TrimRight(p, "/")
}
