package pages

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"tsgfulfillment.com/web/internal/i18n"
	"tsgfulfillment.com/web/internal/nav"
	"tsgfulfillment.com/web/internal/seo"
)

const defaultPageSize = 6

// Options configures a Catalog.
type Options struct {
	// ContentDir holds markdown pages that add to or replace the built-in catalog.
	ContentDir string
	PageSize   int
	Languages  []string
	// Strings translates interface text around page content. nil uses i18n.Default().
	Strings *i18n.Bundle
}

// Catalog is the set of routable pages for one site.
type Catalog struct {
	site      seo.Site
	pages     map[string]Page
	pageSize  int
	languages []string
	renderer  *Renderer
	text      *i18n.Bundle
}

// NewCatalog merges the built-in pages with any found in opts.ContentDir. Content files
// win over built-in pages with the same path.
func NewCatalog(site seo.Site, opts Options) (*Catalog, error) {
	loaded, err := LoadDir(opts.ContentDir)
	if err != nil {
		return nil, err
	}
	c := &Catalog{
		site:      site,
		pages:     make(map[string]Page, len(Builtin)+len(loaded)),
		pageSize:  opts.PageSize,
		languages: dedupeLanguages(opts.Languages),
		renderer:  NewRenderer(),
		text:      opts.Strings,
	}
	if c.text == nil {
		c.text = i18n.Default()
	}
	if c.pageSize <= 0 {
		c.pageSize = defaultPageSize
	}
	for _, p := range Builtin {
		c.pages[p.Path] = p
	}
	for _, p := range loaded {
		c.pages[p.Path] = p
	}
	return c, nil
}

// Site returns the identity the catalog builds URLs for.
func (c *Catalog) Site() seo.Site { return c.site }

// Lookup returns the page served at path.
func (c *Catalog) Lookup(path string) (Page, error) {
	if c == nil {
		return Page{}, ErrNotFound
	}
	p, ok := c.pages[normalizePath(path)]
	if !ok {
		return Page{}, ErrNotFound
	}
	return p, nil
}

// Paths lists every route in lexical order.
func (c *Catalog) Paths() []string {
	out := make([]string, 0, len(c.pages))
	for p := range c.pages {
		out = append(out, p)
	}
	sort.Strings(out)
	return out
}

// Listing returns page n (1-based) of the pages of the given kind and the total number
// of listing pages. An out-of-range n yields no items.
func (c *Catalog) Listing(kind Kind, n int) ([]Page, int) {
	var all []Page
	for _, p := range c.pages {
		if p.Kind == kind && !p.NoIndex {
			all = append(all, p)
		}
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Order != all[j].Order {
			return all[i].Order < all[j].Order
		}
		return all[i].Path < all[j].Path
	})
	total := (len(all) + c.pageSize - 1) / c.pageSize
	if total == 0 {
		total = 1
	}
	if n < 1 || n > total {
		return nil, total
	}
	start := (n - 1) * c.pageSize
	end := start + c.pageSize
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], total
}

// Descriptor builds the head state for path. n is the listing page number and is
// ignored for pages that are not listings. lang is the language named in the URL;
// when it is one of the published variants the canonical and pagination links keep
// it, so each hreflang alternate is its own canonical.
func (c *Catalog) Descriptor(path string, n int, lang string) (seo.Descriptor, error) {
	p, err := c.Lookup(path)
	if err != nil {
		return seo.Descriptor{}, err
	}
	if n < 1 || p.Kind != KindListing {
		n = 1
	}
	lang = c.variant(lang)
	d := seo.Descriptor{
		Title:         p.Title,
		Description:   p.Description,
		CanonicalPath: pageURL(p.Path, n, lang),
		OGImage:       p.OGImage,
		OGType:        p.OGType,
		NoIndex:       p.NoIndex,
	}
	if p.Kind == KindService {
		d.OGType = seo.OGArticle
		if p.OGType != "" {
			d.OGType = p.OGType
		}
	}
	if p.Kind == KindListing {
		_, total := c.Listing(p.Lists, n)
		if n > total {
			return seo.Descriptor{}, fmt.Errorf("%w: %s page %d", ErrNotFound, p.Path, n)
		}
		if n > 1 {
			d.PrevPath = pageURL(p.Path, n-1, lang)
		}
		if n < total {
			d.NextPath = pageURL(p.Path, n+1, lang)
		}
	}
	d.Alternates = c.alternates(p.Path, n)
	d.StructuredData = c.structuredData(p)
	return d, nil
}

func (c *Catalog) alternates(path string, n int) []seo.AlternateLink {
	if len(c.languages) < 2 {
		return nil
	}
	links := make([]seo.AlternateLink, 0, len(c.languages)+1)
	for _, lang := range c.languages {
		links = append(links, seo.AlternateLink{Lang: lang, URL: pageURL(path, n, lang)})
	}
	links = append(links, seo.AlternateLink{Lang: "x-default", URL: pageURL(path, n, "")})
	return links
}

// variant returns the configured spelling of lang, or "" when the catalog publishes a
// single language or lang is not one of its variants.
func (c *Catalog) variant(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" || len(c.languages) < 2 {
		return ""
	}
	for _, l := range c.languages {
		if strings.EqualFold(l, lang) {
			return l
		}
	}
	return ""
}

func (c *Catalog) structuredData(p Page) any {
	crumbs := nav.Schema(c.site, nav.Breadcrumbs(p.Path, p.Title))
	self := c.site.AbsoluteURL(p.Path)
	brand := c.site.Title("")
	switch p.Kind {
	case KindHome:
		home := c.site.AbsoluteURL("/")
		logo := ""
		if strings.TrimSpace(c.site.DefaultImage) != "" {
			logo = c.site.AbsoluteURL(c.site.DefaultImage)
		}
		return seo.Graph(
			seo.Organization(brand, home, logo),
			seo.WebSite(brand, home),
			seo.LocalBusiness(brand, home, Telephone, Address),
		)
	case KindService:
		nodes := []map[string]any{
			seo.Service(p.Title, p.Description, self, brand, "Canada"),
			crumbs,
		}
		if len(p.FAQ) > 0 {
			nodes = append(nodes, seo.FAQPage(p.FAQ))
		}
		return seo.Graph(nodes...)
	default:
		if len(p.FAQ) > 0 {
			return seo.Graph(crumbs, seo.FAQPage(p.FAQ))
		}
		return seo.Graph(crumbs)
	}
}

// pageURL renders path with its page and lang query parameters, in that order. Page 1
// and an empty lang are omitted.
func pageURL(path string, n int, lang string) string {
	var q []string
	if n > 1 {
		q = append(q, "page="+strconv.Itoa(n))
	}
	if lang != "" {
		q = append(q, "lang="+url.QueryEscape(lang))
	}
	if len(q) == 0 {
		return path
	}
	return path + "?" + strings.Join(q, "&")
}

func dedupeLanguages(langs []string) []string {
	seen := make(map[string]struct{}, len(langs))
	out := make([]string, 0, len(langs))
	for _, l := range langs {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		key := strings.ToLower(l)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, l)
	}
	return out
}
