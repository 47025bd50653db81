package pages

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"tsgfulfillment.com/web/internal/nav"
)

var bodyTemplate = template.Must(template.New("body").Parse(`<header class="site-header"><nav aria-label="{{.Labels.Main}}"><a href="/" class="brand">{{.Brand}}</a><ul>{{range .Nav}}<li><a href="{{.Href}}"{{if .Active}} aria-current="page"{{end}}>{{.Label}}</a></li>{{end}}</ul></nav></header>
<main>
{{- if gt (len .Crumbs) 1}}<nav aria-label="{{.Labels.Breadcrumb}}" class="breadcrumbs"><ol>{{range .Crumbs}}<li>{{if .Active}}<span aria-current="page">{{.Label}}</span>{{else}}<a href="{{.Href}}">{{.Label}}</a>{{end}}</li>{{end}}</ol></nav>{{end}}
<h1>{{.Heading}}</h1>
<div class="content">{{.Content}}</div>
{{- if .Items}}<ul class="cards">{{range .Items}}<li><a href="{{.Path}}"><h2>{{.Title}}</h2><p>{{.Description}}</p></a></li>{{end}}</ul>{{end}}
{{- if or .Prev .Next}}<nav aria-label="{{.Labels.Pagination}}" class="pagination">{{if .Prev}}<a rel="prev" href="{{.Prev}}">{{.Labels.Prev}}</a>{{end}}{{if .Next}}<a rel="next" href="{{.Next}}">{{.Labels.Next}}</a>{{end}}</nav>{{end}}
</main>`))

var notFoundTemplate = template.Must(template.New("notfound").Parse(
	`<p>{{.Body}} <a href="/">{{.Home}}</a> · <a href="/contact">{{.Contact}}</a></p>`))

type bodyLabels struct {
	Main       string
	Breadcrumb string
	Pagination string
	Prev       string
	Next       string
}

type bodyView struct {
	Brand   string
	Labels  bodyLabels
	Nav     []nav.RenderedItem
	Crumbs  []nav.Crumb
	Heading string
	Content template.HTML
	Items   []Page
	Prev    string
	Next    string
}

// Body renders the markup placed in the app root for path in lang. n is the listing
// page number.
func (c *Catalog) Body(path string, n int, lang string) (string, error) {
	p, err := c.Lookup(path)
	if err != nil {
		return "", err
	}
	content, err := c.renderer.Markdown(p.Body)
	if err != nil {
		return "", err
	}
	view := c.view(p.Path, lang)
	view.Crumbs = c.crumbs(p.Path, p.Title, lang)
	view.Heading = p.heading()
	// sanitized by the renderer's policy
	view.Content = template.HTML(content)
	if p.Kind == KindListing {
		if n < 1 {
			n = 1
		}
		items, total := c.Listing(p.Lists, n)
		if n > total {
			return "", fmt.Errorf("%w: %s page %d", ErrNotFound, p.Path, n)
		}
		view.Items = items
		if n > 1 {
			view.Prev = pageURL(p.Path, n-1, "")
		}
		if n < total {
			view.Next = pageURL(p.Path, n+1, "")
		}
	}
	return execute(view)
}

// NotFoundBody renders the markup for a path with no page.
func (c *Catalog) NotFoundBody(path, lang string) (string, error) {
	var msg bytes.Buffer
	err := notFoundTemplate.Execute(&msg, map[string]string{
		"Body":    c.text.T(lang, "notfound.body"),
		"Home":    c.text.T(lang, "notfound.home"),
		"Contact": c.text.T(lang, "notfound.contact"),
	})
	if err != nil {
		return "", fmt.Errorf("pages: render body: %w", err)
	}
	view := c.view(normalizePath(path), lang)
	view.Heading = c.text.T(lang, "notfound.heading")
	view.Content = template.HTML(msg.String())
	return execute(view)
}

func (c *Catalog) view(path, lang string) bodyView {
	items := nav.Build(path)
	for i := range items {
		items[i].Label = c.label(items[i].Href, items[i].Label, lang)
	}
	return bodyView{
		Brand: c.site.Title(""),
		Nav:   items,
		Labels: bodyLabels{
			Main:       c.text.T(lang, "nav.main"),
			Breadcrumb: c.text.T(lang, "nav.breadcrumb"),
			Pagination: c.text.T(lang, "pagination.label"),
			Prev:       c.text.T(lang, "pagination.prev"),
			Next:       c.text.T(lang, "pagination.next"),
		},
	}
}

func (c *Catalog) crumbs(path, leaf, lang string) []nav.Crumb {
	crumbs := nav.Breadcrumbs(path, leaf)
	for i := range crumbs {
		if crumbs[i].Active {
			continue
		}
		crumbs[i].Label = c.label(crumbs[i].Href, crumbs[i].Label, lang)
	}
	return crumbs
}

// label translates a navigation label keyed by its href, keeping fallback for hrefs
// without an entry.
func (c *Catalog) label(href, fallback, lang string) string {
	key := "nav." + strings.Trim(href, "/")
	if href == "/" {
		key = "nav.home"
	}
	if v := c.text.T(lang, key); v != key {
		return v
	}
	return fallback
}

func execute(view bodyView) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, view); err != nil {
		return "", fmt.Errorf("pages: render body: %w", err)
	}
	return buf.String(), nil
}
