// Package headdoc implements seo.HeadStore on top of a parsed HTML document so the
// head can be synchronized on the server before the page is written out.
package headdoc

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"tsgfulfillment.com/web/internal/seo"
)

// ErrMissingHead is returned when the document has no <head> to operate on.
var ErrMissingHead = seo.ErrMissingHead

const blankDocument = `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"></head><body><div id="root"></div></body></html>`

// Document is a mutable HTML document. It is not safe for concurrent use; callers
// clone a shared shell per request.
type Document struct {
	root *html.Node
	doc  *goquery.Document
}

var _ seo.HeadStore = (*Document)(nil)

// Parse reads a full HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("headdoc: parse: %w", err)
	}
	return FromNode(root), nil
}

// ParseString is Parse for an in-memory document.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// New returns a minimal empty document.
func New() *Document {
	d, err := ParseString(blankDocument)
	if err != nil {
		panic(err)
	}
	return d
}

// FromNode wraps an existing node tree. Fragments without a head are accepted here
// and rejected by every head operation with ErrMissingHead.
func FromNode(root *html.Node) *Document {
	if root == nil {
		return &Document{}
	}
	return &Document{root: root, doc: goquery.NewDocumentFromNode(root)}
}

// Clone returns a deep copy that shares no nodes with d.
func (d *Document) Clone() *Document {
	if d == nil || d.root == nil {
		return &Document{}
	}
	return FromNode(cloneNode(d.root))
}

func (d *Document) head() (*html.Node, error) {
	if d == nil || d.doc == nil {
		return nil, ErrMissingHead
	}
	sel := d.doc.Find("head").First()
	if sel.Length() == 0 {
		return nil, ErrMissingHead
	}
	return sel.Nodes[0], nil
}

// Find implements seo.HeadStore.
func (d *Document) Find(selector string) ([]seo.Element, error) {
	head, err := d.head()
	if err != nil {
		return nil, err
	}
	matches := goquery.NewDocumentFromNode(head).Find(selector)
	out := make([]seo.Element, 0, matches.Length())
	for _, n := range matches.Nodes {
		out = append(out, &Element{node: n})
	}
	return out, nil
}

// Create implements seo.HeadStore.
func (d *Document) Create(tag string, attrs ...seo.Attr) (seo.Element, error) {
	head, err := d.head()
	if err != nil {
		return nil, err
	}
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return nil, fmt.Errorf("headdoc: empty tag name")
	}
	n := &html.Node{
		Type:     html.ElementNode,
		Data:     tag,
		DataAtom: atom.Lookup([]byte(tag)),
	}
	for _, a := range attrs {
		n.Attr = append(n.Attr, html.Attribute{Key: a.Name, Val: a.Value})
	}
	head.AppendChild(n)
	return &Element{node: n}, nil
}

// Remove implements seo.HeadStore. Removing a detached element is a no-op.
func (d *Document) Remove(el seo.Element) error {
	e, ok := el.(*Element)
	if !ok || e == nil || e.node == nil {
		return fmt.Errorf("headdoc: cannot remove foreign element %T", el)
	}
	if e.node.Parent != nil {
		e.node.Parent.RemoveChild(e.node)
	}
	return nil
}

// Count returns how many head elements match selector.
func (d *Document) Count(selector string) int {
	els, err := d.Find(selector)
	if err != nil {
		return 0
	}
	return len(els)
}

// Title returns the text of the first <title> in the head.
func (d *Document) Title() string {
	els, err := d.Find("title")
	if err != nil || len(els) == 0 {
		return ""
	}
	return els[0].Text()
}

// ElementByID finds an element anywhere in the document.
func (d *Document) ElementByID(id string) (seo.Element, bool) {
	if d == nil || d.doc == nil || id == "" {
		return nil, false
	}
	var found *html.Node
	d.doc.Find("[id]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if v, _ := s.Attr("id"); v == id {
			found = s.Nodes[0]
			return false
		}
		return true
	})
	if found == nil {
		return nil, false
	}
	return &Element{node: found}, true
}

// SetLang sets the lang attribute on the root <html> element.
func (d *Document) SetLang(lang string) {
	if d == nil || d.doc == nil || lang == "" {
		return
	}
	d.doc.Find("html").First().SetAttr("lang", lang)
}

// SetInnerHTML replaces the children of the first element matching selector with the
// parsed fragment.
func (d *Document) SetInnerHTML(selector, fragment string) error {
	if d == nil || d.doc == nil {
		return fmt.Errorf("headdoc: empty document")
	}
	target := d.doc.Find(selector).First()
	if target.Length() == 0 {
		return fmt.Errorf("headdoc: no element matches %q", selector)
	}
	target.SetHtml(fragment)
	return nil
}

// Render writes the document as HTML.
func (d *Document) Render(w io.Writer) error {
	if d == nil || d.root == nil {
		return fmt.Errorf("headdoc: empty document")
	}
	return html.Render(w, d.root)
}

// String renders the document, returning an empty string on failure.
func (d *Document) String() string {
	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		return ""
	}
	return buf.String()
}

func cloneNode(n *html.Node) *html.Node {
	c := &html.Node{
		Type:      n.Type,
		DataAtom:  n.DataAtom,
		Data:      n.Data,
		Namespace: n.Namespace,
	}
	if len(n.Attr) > 0 {
		c.Attr = make([]html.Attribute, len(n.Attr))
		copy(c.Attr, n.Attr)
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		c.AppendChild(cloneNode(child))
	}
	return c
}
