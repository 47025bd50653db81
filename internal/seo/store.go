package seo

// Attr is one attribute on a head element.
type Attr struct {
	Name  string
	Value string
}

// Element is a single node inside the document head.
type Element interface {
	Attr(name string) (string, bool)
	SetAttr(name, value string)
	Text() string
	SetText(text string)
}

// HeadStore is the only access path to the document head. Find runs a CSS selector
// scoped to the head; Create appends a new element to it.
type HeadStore interface {
	Find(selector string) ([]Element, error)
	Create(tag string, attrs ...Attr) (Element, error)
	Remove(el Element) error
}
