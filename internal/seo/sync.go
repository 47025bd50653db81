package seo

import (
	"fmt"

	"golang.org/x/text/language"
)

type scope int

const (
	// persistent slots are overwritten by the next page and never removed.
	persistent scope = iota
	// navigation slots belong to the current page and are removed when it is left
	// or when the next page does not ask for them.
	navigation
)

// slot is one semantic position in the head that holds at most one element.
type slot struct {
	selector string
	tag      string
	identity []Attr
	// valueAttr receives the slot value; empty means the element's text content.
	valueAttr string
	scope     scope
}

func metaName(name string) slot {
	return slot{
		selector:  fmt.Sprintf("meta[name=%q]", name),
		tag:       "meta",
		identity:  []Attr{{Name: "name", Value: name}},
		valueAttr: "content",
	}
}

func metaProperty(property string) slot {
	return slot{
		selector:  fmt.Sprintf("meta[property=%q]", property),
		tag:       "meta",
		identity:  []Attr{{Name: "property", Value: property}},
		valueAttr: "content",
	}
}

func linkRel(rel string, sc scope) slot {
	return slot{
		selector:  fmt.Sprintf("link[rel=%q]", rel),
		tag:       "link",
		identity:  []Attr{{Name: "rel", Value: rel}},
		valueAttr: "href",
		scope:     sc,
	}
}

var (
	slotTitle              = slot{selector: "title", tag: "title"}
	slotDescription        = metaName("description")
	slotCanonical          = linkRel("canonical", persistent)
	slotOGTitle            = metaProperty("og:title")
	slotOGDescription      = metaProperty("og:description")
	slotOGType             = metaProperty("og:type")
	slotOGURL              = metaProperty("og:url")
	slotOGImage            = metaProperty("og:image")
	slotOGSiteName         = metaProperty("og:site_name")
	slotTwitterCard        = metaName("twitter:card")
	slotTwitterTitle       = metaName("twitter:title")
	slotTwitterDescription = metaName("twitter:description")
	slotTwitterImage       = metaName("twitter:image")
	slotTwitterSite        = metaName("twitter:site")
	slotRobots             = metaName("robots")
	slotPrev               = linkRel("prev", navigation)
	slotNext               = linkRel("next", navigation)
	slotJSONLD             = slot{
		selector: "script#" + JSONLDElementID,
		tag:      "script",
		identity: []Attr{{Name: "id", Value: JSONLDElementID}, {Name: "type", Value: "application/ld+json"}},
		scope:    navigation,
	}
)

const alternateSelector = "link[rel=alternate][hreflang]"

// desired pairs a slot with the value it should hold. ok=false means the page did
// not ask for the slot. fallback is written only when the slot has no element yet.
type desired struct {
	slot     slot
	value    string
	ok       bool
	fallback string
}

func want(s slot, value string) desired {
	return desired{slot: s, value: value, ok: value != ""}
}

func (d desired) orElse(fallback string) desired {
	d.fallback = fallback
	return d
}

// Teardown removes the navigation-scoped elements installed by one Sync call.
type Teardown func() error

// Handle identifies one entered page. It is returned by Enter and consumed by Leave.
type Handle struct {
	generation uint64
	left       bool
}

// Synchronizer reconciles a HeadStore against page descriptors. Like the head it
// owns, it is confined to a single goroutine.
type Synchronizer struct {
	store      HeadStore
	site       Site
	generation uint64
}

// NewSynchronizer binds a synchronizer to a head store.
func NewSynchronizer(store HeadStore, site Site) *Synchronizer {
	return &Synchronizer{store: store, site: site}
}

// Site returns the site identity used for normalization.
func (s *Synchronizer) Site() Site {
	if s == nil {
		return DefaultSite()
	}
	return s.site
}

// Sync applies d and returns the teardown for the page it describes.
func (s *Synchronizer) Sync(d Descriptor) (Teardown, error) {
	h, err := s.Enter(d)
	if err != nil {
		return nil, err
	}
	return func() error { return s.Leave(h) }, nil
}

// Enter reconciles the head with d. Every fallible step (serialization, language code
// validation) runs before the first mutation, so a failed Enter leaves the head as it was.
func (s *Synchronizer) Enter(d Descriptor) (*Handle, error) {
	if s == nil || s.store == nil {
		return nil, ErrMissingHead
	}
	jsonld, err := structuredDataBody(d.StructuredData)
	if err != nil {
		return nil, err
	}
	alternates, err := s.alternates(d.Alternates)
	if err != nil {
		return nil, err
	}

	for _, w := range s.plan(d, jsonld) {
		if err := s.reconcile(w); err != nil {
			return nil, err
		}
	}
	if err := s.replaceAlternates(alternates); err != nil {
		return nil, err
	}

	s.generation++
	return &Handle{generation: s.generation}, nil
}

// Leave removes the navigation-scoped elements of the page entered with h. If another
// page has been entered since, those elements now belong to it and are kept. Leaving
// the same handle twice is a no-op.
func (s *Synchronizer) Leave(h *Handle) error {
	if h == nil || h.left {
		return nil
	}
	h.left = true
	if s == nil || s.store == nil {
		return ErrMissingHead
	}
	if h.generation != s.generation {
		return nil
	}
	for _, sl := range []slot{slotJSONLD, slotPrev, slotNext} {
		if err := s.removeAll(sl.selector); err != nil {
			return err
		}
	}
	return s.removeAll(alternateSelector)
}

// SetCanonical points the canonical link at href.
func (s *Synchronizer) SetCanonical(href string) error {
	if s == nil || s.store == nil {
		return ErrMissingHead
	}
	return s.reconcile(want(slotCanonical, href))
}

func (s *Synchronizer) plan(d Descriptor, jsonld string) []desired {
	title := s.site.Title(d.Title)
	home := s.site.AbsoluteURL("/")
	description := s.site.description()
	var canonical string
	if d.CanonicalPath != "" {
		canonical = s.site.AbsoluteURL(d.CanonicalPath)
	}
	image := d.OGImage
	if image == "" {
		image = s.site.DefaultImage
	}
	if image != "" {
		image = s.site.AbsoluteURL(image)
	}
	var prev, next string
	if d.PrevPath != "" {
		prev = s.site.AbsoluteURL(d.PrevPath)
	}
	if d.NextPath != "" {
		next = s.site.AbsoluteURL(d.NextPath)
	}

	return []desired{
		want(slotTitle, title),
		want(slotDescription, d.Description).orElse(description),
		want(slotCanonical, canonical).orElse(home),
		want(slotOGTitle, title),
		want(slotOGDescription, d.Description).orElse(description),
		want(slotOGType, string(d.ogType())),
		want(slotOGURL, canonical).orElse(home),
		want(slotOGImage, image),
		want(slotOGSiteName, s.site.brand()),
		want(slotTwitterCard, string(d.twitterCard())),
		want(slotTwitterTitle, title),
		want(slotTwitterDescription, d.Description).orElse(description),
		want(slotTwitterImage, image),
		want(slotTwitterSite, s.site.TwitterSite),
		want(slotRobots, d.robots()),
		want(slotPrev, prev),
		want(slotNext, next),
		want(slotJSONLD, jsonld),
	}
}

// reconcile brings one slot to its desired state: exactly one element holding the
// value, or, for an unrequested navigation slot, no element at all. An unrequested
// persistent slot keeps its last value and is seeded from its fallback when empty.
func (s *Synchronizer) reconcile(w desired) error {
	found, err := s.store.Find(w.slot.selector)
	if err != nil {
		return err
	}
	if !w.ok {
		if w.slot.scope == navigation {
			for _, el := range found {
				if err := s.store.Remove(el); err != nil {
					return err
				}
			}
			return nil
		}
		if len(found) > 0 || w.fallback == "" {
			return nil
		}
		w.value = w.fallback
	}

	var el Element
	if len(found) == 0 {
		el, err = s.store.Create(w.slot.tag, w.slot.identity...)
		if err != nil {
			return err
		}
	} else {
		el = found[0]
		for _, extra := range found[1:] {
			if err := s.store.Remove(extra); err != nil {
				return err
			}
		}
	}

	if w.slot.valueAttr == "" {
		if el.Text() != w.value {
			el.SetText(w.value)
		}
		return nil
	}
	if cur, ok := el.Attr(w.slot.valueAttr); !ok || cur != w.value {
		el.SetAttr(w.slot.valueAttr, w.value)
	}
	return nil
}

func (s *Synchronizer) removeAll(selector string) error {
	found, err := s.store.Find(selector)
	if err != nil {
		return err
	}
	for _, el := range found {
		if err := s.store.Remove(el); err != nil {
			return err
		}
	}
	return nil
}

// alternates validates hreflang entries and normalizes codes and URLs.
func (s *Synchronizer) alternates(links []AlternateLink) ([]AlternateLink, error) {
	out := make([]AlternateLink, 0, len(links))
	for _, l := range links {
		code, err := canonicalLang(l.Lang)
		if err != nil {
			return nil, err
		}
		if l.URL == "" {
			return nil, fmt.Errorf("%w: empty url for %q", ErrInvalidAlternate, l.Lang)
		}
		out = append(out, AlternateLink{Lang: code, URL: s.site.AbsoluteURL(l.URL)})
	}
	return out, nil
}

func canonicalLang(code string) (string, error) {
	if code == "x-default" {
		return code, nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: language %q: %v", ErrInvalidAlternate, code, err)
	}
	return tag.String(), nil
}

// replaceAlternates rebuilds the hreflang set in the given order. When the head already
// holds exactly that set it is left untouched.
func (s *Synchronizer) replaceAlternates(links []AlternateLink) error {
	found, err := s.store.Find(alternateSelector)
	if err != nil {
		return err
	}
	if sameAlternates(found, links) {
		return nil
	}
	for _, el := range found {
		if err := s.store.Remove(el); err != nil {
			return err
		}
	}
	for _, l := range links {
		if _, err := s.store.Create("link",
			Attr{Name: "rel", Value: "alternate"},
			Attr{Name: "hreflang", Value: l.Lang},
			Attr{Name: "href", Value: l.URL},
		); err != nil {
			return err
		}
	}
	return nil
}

func sameAlternates(found []Element, links []AlternateLink) bool {
	if len(found) != len(links) {
		return false
	}
	for i, el := range found {
		lang, _ := el.Attr("hreflang")
		href, _ := el.Attr("href")
		if lang != links[i].Lang || href != links[i].URL {
			return false
		}
	}
	return true
}
