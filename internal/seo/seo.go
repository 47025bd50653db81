package seo

import (
	"errors"
	"net/url"
	"strings"
)

const (
	// DefaultOrigin is the production site origin used for canonical URLs.
	DefaultOrigin = "https://tsgfulfillment.com"
	// DefaultBrand is appended to page titles that do not already carry it.
	DefaultBrand = "TSG Fulfillment Services"
	// DefaultDescription fills the meta description of a head that has none yet.
	DefaultDescription = "TSG Fulfillment Services provides warehousing, order fulfillment and logistics for growing brands."
	// JSONLDElementID is the id of the single structured-data script owned by the synchronizer.
	JSONLDElementID = "dynamic-jsonld"
)

var (
	// ErrMissingHead is returned when there is no document head to synchronize.
	ErrMissingHead = errors.New("seo: no document head")
	// ErrStructuredData wraps failures to serialize a descriptor's JSON-LD payload.
	ErrStructuredData = errors.New("seo: structured data is not serializable")
	// ErrInvalidAlternate reports an hreflang entry with an unusable language code or URL.
	ErrInvalidAlternate = errors.New("seo: invalid alternate language link")
)

// OGType is the og:type of a page.
type OGType string

const (
	OGWebsite OGType = "website"
	OGArticle OGType = "article"
	OGProduct OGType = "product"
)

// TwitterCard is the twitter:card layout.
type TwitterCard string

const (
	TwitterSummary           TwitterCard = "summary"
	TwitterSummaryLargeImage TwitterCard = "summary_large_image"
)

// AlternateLink is one hreflang variant of the page.
type AlternateLink struct {
	Lang string
	URL  string
}

// Descriptor is the desired head state for the page being shown. Empty strings mean
// "not supplied".
type Descriptor struct {
	Title          string
	Description    string
	CanonicalPath  string
	OGImage        string
	OGType         OGType
	TwitterCard    TwitterCard
	NoIndex        bool
	PrevPath       string
	NextPath       string
	StructuredData any
	Alternates     []AlternateLink
}

// Site carries the public identity used to normalize descriptors.
type Site struct {
	Origin       string
	Brand        string
	Description  string
	DefaultImage string
	TwitterSite  string
}

// DefaultSite returns the production site identity.
func DefaultSite() Site {
	return Site{Origin: DefaultOrigin, Brand: DefaultBrand, Description: DefaultDescription}
}

// BaseURL returns the normalized origin without a trailing slash.
func (s Site) BaseURL() string { return s.origin() }

func (s Site) origin() string {
	o := strings.TrimRight(strings.TrimSpace(s.Origin), "/")
	if o == "" {
		return DefaultOrigin
	}
	return o
}

func (s Site) brand() string {
	if b := strings.TrimSpace(s.Brand); b != "" {
		return b
	}
	return DefaultBrand
}

func (s Site) description() string {
	if d := strings.TrimSpace(s.Description); d != "" {
		return d
	}
	return DefaultDescription
}

// Title appends " | {brand}" unless the title already mentions the brand.
func (s Site) Title(title string) string {
	title = strings.TrimSpace(title)
	brand := s.brand()
	if title == "" {
		return brand
	}
	if strings.Contains(title, brand) {
		return title
	}
	return title + " | " + brand
}

// AbsoluteURL prefixes root-relative paths with the site origin. Values that already
// carry a URI scheme are returned unchanged.
func (s Site) AbsoluteURL(path string) string {
	path = strings.TrimSpace(path)
	if hasScheme(path) {
		return path
	}
	if strings.HasPrefix(path, "//") {
		if u, err := url.Parse(s.origin()); err == nil && u.Scheme != "" {
			return u.Scheme + ":" + path
		}
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return s.origin() + path
}

func hasScheme(v string) bool {
	i := strings.IndexByte(v, ':')
	if i <= 0 {
		return false
	}
	for j := 0; j < i; j++ {
		c := v[j]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z':
		case j > 0 && ('0' <= c && c <= '9' || c == '+' || c == '-' || c == '.'):
		default:
			return false
		}
	}
	return true
}

func (d Descriptor) ogType() OGType {
	switch d.OGType {
	case OGWebsite, OGArticle, OGProduct:
		return d.OGType
	default:
		return OGWebsite
	}
}

func (d Descriptor) twitterCard() TwitterCard {
	switch d.TwitterCard {
	case TwitterSummary, TwitterSummaryLargeImage:
		return d.TwitterCard
	default:
		return TwitterSummaryLargeImage
	}
}

func (d Descriptor) robots() string {
	if d.NoIndex {
		return "noindex, nofollow"
	}
	return "index, follow"
}
