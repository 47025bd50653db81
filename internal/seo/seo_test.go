package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSiteTitle(t *testing.T) {
	t.Parallel()
	s := DefaultSite()

	require.Equal(t, "Hello | TSG Fulfillment Services", s.Title("Hello"))
	require.Equal(t, "Hello | TSG Fulfillment Services", s.Title("  Hello "))
	require.Equal(t, "TSG Fulfillment Services - Home", s.Title("TSG Fulfillment Services - Home"))
	require.Equal(t, "TSG Fulfillment Services", s.Title(""))

	custom := Site{Brand: "Acme Logistics"}
	require.Equal(t, "Hello | Acme Logistics", custom.Title("Hello"))
}

func TestSiteAbsoluteURL(t *testing.T) {
	t.Parallel()
	s := Site{Origin: "https://tsgfulfillment.com/"}

	cases := map[string]string{
		"/foo":                "https://tsgfulfillment.com/foo",
		"foo":                 "https://tsgfulfillment.com/foo",
		"":                    "https://tsgfulfillment.com/",
		"https://other.com/x": "https://other.com/x",
		"HTTP://other.com/x":  "HTTP://other.com/x",
		"mailto:sales@x.com":  "mailto:sales@x.com",
		"//cdn.example.com/a": "https://cdn.example.com/a",
		"/a:b":                "https://tsgfulfillment.com/a:b",
	}
	for in, want := range cases {
		require.Equal(t, want, s.AbsoluteURL(in), "input %q", in)
	}

	require.Equal(t, "https://tsgfulfillment.com/x", Site{}.AbsoluteURL("/x"))
}

func TestDescriptorDefaults(t *testing.T) {
	t.Parallel()

	var d Descriptor
	require.Equal(t, OGWebsite, d.ogType())
	require.Equal(t, TwitterSummaryLargeImage, d.twitterCard())
	require.Equal(t, "index, follow", d.robots())

	d.NoIndex = true
	require.Equal(t, "noindex, nofollow", d.robots())
}
