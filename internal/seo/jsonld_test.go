package seo

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestJSONReportsEncodingFailures(t *testing.T) {
	t.Parallel()

	out, err := JSON(map[string]any{"name": "TSG <Fulfillment>"})
	require.NoError(t, err)
	// markup characters are escaped so the payload cannot close its script element
	require.Equal(t, `{"name":"TSG \u003cFulfillment\u003e"}`, out)

	_, err = JSON(func() {})
	require.ErrorIs(t, err, ErrStructuredData)
}

func TestStructuredDataBodyTreatsNullAsAbsent(t *testing.T) {
	t.Parallel()

	body, err := structuredDataBody(nil)
	require.NoError(t, err)
	require.Empty(t, body)

	var m map[string]any
	body, err = structuredDataBody(m)
	require.NoError(t, err)
	require.Empty(t, body)
}

func TestBreadcrumbListPositions(t *testing.T) {
	t.Parallel()

	out, err := JSON(BreadcrumbList([]BreadcrumbItem{
		{Name: "Home", Item: "https://tsgfulfillment.com/"},
		{Name: "Services", Item: "https://tsgfulfillment.com/services"},
	}))
	require.NoError(t, err)
	require.JSONEq(t, `{
		"@context": "https://schema.org",
		"@type": "BreadcrumbList",
		"itemListElement": [
			{"@type": "ListItem", "position": 1, "name": "Home", "item": "https://tsgfulfillment.com/"},
			{"@type": "ListItem", "position": 2, "name": "Services", "item": "https://tsgfulfillment.com/services"}
		]
	}`, out)
}

func TestGraphDropsNestedContext(t *testing.T) {
	t.Parallel()

	g := Graph(
		Organization("TSG Fulfillment Services", "https://tsgfulfillment.com", ""),
		nil,
		FAQPage([]Question{{Question: "Do you ship to the US?", Answer: "Yes."}}),
	)
	out, err := JSON(g)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "Organization", "name": "TSG Fulfillment Services", "url": "https://tsgfulfillment.com"},
			{"@type": "FAQPage", "mainEntity": [
				{"@type": "Question", "name": "Do you ship to the US?", "acceptedAnswer": {"@type": "Answer", "text": "Yes."}}
			]}
		]
	}`, out)
}

func TestLocalBusinessAndService(t *testing.T) {
	t.Parallel()

	lb := LocalBusiness("TSG Fulfillment Services", "https://tsgfulfillment.com", "+1-289-815-5869", PostalAddress{
		Street: "6750 Langstaff Road", Locality: "Vaughan", Region: "ON", PostalCode: "L4H 5K2", Country: "CA",
	})
	require.Equal(t, "LocalBusiness", lb["@type"])
	require.Equal(t, "Vaughan", lb["address"].(map[string]any)["addressLocality"])

	svc := Service("Kitting", "Custom kits", "", "TSG Fulfillment Services", "")
	require.NotContains(t, svc, "url")
	require.NotContains(t, svc, "areaServed")
	require.Equal(t, map[string]any{"@type": "Organization", "name": "TSG Fulfillment Services"}, svc["provider"])
}
