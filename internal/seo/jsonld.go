package seo

import (
	"encoding/json"
	"fmt"
)

const schemaContext = "https://schema.org"

// JSON marshals v to a compact JSON string. Values that cannot be encoded are reported
// as ErrStructuredData rather than written as an empty or partial payload.
func JSON(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrStructuredData, err)
	}
	return string(b), nil
}

// structuredDataBody serializes an optional payload. nil means no JSON-LD for the page.
func structuredDataBody(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	body, err := JSON(v)
	if err != nil {
		return "", err
	}
	if body == "null" {
		return "", nil
	}
	return body, nil
}

// Organization returns a minimal Organization schema.
func Organization(name, url, logoURL string, sameAs ...string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "Organization",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	if logoURL != "" {
		m["logo"] = logoURL
	}
	if len(sameAs) > 0 {
		m["sameAs"] = sameAs
	}
	return m
}

// WebSite returns a minimal WebSite schema.
func WebSite(name, url string) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "WebSite",
		"name":     name,
	}
	if url != "" {
		m["url"] = url
	}
	return m
}

// PostalAddress is the address block of a LocalBusiness.
type PostalAddress struct {
	Street     string
	Locality   string
	Region     string
	PostalCode string
	Country    string
}

// LocalBusiness describes a warehouse or office location.
func LocalBusiness(name, url, telephone string, addr PostalAddress) map[string]any {
	m := map[string]any{
		"@context": schemaContext,
		"@type":    "LocalBusiness",
		"name":     name,
		"address": map[string]any{
			"@type":           "PostalAddress",
			"streetAddress":   addr.Street,
			"addressLocality": addr.Locality,
			"addressRegion":   addr.Region,
			"postalCode":      addr.PostalCode,
			"addressCountry":  addr.Country,
		},
	}
	if url != "" {
		m["url"] = url
	}
	if telephone != "" {
		m["telephone"] = telephone
	}
	return m
}

// Service describes one offered logistics service.
func Service(name, description, url, providerName, areaServed string) map[string]any {
	m := map[string]any{
		"@context":    schemaContext,
		"@type":       "Service",
		"name":        name,
		"description": description,
	}
	if url != "" {
		m["url"] = url
	}
	if providerName != "" {
		m["provider"] = map[string]any{"@type": "Organization", "name": providerName}
	}
	if areaServed != "" {
		m["areaServed"] = areaServed
	}
	return m
}

// BreadcrumbItem maps name and absolute item URL.
type BreadcrumbItem struct {
	Name string
	Item string
}

// BreadcrumbList builds schema.org BreadcrumbList.
func BreadcrumbList(items []BreadcrumbItem) map[string]any {
	el := make([]map[string]any, 0, len(items))
	for i, it := range items {
		el = append(el, map[string]any{
			"@type":    "ListItem",
			"position": i + 1,
			"name":     it.Name,
			"item":     it.Item,
		})
	}
	return map[string]any{
		"@context":        schemaContext,
		"@type":           "BreadcrumbList",
		"itemListElement": el,
	}
}

// Question is one FAQ entry.
type Question struct {
	Question string
	Answer   string
}

// FAQPage builds a schema.org FAQPage.
func FAQPage(questions []Question) map[string]any {
	entities := make([]map[string]any, 0, len(questions))
	for _, q := range questions {
		entities = append(entities, map[string]any{
			"@type": "Question",
			"name":  q.Question,
			"acceptedAnswer": map[string]any{
				"@type": "Answer",
				"text":  q.Answer,
			},
		})
	}
	return map[string]any{
		"@context":   schemaContext,
		"@type":      "FAQPage",
		"mainEntity": entities,
	}
}

// Graph merges several schema nodes into one payload so a page can describe itself
// with a single script element. Per-node @context keys are dropped.
func Graph(nodes ...map[string]any) map[string]any {
	graph := make([]map[string]any, 0, len(nodes))
	for _, n := range nodes {
		if n == nil {
			continue
		}
		c := make(map[string]any, len(n))
		for k, v := range n {
			if k == "@context" {
				continue
			}
			c[k] = v
		}
		graph = append(graph, c)
	}
	return map[string]any{
		"@context": schemaContext,
		"@graph":   graph,
	}
}
