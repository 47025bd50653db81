package pages

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"tsgfulfillment.com/web/internal/seo"
)

// LoadDir reads every *.md file under dir. A file's route comes from its front matter
// `path`, or from its location: services/kitting.md serves /services/kitting and
// index.md serves its directory. A missing dir yields no pages.
func LoadDir(dir string) ([]Page, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	var out []Page
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".md") {
			return nil
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		raw, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		page, err := parsePage(filepath.ToSlash(rel), string(raw))
		if err != nil {
			return fmt.Errorf("pages: %s: %w", path, err)
		}
		out = append(out, page)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func parsePage(rel, data string) (Page, error) {
	fm, body := splitFrontMatter(data)
	front := frontMatter{}
	if strings.TrimSpace(fm) != "" {
		if err := yaml.Unmarshal([]byte(fm), &front); err != nil {
			return Page{}, fmt.Errorf("parse front matter: %w", err)
		}
	}

	route := strings.TrimSpace(front.Path)
	if route == "" {
		route = strings.TrimSuffix(rel, ".md")
		route = strings.TrimSuffix(route, "index")
	}
	page := Page{
		Path:        normalizePath(route),
		Kind:        Kind(strings.ToLower(strings.TrimSpace(front.Kind))),
		Title:       strings.TrimSpace(front.Title),
		Heading:     strings.TrimSpace(front.Heading),
		Description: strings.TrimSpace(front.Description),
		Body:        body,
		OGImage:     strings.TrimSpace(front.OGImage),
		OGType:      seo.OGType(strings.TrimSpace(front.OGType)),
		NoIndex:     front.NoIndex,
		Order:       front.Order,
		Lists:       Kind(strings.ToLower(strings.TrimSpace(front.Lists))),
	}
	for _, q := range front.FAQ {
		page.FAQ = append(page.FAQ, seo.Question{Question: strings.TrimSpace(q.Question), Answer: strings.TrimSpace(q.Answer)})
	}
	if page.Kind == "" {
		page.Kind = inferKind(page.Path)
	}
	if page.Title == "" {
		// fall back to slug prettified
		page.Title = prettifySlug(lastSegment(page.Path))
	}
	return page, nil
}

func inferKind(p string) Kind {
	switch {
	case p == "/":
		return KindHome
	case strings.HasPrefix(p, "/services/"):
		return KindService
	case strings.HasPrefix(p, "/industries/"):
		return KindIndustry
	default:
		return KindPage
	}
}

func splitFrontMatter(input string) (string, string) {
	input = strings.TrimLeft(input, "\ufeff")
	lines := strings.Split(input, "\n")
	if len(lines) == 0 {
		return "", ""
	}
	if strings.TrimSpace(lines[0]) != "---" {
		return "", input
	}
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "---" {
			fm := strings.Join(lines[1:i], "\n")
			body := strings.Join(lines[i+1:], "\n")
			return fm, strings.TrimLeft(body, "\n\r")
		}
	}
	return "", input
}

func lastSegment(p string) string {
	p = strings.Trim(p, "/")
	if i := strings.LastIndex(p, "/"); i != -1 {
		return p[i+1:]
	}
	return p
}

func prettifySlug(slug string) string {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return slug
	}
	parts := strings.Split(slug, "-")
	for i, part := range parts {
		if part == "" {
			continue
		}
		runes := []rune(part)
		runes[0] = asciiUpper(runes[0])
		parts[i] = string(runes)
	}
	return strings.Join(parts, " ")
}

func asciiUpper(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	return r
}
