// Package i18n holds the interface strings rendered around page content.
package i18n

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed locales/*.yaml
var builtin embed.FS

// Bundle maps language codes to flat key/value dictionaries.
type Bundle struct {
	dict     map[string]map[string]string
	fallback string
}

// Default returns the built-in bundle with English as the fallback.
func Default() *Bundle {
	b, err := load(builtin, "locales", "en")
	if err != nil {
		panic(err)
	}
	return b
}

// Load reads <lang>.yaml files from dir over the built-in dictionaries. A missing dir
// yields the built-in bundle.
func Load(dir, fallback string) (*Bundle, error) {
	b, err := load(builtin, "locales", fallback)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(dir) == "" {
		return b, nil
	}
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return b, nil
	}
	extra, err := readDir(os.DirFS(dir), ".")
	if err != nil {
		return nil, err
	}
	for lang, m := range extra {
		if b.dict[lang] == nil {
			b.dict[lang] = map[string]string{}
		}
		for k, v := range m {
			b.dict[lang][k] = v
		}
	}
	return b, nil
}

func load(fsys fs.FS, dir, fallback string) (*Bundle, error) {
	dict, err := readDir(fsys, dir)
	if err != nil {
		return nil, err
	}
	fallback = normalize(fallback)
	if _, ok := dict[fallback]; !ok {
		return nil, fmt.Errorf("fallback locale %s not loaded", fallback)
	}
	return &Bundle{dict: dict, fallback: fallback}, nil
}

func readDir(fsys fs.FS, dir string) (map[string]map[string]string, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read locales: %w", err)
	}
	out := map[string]map[string]string{}
	for _, e := range entries {
		if e.IsDir() || path.Ext(e.Name()) != ".yaml" {
			continue
		}
		raw, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("read locale %s: %w", e.Name(), err)
		}
		var m map[string]string
		if err := yaml.Unmarshal(raw, &m); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", e.Name(), err)
		}
		out[normalize(strings.TrimSuffix(e.Name(), ".yaml"))] = m
	}
	return out, nil
}

// Supported lists the loaded languages.
func (b *Bundle) Supported() []string {
	out := make([]string, 0, len(b.dict))
	for k := range b.dict {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Fallback returns the configured fallback language.
func (b *Bundle) Fallback() string { return b.fallback }

// T returns the translation for key in lang. Regional codes fall back to their base
// language, then to the fallback language, and finally to key itself.
func (b *Bundle) T(lang, key string) string {
	if b == nil {
		return key
	}
	lang = normalize(lang)
	candidates := []string{lang}
	if i := strings.IndexByte(lang, '-'); i != -1 {
		candidates = append(candidates, lang[:i])
	}
	candidates = append(candidates, b.fallback)
	for _, c := range candidates {
		if m, ok := b.dict[c]; ok {
			if v, ok := m[key]; ok {
				return v
			}
		}
	}
	return key
}

func normalize(lang string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(lang), "_", "-"))
}
