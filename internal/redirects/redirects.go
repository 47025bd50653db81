// Package redirects maps legacy site URLs onto their canonical replacements.
//
// A Table is built once at startup and is read-only afterwards, so it is safe for
// concurrent use by any number of request goroutines. Resolution is single-hop: the
// target of a rule is never fed back into the table.
package redirects

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDuplicateRule reports two rules whose source paths differ only by case.
	ErrDuplicateRule = errors.New("redirects: duplicate rule")
	// ErrInvalidRule reports a rule whose source or target is not a root-relative path.
	ErrInvalidRule = errors.New("redirects: invalid rule")
)

// Rule maps one legacy path onto its canonical replacement.
type Rule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Table is an immutable set of redirect rules.
type Table struct {
	rules  []Rule
	exact  map[string]Rule
	folded map[string]Rule
}

// New validates rules and builds a Table. Source paths must be unique under
// case-insensitive comparison.
func New(rules []Rule) (*Table, error) {
	t := &Table{
		rules:  make([]Rule, 0, len(rules)),
		exact:  make(map[string]Rule, len(rules)),
		folded: make(map[string]Rule, len(rules)),
	}
	for i, rule := range rules {
		from := strings.TrimSpace(rule.From)
		to := strings.TrimSpace(rule.To)
		if !isRootRelative(from) || !isRootRelative(to) {
			return nil, fmt.Errorf("%w: rule %d (%q -> %q) must use root-relative paths", ErrInvalidRule, i, rule.From, rule.To)
		}
		if strings.ContainsAny(from, "?#") {
			return nil, fmt.Errorf("%w: rule %d source %q must not carry a query or fragment", ErrInvalidRule, i, rule.From)
		}
		key := strings.ToLower(from)
		if prev, ok := t.folded[key]; ok {
			return nil, fmt.Errorf("%w: %q collides with %q", ErrDuplicateRule, from, prev.From)
		}
		r := Rule{From: from, To: to}
		t.folded[key] = r
		t.exact[from] = r
		t.rules = append(t.rules, r)
	}
	return t, nil
}

// MustNew is like New but panics on invalid input. Intended for static rule sets.
func MustNew(rules []Rule) *Table {
	t, err := New(rules)
	if err != nil {
		panic(err)
	}
	return t
}

// Resolve returns the canonical target for path. The query string and fragment are
// ignored; an exact match wins over a case-insensitive one. A miss is not an error.
// Resolve is the lookup for callers that only need the destination; the navigator
// and Middleware use Match because they report the rule as declared.
func (t *Table) Resolve(path string) (string, bool) {
	rule, ok := t.Match(path)
	return rule.To, ok
}

// Match is like Resolve but returns the matching rule as declared.
func (t *Table) Match(path string) (Rule, bool) {
	if t == nil {
		return Rule{}, false
	}
	clean := stripQuery(path)
	if clean == "" {
		return Rule{}, false
	}
	if rule, ok := t.exact[clean]; ok {
		return rule, true
	}
	if rule, ok := t.folded[strings.ToLower(clean)]; ok {
		return rule, true
	}
	return Rule{}, false
}

// Rules returns a copy of the rules in load order.
func (t *Table) Rules() []Rule {
	if t == nil {
		return nil
	}
	out := make([]Rule, len(t.rules))
	copy(out, t.rules)
	return out
}

// Len reports the number of rules.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rules)
}

func stripQuery(path string) string {
	if i := strings.IndexAny(path, "?#"); i != -1 {
		path = path[:i]
	}
	return strings.TrimSpace(path)
}

func isRootRelative(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//")
}
