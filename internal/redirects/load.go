package redirects

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Decode reads a YAML sequence of {from, to} rules.
func Decode(r io.Reader) ([]Rule, error) {
	var rules []Rule
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&rules); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("redirects: decode rules: %w", err)
	}
	return rules, nil
}

// LoadFile reads rules from a YAML file.
func LoadFile(path string) ([]Rule, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("redirects: read %s: %w", path, err)
	}
	rules, err := Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rules, nil
}

// Build combines the legacy table with rules from path, when path is set. Collisions
// between the two sources are reported like any other duplicate.
func Build(path string) (*Table, error) {
	rules := append([]Rule(nil), Legacy...)
	if path != "" {
		extra, err := LoadFile(path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, extra...)
	}
	return New(rules)
}
