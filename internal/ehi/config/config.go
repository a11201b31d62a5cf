// Package config loads the manual assessment overlay.
//
// Several EHI subcategories (documentation quality, partner program maturity,
// strategic alignment, ...) have no automated source and are assessed by a
// human on the 0-4 scale. Those assessments live in a YAML file and override
// anything with the same key in the collected metrics document.
package config

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

// Assessment is the parsed overlay file.
type Assessment struct {
	// Company optionally names the company; the --company flag wins when
	// both are set.
	Company string `yaml:"company"`

	// Metrics holds manually assessed values keyed by metric name.
	Metrics schema.Metrics `yaml:"metrics"`
}

// Load reads and strictly parses an assessment file. Unknown keys are an
// error so a typo in a metric name fails loudly instead of silently scoring 0.
func Load(path string) (*Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading assessment file: %w", err)
	}

	var a Assessment
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&a); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &a, nil
}
