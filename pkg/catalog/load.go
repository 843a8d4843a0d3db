package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Parse decodes a catalog from JSON or YAML, sniffed from the first
// non-space byte. Sections left empty fall back to the stock catalog, so a
// file may override just the field list.
func Parse(data []byte) (*Catalog, error) {
	var c Catalog
	if trimmed := bytes.TrimSpace(data); len(trimmed) > 0 && trimmed[0] == '{' {
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("catalog: parse json: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("catalog: parse yaml: %w", err)
		}
	}

	stock := Default()
	if len(c.Fields) == 0 {
		c.Fields = stock.Fields
	}
	if len(c.Operators) == 0 {
		c.Operators = stock.Operators
	}
	if len(c.Logic) == 0 {
		c.Logic = stock.Logic
	}
	return &c, nil
}

// Load reads and parses a catalog file.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", path, err)
	}
	return Parse(data)
}
