package menu

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Catalog is the set of items a restaurant offers, looked up by item name.
type Catalog struct {
	entries []Entry
	byName  map[string]int
}

type catalogFile struct {
	Items []Entry `yaml:"items"`
}

// LoadCatalog reads a menu file and validates every entry.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse menu file: %w", err)
	}

	return NewCatalog(file.Items)
}

// NewCatalog builds a catalog from entries, rejecting invalid or duplicate items.
func NewCatalog(entries []Entry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ValidationError{
			Field:   "items",
			Message: "menu must contain at least one item",
		}
	}

	byName := make(map[string]int, len(entries))
	for i, entry := range entries {
		if err := validateEntry(entry, i); err != nil {
			return nil, err
		}
		if _, exists := byName[entry.Name]; exists {
			return nil, ValidationError{
				Field:   fmt.Sprintf("items[%d].name", i),
				Message: fmt.Sprintf("duplicate item name %q", entry.Name),
			}
		}
		byName[entry.Name] = i
	}

	return &Catalog{entries: entries, byName: byName}, nil
}

// Find returns the entry for an item name.
func (c *Catalog) Find(name string) (Entry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return Entry{}, false
	}
	return c.entries[i], true
}

// Len returns the number of items on the menu.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Entries returns the menu entries in file order.
func (c *Catalog) Entries() []Entry {
	return c.entries
}
