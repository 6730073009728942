package intl

import (
	"fmt"
	"sort"
)

// Catalog is one language's key -> Entry mapping for one logical file.
// It is built once from a decoded document tree and never mutated, so it
// can be shared across goroutines without locking.
type Catalog struct {
	lang    string
	file    string
	entries map[string]Entry
}

// BuildCatalog converts a decoded document tree into a Catalog.
// doc is a flat object whose values are strings or string-valued objects;
// any value that does not fit the Entry shapes fails the whole build.
func BuildCatalog(lang, file string, doc map[string]any) (*Catalog, error) {
	entries := make(map[string]Entry, len(doc))
	for key, value := range doc {
		entry, err := ParseEntry(value)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", key, err)
		}
		entries[key] = entry
	}
	return &Catalog{
		lang:    lang,
		file:    file,
		entries: entries,
	}, nil
}

// Lang returns the language code the catalog was built for.
func (c *Catalog) Lang() string { return c.lang }

// File returns the logical file name the catalog was built from.
func (c *Catalog) File() string { return c.file }

// Entry looks up a key. A nil catalog behaves as empty.
func (c *Catalog) Entry(key string) (Entry, bool) {
	if c == nil {
		return nil, false
	}
	entry, ok := c.entries[key]
	return entry, ok
}

// Len returns the number of keys in the catalog.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Keys returns all catalog keys in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
