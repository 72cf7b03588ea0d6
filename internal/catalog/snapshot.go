package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Snapshot is the immutable catalog view a session orders against. It is
// built once per session; nothing in the core mutates it afterward.
type Snapshot struct {
	Products   []Product
	Categories []Category

	// Dropped counts entries rejected by validation.
	Dropped int

	productsByID   map[int64]Product
	categoriesByID map[int64]Category
}

// NewSnapshot validates the raw records and builds the id indexes.
// Malformed entries (missing name, non-positive price, empty option groups,
// nameless options) are filtered out rather than treated as fatal.
func NewSnapshot(products []Product, categories []Category) *Snapshot {
	s := &Snapshot{
		productsByID:   make(map[int64]Product),
		categoriesByID: make(map[int64]Category),
	}

	for _, p := range products {
		if p.Name == "" || p.Price <= 0 {
			s.Dropped++
			continue
		}
		p.OptionGroups = validGroups(p.OptionGroups)
		s.Products = append(s.Products, p)
		s.productsByID[p.ID] = p
	}

	for _, c := range categories {
		if c.Name == "" {
			s.Dropped++
			continue
		}
		s.Categories = append(s.Categories, c)
		s.categoriesByID[c.ID] = c
	}

	return s
}

func validGroups(groups []OptionGroup) []OptionGroup {
	var out []OptionGroup
	for _, g := range groups {
		var opts []Option
		for _, opt := range g.Options {
			if opt.Name == "" {
				continue
			}
			opts = append(opts, opt)
		}
		if len(opts) == 0 {
			continue
		}
		g.Options = opts
		if g.MaxSelection <= 0 {
			g.MaxSelection = 1
		}
		out = append(out, g)
	}
	return out
}

// Product looks up a product by id.
func (s *Snapshot) Product(id int64) (Product, bool) {
	p, ok := s.productsByID[id]
	return p, ok
}

// Category looks up a category by id.
func (s *Snapshot) Category(id int64) (Category, bool) {
	c, ok := s.categoriesByID[id]
	return c, ok
}

// File is the on-disk YAML shape of a catalog.
type File struct {
	Products   []Product  `yaml:"products"`
	Categories []Category `yaml:"categories"`
}

// LoadFile reads a YAML catalog file and returns a validated snapshot.
func LoadFile(path string) (*Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return NewSnapshot(f.Products, f.Categories), nil
}
