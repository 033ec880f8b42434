package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
)

//go:embed catalog.toml
var defaultCatalog []byte

// catalogFile is the on-disk layout: one [[piece]] table per item.
type catalogFile struct {
	Pieces []Item `toml:"piece"`
}

// Catalog is an immutable, validated collection of quiz items with
// precomputed group indices.
type Catalog struct {
	items   []Item
	groups  []string
	byGroup map[string][]Item
}

// Default returns the catalog embedded in the binary.
func Default() (*Catalog, error) {
	c, err := Load(bytes.NewReader(defaultCatalog))
	if err != nil {
		return nil, fmt.Errorf("embedded catalog: %w", err)
	}
	return c, nil
}

// LoadFile reads and validates a TOML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Load decodes and validates a TOML catalog. Unknown keys are rejected so
// typos in a hand-written catalog surface immediately.
func Load(r io.Reader) (*Catalog, error) {
	var cf catalogFile
	if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&cf); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return New(cf.Pieces)
}

// New builds a catalog from items, validating them first.
func New(items []Item) (*Catalog, error) {
	if err := validateItems(items); err != nil {
		return nil, err
	}

	c := &Catalog{
		items:   slices.Clone(items),
		byGroup: make(map[string][]Item),
	}
	for _, it := range c.items {
		if _, ok := c.byGroup[it.Group]; !ok {
			c.groups = append(c.groups, it.Group)
		}
		c.byGroup[it.Group] = append(c.byGroup[it.Group], it)
	}
	return c, nil
}

// Items returns every item in catalog order.
func (c *Catalog) Items() []Item {
	return slices.Clone(c.items)
}

// Len returns the number of items.
func (c *Catalog) Len() int {
	return len(c.items)
}

// Groups returns the group names in the order they first appear.
func (c *Catalog) Groups() []string {
	return slices.Clone(c.groups)
}

// HasGroup reports whether the catalog contains the named group.
func (c *Catalog) HasGroup(group string) bool {
	_, ok := c.byGroup[group]
	return ok
}

// ByGroup returns the items of one group, or nil if the group is unknown.
func (c *Catalog) ByGroup(group string) []Item {
	return slices.Clone(c.byGroup[group])
}

// Select returns the items of the named groups in catalog order.
// Naming a group twice does not duplicate its items.
func (c *Catalog) Select(groups ...string) ([]Item, error) {
	want := make(map[string]bool, len(groups))
	for _, g := range groups {
		if !c.HasGroup(g) {
			return nil, fmt.Errorf("unknown group %q", g)
		}
		want[g] = true
	}

	var out []Item
	for _, it := range c.items {
		if want[it.Group] {
			out = append(out, it)
		}
	}
	return out, nil
}
