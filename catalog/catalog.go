// SPDX-License-Identifier: EPL-2.0

// Package catalog holds the frequency tables the catalog recipes render.
//
// The default catalog is the embedded frequencies.toml. Each [[category]]
// names its subcommand, output directory, file prefix and a list of
// [[category.frequency]] entries:
//
//	[[category]]
//	id = "solfeggio"
//	command = "solfeggio"
//	dir_name = "solfeggio"
//	display_name = "Solfeggio frequencies"
//	file_prefix = "solfeggio"
//	cli_description = "Generate all 9 Solfeggio frequencies"
//
//	[[category.frequency]]
//	hz = 528.0
//	name = "528"
//	description = "Love frequency, DNA repair, miracles"
//
// Entries with hz = 0 have no audio realization. They are listed but never
// rendered.
package catalog

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"math"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
)

//go:embed frequencies.toml
var defaultCatalog []byte

// Entry is one renderable frequency.
type Entry struct {
	Hz          float64 `toml:"hz"`
	Name        string  `toml:"name"`
	Description string  `toml:"description"`
}

// Silent reports whether the entry has no audio realization.
func (e Entry) Silent() bool { return e.Hz == 0 }

// Category is a named table of entries.
type Category struct {
	ID             string  `toml:"id"`
	Command        string  `toml:"command"`
	DirName        string  `toml:"dir_name"`
	DisplayName    string  `toml:"display_name"`
	FilePrefix     string  `toml:"file_prefix"`
	CLIDescription string  `toml:"cli_description"`
	Frequencies    []Entry `toml:"frequency"`
}

// Entry returns the entry called name.
func (c *Category) Entry(name string) (Entry, bool) {
	for _, e := range c.Frequencies {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}

type file struct {
	Categories []Category `toml:"category"`
}

// Catalog is a read-only, ordered set of categories.
type Catalog struct {
	categories []Category
	byCommand  map[string]int
}

var loadDefault = sync.OnceValues(func() (*Catalog, error) {
	return Load(bytes.NewReader(defaultCatalog))
})

// Default returns the embedded catalog. It panics if the embedded file does
// not parse.
func Default() *Catalog {
	c, err := loadDefault()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded frequencies.toml: %v", err))
	}
	return c
}

// Load parses a catalog in the frequencies.toml format. Unknown keys, empty
// ids or commands, duplicate commands and negative or non-finite frequencies
// are rejected. An empty dir_name or file_prefix defaults to the id.
func Load(r io.Reader) (*Catalog, error) {
	var f file

	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCatalog, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: unknown keys %s", ErrInvalidCatalog, strings.Join(keys, ", "))
	}

	c := &Catalog{
		categories: f.Categories,
		byCommand:  make(map[string]int, len(f.Categories)),
	}

	for i := range c.categories {
		cat := &c.categories[i]

		if cat.ID == "" || cat.Command == "" {
			return nil, fmt.Errorf("%w: category %d has no id or command", ErrInvalidCatalog, i)
		}

		if _, dup := c.byCommand[cat.Command]; dup {
			return nil, fmt.Errorf("%w: duplicate command %q", ErrInvalidCatalog, cat.Command)
		}
		c.byCommand[cat.Command] = i

		if cat.DirName == "" {
			cat.DirName = cat.ID
		}
		if cat.FilePrefix == "" {
			cat.FilePrefix = cat.ID
		}
		if cat.DisplayName == "" {
			cat.DisplayName = cat.ID
		}

		for _, e := range cat.Frequencies {
			if e.Hz < 0 || math.IsNaN(e.Hz) || math.IsInf(e.Hz, 0) {
				return nil, fmt.Errorf("%w: %s/%s: frequency %v", ErrInvalidCatalog, cat.ID, e.Name, e.Hz)
			}
			if e.Name == "" {
				return nil, fmt.Errorf("%w: %s: entry without a name", ErrInvalidCatalog, cat.ID)
			}
		}
	}

	return c, nil
}

// Categories returns the categories in declared order.
func (c *Catalog) Categories() []Category {
	return c.categories
}

// Len is the number of categories.
func (c *Catalog) Len() int { return len(c.categories) }

// Lookup finds the category for a subcommand name.
func (c *Catalog) Lookup(command string) (*Category, error) {
	i, ok := c.byCommand[command]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, command)
	}
	return &c.categories[i], nil
}

// ByID finds a category by its id.
func (c *Catalog) ByID(id string) (*Category, error) {
	for i := range c.categories {
		if c.categories[i].ID == id {
			return &c.categories[i], nil
		}
	}
	return nil, fmt.Errorf("%w: id %q", ErrUnknownCategory, id)
}
