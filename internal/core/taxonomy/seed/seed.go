// Package seed loads the default workshop taxonomy from an embedded YAML file
// The compiled Pack doubles as a static taxonomy.Source
package seed

import (
	"context"
	_ "embed"
	"fmt"
	"os"
	"strings"

	"taller/internal/core/normalize"
	"taller/internal/core/taxonomy"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var embedded []byte

// DefaultColor is used when a category omits its color
const DefaultColor = "#6c757d"

type rawKeyword struct {
	Text      string  `yaml:"text"`
	Weight    float64 `yaml:"weight"`
	SynonymOf string  `yaml:"synonym_of"`
}

type rawCategory struct {
	Name       string        `yaml:"name"`
	Color      string        `yaml:"color"`
	Complexity int           `yaml:"complexity"`
	Keywords   []rawKeyword  `yaml:"keywords"`
	Children   []rawCategory `yaml:"children"`
}

type rawPack struct {
	Version int           `yaml:"version"`
	Parts   []rawCategory `yaml:"parts"`
	Labor   []rawCategory `yaml:"labor"`
}

// Pack is a compiled seed taxonomy with stable, 1-based ids per kind
type Pack struct {
	Version int
	cats    map[taxonomy.Kind][]taxonomy.Category
	kws     map[taxonomy.Kind][]taxonomy.Keyword
}

// Load compiles the embedded seed
func Load() (*Pack, error) { return Parse(embedded) }

// LoadFile compiles a seed file from disk
func LoadFile(path string) (*Pack, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("seed: read %s: %w", path, err)
	}
	return Parse(b)
}

// MustLoad is Load that panics, for wiring code and tests
func MustLoad() *Pack {
	p, err := Load()
	if err != nil {
		panic(err)
	}
	return p
}

// Parse compiles a YAML seed document
func Parse(b []byte) (*Pack, error) {
	var rp rawPack
	if err := yaml.Unmarshal(b, &rp); err != nil {
		return nil, fmt.Errorf("seed: parse yaml: %w", err)
	}
	p := &Pack{
		Version: rp.Version,
		cats:    map[taxonomy.Kind][]taxonomy.Category{},
		kws:     map[taxonomy.Kind][]taxonomy.Keyword{},
	}
	for kind, roots := range map[taxonomy.Kind][]rawCategory{
		taxonomy.KindPart:  rp.Parts,
		taxonomy.KindLabor: rp.Labor,
	} {
		c := compiler{kind: kind, names: map[string]struct{}{}}
		for _, r := range roots {
			if err := c.category(r, nil); err != nil {
				return nil, err
			}
		}
		p.cats[kind] = c.cats
		p.kws[kind] = c.kws
	}
	return p, nil
}

type compiler struct {
	kind  taxonomy.Kind
	names map[string]struct{}
	cats  []taxonomy.Category
	kws   []taxonomy.Keyword
}

func (c *compiler) category(r rawCategory, parent *int64) error {
	name := strings.TrimSpace(r.Name)
	if name == "" {
		return fmt.Errorf("seed: %s category without name", c.kind)
	}
	if _, dup := c.names[name]; dup {
		return fmt.Errorf("seed: duplicate %s category %q", c.kind, name)
	}
	c.names[name] = struct{}{}

	id := int64(len(c.cats) + 1)
	cat := taxonomy.Category{ID: id, Name: name, ParentID: parent, Color: r.Color}
	if cat.Color == "" {
		cat.Color = DefaultColor
	}
	if c.kind == taxonomy.KindLabor {
		cat.Complexity = max(r.Complexity, 1)
	}
	c.cats = append(c.cats, cat)

	// principal lookup is local to the category
	principal := map[string]int64{}
	for _, k := range r.Keywords {
		if strings.TrimSpace(k.Text) == "" {
			return fmt.Errorf("seed: empty keyword in %q", name)
		}
		w := k.Weight
		if w == 0 {
			w = 1.0
		}
		if w < 0 {
			return fmt.Errorf("seed: negative weight for %q in %q", k.Text, name)
		}
		kw := taxonomy.Keyword{
			ID:         int64(len(c.kws) + 1),
			CategoryID: id,
			Text:       k.Text,
			Weight:     w,
		}
		if k.SynonymOf != "" {
			pid, ok := principal[normalize.Text(k.SynonymOf)]
			if !ok {
				return fmt.Errorf("seed: %q is a synonym of unknown keyword %q in %q", k.Text, k.SynonymOf, name)
			}
			kw.Synonym = true
			kw.PrincipalID = &pid
		}
		principal[normalize.Text(k.Text)] = kw.ID
		c.kws = append(c.kws, kw)
	}

	self := id
	for _, ch := range r.Children {
		if err := c.category(ch, &self); err != nil {
			return err
		}
	}
	return nil
}

// Categories returns the compiled categories of kind
func (p *Pack) Categories(kind taxonomy.Kind) []taxonomy.Category {
	return append([]taxonomy.Category(nil), p.cats[kind]...)
}

// Keywords returns the compiled keywords of kind
func (p *Pack) Keywords(kind taxonomy.Kind) []taxonomy.Keyword {
	return append([]taxonomy.Keyword(nil), p.kws[kind]...)
}

// ActiveCategories satisfies taxonomy.Source
func (p *Pack) ActiveCategories(_ context.Context, kind taxonomy.Kind) ([]taxonomy.Category, error) {
	return p.Categories(kind), nil
}

// ActiveKeywords satisfies taxonomy.Source
func (p *Pack) ActiveKeywords(_ context.Context, kind taxonomy.Kind) ([]taxonomy.Keyword, error) {
	return p.Keywords(kind), nil
}

var _ taxonomy.Source = (*Pack)(nil)
