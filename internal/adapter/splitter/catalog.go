package splitter

import (
	"fmt"
	"regexp"

	"gasplit/internal/domain"
)

// Catalog is the compiled, ordered category list. Order is load-bearing:
// FirstMatch resolves overlapping patterns in favor of the earliest
// category, so the catalog is stored as a slice, never a map.
type Catalog struct {
	categories []*Category
}

// Category is one compiled catalog entry.
type Category struct {
	Def   domain.Category
	rules []*regexp.Regexp
}

// NewCatalog compiles category definitions into a catalog. The input
// order is preserved as the match priority order.
func NewCatalog(defs []domain.Category) (*Catalog, error) {
	if len(defs) == 0 {
		return nil, fmt.Errorf("catalog requires at least one category")
	}

	cats := make([]*Category, 0, len(defs))
	for _, def := range defs {
		rules := make([]*regexp.Regexp, 0, len(def.Patterns))
		for _, p := range def.Patterns {
			re, err := regexp.Compile(p)
			if err != nil {
				return nil, fmt.Errorf("category %s: invalid pattern %q: %w", def.File, p, err)
			}
			rules = append(rules, re)
		}
		cats = append(cats, &Category{Def: def, rules: rules})
	}

	return &Catalog{categories: cats}, nil
}

// Categories returns the catalog entries in priority order.
func (c *Catalog) Categories() []*Category {
	return c.categories
}

// FirstMatch returns the first category whose any rule matches the
// line, in catalog order then rule order. The second return is false
// when no category matches.
func (c *Catalog) FirstMatch(line string) (*Category, bool) {
	for _, cat := range c.categories {
		if cat.Matches(line) {
			return cat, true
		}
	}
	return nil, false
}

// Matches reports whether any of the category's rules matches the line.
func (cat *Category) Matches(line string) bool {
	for _, re := range cat.rules {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
