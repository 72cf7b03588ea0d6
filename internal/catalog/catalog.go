// Package catalog defines the menu data the kiosk orders against: products,
// categories, option groups and options, plus an immutable per-session
// snapshot with id-based lookup. Fuzzy name matching lives in the matching
// package; catalog identity is always resolved by numeric id.
package catalog

import "strings"

// ProductType distinguishes single-serving items from set (combo) items.
type ProductType string

const (
	TypeSingle ProductType = "SINGLE"
	TypeSet    ProductType = "SET"
)

// Option is one selectable choice inside an option group.
// Price is the delta added on top of the product base price.
type Option struct {
	ID        int64  `yaml:"id"`
	Name      string `yaml:"name"`
	Price     int64  `yaml:"price"`
	IsDefault bool   `yaml:"is_default"`
}

// OptionGroup is an ordered set of options the customer resolves one group
// at a time, in catalog-declared order.
type OptionGroup struct {
	ID           int64    `yaml:"id"`
	Name         string   `yaml:"name"`
	Required     bool     `yaml:"required"`
	MaxSelection int      `yaml:"max_selection"`
	Options      []Option `yaml:"options"`
}

// Default returns the group's default option: the first option flagged
// IsDefault, falling back to the first option. Groups are guaranteed
// non-empty by snapshot validation.
func (g OptionGroup) Default() Option {
	for _, opt := range g.Options {
		if opt.IsDefault {
			return opt
		}
	}
	return g.Options[0]
}

// Product is a purchasable menu item. Name is the native (Korean) name,
// EngName the English one; Price is in the smallest currency unit.
type Product struct {
	ID             int64         `yaml:"id"`
	Name           string        `yaml:"name"`
	EngName        string        `yaml:"eng_name"`
	Description    string        `yaml:"description"`
	EngDescription string        `yaml:"eng_description"`
	Price          int64         `yaml:"price"`
	Type           ProductType   `yaml:"type"`
	CategoryID     int64         `yaml:"category_id"`
	OptionGroups   []OptionGroup `yaml:"option_groups"`
}

// DisplayName returns the localized product name for the given language
// code, falling back to the native name.
func (p Product) DisplayName(lang string) string {
	if lang == "en" && p.EngName != "" {
		return p.EngName
	}
	return p.Name
}

// DisplayDescription returns the localized description, which may be empty.
func (p Product) DisplayDescription(lang string) string {
	if lang == "en" && p.EngDescription != "" {
		return p.EngDescription
	}
	return p.Description
}

// IsSet reports whether the product is a set/combo item. Besides the declared
// type, a set word in the name or the presence of option groups also counts;
// catalogs in the wild are not always consistent about Type.
func (p Product) IsSet() bool {
	if p.Type == TypeSet {
		return true
	}
	if strings.Contains(p.Name, "세트") || strings.Contains(strings.ToLower(p.EngName), "set") {
		return true
	}
	return len(p.OptionGroups) > 0
}

// Category groups products on the menu board.
type Category struct {
	ID      int64  `yaml:"id"`
	Name    string `yaml:"name"`
	EngName string `yaml:"eng_name"`
}

// DisplayName returns the localized category name.
func (c Category) DisplayName(lang string) string {
	if lang == "en" && c.EngName != "" {
		return c.EngName
	}
	return c.Name
}
