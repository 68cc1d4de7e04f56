package model

import (
	"slices"
	"strings"
)

// Category is a catalog classification of a font family.
type Category string

const (
	CategorySerif       Category = "serif"
	CategorySansSerif   Category = "sans-serif"
	CategoryDisplay     Category = "display"
	CategoryHandwriting Category = "handwriting"
	CategoryMonospace   Category = "monospace"
)

// Categories lists every known category in display order.
var Categories = []Category{
	CategorySerif,
	CategorySansSerif,
	CategoryDisplay,
	CategoryHandwriting,
	CategoryMonospace,
}

// String returns the category identifier
func (c Category) String() string {
	return string(c)
}

// IsKnown reports whether c is one of Categories
func (c Category) IsKnown() bool {
	return slices.Contains(Categories, c)
}

// Subsets lists the character subset identifiers offered by the catalog.
var Subsets = []string{
	"arabic",
	"bengali",
	"chinese-hongkong",
	"chinese-simplified",
	"chinese-traditional",
	"cyrillic",
	"cyrillic-ext",
	"devanagari",
	"greek",
	"greek-ext",
	"gujarati",
	"gurmukhi",
	"hebrew",
	"japanese",
	"kannada",
	"khmer",
	"korean",
	"latin",
	"latin-ext",
	"malayalam",
	"myanmar",
	"oriya",
	"sinhala",
	"tamil",
	"telugu",
	"thai",
	"tibetan",
	"vietnamese",
}

// Attribute scale bounds for thickness, slant and width.
const (
	MinAttribute = 1
	MaxAttribute = 10
)

// FontFamily is a single catalog record. Attribute values of 0 mean the
// catalog does not specify them.
type FontFamily struct {
	Name       string   `json:"family" yaml:"family"`
	Category   Category `json:"category" yaml:"category"`
	Subsets    []string `json:"subsets" yaml:"subsets"`
	StyleCount int      `json:"style_count" yaml:"style_count"`
	Thickness  int      `json:"thickness,omitempty" yaml:"thickness,omitempty"`
	Slant      int      `json:"slant,omitempty" yaml:"slant,omitempty"`
	Width      int      `json:"width,omitempty" yaml:"width,omitempty"`
}

// HasSubset reports whether the family supports the given subset
func (f FontFamily) HasSubset(subset string) bool {
	return slices.Contains(f.Subsets, subset)
}

// DirName returns the install directory name: the family name with spaces removed
func (f FontFamily) DirName() string {
	return strings.ReplaceAll(f.Name, " ", "")
}

// QueryName returns the family name as used in download URLs
func (f FontFamily) QueryName() string {
	return strings.ReplaceAll(f.Name, " ", "+")
}

// Clone returns a copy that shares no slices with f
func (f FontFamily) Clone() FontFamily {
	f.Subsets = slices.Clone(f.Subsets)
	return f
}

// Criteria selects families from the catalog. Zero values are inactive:
// no categories means any category, an empty subset means any subset and a
// zero threshold is ignored.
type Criteria struct {
	Categories    []Category `json:"categories,omitempty" yaml:"categories,omitempty"`
	Subset        string     `json:"subset,omitempty" yaml:"subset,omitempty"`
	MinStyleCount int        `json:"min_style_count,omitempty" yaml:"min_style_count,omitempty"`
	MinThickness  int        `json:"min_thickness,omitempty" yaml:"min_thickness,omitempty"`
	MinSlant      int        `json:"min_slant,omitempty" yaml:"min_slant,omitempty"`
	MinWidth      int        `json:"min_width,omitempty" yaml:"min_width,omitempty"`
}

// IsEmpty returns true if no clause of the criteria is active
func (c Criteria) IsEmpty() bool {
	return len(c.Categories) == 0 && c.Subset == "" &&
		c.MinStyleCount == 0 && c.MinThickness == 0 && c.MinSlant == 0 && c.MinWidth == 0
}
