package filter

import (
	"slices"

	"github.com/ytget/font-sync/internal/model"
)

// Match reports whether f satisfies every active clause of c
func Match(f model.FontFamily, c model.Criteria) bool {
	if len(c.Categories) > 0 && !slices.Contains(c.Categories, f.Category) {
		return false
	}
	if c.Subset != "" && !f.HasSubset(c.Subset) {
		return false
	}
	return atLeast(f.StyleCount, c.MinStyleCount) &&
		atLeast(f.Thickness, c.MinThickness) &&
		atLeast(f.Slant, c.MinSlant) &&
		atLeast(f.Width, c.MinWidth)
}

// atLeast applies a threshold; 0 is inactive. An unspecified (0) value never
// satisfies an active threshold since thresholds are positive.
func atLeast(value, threshold int) bool {
	return threshold == 0 || threshold <= value
}

// Evaluate returns copies of the catalog records matching c, in catalog order.
// Neither catalog nor c is modified.
func Evaluate(catalog []model.FontFamily, c model.Criteria) []model.FontFamily {
	result := make([]model.FontFamily, 0, len(catalog))
	for _, f := range catalog {
		if Match(f, c) {
			result = append(result, f.Clone())
		}
	}
	return result
}

// Names returns the family names of families, in order
func Names(families []model.FontFamily) []string {
	names := make([]string, len(families))
	for i, f := range families {
		names[i] = f.Name
	}
	return names
}
