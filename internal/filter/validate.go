package filter

import (
	"fmt"
	"slices"
	"strings"

	"github.com/ytget/font-sync/internal/model"
)

// ValidationError reports a malformed criteria field
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Validate checks that c only references known categories and subsets and
// that every threshold is inactive or within range
func Validate(c model.Criteria) error {
	for _, cat := range c.Categories {
		if !cat.IsKnown() {
			return &ValidationError{Field: "category", Value: string(cat), Reason: "unknown category"}
		}
	}

	if c.Subset != "" && !slices.Contains(model.Subsets, c.Subset) {
		return &ValidationError{Field: "subset", Value: c.Subset, Reason: "unknown subset"}
	}

	if c.MinStyleCount < 0 {
		return &ValidationError{Field: "style count", Value: fmt.Sprint(c.MinStyleCount), Reason: "must be positive"}
	}

	scaled := []struct {
		field string
		value int
	}{
		{"thickness", c.MinThickness},
		{"slant", c.MinSlant},
		{"width", c.MinWidth},
	}
	for _, s := range scaled {
		if s.value == 0 {
			continue
		}
		if s.value < model.MinAttribute || s.value > model.MaxAttribute {
			return &ValidationError{
				Field:  s.field,
				Value:  fmt.Sprint(s.value),
				Reason: fmt.Sprintf("must be between %d and %d", model.MinAttribute, model.MaxAttribute),
			}
		}
	}

	return nil
}

// ParseCategories converts category ids or display names ("Sans Serif") into
// categories. Duplicates are dropped, order is kept.
func ParseCategories(values []string) ([]model.Category, error) {
	var result []model.Category
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		cat, ok := CategoryFromName(v)
		if !ok {
			return nil, &ValidationError{Field: "category", Value: v, Reason: "unknown category"}
		}
		if !slices.Contains(result, cat) {
			result = append(result, cat)
		}
	}
	return result, nil
}

// CategoryFromName resolves a category id or display name
func CategoryFromName(name string) (model.Category, bool) {
	id := model.Category(strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "-"))
	if id.IsKnown() {
		return id, true
	}
	return "", false
}
