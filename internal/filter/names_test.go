package filter

import (
	"testing"

	"github.com/ytget/font-sync/internal/model"
)

func TestCategoryTitle(t *testing.T) {
	tests := []struct {
		category model.Category
		expected string
	}{
		{model.CategorySerif, "Serif"},
		{model.CategorySansSerif, "Sans Serif"},
		{model.CategoryHandwriting, "Handwriting"},
	}

	for _, test := range tests {
		if got := CategoryTitle(test.category); got != test.expected {
			t.Errorf("CategoryTitle(%s) = %q, expected %q", test.category, got, test.expected)
		}
	}
}

func TestSubsetTitle(t *testing.T) {
	tests := []struct {
		subset   string
		expected string
	}{
		{"latin", "Latin"},
		{"latin-ext", "Latin (Extended)"},
		{"greek-ext", "Greek (Extended)"},
		{"chinese-hongkong", "Chinese (Hongkong)"},
	}

	for _, test := range tests {
		if got := SubsetTitle(test.subset); got != test.expected {
			t.Errorf("SubsetTitle(%s) = %q, expected %q", test.subset, got, test.expected)
		}
	}
}

func TestSubsetOptions(t *testing.T) {
	labels, ids := SubsetOptions()

	if len(labels) != len(model.Subsets)+1 {
		t.Fatalf("Expected %d labels, got %d", len(model.Subsets)+1, len(labels))
	}
	if labels[0] != AllSubsetsLabel {
		t.Errorf("First label should be %q, got %q", AllSubsetsLabel, labels[0])
	}
	if ids[AllSubsetsLabel] != "" {
		t.Errorf("All subsets should map to empty id, got %q", ids[AllSubsetsLabel])
	}
	if ids["Cyrillic (Extended)"] != "cyrillic-ext" {
		t.Errorf("Expected cyrillic-ext, got %q", ids["Cyrillic (Extended)"])
	}
}
