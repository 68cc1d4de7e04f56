package filter

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/ytget/font-sync/internal/model"
)

// AllSubsetsLabel is the display label for "no subset constraint"
const AllSubsetsLabel = "All subsets"

// CategoryTitle returns the display name of a category: "sans-serif" -> "Sans Serif"
func CategoryTitle(c model.Category) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(c), "-", " "))
}

// SubsetTitle returns the display name of a subset id. Every word after the
// first is put in parentheses and "Ext" is spelled out:
// "latin-ext" -> "Latin (Extended)", "chinese-hongkong" -> "Chinese (Hongkong)".
func SubsetTitle(subset string) string {
	caser := cases.Title(language.English)
	words := strings.Split(subset, "-")
	for i, w := range words {
		w = caser.String(w)
		if i > 0 {
			if w == "Ext" {
				w = "Extended"
			}
			w = "(" + w + ")"
		}
		words[i] = w
	}
	return strings.Join(words, " ")
}

// SubsetOptions returns display labels for all known subsets, prefixed by
// AllSubsetsLabel, and a map from label back to subset id ("" for all).
func SubsetOptions() ([]string, map[string]string) {
	labels := make([]string, 0, len(model.Subsets)+1)
	ids := make(map[string]string, len(model.Subsets)+1)

	labels = append(labels, AllSubsetsLabel)
	ids[AllSubsetsLabel] = ""
	for _, s := range model.Subsets {
		label := SubsetTitle(s)
		labels = append(labels, label)
		ids[label] = s
	}
	return labels, ids
}
