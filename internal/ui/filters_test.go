package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/google/go-cmp/cmp"

	"github.com/ytget/font-sync/internal/filter"
	"github.com/ytget/font-sync/internal/model"
)

func newTestPanel(t *testing.T) *FilterPanel {
	t.Helper()
	test.NewApp()
	return NewFilterPanel(NewLocalization(), AttributeColumns)
}

func TestFilterPanel_Defaults(t *testing.T) {
	panel := newTestPanel(t)

	criteria := panel.Criteria()
	if diff := cmp.Diff(model.Categories, criteria.Categories); diff != "" {
		t.Errorf("Every category should be checked (-want +got):\n%s", diff)
	}
	if criteria.Subset != "" {
		t.Errorf("Expected no subset, got %s", criteria.Subset)
	}
	if criteria.MinStyleCount != 0 || criteria.MinThickness != 0 || criteria.MinSlant != 0 || criteria.MinWidth != 0 {
		t.Errorf("Attribute filters should be off, got %+v", criteria)
	}
	if err := filter.Validate(criteria); err != nil {
		t.Errorf("Default criteria should be valid: %v", err)
	}
}

func TestFilterPanel_SetCriteria(t *testing.T) {
	panel := newTestPanel(t)

	called := false
	panel.SetOnChanged(func(model.Criteria) { called = true })

	want := model.Criteria{
		Categories:    []model.Category{model.CategorySerif, model.CategoryDisplay},
		Subset:        "latin-ext",
		MinStyleCount: 4,
		MinWidth:      6,
	}
	panel.SetCriteria(want)

	if diff := cmp.Diff(want, panel.Criteria()); diff != "" {
		t.Errorf("Criteria mismatch (-want +got):\n%s", diff)
	}
	if panel.subsetSelect.Selected != "Latin (Extended)" {
		t.Errorf("Unexpected subset label %s", panel.subsetSelect.Selected)
	}
	if called {
		t.Error("SetCriteria should not report a change")
	}

	// Empty category list means every category
	panel.SetCriteria(model.Criteria{})
	if diff := cmp.Diff(model.Categories, panel.Criteria().Categories); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterPanel_LastCategoryStaysChecked(t *testing.T) {
	panel := newTestPanel(t)
	panel.SetCriteria(model.Criteria{Categories: []model.Category{model.CategoryMonospace}})

	var got model.Criteria
	panel.SetOnChanged(func(c model.Criteria) { got = c })

	// Unchecking the only checked category checks all of them again
	panel.categories[len(panel.categories)-1].SetChecked(false)

	if diff := cmp.Diff(model.Categories, got.Categories); diff != "" {
		t.Errorf("Categories mismatch (-want +got):\n%s", diff)
	}
}

func TestFilterPanel_AttributeFilter(t *testing.T) {
	panel := newTestPanel(t)

	var changes []model.Criteria
	panel.SetOnChanged(func(c model.Criteria) { changes = append(changes, c) })

	thickness := panel.attributes[1]

	// Moving the slider of an unapplied filter changes nothing
	thickness.slider.SetValue(5)
	if len(changes) != 0 {
		t.Errorf("Expected no change, got %d", len(changes))
	}

	thickness.apply.SetChecked(true)
	if len(changes) != 1 || changes[0].MinThickness != 5 {
		t.Fatalf("Expected thickness 5, got %+v", changes)
	}

	thickness.slider.SetValue(7)
	if last := changes[len(changes)-1]; last.MinThickness != 7 {
		t.Errorf("Expected thickness 7, got %d", last.MinThickness)
	}
	if thickness.value.Text != "7" {
		t.Errorf("Value label should follow the slider, got %s", thickness.value.Text)
	}

	thickness.apply.SetChecked(false)
	if last := changes[len(changes)-1]; last.MinThickness != 0 {
		t.Errorf("Expected thickness filter off, got %d", last.MinThickness)
	}
}

func TestFilterPanel_SubsetSelection(t *testing.T) {
	panel := newTestPanel(t)

	var got model.Criteria
	panel.SetOnChanged(func(c model.Criteria) { got = c })

	panel.subsetSelect.SetSelected("Cyrillic")
	if got.Subset != "cyrillic" {
		t.Errorf("Expected cyrillic, got %q", got.Subset)
	}

	panel.subsetSelect.SetSelected(filter.AllSubsetsLabel)
	if got.Subset != "" {
		t.Errorf("Expected no subset, got %q", got.Subset)
	}
}

func TestFilterPanel_RefreshTexts(t *testing.T) {
	test.NewApp()
	l := NewLocalization()
	panel := NewFilterPanel(l, MobileAttributeColumns)

	l.SetLanguage("pt")
	panel.RefreshTexts()

	if panel.attributes[2].title.Text != "Inclinação" {
		t.Errorf("Expected translated title, got %s", panel.attributes[2].title.Text)
	}
	if panel.attributes[2].apply.Text != "Aplicar este filtro" {
		t.Errorf("Expected translated check, got %s", panel.attributes[2].apply.Text)
	}
}

func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	if th.Size(theme.SizeNameText) != 13 {
		t.Errorf("Expected text size 13, got %f", th.Size(theme.SizeNameText))
	}
	if th.Size(theme.SizeNameScrollBar) != theme.DefaultTheme().Size(theme.SizeNameScrollBar) {
		t.Error("Unlisted sizes should come from the default theme")
	}
	if th.Color(theme.ColorNamePrimary, theme.VariantLight) == th.Color(theme.ColorNamePrimary, theme.VariantDark) {
		t.Error("Primary color should depend on the variant")
	}
	if th.Icon(theme.IconNameFolder) == nil {
		t.Error("Icons should come from the default theme")
	}
}
