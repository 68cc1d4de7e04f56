package model

import "testing"

func TestFontFamily_Names(t *testing.T) {
	tests := []struct {
		name      string
		dirName   string
		queryName string
	}{
		{"Roboto", "Roboto", "Roboto"},
		{"Open Sans", "OpenSans", "Open+Sans"},
		{"Noto Sans JP", "NotoSansJP", "Noto+Sans+JP"},
	}

	for _, test := range tests {
		f := FontFamily{Name: test.name}
		if got := f.DirName(); got != test.dirName {
			t.Errorf("DirName(%q) = %q, expected %q", test.name, got, test.dirName)
		}
		if got := f.QueryName(); got != test.queryName {
			t.Errorf("QueryName(%q) = %q, expected %q", test.name, got, test.queryName)
		}
	}
}

func TestFontFamily_Clone(t *testing.T) {
	f := FontFamily{Name: "Roboto", Subsets: []string{"latin"}}
	c := f.Clone()
	c.Subsets[0] = "cyrillic"

	if f.Subsets[0] != "latin" {
		t.Errorf("Clone shares subsets with original: %v", f.Subsets)
	}
}

func TestCategory_IsKnown(t *testing.T) {
	for _, c := range Categories {
		if !c.IsKnown() {
			t.Errorf("Category %q should be known", c)
		}
	}
	if Category("sans serif").IsKnown() {
		t.Error("Display name should not be a known category id")
	}
}

func TestCriteria_IsEmpty(t *testing.T) {
	if !(Criteria{}).IsEmpty() {
		t.Error("Zero criteria should be empty")
	}
	if (Criteria{MinWidth: 3}).IsEmpty() {
		t.Error("Criteria with a width threshold should not be empty")
	}
	if (Criteria{Subset: "latin"}).IsEmpty() {
		t.Error("Criteria with a subset should not be empty")
	}
}
