package ui

import (
	"slices"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/font-sync/internal/filter"
	"github.com/ytget/font-sync/internal/model"
)

// attributeRow is one optional minimum-value filter: an apply checkbox and a slider
type attributeRow struct {
	key    string
	title  *widget.Label
	apply  *widget.Check
	slider *widget.Slider
	value  *widget.Label
	min    float64
}

func newAttributeRow(key string, lo, hi int, onChange func()) *attributeRow {
	r := &attributeRow{
		key:    key,
		title:  widget.NewLabel(""),
		slider: widget.NewSlider(float64(lo), float64(hi)),
		value:  widget.NewLabel(strconv.Itoa(lo)),
		min:    float64(lo),
	}
	r.title.TextStyle = fyne.TextStyle{Bold: true}
	r.slider.Step = 1
	r.slider.Value = r.min

	r.apply = widget.NewCheck("", func(bool) { onChange() })
	r.slider.OnChanged = func(v float64) {
		r.value.SetText(strconv.Itoa(int(v)))
		if r.apply.Checked {
			onChange()
		}
	}
	return r
}

// threshold returns the slider value when the filter is applied, 0 otherwise
func (r *attributeRow) threshold() int {
	if !r.apply.Checked {
		return 0
	}
	return int(r.slider.Value)
}

func (r *attributeRow) set(threshold int) {
	if threshold <= 0 {
		r.apply.SetChecked(false)
		r.slider.SetValue(r.min)
	} else {
		r.apply.SetChecked(true)
		r.slider.SetValue(float64(threshold))
	}
	r.value.SetText(strconv.Itoa(int(r.slider.Value)))
}

func (r *attributeRow) refreshTexts(l *Localization) {
	r.title.SetText(l.GetText(r.key))
	r.apply.Text = l.GetText(KeyApplyFilter)
	r.apply.Refresh()
}

func (r *attributeRow) content() fyne.CanvasObject {
	return container.NewVBox(
		r.title,
		r.apply,
		container.NewBorder(nil, nil, nil, r.value, r.slider),
	)
}

// FilterPanel holds the widgets that make up the filter criteria. At least one
// category is always checked.
type FilterPanel struct {
	localization *Localization

	categoriesLabel *widget.Label
	categories      []*widget.Check
	subsetLabel     *widget.Label
	subsetSelect    *widget.Select
	subsetIDs       map[string]string
	subsetLabels    map[string]string
	attributes      []*attributeRow

	onChange func(model.Criteria)
	updating bool
	content  fyne.CanvasObject
}

// NewFilterPanel creates the filter widgets with every category checked and
// no other filter applied. columns sets how many attribute filters share a row.
func NewFilterPanel(localization *Localization, columns int) *FilterPanel {
	p := &FilterPanel{
		localization:    localization,
		categoriesLabel: widget.NewLabel(""),
		subsetLabel:     widget.NewLabel(""),
		subsetLabels:    make(map[string]string),
	}
	p.categoriesLabel.TextStyle = fyne.TextStyle{Bold: true}
	p.subsetLabel.TextStyle = fyne.TextStyle{Bold: true}

	categoryBox := container.NewVBox(p.categoriesLabel)
	for _, c := range model.Categories {
		check := widget.NewCheck(filter.CategoryTitle(c), p.onCategoryToggled)
		check.Checked = true
		p.categories = append(p.categories, check)
		categoryBox.Add(check)
	}

	labels, ids := filter.SubsetOptions()
	p.subsetIDs = ids
	for label, id := range ids {
		p.subsetLabels[id] = label
	}
	p.subsetSelect = widget.NewSelect(labels, func(string) { p.notify() })
	p.subsetSelect.Selected = filter.AllSubsetsLabel

	p.attributes = []*attributeRow{
		newAttributeRow(KeyStyleCount, StyleCountMin, StyleCountMax, p.notify),
		newAttributeRow(KeyThickness, AttributeMin, AttributeMax, p.notify),
		newAttributeRow(KeySlant, AttributeMin, AttributeMax, p.notify),
		newAttributeRow(KeyWidth, AttributeMin, AttributeMax, p.notify),
	}
	grid := container.NewGridWithColumns(max(columns, 1))
	for _, r := range p.attributes {
		grid.Add(r.content())
	}

	p.content = container.NewBorder(
		nil, nil,
		container.NewGridWrap(fyne.NewSize(CategoryColumnWidth, categoryBox.MinSize().Height), categoryBox),
		nil,
		container.NewVBox(p.subsetLabel, p.subsetSelect, widget.NewSeparator(), grid),
	)

	p.RefreshTexts()
	return p
}

// SetOnChanged sets the function called with the new criteria after every user change
func (p *FilterPanel) SetOnChanged(callback func(model.Criteria)) {
	p.onChange = callback
}

// Content returns the panel's canvas object
func (p *FilterPanel) Content() fyne.CanvasObject {
	return p.content
}

// Criteria builds criteria from the widget state
func (p *FilterPanel) Criteria() model.Criteria {
	var categories []model.Category
	for i, check := range p.categories {
		if check.Checked {
			categories = append(categories, model.Categories[i])
		}
	}

	return model.Criteria{
		Categories:    categories,
		Subset:        p.subsetIDs[p.subsetSelect.Selected],
		MinStyleCount: p.attributes[0].threshold(),
		MinThickness:  p.attributes[1].threshold(),
		MinSlant:      p.attributes[2].threshold(),
		MinWidth:      p.attributes[3].threshold(),
	}
}

// SetCriteria moves the widgets to c without calling the change callback.
// An empty category list checks every category.
func (p *FilterPanel) SetCriteria(c model.Criteria) {
	p.updating = true
	defer func() { p.updating = false }()

	for i, check := range p.categories {
		check.SetChecked(len(c.Categories) == 0 || slices.Contains(c.Categories, model.Categories[i]))
	}

	label, ok := p.subsetLabels[c.Subset]
	if !ok {
		label = filter.AllSubsetsLabel
	}
	p.subsetSelect.SetSelected(label)

	p.attributes[0].set(c.MinStyleCount)
	p.attributes[1].set(c.MinThickness)
	p.attributes[2].set(c.MinSlant)
	p.attributes[3].set(c.MinWidth)
}

// RefreshTexts applies the current language to every label
func (p *FilterPanel) RefreshTexts() {
	p.categoriesLabel.SetText(p.localization.GetText(KeyCategories))
	p.subsetLabel.SetText(p.localization.GetText(KeySubset))
	for _, r := range p.attributes {
		r.refreshTexts(p.localization)
	}
}

func (p *FilterPanel) onCategoryToggled(bool) {
	if p.updating {
		return
	}

	anyChecked := false
	for _, check := range p.categories {
		anyChecked = anyChecked || check.Checked
	}
	if !anyChecked {
		p.updating = true
		for _, check := range p.categories {
			check.SetChecked(true)
		}
		p.updating = false
	}

	p.notify()
}

func (p *FilterPanel) notify() {
	if p.updating || p.onChange == nil {
		return
	}
	p.onChange(p.Criteria())
}
