package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

type shade struct {
	light color.Color
	dark  color.Color
}

var compactColors = map[fyne.ThemeColorName]shade{
	theme.ColorNamePrimary:    {light: color.NRGBA{R: 0x37, G: 0x47, B: 0x4f, A: 0xff}, dark: color.NRGBA{R: 0x90, G: 0xa4, B: 0xae, A: 0xff}},
	theme.ColorNameSuccess:    {light: color.NRGBA{R: 0x2e, G: 0x7d, B: 0x32, A: 0xff}, dark: color.NRGBA{R: 0x66, G: 0xbb, B: 0x6a, A: 0xff}},
	theme.ColorNameError:      {light: color.NRGBA{R: 0xc6, G: 0x28, B: 0x28, A: 0xff}, dark: color.NRGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff}},
	theme.ColorNameBackground: {light: color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf2, A: 0xff}, dark: color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1c, A: 0xff}},
	theme.ColorNameForeground: {light: color.NRGBA{R: 0x21, G: 0x21, B: 0x1f, A: 0xff}, dark: color.NRGBA{R: 0xee, G: 0xee, B: 0xea, A: 0xff}},
}

// Sizes differing from the default theme; the filter grid needs the room
var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     17,
	theme.SizeNameSubHeadingText:  14,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     2,
	theme.SizeNameSelectionRadius: 2,
}

// CompactTheme is a neutral, tighter variant of the default theme
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

// Color returns the palette color for name, falling back to the default theme
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if s, ok := compactColors[name]; ok {
		if variant == theme.VariantDark {
			return s.dark
		}
		return s.light
	}
	return t.Theme.Color(name, variant)
}

// Size returns the compact size for name, falling back to the default theme
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}
