package ui

import "fyne.io/fyne/v2"

// MobileUI adapts layouts to the device the app runs on
type MobileUI struct {
	app fyne.App
}

// NewMobileUI creates a new mobile UI helper
func NewMobileUI(app fyne.App) *MobileUI {
	return &MobileUI{app: app}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return fyne.CurrentDevice().IsMobile()
}

// AttributeColumns returns how many attribute filters fit in one row
func (m *MobileUI) AttributeColumns() int {
	if m.IsMobileDevice() {
		return MobileAttributeColumns
	}
	return AttributeColumns
}
