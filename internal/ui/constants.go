package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconFolder   = "📁"
	IconClose    = "×"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	StatusSeparator    = " - "
	ProgressFormat     = "%d / %d"
)

// Slider ranges for the attribute filters
const (
	StyleCountMin = 2
	StyleCountMax = 10
	AttributeMin  = 1
	AttributeMax  = 10
)

// Layout sizing
const (
	CategoryColumnWidth float32 = 200

	InstalledListWidth  float32 = 480
	InstalledListHeight float32 = 360

	// Attribute filters per row on desktop; mobile gets one
	AttributeColumns       = 2
	MobileAttributeColumns = 1
)

// Timeouts
const (
	CatalogLoadTimeout = 30 * time.Second
)
