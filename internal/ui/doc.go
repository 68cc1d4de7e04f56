package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires the filter widgets to the session controller, runs syncs with a
// cancel button and progress bar, and stores choices in the app preferences.
// All UI strings are localized via Localization.
