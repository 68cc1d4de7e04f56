package fontinfo

// Package fontinfo reads the name tables of installed TrueType files so the
// CLI and the UI can show which families actually ended up in the font
// directory after a sync.
