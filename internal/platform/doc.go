package platform

// Package platform contains OS/platform integration: the default system font
// directory, filesystem helpers used to replace a family's files, zip
// extraction, and opening folders in the system file manager.
