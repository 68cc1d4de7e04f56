package catalog

// Package catalog provides the font family records the filter runs on. A
// catalog comes from the built-in list, a local YAML/JSON file, or the
// Google Fonts metadata endpoint.
