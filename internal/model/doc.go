package model

// Package model defines domain data structures used across the app: font
// family records from the catalog, filter criteria, and the per-run sync job
// with its status enum and result. Records are plain values so the UI and CLI
// can bind to them directly.
