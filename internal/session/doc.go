// Package session holds the state shared by the front ends: the loaded
// catalog, the active filter criteria, the families they select and the sync
// job currently running. Criteria changes are explicit calls that re-evaluate
// the filter right away; a sync runs on its own goroutine and at most one can
// be in flight.
package session
