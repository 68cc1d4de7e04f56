// Package filter selects font families from a catalog. Evaluate is a pure
// function over an in-memory catalog; Validate checks criteria coming from
// the CLI or the UI before they reach Evaluate.
package filter
