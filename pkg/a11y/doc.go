// Package a11y derives element identifiers and aria wiring for field
// components. Identifier generation is injected through IDGenerator so tests
// can use deterministic sequences while production instances share a
// process-wide counter.
package a11y
