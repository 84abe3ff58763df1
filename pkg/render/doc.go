// Package render defines the output renderers for rendered catalogs and the
// registry that selects one by name. Implementations live under
// pkg/renderers.
package render
