// Package template defines the template rendering seam used by the
// composer and the catalog page renderer.
package template
