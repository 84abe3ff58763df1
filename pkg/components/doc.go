// Package components renders Button, Input and Checkbox to HTML.
//
// A Composer resolves classes through pkg/styles, derives aria wiring through
// pkg/a11y and executes the embedded pongo2 templates. One-shot helpers
// (RenderButton, RenderInput, RenderCheckbox) cover static pages; mounted
// instances (NewButton, NewInput, NewCheckbox) keep their element id and
// controlled mode across renders and accept simulated user events.
package components
