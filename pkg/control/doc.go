// Package control adapts the binary native checkbox to the tri-state visual
// and resolves controlled versus uncontrolled values.
//
// The indeterminate bit has no markup attribute: it only exists on the live
// control. Syncer pushes it onto a Handle as an explicit post-render step,
// on first mount and whenever the declared value changes.
package control
