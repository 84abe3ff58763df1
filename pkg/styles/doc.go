// Package styles resolves declarative component options (kind, variant, size
// and shape flags) into the utility classes a component renders with.
//
// Resolution is table driven. Tables are validated once when a Resolver is
// built; every enumerated variant and size must have exactly one entry in
// every table its kind consults. A gap is reported as a *ConfigError, both at
// construction and when an unknown tag reaches Resolve.
package styles
