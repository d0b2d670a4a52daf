// Package analyze builds a symbol model from Go packages.
//
// It uses golang.org/x/tools/go/packages with go/types to discover
// declared types and translate them into the diagram's model:
//   - named struct types become classes, their fields properties and
//     their methods methods
//   - named interface types become interfaces
//   - named basic types with constants of that type become enumerations
//   - the first embedded struct field becomes the extends target, and
//     satisfied interfaces become implements targets
//
// Types declared outside the loaded packages materialize as
// framework-origin symbols so relationship targets never dangle; the
// filter policy decides whether their edges survive rendering.
package analyze
