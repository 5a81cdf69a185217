// Package domain defines the core entities for JsonPathNavigator.
//
// This package is the hexagonal architecture's innermost layer. It holds
// the parsed-JSON data model and the search vocabulary:
//
//   - Value: one parsed JSON value (object, array or scalar)
//   - Property: an object member with its name-token source offset
//   - Document: one JSON source unit with its line index
//   - SearchResult: a single location where a dotted path resolved
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
