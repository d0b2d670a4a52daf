// Package filter decides which types and relationship targets are noise
// and should be suppressed from the rendered diagram.
//
// Three predicates make up the policy:
//   - special base types: built-in roots every type trivially derives from
//   - special interfaces: built-in contracts nearly every type satisfies
//   - framework-owned types: declared under a framework namespace prefix
//
// Filtering only ever removes a relationship edge or a type's inclusion in
// the interface/enum listing; it never removes a user-defined class from
// the class listing.
//
// The predicate sets are configurable via a YAML file so the heuristics
// stay testable and adaptable per project.
package filter
