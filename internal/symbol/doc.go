// Package symbol defines the in-memory model of declared types and their
// members that the diagram renderer consumes.
//
// The model is a fully-resolved snapshot produced by an analyzer: one
// TypeSymbol per declared type, each carrying its members in declaration
// order plus its extends/implements relationship targets.
//
// Key types:
//   - TypeSymbol: name, namespace, kind (interface/class/enum), members,
//     base type and implemented interfaces
//   - MemberSymbol: property or method with visibility and static markers
//   - Model: ordered collection of TypeSymbols for one compilation unit
//
// A Model is constructed once and never mutated afterwards; rendering the
// same Model twice yields byte-identical output.
package symbol
