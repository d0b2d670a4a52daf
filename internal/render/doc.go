// Package render turns a symbol model into Mermaid classDiagram text.
//
// Rendering is a pure function: no I/O, no shared state, and deterministic
// output for a given model and filter policy. Emission order is fixed
// because consumers diff diagram text: header, interfaces, classes, enums,
// then relationship edges.
package render
