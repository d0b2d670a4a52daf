// Package diagnostic provides structured warnings, errors, and notes
// produced while building a symbol model.
//
// Key capabilities:
//   - skipped-construct notes (unsupported type shapes)
//   - name collision warnings across namespaces
//   - unresolved relationship target warnings
package diagnostic
