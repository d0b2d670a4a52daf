package render

import (
	"strings"

	"classdiag/internal/common"
	"classdiag/internal/filter"
	"classdiag/internal/symbol"
)

// diagramHeader identifies the output as a class-structure diagram.
const diagramHeader = "classDiagram"

// indentWidth is the number of spaces per nesting level.
const indentWidth = 4

// Render produces the full diagram text for a model under a filter policy.
//
// The result is byte-identical across calls with the same model. Rendering
// never fails: malformed symbols degrade to best-effort lines, and edges
// whose target is neither in the model nor framework-owned are emitted
// rather than dropped. A nil policy suppresses nothing.
func Render(model *symbol.Model, policy *filter.Policy) string {
	if policy == nil {
		policy = &filter.Policy{}
	}

	var sb strings.Builder

	writeLine(&sb, 0, diagramHeader)

	// Every declaration block sits one level below the header.
	const level = 1

	for _, iface := range model.Interfaces() {
		writeMarkerBlock(&sb, level, iface.Name, "<<interface>>")
	}

	for _, class := range model.Classes() {
		writeClass(&sb, level, class)
	}

	for _, enum := range model.Enums() {
		writeMarkerBlock(&sb, level, enum.Name, "<<enumeration>>")
	}

	for _, class := range model.Classes() {
		writeEdges(&sb, level, class, policy)
	}

	return sb.String()
}

// writeLine emits one line at the given nesting level.
func writeLine(sb *strings.Builder, level int, text string) {
	sb.WriteString(strings.Repeat(" ", level*indentWidth))
	sb.WriteString(text)
	sb.WriteString("\n")
}

// writeMarkerBlock emits a two-line block carrying only a stereotype
// marker, used for interfaces and enumerations (their members are not
// rendered).
func writeMarkerBlock(sb *strings.Builder, level int, name, marker string) {
	writeLine(sb, level, "class "+name+" {")
	writeLine(sb, level+1, marker)
	writeLine(sb, level, "}")
}

// writeClass emits a class declaration: a single line when the class has
// no renderable members, otherwise a block with one line per property
// followed by one line per method.
func writeClass(sb *strings.Builder, level int, class *symbol.TypeSymbol) {
	props, methods := renderableMembers(class)

	if common.IsEmpty(props) && common.IsEmpty(methods) {
		writeLine(sb, level, "class "+class.Name)
		return
	}

	writeLine(sb, level, "class "+class.Name+" {")

	for _, p := range props {
		writeLine(sb, level+1, propertyLine(p))
	}

	for _, m := range methods {
		writeLine(sb, level+1, methodLine(m))
	}

	writeLine(sb, level, "}")
}

// writeEdges emits relationship edges for one class: realization edges for
// each implemented interface, then a generalization edge for the base
// type, each subject to the filter policy.
func writeEdges(sb *strings.Builder, level int, class *symbol.TypeSymbol, policy *filter.Policy) {
	for _, iface := range class.Implements {
		if policy.IsSpecialInterface(iface) || policy.IsFrameworkOwned(iface) {
			continue
		}

		writeLine(sb, level, iface.Name+" <|.. "+class.Name)
	}

	base := class.Base
	if base == nil {
		return
	}

	if policy.IsSpecialBaseType(base) || policy.IsFrameworkOwned(base) {
		return
	}

	writeLine(sb, level, base.Name+" <|-- "+class.Name)
}

// renderableMembers partitions a class's members into properties and
// methods, dropping synthesized members and property accessors.
func renderableMembers(class *symbol.TypeSymbol) (props, methods []symbol.MemberSymbol) {
	for _, m := range class.Members {
		if m.Implicit || m.Accessor {
			continue
		}

		switch m.Kind {
		case symbol.MemberProperty:
			props = append(props, m)
		case symbol.MemberMethod:
			methods = append(methods, m)
		}
	}

	return props, methods
}

// propertyLine formats a property as "<mark><TypeName> <Name>" plus a
// static suffix.
func propertyLine(m symbol.MemberSymbol) string {
	return visibilityMark(m.Visibility) + m.TypeName + " " + m.Name + staticSuffix(m)
}

// methodLine formats a method as "<mark><ReturnType> <Name>(<params>)"
// plus a static suffix.
func methodLine(m symbol.MemberSymbol) string {
	return visibilityMark(m.Visibility) + m.TypeName + " " + m.Name +
		"(" + formatParams(m.Params) + ")" + staticSuffix(m)
}

// formatParams renders a method's parameter list. Parameters are carried
// in the model but not yet rendered, so every signature shows empty
// parentheses.
// TODO: render "name type" pairs once diagram consumers settle on a
// notation for parameter lists.
func formatParams(_ []symbol.Param) string {
	return ""
}

// staticSuffix returns the "$" classifier marker for static members.
func staticSuffix(m symbol.MemberSymbol) string {
	if m.Static {
		return "$"
	}

	return ""
}

// visibilityMark maps a visibility to its single-character diagram mark.
// The mapping is total; unrecognized values render as a space.
func visibilityMark(v symbol.Visibility) string {
	switch v {
	case symbol.VisPublic:
		return "+"
	case symbol.VisProtected, symbol.VisProtectedInternal, symbol.VisPrivateProtected:
		return "#"
	case symbol.VisPrivate:
		return "-"
	case symbol.VisInternal:
		return "~"
	default:
		return " "
	}
}
