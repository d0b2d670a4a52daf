package analyze

import (
	"go/types"
	"strings"

	"classdiag/internal/symbol"
)

// resolveClass fills in a class symbol's members and relationships.
func (a *Analyzer) resolveClass(named *types.Named, sym *symbol.TypeSymbol, candidates []interfaceCandidate) {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return
	}

	fields := fieldNameSet(st)

	// Fields become properties, in declaration order. Embedded fields are
	// modeled but marked implicit: they surface as the extends target, not
	// as property lines.
	for i := 0; i < st.NumFields(); i++ {
		field := st.Field(i)

		sym.Members = append(sym.Members, symbol.MemberSymbol{
			Kind:       symbol.MemberProperty,
			Name:       field.Name(),
			TypeName:   displayName(field.Type()),
			Visibility: visibilityOf(field.Exported()),
			Implicit:   field.Embedded(),
		})

		if field.Embedded() && sym.Base == nil {
			sym.Base = a.baseSymbol(field.Type())
		}
	}

	// Explicitly declared methods, in declaration order.
	for i := 0; i < named.NumMethods(); i++ {
		f := named.Method(i)
		sig := f.Type().(*types.Signature)

		sym.Members = append(sym.Members, symbol.MemberSymbol{
			Kind:       symbol.MemberMethod,
			Name:       f.Name(),
			TypeName:   returnTypeName(sig),
			Visibility: visibilityOf(f.Exported()),
			Accessor:   isAccessor(f.Name(), sig, fields),
			Params:     paramsOf(sig),
		})
	}

	a.appendPromotedMethods(named, sym)
	a.resolveImplements(named, sym, candidates)
}

// appendPromotedMethods records methods reaching the type through embedded
// fields. They are synthesized from the diagram's point of view and never
// rendered.
func (a *Analyzer) appendPromotedMethods(named *types.Named, sym *symbol.TypeSymbol) {
	ms := types.NewMethodSet(types.NewPointer(named))

	for i := 0; i < ms.Len(); i++ {
		sel := ms.At(i)
		if len(sel.Index()) == 1 {
			continue // declared directly on the type
		}

		f, ok := sel.Obj().(*types.Func)
		if !ok {
			continue
		}

		sig := f.Type().(*types.Signature)

		sym.Members = append(sym.Members, symbol.MemberSymbol{
			Kind:       symbol.MemberMethod,
			Name:       f.Name(),
			TypeName:   returnTypeName(sig),
			Visibility: visibilityOf(f.Exported()),
			Implicit:   true,
			Params:     paramsOf(sig),
		})
	}
}

// resolveImplements records every candidate interface the class satisfies,
// by value or pointer receiver.
func (a *Analyzer) resolveImplements(named *types.Named, sym *symbol.TypeSymbol, candidates []interfaceCandidate) {
	if named.TypeParams().Len() > 0 {
		a.diags.AddInfo("generic-type",
			"interface satisfaction not resolved for generic types", sym.Name, "")
		return
	}

	ptr := types.NewPointer(named)

	for _, c := range candidates {
		if c.iface.Empty() {
			continue // every type satisfies the empty interface
		}

		if types.Implements(named, c.iface) || types.Implements(ptr, c.iface) {
			sym.Implements = append(sym.Implements, c.sym)
		}
	}
}

// baseSymbol resolves an embedded field type to its extends target.
// Only named struct types qualify; anything else yields no base.
func (a *Analyzer) baseSymbol(t types.Type) *symbol.TypeSymbol {
	if ptr, ok := t.(*types.Pointer); ok {
		t = ptr.Elem()
	}

	named, ok := t.(*types.Named)
	if !ok {
		return nil
	}

	if _, ok := named.Underlying().(*types.Struct); !ok {
		return nil
	}

	obj := named.Obj()
	if sym, ok := a.objSyms[obj]; ok {
		return sym
	}

	pkgPath := ""
	if obj.Pkg() != nil {
		pkgPath = obj.Pkg().Path()
	}

	return a.externalSymbol(pkgPath, obj.Name(), symbol.KindClass)
}

// fieldNameSet collects a struct's field names for accessor detection.
func fieldNameSet(st *types.Struct) map[string]bool {
	out := make(map[string]bool)
	for i := 0; i < st.NumFields(); i++ {
		out[st.Field(i).Name()] = true
	}

	return out
}

// isAccessor reports whether a method is a trivial get/set wrapper around
// a field of the same name: "Name() T" for field name, or "SetName(T)".
func isAccessor(name string, sig *types.Signature, fields map[string]bool) bool {
	if sig.Params().Len() == 0 && sig.Results().Len() == 1 {
		return hasFieldFold(fields, name)
	}

	if sig.Params().Len() == 1 && sig.Results().Len() == 0 && strings.HasPrefix(name, "Set") {
		return hasFieldFold(fields, strings.TrimPrefix(name, "Set"))
	}

	return false
}

// hasFieldFold checks field membership ignoring the exported-case of the
// first letter, so Name() matches field "name".
func hasFieldFold(fields map[string]bool, name string) bool {
	if name == "" {
		return false
	}

	for field := range fields {
		if strings.EqualFold(field, name) {
			return true
		}
	}

	return false
}

// visibilityOf maps Go's exported/unexported split onto the model's
// closed visibility set.
func visibilityOf(exported bool) symbol.Visibility {
	if exported {
		return symbol.VisPublic
	}

	return symbol.VisPrivate
}

// returnTypeName renders a signature's result list as a display name:
// "void" for none, the type name for one, a parenthesized list otherwise.
func returnTypeName(sig *types.Signature) string {
	results := sig.Results()

	switch results.Len() {
	case 0:
		return "void"
	case 1:
		return displayName(results.At(0).Type())
	default:
		names := make([]string, results.Len())
		for i := 0; i < results.Len(); i++ {
			names[i] = displayName(results.At(i).Type())
		}

		return "(" + strings.Join(names, ", ") + ")"
	}
}

// paramsOf extracts a signature's parameters in declaration order.
func paramsOf(sig *types.Signature) []symbol.Param {
	params := sig.Params()
	if params.Len() == 0 {
		return nil
	}

	out := make([]symbol.Param, params.Len())
	for i := 0; i < params.Len(); i++ {
		out[i] = symbol.Param{
			Name:     params.At(i).Name(),
			TypeName: displayName(params.At(i).Type()),
		}
	}

	return out
}

// displayName renders a type without package qualifiers: "Order",
// "[]OrderItem", "*string". Identical names from different namespaces
// collapse; the diagram does not disambiguate them.
func displayName(t types.Type) string {
	return types.TypeString(t, func(*types.Package) string { return "" })
}
