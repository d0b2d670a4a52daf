package symbol

// Param describes one method parameter.
type Param struct {
	Name     string
	TypeName string
}

// MemberSymbol represents one property or method on a TypeSymbol.
type MemberSymbol struct {
	Kind       MemberKind
	Name       string
	TypeName   string // value type for properties, return type for methods
	Visibility Visibility
	Static     bool
	Implicit   bool    // synthesized member, excluded from output
	Accessor   bool    // property get/set method, represented via the property
	Params     []Param // declaration order
}

// TypeSymbol represents one declared type.
//
// Base and Implements reference other TypeSymbols; a target either appears
// in the owning Model or is tagged OriginFramework. Name is assumed unique
// within a rendered diagram (namespace collisions are not disambiguated).
type TypeSymbol struct {
	Name       string
	Namespace  string // import path / namespace the type is declared in
	Kind       TypeKind
	Origin     Origin
	Members    []MemberSymbol // declaration order
	Implements []*TypeSymbol
	Base       *TypeSymbol // nil for interfaces, enums, and root classes
}

// Model holds all types discovered for one compilation unit, in
// declaration order. It is constructed once per analysis and read-only
// afterwards.
type Model struct {
	types  []*TypeSymbol
	byName map[string]*TypeSymbol
}

// NewModel creates an empty Model.
func NewModel() *Model {
	return &Model{
		byName: make(map[string]*TypeSymbol),
	}
}

// Add appends a type to the model, preserving insertion order.
func (m *Model) Add(t *TypeSymbol) {
	m.types = append(m.types, t)
	m.byName[t.Name] = t
}

// Types returns all types in model order.
func (m *Model) Types() []*TypeSymbol {
	return m.types
}

// Lookup returns the type with the given name, or nil if absent.
func (m *Model) Lookup(name string) *TypeSymbol {
	return m.byName[name]
}

// Len returns the number of types in the model.
func (m *Model) Len() int {
	return len(m.types)
}

// Interfaces returns the interface types in model order.
func (m *Model) Interfaces() []*TypeSymbol {
	return m.ofKind(KindInterface)
}

// Classes returns the class types in model order.
func (m *Model) Classes() []*TypeSymbol {
	return m.ofKind(KindClass)
}

// Enums returns the enum types in model order.
func (m *Model) Enums() []*TypeSymbol {
	return m.ofKind(KindEnum)
}

func (m *Model) ofKind(kind TypeKind) []*TypeSymbol {
	var out []*TypeSymbol
	for _, t := range m.types {
		if t.Kind == kind {
			out = append(out, t)
		}
	}

	return out
}
