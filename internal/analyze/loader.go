package analyze

import (
	"fmt"
	"go/types"
	"sort"

	"golang.org/x/tools/go/packages"

	"classdiag/internal/diagnostic"
	"classdiag/internal/symbol"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// Analyzer loads Go packages and builds a symbol model.
type Analyzer struct {
	model *symbol.Model
	diags diagnostic.Diagnostics

	// userObjs maps a user symbol back to its go/types object.
	userObjs map[*symbol.TypeSymbol]*types.TypeName
	// objSyms maps a go/types object to its user symbol.
	objSyms map[*types.TypeName]*symbol.TypeSymbol
	// external caches framework-origin symbols by "pkgpath.Name".
	external map[string]*symbol.TypeSymbol
	// loaded records import paths of the analyzed packages.
	loaded map[string]bool
}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		model:    symbol.NewModel(),
		userObjs: make(map[*symbol.TypeSymbol]*types.TypeName),
		objSyms:  make(map[*types.TypeName]*symbol.TypeSymbol),
		external: make(map[string]*symbol.TypeSymbol),
		loaded:   make(map[string]bool),
	}
}

// Diagnostics returns the diagnostics collected during analysis.
func (a *Analyzer) Diagnostics() diagnostic.Diagnostics {
	return a.diags
}

// classWork tracks a class symbol pending member and relationship
// resolution in the second pass.
type classWork struct {
	named *types.Named
	sym   *symbol.TypeSymbol
}

// LoadPackages loads the specified packages and builds the symbol model.
// Patterns are standard Go package patterns (e.g., "./...", "classdiag/internal/render").
func (a *Analyzer) LoadPackages(patterns ...string) (*symbol.Model, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	// Check for package errors
	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	for _, pkg := range pkgs {
		a.loaded[pkg.PkgPath] = true
	}

	// First pass: declare a symbol for every supported exported type so
	// relationship targets can be resolved against the full set.
	var pending []classWork
	for _, pkg := range pkgs {
		pending = append(pending, a.declareTypes(pkg)...)
	}

	// Candidate interfaces for implements-resolution: user interfaces
	// plus exported interfaces from direct imports.
	candidates := a.collectInterfaceCandidates(pkgs)

	// Second pass: members and relationships.
	for _, work := range pending {
		a.resolveClass(work.named, work.sym, candidates)
	}

	return a.model, nil
}

// declareTypes creates symbols for the exported types of one package and
// returns the classes that still need member resolution.
func (a *Analyzer) declareTypes(pkg *packages.Package) []classWork {
	scope := pkg.Types.Scope()
	enumTypes := enumTypeNames(scope)

	var pending []classWork
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)

		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}

		if !typeName.Exported() || typeName.IsAlias() {
			continue
		}

		named, ok := typeName.Type().(*types.Named)
		if !ok {
			continue
		}

		sym := &symbol.TypeSymbol{
			Name:      name,
			Namespace: pkg.PkgPath,
			Origin:    symbol.OriginUser,
		}

		switch named.Underlying().(type) {
		case *types.Interface:
			sym.Kind = symbol.KindInterface
		case *types.Struct:
			sym.Kind = symbol.KindClass
			pending = append(pending, classWork{named: named, sym: sym})
		case *types.Basic:
			if !enumTypes[typeName] {
				a.diags.AddInfo("skipped-basic",
					"named basic type without constants, not modeled", name, "")
				continue
			}

			sym.Kind = symbol.KindEnum
		default:
			a.diags.AddInfo("skipped-type",
				"unsupported underlying type, not modeled", name, "")
			continue
		}

		if a.model.Lookup(name) != nil {
			a.diags.AddWarning("name-collision",
				"type name declared in multiple namespaces, diagram merges them", name, "")
		}

		a.userObjs[sym] = typeName
		a.objSyms[typeName] = sym
		a.model.Add(sym)
	}

	return pending
}

// enumTypeNames returns the type name objects that have package-level
// constants of their type, i.e. Go's enum idiom.
func enumTypeNames(scope *types.Scope) map[*types.TypeName]bool {
	out := make(map[*types.TypeName]bool)

	for _, name := range scope.Names() {
		c, ok := scope.Lookup(name).(*types.Const)
		if !ok {
			continue
		}

		named, ok := c.Type().(*types.Named)
		if !ok {
			continue
		}

		out[named.Obj()] = true
	}

	return out
}

// interfaceCandidate is an interface a class may implement, either from
// the model or from a framework package.
type interfaceCandidate struct {
	iface *types.Interface
	sym   *symbol.TypeSymbol
}

// collectInterfaceCandidates gathers user interfaces in model order, then
// exported interfaces from direct imports in sorted order, then the
// universe error interface.
func (a *Analyzer) collectInterfaceCandidates(pkgs []*packages.Package) []interfaceCandidate {
	var out []interfaceCandidate
	seen := make(map[string]bool)

	// User interfaces first, in model order.
	for _, sym := range a.model.Interfaces() {
		typeName := a.userObjs[sym]
		if typeName == nil {
			continue
		}

		iface, ok := candidateInterface(typeName)
		if !ok {
			continue
		}

		out = append(out, interfaceCandidate{iface: iface, sym: sym})
		seen[sym.Namespace+"."+sym.Name] = true
	}

	// Framework interfaces from direct imports.
	type external struct {
		pkgPath string
		name    string
		iface   *types.Interface
	}

	var externals []external
	for _, pkg := range pkgs {
		for importPath, imported := range pkg.Imports {
			if a.loaded[importPath] || imported.Types == nil {
				continue
			}

			scope := imported.Types.Scope()
			for _, name := range scope.Names() {
				typeName, ok := scope.Lookup(name).(*types.TypeName)
				if !ok || !typeName.Exported() {
					continue
				}

				iface, ok := candidateInterface(typeName)
				if !ok {
					continue
				}

				key := importPath + "." + name
				if seen[key] {
					continue
				}

				seen[key] = true
				externals = append(externals, external{pkgPath: importPath, name: name, iface: iface})
			}
		}
	}

	sort.Slice(externals, func(i, j int) bool {
		if externals[i].pkgPath != externals[j].pkgPath {
			return externals[i].pkgPath < externals[j].pkgPath
		}

		return externals[i].name < externals[j].name
	})

	for _, ext := range externals {
		sym := a.externalSymbol(ext.pkgPath, ext.name, symbol.KindInterface)
		out = append(out, interfaceCandidate{iface: ext.iface, sym: sym})
	}

	// The universe error interface.
	if errObj := types.Universe.Lookup("error"); errObj != nil {
		if iface, ok := errObj.Type().Underlying().(*types.Interface); ok {
			sym := a.externalSymbol("", "error", symbol.KindInterface)
			out = append(out, interfaceCandidate{iface: iface, sym: sym})
		}
	}

	return out
}

// candidateInterface returns the interface behind a type name if it can
// serve as an implements-resolution candidate. Generic interfaces are
// excluded: satisfaction is undefined without instantiation.
func candidateInterface(typeName *types.TypeName) (*types.Interface, bool) {
	named, ok := typeName.Type().(*types.Named)
	if !ok {
		return nil, false
	}

	if named.TypeParams().Len() > 0 {
		return nil, false
	}

	iface, ok := named.Underlying().(*types.Interface)

	return iface, ok
}

// externalSymbol returns the cached framework-origin symbol for a type
// declared outside the analyzed packages, creating it on first use.
func (a *Analyzer) externalSymbol(pkgPath, name string, kind symbol.TypeKind) *symbol.TypeSymbol {
	key := pkgPath + "." + name
	if sym, ok := a.external[key]; ok {
		return sym
	}

	sym := &symbol.TypeSymbol{
		Name:      name,
		Namespace: pkgPath,
		Kind:      kind,
		Origin:    symbol.OriginFramework,
	}
	a.external[key] = sym

	return sym
}
