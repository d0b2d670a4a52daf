package filter

import (
	"slices"

	"classdiag/internal/common"
	"classdiag/internal/symbol"
)

// Policy classifies types as special, framework-owned, or user-defined.
// The zero value suppresses nothing; use DefaultPolicy for the stock rules.
type Policy struct {
	// SpecialBases lists base types that carry no architectural information
	// as generalization targets. Entries are qualified ("sync.Mutex") or
	// bare ("error") display names.
	SpecialBases []string
	// SpecialInterfaces lists structural interfaces that nearly every type
	// satisfies, suppressed as realization targets.
	SpecialInterfaces []string
	// FrameworkPrefixes lists namespace prefixes owned by the platform or
	// third parties. Matching is segment-wise.
	FrameworkPrefixes []string
}

// DefaultPolicy returns the stock rules for Go codebases.
func DefaultPolicy() *Policy {
	return &Policy{
		SpecialBases: []string{
			"sync.Mutex",
			"sync.RWMutex",
			"sync.WaitGroup",
			"sync.Once",
		},
		SpecialInterfaces: []string{
			"error",
			"fmt.Stringer",
			"io.Closer",
			"io.Reader",
			"io.Writer",
			"sort.Interface",
		},
		// github.com is deliberately absent: user modules commonly live
		// there, and dependency types already arrive framework-tagged
		// from the analyzer.
		FrameworkPrefixes: []string{
			"golang.org/x",
			"google.golang.org",
			"gopkg.in",
		},
	}
}

// IsSpecialBaseType reports whether t is a built-in root type that adds no
// information as a generalization target.
func (p *Policy) IsSpecialBaseType(t *symbol.TypeSymbol) bool {
	if t == nil {
		return false
	}

	return p.matchesName(p.SpecialBases, t)
}

// IsSpecialInterface reports whether t is a built-in structural interface
// suppressed from realization edges.
func (p *Policy) IsSpecialInterface(t *symbol.TypeSymbol) bool {
	if t == nil {
		return false
	}

	return p.matchesName(p.SpecialInterfaces, t)
}

// IsFrameworkOwned reports whether t is declared under a framework
// namespace. Types the analyzer already tagged as framework-origin
// qualify regardless of prefix rules.
func (p *Policy) IsFrameworkOwned(t *symbol.TypeSymbol) bool {
	if t == nil {
		return false
	}

	if t.Origin == symbol.OriginFramework {
		return true
	}

	for _, prefix := range p.FrameworkPrefixes {
		if common.HasPathPrefix(t.Namespace, prefix) {
			return true
		}
	}

	return false
}

// matchesName checks both the qualified ("io.Closer") and bare ("error")
// display names of t against the rule set.
func (p *Policy) matchesName(rules []string, t *symbol.TypeSymbol) bool {
	if common.IsEmpty(rules) {
		return false
	}

	if slices.Contains(rules, t.Name) {
		return true
	}

	if t.Namespace == "" {
		return false
	}

	qualified := common.PkgAlias(t.Namespace) + "." + t.Name

	return slices.Contains(rules, qualified)
}
