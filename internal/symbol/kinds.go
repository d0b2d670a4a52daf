package symbol

import "classdiag/internal/common"

// TypeKind represents the kind of a declared type.
type TypeKind int

const (
	KindUnknown   TypeKind = iota
	KindInterface          // interface contract
	KindClass              // concrete type with state and behavior
	KindEnum               // closed set of named constants
)

// String returns a human-readable representation of the TypeKind.
func (k TypeKind) String() string {
	switch k {
	case KindInterface:
		return "interface"
	case KindClass:
		return "class"
	case KindEnum:
		return "enum"
	default:
		return common.UnknownStr
	}
}

// MemberKind represents the kind of a type member.
type MemberKind int

const (
	MemberProperty MemberKind = iota // stored or computed value
	MemberMethod                     // callable behavior
)

// String returns a human-readable representation of the MemberKind.
func (k MemberKind) String() string {
	switch k {
	case MemberProperty:
		return "property"
	case MemberMethod:
		return "method"
	default:
		return common.UnknownStr
	}
}

// Visibility is the closed set of member access levels the model carries.
// It deliberately does not mirror any host platform's accessibility
// enumeration; analyzers translate into this set.
type Visibility int

const (
	VisUnspecified Visibility = iota
	VisPublic
	VisProtected
	VisPrivate
	VisInternal
	VisProtectedInternal // protected OR internal
	VisPrivateProtected  // private AND protected
)

// String returns a human-readable representation of the Visibility.
func (v Visibility) String() string {
	switch v {
	case VisPublic:
		return "public"
	case VisProtected:
		return "protected"
	case VisPrivate:
		return "private"
	case VisInternal:
		return "internal"
	case VisProtectedInternal:
		return "protected internal"
	case VisPrivateProtected:
		return "private protected"
	case VisUnspecified:
		return "unspecified"
	default:
		return common.UnknownStr
	}
}

// Origin tags where a type comes from. Only the filter policy looks at it;
// it is never rendered.
type Origin int

const (
	OriginUser      Origin = iota // declared by the analyzed code
	OriginFramework               // provided by the standard library or a dependency
)

// String returns a human-readable representation of the Origin.
func (o Origin) String() string {
	switch o {
	case OriginUser:
		return "user"
	case OriginFramework:
		return "framework"
	default:
		return common.UnknownStr
	}
}
