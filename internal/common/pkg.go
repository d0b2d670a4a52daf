package common

import (
	"path"
	"strings"
)

// UnknownStr is the fallback display string for unrecognized enum values.
const UnknownStr = "unknown"

// PkgAlias returns the package alias (last element of path) for a given package path.
// Returns empty string if pkgPath is empty.
func PkgAlias(pkgPath string) string {
	if pkgPath == "" {
		return ""
	}

	return path.Base(pkgPath)
}

// HasPathPrefix reports whether a namespace / import path starts with the
// given prefix on a path-segment boundary. "github.com/acme" matches
// "github.com/acme/tool" but not "github.com/acmetool".
func HasPathPrefix(namespace, prefix string) bool {
	if prefix == "" {
		return false
	}

	if namespace == prefix {
		return true
	}

	return strings.HasPrefix(namespace, prefix+"/")
}
