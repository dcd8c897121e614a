// Package modpool implements the module pool (§4.2): canonicalizing logical
// import paths to module identities, loading and specializing modules, the
// import fixed-point loop for parameterized modules, and a deterministic
// topological ordering of the resulting graph.
package modpool

import (
	"path"
	"path/filepath"
	"strings"
)

const sourceExt = ".cw"

// Identity is the module identity tuple (§4.1 "Module identity is a tuple
// (canonical_path, normalized_arg1, ..., normalized_argn)"). Unparameterized
// modules have Args == nil.
type Identity struct {
	Path string
	Args []string
}

// Key renders an Identity to a single string suitable as a map key; distinct
// argument lists for the same path always produce distinct keys.
func (id Identity) Key() string {
	if len(id.Args) == 0 {
		return id.Path
	}
	return id.Path + "(" + strings.Join(id.Args, ",") + ")"
}

// canonicalizePath resolves a logical import name to an absolute filesystem
// path per §4.2: absolute (leading '/'), relative (leading '.', resolved
// against the importing file's directory), or bare (resolved against root).
func canonicalizePath(root, importerDir, name string) string {
	switch {
	case path.IsAbs(name):
		return filepath.Clean(name)
	case strings.HasPrefix(name, "."):
		return filepath.Clean(filepath.Join(importerDir, name))
	default:
		return filepath.Clean(filepath.Join(root, name))
	}
}

// sourceFile appends the fixed module source extension (§6 "a logical
// module path foo/bar maps to <root>/foo/bar.cw").
func sourceFile(canonicalPath string) string {
	if strings.HasSuffix(canonicalPath, sourceExt) {
		return canonicalPath
	}
	return canonicalPath + sourceExt
}

// registeredName is the name an import is bound under in its importing
// module's symbol table: the alias if present, else the last path segment
// of the imported module's logical name.
func registeredName(importName, alias string) string {
	if alias != "" {
		return alias
	}
	return path.Base(importName)
}
