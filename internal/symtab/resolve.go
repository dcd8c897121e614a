package symtab

import (
	"strings"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
)

// ResolveQualified resolves a(::b(::c)) per §4.3:
//   - 1 component: scope stack, then current module, then $builtin.
//   - 2 components where the first names a local enum: the second is an
//     enum-value lookup.
//   - 2 components where the first names an imported module: recurse in
//     that module, requiring public visibility.
//   - 3 components (a::b::c): a is an imported module, b::c resolves as a
//     2-component enum-value lookup inside that module (the "two paths
//     converge on the same EnumVal node" case from §9's open question —
//     both the local 2-component path and this nested path call the same
//     lookupEnumValue helper).
//
// scopes is consulted only for unqualified names; it may be nil when
// resolving outside any function body (the global pass, §4.4).
func ResolveQualified(table *Table, builtin *Table, scopes *ScopeStack, modName, name string, pos ast.SourcePos) (ast.Node, error) {
	if modName == "" {
		if scopes != nil {
			if n, ok := scopes.Lookup(name); ok {
				return n, nil
			}
		}
		if n, ok := table.ResolveHere(name, false); ok {
			return n, nil
		}
		if builtin != nil {
			if n, ok := builtin.ResolveHere(name, false); ok {
				return n, nil
			}
		}
		return nil, verrors.New(verrors.SYM001, pos, "unresolved identifier: "+name)
	}

	if idx := strings.LastIndex(modName, "::"); idx >= 0 {
		realMod := modName[:idx]
		enumName := modName[idx+2:]
		target, err := resolveModulePart(table, realMod, pos)
		if err != nil {
			return nil, err
		}
		return resolveEnumValue(target, enumName, name, pos, true)
	}

	if enumNode, ok := table.ResolveHere(modName, false); ok {
		if de, isEnum := enumNode.(*ast.DefEnum); isEnum {
			return lookupEnumValue(de, name, pos)
		}
	}

	target, err := resolveModulePart(table, modName, pos)
	if err != nil {
		return nil, err
	}
	n, ok := target.ResolveHere(name, true)
	if !ok {
		return nil, verrors.New(verrors.SYM004, pos,
			"no public symbol "+name+" in module "+target.ModuleName)
	}
	return n, nil
}

func resolveModulePart(table *Table, modName string, pos ast.SourcePos) (*Table, error) {
	tbl, ok := table.ResolveImportTable(modName)
	if !ok {
		return nil, verrors.New(verrors.SYM001, pos, "unresolved module reference: "+modName)
	}
	return tbl, nil
}

func resolveEnumValue(table *Table, enumName, valueName string, pos ast.SourcePos, requirePublic bool) (ast.Node, error) {
	enumNode, ok := table.ResolveHere(enumName, requirePublic)
	if !ok {
		return nil, verrors.New(verrors.SYM001, pos, "unresolved enum: "+enumName)
	}
	de, ok := enumNode.(*ast.DefEnum)
	if !ok {
		return nil, verrors.New(verrors.SYM001, pos, enumName+" is not an enum")
	}
	return lookupEnumValue(de, valueName, pos)
}

func lookupEnumValue(de *ast.DefEnum, name string, pos ast.SourcePos) (ast.Node, error) {
	for _, v := range de.Items {
		ev := v.(*ast.EnumVal)
		if ev.Name == name {
			return ev, nil
		}
	}
	return nil, verrors.New(verrors.SYM001, pos, "unknown enum value "+name+" in "+de.Name)
}
