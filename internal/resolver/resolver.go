// Package resolver implements the §4.4 symbol resolver: a global pass
// that binds every Id outside function bodies, followed by a per-function
// pass with its own scope stack, so the type checker can later trust
// every Id.XSymbol to already be set.
package resolver

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/symtab"
)

// Resolve runs both passes of §4.4 over mod, writing XSymbol on every Id
// it can bind and returning the first resolution failure (SYM001/SYM004,
// raised by symtab.ResolveQualified).
func Resolve(mod *ast.DefMod, table *symtab.Table, builtin *symtab.Table) error {
	w := &walker{table: table, builtin: builtin}

	for _, n := range mod.BodyMod {
		switch n.(type) {
		case *ast.DefFun, *ast.DefMacro:
			continue // §4.4 pass 1 excludes function bodies and macro templates
		default:
			if err := w.walk(n, nil); err != nil {
				return err
			}
		}
	}

	for _, n := range mod.BodyMod {
		fn, ok := n.(*ast.DefFun)
		if !ok || fn.Extern {
			continue
		}
		if err := w.walkFunction(fn); err != nil {
			return err
		}
	}
	return nil
}

type walker struct {
	table   *symtab.Table
	builtin *symtab.Table
}

// walkFunction resolves a function's own signature and then its body
// under a fresh scope stack — params are declared before the body is
// walked, so recursive and mutually-referencing statements see them.
func (w *walker) walkFunction(fn *ast.DefFun) error {
	scopes := symtab.NewScopeStack(w.table)
	scopes.Push()
	defer scopes.Pop()

	for _, p := range fn.Params {
		param := p.(*ast.FunParam)
		if err := w.walk(param.Type, scopes); err != nil {
			return err
		}
		if err := scopes.Declare(param.Name, param); err != nil {
			return err
		}
	}
	if err := w.walk(fn.Result, scopes); err != nil {
		return err
	}
	for _, stmt := range fn.Body {
		if err := w.walk(stmt, scopes); err != nil {
			return err
		}
	}
	return nil
}

// walk resolves n and its children. scopes is nil during the global pass
// (§4.4 "scopes is consulted only for unqualified names; it may be nil
// when resolving outside any function body").
func (w *walker) walk(n ast.Node, scopes *symtab.ScopeStack) error {
	if n == nil {
		return nil
	}

	switch node := n.(type) {
	case *ast.Id:
		resolved, err := symtab.ResolveQualified(w.table, w.builtin, scopes, node.ModName, node.Name, node.Pos())
		if err != nil {
			return err
		}
		node.XSymbol = resolved
		return nil

	case *ast.ExprCall:
		// a polymorphic callee is dispatched by the type checker's PolyMap,
		// not by ordinary symbol lookup (§4.4 "Polymorphic calls are deferred").
		if !node.Polymorphic {
			if err := w.walk(node.Callee, scopes); err != nil {
				return err
			}
		}
		for _, a := range node.Args {
			if err := w.walk(a, scopes); err != nil {
				return err
			}
		}
		return nil

	case *ast.DefVar:
		if err := w.walk(node.Type, scopes); err != nil {
			return err
		}
		if err := w.walk(node.Initial, scopes); err != nil {
			return err
		}
		return scopes.Declare(node.Name, node)

	case *ast.StmtFor:
		if err := w.walk(node.Range, scopes); err != nil {
			return err
		}
		scopes.Push()
		defer scopes.Pop()
		if err := scopes.Declare(node.Name, node); err != nil {
			return err
		}
		for _, s := range node.Body {
			if err := w.walk(s, scopes); err != nil {
				return err
			}
		}
		return nil

	case *ast.StmtIf:
		if err := w.walk(node.Cond, scopes); err != nil {
			return err
		}
		if err := w.walkBlock(node.Then, scopes); err != nil {
			return err
		}
		return w.walkBlock(node.Else, scopes)

	case *ast.StmtBlock:
		return w.walkBlock(node.Body, scopes)

	case *ast.DefMacro:
		return nil // macro template bodies hold MacroId placeholders, never Ids

	default:
		return w.walkFields(node, scopes)
	}
}

// walkFields is the generic fallback, descending through every node's own
// Fields() slots — the same field-descriptor scheme internal/ast.Walk
// uses, kept separate here because unlike Walk this threads an error and
// a scope stack rather than a single boolean.
func (w *walker) walkFields(n ast.Node, scopes *symtab.ScopeStack) error {
	for _, f := range n.Fields() {
		switch f.Kind {
		case ast.FieldNode:
			if f.NodeSlot != nil && *f.NodeSlot != nil {
				if err := w.walk(*f.NodeSlot, scopes); err != nil {
					return err
				}
			}
		case ast.FieldList:
			if f.ListSlot == nil {
				continue
			}
			for _, c := range *f.ListSlot {
				if c != nil {
					if err := w.walk(c, scopes); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

// walkBlock pushes a fresh scope (§4.4 "push additional scopes for then
// and else blocks of conditionals") around a braced statement list, doing
// nothing if scopes is nil (a block can't appear in the global pass).
func (w *walker) walkBlock(stmts []ast.Node, scopes *symtab.ScopeStack) error {
	if scopes != nil {
		scopes.Push()
		defer scopes.Pop()
	}
	for _, s := range stmts {
		if err := w.walk(s, scopes); err != nil {
			return err
		}
	}
	return nil
}
