package typecheck

import (
	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/typecorpus"
)

// isProperLhs implements §4.7's "proper lhs" predicate: a mutable
// definition, a dereference of a mutable pointer, a field of a proper lhs,
// or an index of a mutable container. Used by StmtAssignment/
// StmtCompoundAssignment and by ExprAddrOf when Mut is set.
func (c *Checker) isProperLhs(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.ExprParen:
		return c.isProperLhs(v.Expr)

	case *ast.Id:
		switch sym := v.XSymbol.(type) {
		case *ast.DefVar:
			return sym.Mut
		case *ast.DefGlobal:
			return sym.Mut
		default:
			return false
		}

	case *ast.ExprDeref:
		ptr, ok := c.entryOf(v.Expr)
		return ok && ptr.Kind == typecorpus.KindPtr && ptr.Mut

	case *ast.ExprField:
		return c.isProperLhs(v.Container)

	case *ast.ExprIndex:
		container, ok := c.entryOf(v.Container)
		if ok && container.Kind == typecorpus.KindSlice {
			return container.Mut
		}
		return c.isProperLhs(v.Container)

	default:
		return false
	}
}

// entryOf reads n's own already-computed XType back into its corpus entry.
func (c *Checker) entryOf(n ast.Node) (*typecorpus.Entry, bool) {
	name, ok := xtypeOf(n)
	if !ok || name == "" {
		return nil, false
	}
	return c.Corpus.Lookup(name)
}
