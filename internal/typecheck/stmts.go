package typecheck

import (
	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/typecorpus"
)

// typeStmt types one statement form (§4.7 "statement forms recurse").
func (c *Checker) typeStmt(n ast.Node) error {
	switch node := n.(type) {
	case *ast.DefVar:
		return c.typeDefVar(node)

	case *ast.StmtReturn:
		return c.typeStmtReturn(node)

	case *ast.StmtIf:
		c.pushTarget(c.Corpus.InsertBase(ast.Bool))
		_, err := c.typeExpr(node.Cond)
		c.popTarget()
		if err != nil {
			return err
		}
		for _, s := range node.Then {
			if err := c.typeStmt(s); err != nil {
				return err
			}
		}
		for _, s := range node.Else {
			if err := c.typeStmt(s); err != nil {
				return err
			}
		}
		return nil

	case *ast.StmtAssignment:
		lhs, err := c.typeExpr(node.Lhs)
		if err != nil {
			return err
		}
		if !c.isProperLhs(node.Lhs) {
			return typeErr(verrors.TYP004, node, "assignment target is not a proper lvalue")
		}
		c.pushTarget(lhs)
		_, err = c.typeExpr(node.Rhs)
		c.popTarget()
		return err

	case *ast.StmtCompoundAssignment:
		lhs, err := c.typeExpr(node.Lhs)
		if err != nil {
			return err
		}
		if !c.isProperLhs(node.Lhs) {
			return typeErr(verrors.TYP004, node, "compound assignment target is not a proper lvalue")
		}
		c.pushTarget(lhs)
		_, err = c.typeExpr(node.Rhs)
		c.popTarget()
		return err

	case *ast.StmtExpr:
		_, err := c.typeExpr(node.Expr)
		return err

	case *ast.StmtBlock:
		for _, s := range node.Body {
			if err := c.typeStmt(s); err != nil {
				return err
			}
		}
		return nil

	case *ast.StmtBreak, *ast.StmtContinue:
		return nil

	case *ast.StmtFor:
		return c.typeStmtFor(node)

	case *ast.StmtStaticAssert:
		c.pushTarget(c.Corpus.InsertBase(ast.Bool))
		_, err := c.typeExpr(node.Cond)
		c.popTarget()
		return err

	case *ast.Comment:
		return nil

	default:
		return typeErr(verrors.TYP002, n, "unrecognized statement form")
	}
}

func (c *Checker) typeDefVar(node *ast.DefVar) error {
	entry, err := c.typeDeclaredOrInferred(node.Type, node.Initial)
	if err != nil {
		return err
	}
	node.XType = entry.Name
	return nil
}

// isVoidEntry reports whether entry is the base void type.
func isVoidEntry(entry *typecorpus.Entry) bool {
	return entry != nil && entry.Kind == typecorpus.KindBase && entry.Base == ast.Void
}

func (c *Checker) typeStmtReturn(node *ast.StmtReturn) error {
	target := c.currentResult
	if node.Value == nil || isAuto(node.Value) {
		if target != nil && target.Kind == typecorpus.KindBase && target.Base != ast.Void {
			return typeErr(verrors.TYP001, node, "missing return value for non-void function")
		}
		return nil
	}
	c.pushTarget(target)
	_, err := c.typeExpr(node.Value)
	c.popTarget()
	return err
}

// typeStmtFor types the range expression, binds the loop variable's element
// type onto the StmtFor node itself (so Id references resolved to it by
// the symbol resolver can read XType), then types the body (§4.7, §4.4).
func (c *Checker) typeStmtFor(node *ast.StmtFor) error {
	rangeEntry, err := c.typeExpr(node.Range)
	if err != nil {
		return err
	}
	elem := rangeEntry
	if rangeEntry.Kind == typecorpus.KindArray || rangeEntry.Kind == typecorpus.KindSlice {
		elem, err = c.Corpus.GetContainedType(rangeEntry)
		if err != nil {
			return err
		}
	}
	node.XType = elem.Name

	for _, s := range node.Body {
		if err := c.typeStmt(s); err != nil {
			return err
		}
	}
	return nil
}
