package typecheck

import (
	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/typecorpus"
)

// Verify implements §4.8: a recursive pass asserting every invariant the
// bidirectional inference pass (§4.7) should already have established,
// fatal with source location on the first violation. Grounded stylistically
// on the teacher's anfVerifier.verifyExpr (internal/elaborate/verify.go) —
// an explicit recursive type-switch per node kind, not a generic
// Walk-based visitor, since several checks need two different child
// entries compared against each other (arg vs. param, field value vs.
// declared field type) rather than a single boolean descend decision.
func (c *Checker) Verify(mod *ast.DefMod) error {
	for _, n := range mod.BodyMod {
		if err := c.verifyNode(n); err != nil {
			return err
		}
	}
	return nil
}

func xfieldOf(n ast.Node) (ast.Node, bool) {
	switch v := n.(type) {
	case *ast.ExprField:
		return v.XField, true
	case *ast.ExprOffsetof:
		return v.XField, true
	case *ast.FieldVal:
		return v.XField, true
	default:
		return nil, false
	}
}

func (c *Checker) verifyNode(n ast.Node) error {
	if n == nil {
		return nil
	}

	if n.Flags().Has(ast.TypeAnnotated) {
		name, _ := xtypeOf(n)
		if name == "" {
			return typeErr(verrors.TYP008, n, "node is missing its type annotation")
		}
	}
	if n.Flags().Has(ast.FieldAnnotated) {
		if field, _ := xfieldOf(n); field == nil {
			return typeErr(verrors.TYP008, n, "node is missing its field annotation")
		}
	}

	switch node := n.(type) {
	case *ast.StmtAssignment:
		if !c.isProperLhs(node.Lhs) {
			return typeErr(verrors.TYP004, node, "assignment target is not a proper lvalue")
		}
		return c.verifyChildren(node)

	case *ast.StmtCompoundAssignment:
		if !c.isProperLhs(node.Lhs) {
			return typeErr(verrors.TYP004, node, "compound assignment target is not a proper lvalue")
		}
		return c.verifyChildren(node)

	case *ast.ExprAddrOf:
		if node.Mut && !c.isProperLhs(node.Expr) {
			return typeErr(verrors.TYP004, node, "mutable address-of target is not a proper lvalue")
		}
		return c.verifyChildren(node)

	case *ast.ExprCall:
		if err := c.verifyCallArgTypes(node); err != nil {
			return err
		}
		return c.verifyChildren(node)

	case *ast.ValArray:
		if err := c.verifyArrayElemTypes(node); err != nil {
			return err
		}
		return c.verifyChildren(node)

	case *ast.ValRec:
		if err := c.verifyRecFieldTypes(node); err != nil {
			return err
		}
		return c.verifyChildren(node)

	case *ast.Expr2:
		if err := c.verifyBinopOperands(node); err != nil {
			return err
		}
		return c.verifyChildren(node)

	case *ast.StmtIf:
		if err := c.verifyBoolCond(node.Cond); err != nil {
			return err
		}
		return c.verifyChildren(node)

	case *ast.Expr3:
		if err := c.verifyBoolCond(node.Cond); err != nil {
			return err
		}
		return c.verifyChildren(node)

	case *ast.StmtStaticAssert:
		if err := c.verifyBoolCond(node.Cond); err != nil {
			return err
		}
		return c.verifyChildren(node)

	case *ast.StmtExpr:
		// Children first: a type error inside Expr itself (bad call args, a
		// missing annotation, ...) is more specific than the discard
		// invariant and should surface before it.
		if err := c.verifyChildren(node); err != nil {
			return err
		}
		return c.verifyDiscard(node)

	default:
		return c.verifyChildren(n)
	}
}

func (c *Checker) verifyChildren(n ast.Node) error {
	for _, f := range n.Fields() {
		switch f.Kind {
		case ast.FieldNode:
			if f.NodeSlot != nil && *f.NodeSlot != nil {
				if err := c.verifyNode(*f.NodeSlot); err != nil {
					return err
				}
			}
		case ast.FieldList:
			if f.ListSlot == nil {
				continue
			}
			for _, child := range *f.ListSlot {
				if child != nil {
					if err := c.verifyNode(child); err != nil {
						return err
					}
				}
			}
		}
	}
	return nil
}

func (c *Checker) verifyBoolCond(cond ast.Node) error {
	e, ok := c.entryOf(cond)
	if !ok || e.Kind != typecorpus.KindBase || e.Base != ast.Bool {
		return typeErr(verrors.TYP001, cond, "condition is not boolean")
	}
	return nil
}

func (c *Checker) verifyCallArgTypes(node *ast.ExprCall) error {
	callee, ok := c.entryOf(node.Callee)
	if !ok || callee.Kind != typecorpus.KindFun {
		return nil // polymorphic dispatch already bound a concrete callee entry via XType
	}
	if len(node.Args) != len(callee.Params) {
		return typeErr(verrors.TYP001, node, "call argument count does not match declared parameters")
	}
	for i, a := range node.Args {
		argEntry, ok := c.entryOf(a)
		if !ok {
			return typeErr(verrors.TYP008, a, "call argument is missing its type annotation")
		}
		if argEntry.Name != callee.Params[i].Name {
			return typeErr(verrors.TYP001, a, "call argument type "+argEntry.Name+" does not match declared parameter type "+callee.Params[i].Name)
		}
	}
	return nil
}

func (c *Checker) verifyArrayElemTypes(node *ast.ValArray) error {
	elem, ok := c.entryOf(node.Type)
	if !ok {
		return nil
	}
	for _, v := range node.Values {
		iv := v.(*ast.IndexVal)
		valEntry, ok := c.entryOf(iv.Value)
		if !ok {
			return typeErr(verrors.TYP008, iv, "array value is missing its type annotation")
		}
		if valEntry.Name != elem.Name {
			return typeErr(verrors.TYP001, iv, "array value type "+valEntry.Name+" does not match declared element type "+elem.Name)
		}
	}
	return nil
}

func (c *Checker) verifyRecFieldTypes(node *ast.ValRec) error {
	for _, v := range node.Values {
		fv := v.(*ast.FieldVal)
		field, ok := fv.XField.(*ast.RecField)
		if !ok {
			continue // already flagged by the generic FieldAnnotated check above
		}
		valEntry, ok := c.entryOf(fv.Value)
		if !ok {
			return typeErr(verrors.TYP008, fv, "record field value is missing its type annotation")
		}
		if valEntry.Name != field.XType {
			return typeErr(verrors.TYP001, fv, "field "+field.Name+" value type "+valEntry.Name+" does not match declared type "+field.XType)
		}
	}
	return nil
}

// verifyDiscard asserts §4.8's StmtExpr invariant: Discard must agree with
// whether the wrapped expression's result is void.
func (c *Checker) verifyDiscard(node *ast.StmtExpr) error {
	entry, ok := c.entryOf(node.Expr)
	if !ok {
		return typeErr(verrors.TYP008, node, "expression statement is missing its type annotation")
	}
	void := isVoidEntry(entry)
	switch {
	case node.Discard && void:
		return typeErr(verrors.TYP001, node, "discard is redundant: expression already has void type")
	case !node.Discard && !void:
		return typeErr(verrors.TYP001, node, "non-void expression result must be explicitly discarded")
	}
	return nil
}

func (c *Checker) verifyBinopOperands(node *ast.Expr2) error {
	if !ast.BinopOpsHaveSameType[node.Op] {
		return nil
	}
	left, ok1 := c.entryOf(node.Expr1)
	right, ok2 := c.entryOf(node.Expr2)
	if !ok1 || !ok2 {
		return typeErr(verrors.TYP008, node, "binary operand is missing its type annotation")
	}
	if left.Name != right.Name {
		return typeErr(verrors.TYP001, node, "binary operands have mismatched types: "+left.Name+" vs "+right.Name)
	}
	return nil
}
