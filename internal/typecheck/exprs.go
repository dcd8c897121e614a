package typecheck

import (
	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/typecorpus"
)

// typeExpr types n under the checker's current expected-type target,
// returning n's own resolved corpus entry and writing it back to n.XType
// (§4.7's per-node-kind rules).
func (c *Checker) typeExpr(n ast.Node) (*typecorpus.Entry, error) {
	switch node := n.(type) {
	case *ast.Id:
		return c.typeId(node)
	case *ast.ExprCall:
		return c.typeExprCall(node)
	case *ast.ExprField:
		return c.typeExprField(node)
	case *ast.ExprOffsetof:
		return c.typeExprOffsetof(node)
	case *ast.ExprIndex:
		return c.typeExprIndex(node)
	case *ast.ExprDeref:
		return c.typeExprDeref(node)
	case *ast.ExprAddrOf:
		return c.typeExprAddrOf(node)
	case *ast.ExprAs:
		return c.typeExprDeclaredWins(&node.XType, node.Type, node.Expr)
	case *ast.ExprBitCast:
		return c.typeExprDeclaredWins(&node.XType, node.Type, node.Expr)
	case *ast.ExprUnsafeCast:
		return c.typeExprDeclaredWins(&node.XType, node.Type, node.Expr)
	case *ast.ExprAsNot:
		return c.typeExprAsNot(node)
	case *ast.ExprIs:
		return c.typeExprIs(node)
	case *ast.ExprLen:
		return c.typeExprFixed(&node.XType, node.Expr, ast.UINT)
	case *ast.ExprSizeof:
		return c.typeExprSizeof(node)
	case *ast.ExprTryAs:
		return c.typeExprTryAs(node)
	case *ast.ExprParen:
		e, err := c.typeExpr(node.Expr)
		if err != nil {
			return nil, err
		}
		node.XType = e.Name
		return e, nil
	case *ast.ExprUnwrap:
		return c.typeExprUnwrap(node)
	case *ast.ExprChop:
		return c.typeExprChop(node)
	case *ast.ExprRange:
		return c.typeExprRange(node)
	case *ast.Expr1:
		e, err := c.typeExpr(node.Expr)
		if err != nil {
			return nil, err
		}
		node.XType = e.Name
		return e, nil
	case *ast.Expr2:
		return c.typeExpr2(node)
	case *ast.Expr3:
		return c.typeExpr3(node)

	case *ast.ValBool:
		e := c.Corpus.InsertBase(ast.Bool)
		node.XType = e.Name
		return e, nil
	case *ast.ValVoid:
		e := c.Corpus.InsertBase(ast.Void)
		node.XType = e.Name
		return e, nil
	case *ast.ValUndef:
		return c.typeValUndef(node)
	case *ast.ValNum:
		return c.typeValNum(node)
	case *ast.ValString:
		e := c.Corpus.InsertArray(computeStringSize(node.Raw, node.String), c.Corpus.InsertBase(ast.U8))
		node.XType = e.Name
		return e, nil
	case *ast.ValArrayString:
		e := c.Corpus.InsertArray(computeStringSize(!node.NoEsc, node.String), c.Corpus.InsertBase(ast.U8))
		node.XType = e.Name
		return e, nil
	case *ast.ValArray:
		return c.typeValArray(node)
	case *ast.ValRec:
		return c.typeValRec(node)
	case *ast.IndexVal:
		return c.typeIndexVal(node)

	default:
		return nil, typeErr(verrors.TYP002, n, "node does not produce a value")
	}
}

// typeId inherits the type of its already-resolved symbol (§4.7 "Id
// inherits the type of its resolved symbol"). An EnumVal's value type is
// the enum's base scalar type, per the DefEnum rule — not the enum's own
// nominal type.
func (c *Checker) typeId(id *ast.Id) (*typecorpus.Entry, error) {
	name, ok := xtypeOf(id.XSymbol)
	if !ok || name == "" {
		return nil, typeErr(verrors.TYP008, id, "identifier "+id.Name+" has no resolved type")
	}
	e, ok := c.Corpus.Lookup(name)
	if !ok {
		return nil, typeErr(verrors.TYP002, id, "unknown type for identifier "+id.Name)
	}
	id.XType = e.Name
	return e, nil
}

func (c *Checker) typeExprField(node *ast.ExprField) (*typecorpus.Entry, error) {
	container, err := c.typeExpr(node.Container)
	if err != nil {
		return nil, err
	}
	field, _, err := c.Corpus.LookupRecField(container, node.Field)
	if err != nil {
		return nil, err
	}
	node.XField = field
	entry, ok := c.Corpus.Lookup(field.XType)
	if !ok {
		return nil, typeErr(verrors.TYP008, node, "field "+node.Field+" has no resolved type")
	}
	node.XType = entry.Name
	return entry, nil
}

func (c *Checker) typeExprOffsetof(node *ast.ExprOffsetof) (*typecorpus.Entry, error) {
	rec, err := c.typeType(node.Type)
	if err != nil {
		return nil, err
	}
	field, _, err := c.Corpus.LookupRecField(rec, node.Field)
	if err != nil {
		return nil, err
	}
	node.XField = field
	e := c.Corpus.InsertBase(ast.UINT)
	node.XType = e.Name
	return e, nil
}

func (c *Checker) typeExprIndex(node *ast.ExprIndex) (*typecorpus.Entry, error) {
	container, err := c.typeExpr(node.Container)
	if err != nil {
		return nil, err
	}
	c.pushTarget(c.Corpus.InsertBase(ast.UINT))
	_, err = c.typeExpr(node.ExprIndex)
	c.popTarget()
	if err != nil {
		return nil, err
	}
	elem, err := c.Corpus.GetContainedType(container)
	if err != nil {
		return nil, err
	}
	node.XType = elem.Name
	return elem, nil
}

func (c *Checker) typeExprDeref(node *ast.ExprDeref) (*typecorpus.Entry, error) {
	ptr, err := c.typeExpr(node.Expr)
	if err != nil {
		return nil, err
	}
	if ptr.Kind != typecorpus.KindPtr {
		return nil, typeErr(verrors.TYP001, node, "cannot dereference non-pointer type "+ptr.Name)
	}
	node.XType = ptr.Elem.Name
	return ptr.Elem, nil
}

func (c *Checker) typeExprAddrOf(node *ast.ExprAddrOf) (*typecorpus.Entry, error) {
	inner, err := c.typeExpr(node.Expr)
	if err != nil {
		return nil, err
	}
	if node.Mut && !c.isProperLhs(node.Expr) {
		return nil, typeErr(verrors.TYP004, node, "cannot take a mutable address of a non-proper lvalue")
	}
	e := c.Corpus.InsertPtr(node.Mut, inner)
	node.XType = e.Name
	return e, nil
}

// typeExprDeclaredWins covers ExprAs/ExprBitCast/ExprUnsafeCast: the
// declared target type wins regardless of the source expression's type.
func (c *Checker) typeExprDeclaredWins(xtype *string, declaredType, expr ast.Node) (*typecorpus.Entry, error) {
	target, err := c.typeType(declaredType)
	if err != nil {
		return nil, err
	}
	if _, err := c.typeExpr(expr); err != nil {
		return nil, err
	}
	*xtype = target.Name
	return target, nil
}

func (c *Checker) typeExprAsNot(node *ast.ExprAsNot) (*typecorpus.Entry, error) {
	target, err := c.typeType(node.Type)
	if err != nil {
		return nil, err
	}
	src, err := c.typeExpr(node.Expr)
	if err != nil {
		return nil, err
	}
	complement, err := c.Corpus.InsertSumComplement(src, target)
	if err != nil {
		return nil, err
	}
	node.XType = complement.Name
	return complement, nil
}

func (c *Checker) typeExprIs(node *ast.ExprIs) (*typecorpus.Entry, error) {
	if _, err := c.typeType(node.Type); err != nil {
		return nil, err
	}
	if _, err := c.typeExpr(node.Expr); err != nil {
		return nil, err
	}
	e := c.Corpus.InsertBase(ast.Bool)
	node.XType = e.Name
	return e, nil
}

// typeExprFixed covers ops with a fixed result kind regardless of operand
// (ExprLen -> uint): type the inner expr, then always return kind.
func (c *Checker) typeExprFixed(xtype *string, inner ast.Node, kind ast.BaseTypeKind) (*typecorpus.Entry, error) {
	if _, err := c.typeExpr(inner); err != nil {
		return nil, err
	}
	e := c.Corpus.InsertBase(kind)
	*xtype = e.Name
	return e, nil
}

func (c *Checker) typeExprSizeof(node *ast.ExprSizeof) (*typecorpus.Entry, error) {
	if _, err := c.typeType(node.Type); err != nil {
		return nil, err
	}
	e := c.Corpus.InsertBase(ast.UINT)
	node.XType = e.Name
	return e, nil
}

func (c *Checker) typeExprTryAs(node *ast.ExprTryAs) (*typecorpus.Entry, error) {
	target, err := c.typeType(node.Type)
	if err != nil {
		return nil, err
	}
	if _, err := c.typeExpr(node.Expr); err != nil {
		return nil, err
	}
	if node.Default != nil {
		c.pushTarget(target)
		_, err := c.typeExpr(node.Default)
		c.popTarget()
		if err != nil {
			return nil, err
		}
	}
	node.XType = target.Name
	return target, nil
}

func (c *Checker) typeExprUnwrap(node *ast.ExprUnwrap) (*typecorpus.Entry, error) {
	wrapped, err := c.typeExpr(node.Expr)
	if err != nil {
		return nil, err
	}
	if wrapped.Kind != typecorpus.KindWrapped {
		return nil, typeErr(verrors.TYP001, node, "cannot unwrap non-wrapped type "+wrapped.Name)
	}
	node.XType = wrapped.Elem.Name
	return wrapped.Elem, nil
}

func (c *Checker) typeExprChop(node *ast.ExprChop) (*typecorpus.Entry, error) {
	container, err := c.typeExpr(node.Container)
	if err != nil {
		return nil, err
	}
	c.pushTarget(c.Corpus.InsertBase(ast.UINT))
	_, err = c.typeExpr(node.Start)
	c.popTarget()
	if err != nil {
		return nil, err
	}
	c.pushTarget(c.Corpus.InsertBase(ast.UINT))
	_, err = c.typeExpr(node.Count)
	c.popTarget()
	if err != nil {
		return nil, err
	}
	elem, err := c.Corpus.GetContainedType(container)
	if err != nil {
		return nil, err
	}
	mut := container.Kind == typecorpus.KindSlice && container.Mut
	e := c.Corpus.InsertSlice(mut, elem)
	node.XType = e.Name
	return e, nil
}

func (c *Checker) typeExprRange(node *ast.ExprRange) (*typecorpus.Entry, error) {
	end, err := c.typeExpr(node.End)
	if err != nil {
		return nil, err
	}
	if node.Start != nil && !isAuto(node.Start) {
		c.pushTarget(end)
		_, err := c.typeExpr(node.Start)
		c.popTarget()
		if err != nil {
			return nil, err
		}
	}
	if node.Step != nil && !isAuto(node.Step) {
		c.pushTarget(end)
		_, err := c.typeExpr(node.Step)
		c.popTarget()
		if err != nil {
			return nil, err
		}
	}
	node.XType = end.Name
	return end, nil
}

func (c *Checker) typeExpr2(node *ast.Expr2) (*typecorpus.Entry, error) {
	left, err := c.typeExpr(node.Expr1)
	if err != nil {
		return nil, err
	}
	if ast.BinopOpsHaveSameType[node.Op] {
		c.pushTarget(left)
		_, err = c.typeExpr(node.Expr2)
		c.popTarget()
	} else {
		_, err = c.typeExpr(node.Expr2)
	}
	if err != nil {
		return nil, err
	}
	right, _ := c.entryOf(node.Expr2)

	var result *typecorpus.Entry
	switch {
	case ast.BinopBool[node.Op]:
		result = c.Corpus.InsertBase(ast.Bool)
	case node.Op == ast.BinPDelta:
		switch {
		case left.Kind == typecorpus.KindPtr && right != nil && right.Kind == typecorpus.KindPtr:
			result = c.Corpus.InsertBase(ast.SINT)
		case left.Kind == typecorpus.KindSlice && right != nil && right.Kind == typecorpus.KindSlice:
			result = left
		default:
			return nil, typeErr(verrors.TYP001, node, "pdelta requires two pointers or two slices")
		}
	default:
		result = left
	}
	node.XType = result.Name
	return result, nil
}

func (c *Checker) typeExpr3(node *ast.Expr3) (*typecorpus.Entry, error) {
	c.pushTarget(c.Corpus.InsertBase(ast.Bool))
	_, err := c.typeExpr(node.Cond)
	c.popTarget()
	if err != nil {
		return nil, err
	}
	arm1, err := c.typeExpr(node.Expr1)
	if err != nil {
		return nil, err
	}
	c.pushTarget(arm1)
	arm2, err := c.typeExpr(node.Expr2)
	c.popTarget()
	if err != nil {
		return nil, err
	}
	if arm1.Name != arm2.Name {
		return nil, typeErr(verrors.TYP001, node, "ternary arms have different types: "+arm1.Name+" vs "+arm2.Name)
	}
	node.XType = arm1.Name
	return arm1, nil
}

func (c *Checker) typeValUndef(node *ast.ValUndef) (*typecorpus.Entry, error) {
	target := c.target()
	if target == nil {
		return nil, typeErr(verrors.TYP001, node, "cannot infer the type of undef without a surrounding context")
	}
	node.XType = target.Name
	return target, nil
}

// typeValNum implements §4.7's ValNum rule: an explicit suffix wins, else
// the current expected type; no target and no suffix is an error.
func (c *Checker) typeValNum(node *ast.ValNum) (*typecorpus.Entry, error) {
	if kind, ok := parseNumSuffix(node.Number); ok {
		e := c.Corpus.InsertBase(kind)
		node.XType = e.Name
		return e, nil
	}
	target := c.target()
	if target == nil {
		return nil, typeErr(verrors.TYP001, node, "numeric literal "+node.Number+" has no type suffix and no expected type")
	}
	node.XType = target.Name
	return target, nil
}
