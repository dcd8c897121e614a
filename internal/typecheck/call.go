package typecheck

import (
	"fmt"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/typecorpus"
)

// typeExprCall implements §4.7's ExprCall rule, split between the
// polymorphic dispatch (resolved via PolyMap, deferred by the symbol
// resolver per §4.4) and the ordinary callee/arity/argument checks.
func (c *Checker) typeExprCall(node *ast.ExprCall) (*typecorpus.Entry, error) {
	if node.Polymorphic {
		return c.typePolymorphicCall(node)
	}

	callee, err := c.typeExpr(node.Callee)
	if err != nil {
		return nil, err
	}
	if callee.Kind != typecorpus.KindFun {
		return nil, typeErr(verrors.TYP001, node, "cannot call non-function type "+callee.Name)
	}
	if len(node.Args) != len(callee.Params) {
		return nil, typeErr(verrors.TYP001, node,
			fmt.Sprintf("call expects %d argument(s), got %d", len(callee.Params), len(node.Args)))
	}
	for i, a := range node.Args {
		c.pushTarget(callee.Params[i])
		_, err := c.typeExpr(a)
		c.popTarget()
		if err != nil {
			return nil, err
		}
	}
	node.XType = callee.Result.Name
	return callee.Result, nil
}

func (c *Checker) typePolymorphicCall(node *ast.ExprCall) (*typecorpus.Entry, error) {
	calleeID, ok := node.Callee.(*ast.Id)
	if !ok {
		return nil, typeErr(verrors.TYP006, node, "polymorphic call callee must be a plain identifier")
	}
	if len(node.Args) == 0 {
		return nil, typeErr(verrors.TYP006, node, "polymorphic call "+calleeID.Name+" has no arguments to dispatch on")
	}

	firstArg, err := c.typeExpr(node.Args[0])
	if err != nil {
		return nil, err
	}

	fn, ok := c.Poly.Lookup(calleeID.Name, firstArg.Name)
	if !ok && firstArg.Kind == typecorpus.KindArray {
		sliceForm := c.Corpus.InsertSlice(false, firstArg.Elem)
		fn, ok = c.Poly.Lookup(calleeID.Name, sliceForm.Name)
	}
	if !ok {
		return nil, typeErr(verrors.TYP006, node, "no polymorphic overload of "+calleeID.Name+" matches "+firstArg.Name)
	}

	calleeID.XSymbol = fn
	calleeID.XType = fn.XType
	calleeEntry, ok := c.Corpus.Lookup(fn.XType)
	if !ok {
		return nil, typeErr(verrors.TYP008, node, "polymorphic overload "+fn.Name+" has no resolved signature")
	}

	for i := 1; i < len(node.Args); i++ {
		c.pushTarget(calleeEntry.Params[i])
		_, err := c.typeExpr(node.Args[i])
		c.popTarget()
		if err != nil {
			return nil, err
		}
	}
	node.XType = calleeEntry.Result.Name
	return calleeEntry.Result, nil
}
