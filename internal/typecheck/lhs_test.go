package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/velalang/velac/internal/ast"
)

func TestIsProperLhsMutableLocalIsProper(t *testing.T) {
	c := newChecker()
	v := &ast.DefVar{Name: "x", Mut: true}
	ref := &ast.Id{Name: "x", XSymbol: v}
	assert.True(t, c.isProperLhs(ref))
}

func TestIsProperLhsImmutableLocalIsNotProper(t *testing.T) {
	c := newChecker()
	v := &ast.DefVar{Name: "x", Mut: false}
	ref := &ast.Id{Name: "x", XSymbol: v}
	assert.False(t, c.isProperLhs(ref))
}

func TestIsProperLhsDerefOfMutablePointer(t *testing.T) {
	c := newChecker()
	u8 := c.Corpus.InsertBase(ast.U8)
	ptr := c.Corpus.InsertPtr(true, u8)
	ptrExpr := &ast.Id{Name: "p", XType: ptr.Name}
	deref := &ast.ExprDeref{Expr: ptrExpr}
	assert.True(t, c.isProperLhs(deref))
}

func TestIsProperLhsDerefOfImmutablePointerIsNotProper(t *testing.T) {
	c := newChecker()
	u8 := c.Corpus.InsertBase(ast.U8)
	ptr := c.Corpus.InsertPtr(false, u8)
	ptrExpr := &ast.Id{Name: "p", XType: ptr.Name}
	deref := &ast.ExprDeref{Expr: ptrExpr}
	assert.False(t, c.isProperLhs(deref))
}

func TestIsProperLhsFieldOfProperLhsRecurses(t *testing.T) {
	c := newChecker()
	v := &ast.DefVar{Name: "r", Mut: true}
	ref := &ast.Id{Name: "r", XSymbol: v}
	field := &ast.ExprField{Container: ref, Field: "x"}
	assert.True(t, c.isProperLhs(field))
}

func TestIsProperLhsIndexOfMutableSliceIsProperEvenIfContainerIsNot(t *testing.T) {
	c := newChecker()
	u8 := c.Corpus.InsertBase(ast.U8)
	slice := c.Corpus.InsertSlice(true, u8)
	// container itself bound to an immutable local; the slice's own
	// mutability, not the binding's, governs indexability (§4.7).
	v := &ast.DefVar{Name: "s", Mut: false}
	ref := &ast.Id{Name: "s", XSymbol: v, XType: slice.Name}
	index := &ast.ExprIndex{Container: ref, ExprIndex: &ast.ValNum{Number: "0"}}
	assert.True(t, c.isProperLhs(index))
}

func TestIsProperLhsParenForwardsInner(t *testing.T) {
	c := newChecker()
	v := &ast.DefVar{Name: "x", Mut: true}
	ref := &ast.Id{Name: "x", XSymbol: v}
	paren := &ast.ExprParen{Expr: ref}
	assert.True(t, c.isProperLhs(paren))
}

func TestIsProperLhsCallIsNeverProper(t *testing.T) {
	c := newChecker()
	call := &ast.ExprCall{Callee: &ast.Id{Name: "f"}}
	assert.False(t, c.isProperLhs(call))
}
