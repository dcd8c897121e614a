package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
)

func TestTypeExprCallOrdinary(t *testing.T) {
	c := newChecker()
	fn := &ast.DefFun{
		Name:   "id",
		Params: []ast.Node{&ast.FunParam{Name: "x", Type: &ast.TypeBase{BaseTypeKind: ast.U32}}},
		Result: &ast.TypeBase{BaseTypeKind: ast.U32},
	}
	require.NoError(t, c.typeFunSignature(fn))

	callee := &ast.Id{Name: "id", XSymbol: fn}
	call := &ast.ExprCall{Callee: callee, Args: []ast.Node{&ast.ValNum{Number: "1_u32"}}}
	e, err := c.typeExpr(call)
	require.NoError(t, err)
	assert.Equal(t, "u32", e.Name)
}

func TestTypeExprCallArityMismatch(t *testing.T) {
	c := newChecker()
	fn := &ast.DefFun{
		Name:   "id",
		Params: []ast.Node{&ast.FunParam{Name: "x", Type: &ast.TypeBase{BaseTypeKind: ast.U32}}},
		Result: &ast.TypeBase{BaseTypeKind: ast.U32},
	}
	require.NoError(t, c.typeFunSignature(fn))

	callee := &ast.Id{Name: "id", XSymbol: fn}
	call := &ast.ExprCall{Callee: callee, Args: []ast.Node{}}
	_, err := c.typeExpr(call)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}

func TestTypePolymorphicCallDispatchesOnFirstArgType(t *testing.T) {
	c := newChecker()
	fn := &ast.DefFun{
		Name:        "push",
		Polymorphic: true,
		Params: []ast.Node{
			&ast.FunParam{Name: "xs", Type: &ast.TypeSlice{Mut: true, Type: &ast.TypeBase{BaseTypeKind: ast.U8}}},
			&ast.FunParam{Name: "v", Type: &ast.TypeBase{BaseTypeKind: ast.U8}},
		},
		Result: &ast.TypeBase{BaseTypeKind: ast.Void},
	}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{fn}}
	require.NoError(t, c.TypeTopLevel(mod))

	sliceEntry := c.Corpus.InsertSlice(true, c.Corpus.InsertBase(ast.U8))
	xs := &ast.DefVar{Name: "xs", XType: sliceEntry.Name}
	callee := &ast.Id{Name: "push"}
	call := &ast.ExprCall{
		Callee:      callee,
		Polymorphic: true,
		Args:        []ast.Node{&ast.Id{Name: "xs", XSymbol: xs}, &ast.ValNum{Number: "1_u8"}},
	}
	e, err := c.typeExpr(call)
	require.NoError(t, err)
	assert.Equal(t, "void", e.Name)
	assert.Same(t, ast.Node(fn), callee.XSymbol)
}

func TestTypePolymorphicCallFallsBackToSliceFormForArrayFirstArg(t *testing.T) {
	c := newChecker()
	fn := &ast.DefFun{
		Name:        "push",
		Polymorphic: true,
		Params: []ast.Node{
			&ast.FunParam{Name: "xs", Type: &ast.TypeSlice{Mut: false, Type: &ast.TypeBase{BaseTypeKind: ast.U8}}},
			&ast.FunParam{Name: "v", Type: &ast.TypeBase{BaseTypeKind: ast.U8}},
		},
		Result: &ast.TypeBase{BaseTypeKind: ast.Void},
	}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{fn}}
	require.NoError(t, c.TypeTopLevel(mod))

	arrEntry := c.Corpus.InsertArray(4, c.Corpus.InsertBase(ast.U8))
	xs := &ast.DefVar{Name: "xs", XType: arrEntry.Name}
	callee := &ast.Id{Name: "push"}
	call := &ast.ExprCall{
		Callee:      callee,
		Polymorphic: true,
		Args:        []ast.Node{&ast.Id{Name: "xs", XSymbol: xs}, &ast.ValNum{Number: "1_u8"}},
	}
	_, err := c.typeExpr(call)
	require.NoError(t, err, "an array first arg falls back to the slice-of-element overload")
}

func TestTypePolymorphicCallNoMatchingOverload(t *testing.T) {
	c := newChecker()
	callee := &ast.Id{Name: "push"}
	xs := &ast.DefVar{Name: "xs", XType: "u8"}
	call := &ast.ExprCall{
		Callee:      callee,
		Polymorphic: true,
		Args:        []ast.Node{&ast.Id{Name: "xs", XSymbol: xs}},
	}
	_, err := c.typeExpr(call)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP006")
}
