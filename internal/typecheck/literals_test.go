package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
)

func TestTypeValArrayElementsTakeDeclaredElementType(t *testing.T) {
	c := newChecker()
	node := &ast.ValArray{
		Type: &ast.TypeBase{BaseTypeKind: ast.U32},
		Size: &ast.ValNum{Number: "2"},
		Values: []ast.Node{
			&ast.IndexVal{Value: &ast.ValNum{Number: "1"}},
			&ast.IndexVal{Value: &ast.ValNum{Number: "2"}},
		},
	}
	e, err := c.typeExpr(node)
	require.NoError(t, err)
	assert.Equal(t, "array(u32,2)", e.Name)
	for _, v := range node.Values {
		iv := v.(*ast.IndexVal)
		assert.Equal(t, "u32", iv.XType)
	}
}

func TestTypeValArrayExplicitIndexTypedAsUint(t *testing.T) {
	c := newChecker()
	iv := &ast.IndexVal{Index: &ast.ValNum{Number: "0"}, Value: &ast.ValNum{Number: "1"}}
	node := &ast.ValArray{
		Type:   &ast.TypeBase{BaseTypeKind: ast.U8},
		Size:   &ast.ValNum{Number: "1"},
		Values: []ast.Node{iv},
	}
	_, err := c.typeExpr(node)
	require.NoError(t, err)
	assert.Equal(t, "u64", iv.Index.(*ast.ValNum).XType, "uint resolves to the corpus's configured width")
}

func TestTypeValRecPositionalCursorAdvances(t *testing.T) {
	c := newChecker()
	rec := &ast.DefRec{Name: "point"}
	fx := &ast.RecField{Name: "x", Type: &ast.TypeBase{BaseTypeKind: ast.U32}}
	fy := &ast.RecField{Name: "y", Type: &ast.TypeBase{BaseTypeKind: ast.U32}}
	rec.Fields = []ast.Node{fx, fy}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{rec}}
	require.NoError(t, c.TypeTopLevel(mod))

	node := &ast.ValRec{
		Type: &ast.Id{Name: "point", XSymbol: rec},
		Values: []ast.Node{
			&ast.FieldVal{Value: &ast.ValNum{Number: "1"}},
			&ast.FieldVal{Value: &ast.ValNum{Number: "2"}},
		},
	}
	e, err := c.typeExpr(node)
	require.NoError(t, err)
	assert.Equal(t, "rec(m/point)", e.Name)
	assert.Same(t, ast.Node(fx), node.Values[0].(*ast.FieldVal).XField)
	assert.Same(t, ast.Node(fy), node.Values[1].(*ast.FieldVal).XField)
}

func TestTypeValRecExplicitFieldJumpsCursor(t *testing.T) {
	c := newChecker()
	rec := &ast.DefRec{Name: "point"}
	fx := &ast.RecField{Name: "x", Type: &ast.TypeBase{BaseTypeKind: ast.U32}}
	fy := &ast.RecField{Name: "y", Type: &ast.TypeBase{BaseTypeKind: ast.U32}}
	rec.Fields = []ast.Node{fx, fy}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{rec}}
	require.NoError(t, c.TypeTopLevel(mod))

	node := &ast.ValRec{
		Type: &ast.Id{Name: "point", XSymbol: rec},
		Values: []ast.Node{
			&ast.FieldVal{Field: "y", Value: &ast.ValNum{Number: "2"}},
			&ast.FieldVal{Value: &ast.ValNum{Number: "3"}}, // resumes after y: out of fields
		},
	}
	_, err := c.typeExpr(node)
	require.Error(t, err, "cursor resumes at index 1 (after y) and overruns the 2-field record")
	assert.Contains(t, err.Error(), "TYP003")
}

func TestTypeValRecRejectsNonRecordType(t *testing.T) {
	c := newChecker()
	node := &ast.ValRec{Type: &ast.TypeBase{BaseTypeKind: ast.U32}}
	_, err := c.typeExpr(node)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}
