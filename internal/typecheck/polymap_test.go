package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
)

func typedFunParam(name, xtype string) *ast.FunParam {
	return &ast.FunParam{Name: name, XType: xtype}
}

func TestPolyMapRegisterAndLookup(t *testing.T) {
	fn := &ast.DefFun{Name: "push", Params: []ast.Node{typedFunParam("xs", "slice-mut(u8)")}}
	m := NewPolyMap()
	require.NoError(t, m.Register(fn))

	got, ok := m.Lookup("push", "slice-mut(u8)")
	require.True(t, ok)
	assert.Same(t, fn, got)

	_, ok = m.Lookup("push", "u8")
	assert.False(t, ok)
}

func TestPolyMapRejectsDuplicateKey(t *testing.T) {
	fn1 := &ast.DefFun{Name: "push", Params: []ast.Node{typedFunParam("xs", "slice-mut(u8)")}}
	fn2 := &ast.DefFun{Name: "push", Params: []ast.Node{typedFunParam("ys", "slice-mut(u8)")}}
	m := NewPolyMap()
	require.NoError(t, m.Register(fn1))

	err := m.Register(fn2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP006")
}

func TestPolyMapRejectsUntypedFirstParam(t *testing.T) {
	fn := &ast.DefFun{Name: "push", Params: []ast.Node{typedFunParam("xs", "")}}
	m := NewPolyMap()
	err := m.Register(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP006")
}

func TestPolyMapRejectsNoParams(t *testing.T) {
	fn := &ast.DefFun{Name: "push"}
	m := NewPolyMap()
	err := m.Register(fn)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP006")
}
