package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/symtab"
)

func TestResolveBindsGlobalInitializerToConst(t *testing.T) {
	width := &ast.DefConst{Name: "width", Value: &ast.ValNum{Number: "4"}}
	ref := &ast.Id{Name: "width"}
	global := &ast.DefGlobal{Name: "area", Initial: ref}
	mod := &ast.DefMod{Name: "geo", BodyMod: []ast.Node{width, global}}

	table := symtab.New("geo")
	require.NoError(t, table.DeclareGlobal("width", width, false))
	require.NoError(t, table.DeclareGlobal("area", global, false))

	require.NoError(t, Resolve(mod, table, nil))
	assert.Same(t, ast.Node(width), ref.XSymbol)
}

func TestResolveSkipsPolymorphicCallee(t *testing.T) {
	callee := &ast.Id{Name: "push"} // deliberately never declared
	arg := &ast.Id{Name: "v"}
	call := &ast.ExprCall{Callee: callee, Polymorphic: true, Args: []ast.Node{arg}}
	fn := &ast.DefFun{Name: "main", Body: []ast.Node{
		&ast.DefVar{Name: "v", Initial: &ast.ValNum{Number: "0"}},
		&ast.StmtExpr{Expr: call},
	}}
	mod := &ast.DefMod{Name: "app", BodyMod: []ast.Node{fn}}

	table := symtab.New("app")
	require.NoError(t, table.DeclareFun("main", fn, false))

	require.NoError(t, Resolve(mod, table, nil))
	assert.Nil(t, callee.XSymbol, "polymorphic callee must be left for PolyMap dispatch")
	require.NotNil(t, arg.XSymbol, "ordinary args still resolve")
}

func TestResolveFunctionBodyLocalShadowingGlobalIsRejected(t *testing.T) {
	glob := &ast.DefGlobal{Name: "x", Initial: &ast.ValNum{Number: "1"}}
	localRef := &ast.Id{Name: "x"}
	fn := &ast.DefFun{Name: "f", Body: []ast.Node{
		&ast.DefVar{Name: "x", Initial: &ast.ValNum{Number: "2"}},
		&ast.StmtExpr{Expr: localRef},
	}}
	mod := &ast.DefMod{Name: "app", BodyMod: []ast.Node{glob, fn}}

	table := symtab.New("app")
	require.NoError(t, table.DeclareGlobal("x", glob, false))
	require.NoError(t, table.DeclareFun("f", fn, false))

	err := Resolve(mod, table, nil)
	require.Error(t, err, "a local may not reuse the name of a global")
	assert.Contains(t, err.Error(), "SYM003")
}

func TestResolveIfPushesSeparateThenElseScopes(t *testing.T) {
	thenRef := &ast.Id{Name: "y"}
	elseRef := &ast.Id{Name: "y"} // unresolved: else's y is a different local
	fn := &ast.DefFun{Name: "f", Body: []ast.Node{
		&ast.StmtIf{
			Cond: &ast.ValBool{Value: true},
			Then: []ast.Node{
				&ast.DefVar{Name: "y", Initial: &ast.ValNum{Number: "1"}},
				&ast.StmtExpr{Expr: thenRef},
			},
			Else: []ast.Node{
				&ast.StmtExpr{Expr: elseRef},
			},
		},
	}}
	mod := &ast.DefMod{Name: "app", BodyMod: []ast.Node{fn}}
	table := symtab.New("app")
	require.NoError(t, table.DeclareFun("f", fn, false))

	err := Resolve(mod, table, nil)
	require.Error(t, err, "else's y must not see then's locally-scoped y")
	assert.Contains(t, err.Error(), "SYM001")
}

func TestResolveForBindsLoopVariableWithinBody(t *testing.T) {
	loopRef := &ast.Id{Name: "i"}
	forStmt := &ast.StmtFor{
		Name:  "i",
		Range: &ast.ExprRange{End: &ast.ValNum{Number: "10"}},
		Body:  []ast.Node{&ast.StmtExpr{Expr: loopRef}},
	}
	fn := &ast.DefFun{Name: "f", Body: []ast.Node{forStmt}}
	mod := &ast.DefMod{Name: "app", BodyMod: []ast.Node{fn}}
	table := symtab.New("app")
	require.NoError(t, table.DeclareFun("f", fn, false))

	require.NoError(t, Resolve(mod, table, nil))
	assert.Same(t, ast.Node(forStmt), loopRef.XSymbol)
}

func TestResolveFallsBackToBuiltin(t *testing.T) {
	u32 := &ast.TypeBase{BaseTypeKind: ast.U32}
	ref := &ast.Id{Name: "u32"}
	global := &ast.DefGlobal{Name: "x", Type: ref}
	mod := &ast.DefMod{Name: "app", BodyMod: []ast.Node{global}}

	table := symtab.New("app")
	require.NoError(t, table.DeclareGlobal("x", global, false))
	builtin := symtab.New("$builtin")
	require.NoError(t, builtin.DeclareType("u32", u32, true))

	require.NoError(t, Resolve(mod, table, builtin))
	assert.Same(t, ast.Node(u32), ref.XSymbol)
}
