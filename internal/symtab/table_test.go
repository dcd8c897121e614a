package symtab

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
)

func TestDeclareAndResolveHere(t *testing.T) {
	tab := New("geo")
	fn := &ast.DefFun{Name: "area"}
	require.NoError(t, tab.DeclareFun("area", fn, true))

	got, ok := tab.ResolveHere("area", false)
	require.True(t, ok)
	assert.Same(t, ast.Node(fn), got)

	_, ok = tab.ResolveHere("missing", false)
	assert.False(t, ok)
}

func TestResolveHereHonorsVisibility(t *testing.T) {
	tab := New("geo")
	priv := &ast.DefFun{Name: "helper"}
	require.NoError(t, tab.DeclareFun("helper", priv, false))

	_, ok := tab.ResolveHere("helper", true)
	assert.False(t, ok, "private symbol must not resolve under mustBePublic")

	_, ok = tab.ResolveHere("helper", false)
	assert.True(t, ok)
}

func TestDeclareRejectsDuplicateGlobal(t *testing.T) {
	tab := New("geo")
	require.NoError(t, tab.DeclareFun("area", &ast.DefFun{Name: "area"}, true))
	err := tab.DeclareGlobal("area", &ast.DefGlobal{Name: "area"}, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SYM002")
}

func TestMacroNamespaceIsSeparate(t *testing.T) {
	tab := New("geo")
	require.NoError(t, tab.DeclareFun("scale", &ast.DefFun{Name: "scale"}, true))
	require.NoError(t, tab.DeclareMacro("scale", &ast.DefMacro{Name: "scale"}, true))

	_, ok := tab.ResolveMacro("scale", false)
	assert.True(t, ok)
}

func TestScopeStackShadowingRejected(t *testing.T) {
	tab := New("geo")
	stack := NewScopeStack(tab)
	stack.Push() // outer block
	require.NoError(t, stack.Declare("x", &ast.DefVar{Name: "x"}))

	stack.Push() // inner block, outer x still active
	err := stack.Declare("x", &ast.DefVar{Name: "x"})
	require.Error(t, err, "§8 scenario 6: inner x must be rejected while outer x is still live")
	stack.Pop()

	stack.Pop()
	// outer x released; same name may now be redeclared in a later sibling scope
	stack.Push()
	require.NoError(t, stack.Declare("x", &ast.DefVar{Name: "x"}))
	stack.Pop()
}

func TestScopeStackLookupInnermostFirst(t *testing.T) {
	tab := New("geo")
	stack := NewScopeStack(tab)
	stack.Push()
	outer := &ast.DefVar{Name: "x"}
	require.NoError(t, stack.Declare("x", outer))

	stack.Push()
	inner := &ast.DefVar{Name: "y"}
	require.NoError(t, stack.Declare("y", inner))

	got, ok := stack.Lookup("x")
	require.True(t, ok)
	assert.Same(t, ast.Node(outer), got)

	got, ok = stack.Lookup("y")
	require.True(t, ok)
	assert.Same(t, ast.Node(inner), got)

	stack.Pop()
	_, ok = stack.Lookup("y")
	assert.False(t, ok, "y must not be visible after its scope pops")
}

func TestResolveQualifiedUnqualifiedFallsBackToBuiltin(t *testing.T) {
	mod := New("app")
	builtin := New("$builtin")
	printFn := &ast.DefFun{Name: "print"}
	require.NoError(t, builtin.DeclareFun("print", printFn, true))

	n, err := ResolveQualified(mod, builtin, nil, "", "print", ast.NoPos)
	require.NoError(t, err)
	assert.Same(t, ast.Node(printFn), n)
}

func TestResolveQualifiedLocalEnumValue(t *testing.T) {
	mod := New("geo")
	redVal := &ast.EnumVal{Name: "Red"}
	enum := &ast.DefEnum{Name: "Color", Items: []ast.Node{redVal, &ast.EnumVal{Name: "Blue"}}}
	require.NoError(t, mod.DeclareEnum("Color", enum, true))

	n, err := ResolveQualified(mod, nil, nil, "Color", "Red", ast.NoPos)
	require.NoError(t, err)
	assert.Same(t, ast.Node(redVal), n)
}

func TestResolveQualifiedCrossModuleRequiresPublic(t *testing.T) {
	target := New("geo")
	require.NoError(t, target.DeclareFun("area", &ast.DefFun{Name: "area"}, false)) // private

	mod := New("app")
	imp := &ast.Import{Name: "geo", XModule: &ast.DefMod{Name: "geo", XSymtab: target}}
	require.NoError(t, mod.DeclareImport("geo", imp))

	_, err := ResolveQualified(mod, nil, nil, "geo", "area", ast.NoPos)
	require.Error(t, err, "private cross-module symbol must not resolve")
}

func TestResolveQualifiedThreeComponentEnumValue(t *testing.T) {
	target := New("geo")
	greenVal := &ast.EnumVal{Name: "Green"}
	enum := &ast.DefEnum{Name: "Color", Items: []ast.Node{greenVal}}
	require.NoError(t, target.DeclareEnum("Color", enum, true))

	mod := New("app")
	imp := &ast.Import{Name: "geo", XModule: &ast.DefMod{Name: "geo", XSymtab: target}}
	require.NoError(t, mod.DeclareImport("geo", imp))

	n, err := ResolveQualified(mod, nil, nil, "geo::Color", "Green", ast.NoPos)
	require.NoError(t, err)
	assert.Same(t, ast.Node(greenVal), n)
}

func TestResolveQualifiedUnknownIdentifierIsError(t *testing.T) {
	mod := New("app")
	_, err := ResolveQualified(mod, nil, nil, "", "nope", ast.NoPos)
	assert.Error(t, err)
}

func TestNamesListsEveryDeclarationSorted(t *testing.T) {
	tab := New("geo")
	require.NoError(t, tab.DeclareFun("area", &ast.DefFun{Name: "area"}, true))
	require.NoError(t, tab.DeclareRec("shape", &ast.DefRec{Name: "shape"}, true))
	require.NoError(t, tab.DeclareGlobal("pi", &ast.DefGlobal{Name: "pi"}, false))

	assert.Equal(t, []string{"area", "pi", "shape"}, tab.Names())
}

func TestKindOfReportsDeclarationKind(t *testing.T) {
	tab := New("geo")
	require.NoError(t, tab.DeclareFun("area", &ast.DefFun{Name: "area"}, true))

	kind, ok := tab.KindOf("area")
	require.True(t, ok)
	assert.Equal(t, DeclFun, kind)

	_, ok = tab.KindOf("missing")
	assert.False(t, ok)
}
