package typecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
	"github.com/velalang/velac/internal/typecorpus"
)

func TestVerifyPassesFullyTypedModule(t *testing.T) {
	c := newChecker()
	fn := &ast.DefFun{
		Name:   "add",
		Params: []ast.Node{&ast.FunParam{Name: "a", Type: &ast.TypeBase{BaseTypeKind: ast.U32}}},
		Result: &ast.TypeBase{BaseTypeKind: ast.U32},
	}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{fn}}
	require.NoError(t, c.TypeTopLevel(mod))

	aParam := fn.Params[0].(*ast.FunParam)
	ref := &ast.Id{Name: "a", XSymbol: aParam}
	fn.Body = []ast.Node{&ast.StmtReturn{Value: ref}}
	require.NoError(t, c.TypeFunctionBodies(mod))

	assert.NoError(t, c.Verify(mod))
}

func TestVerifyCatchesImproperLvalueAssignment(t *testing.T) {
	c := newChecker()
	v := &ast.DefVar{Name: "x", Mut: false, XType: "u32"}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{
		&ast.StmtAssignment{Lhs: &ast.Id{Name: "x", XSymbol: v, XType: "u32"}, Rhs: &ast.ValNum{Number: "1", XType: "u32"}},
	}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP004")
}

func TestVerifyCatchesCallArgumentTypeMismatch(t *testing.T) {
	c := newChecker()
	u32 := c.Corpus.InsertBase(ast.U32)
	s32 := c.Corpus.InsertBase(ast.S32)
	funEntry := c.Corpus.InsertFun([]*typecorpus.Entry{u32}, u32)
	callee := &ast.Id{Name: "f", XType: funEntry.Name}
	arg := &ast.ValNum{Number: "1", XType: s32.Name} // declared param is u32; arg typed s32
	call := &ast.ExprCall{Callee: callee, Args: []ast.Node{arg}, XType: u32.Name}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{&ast.StmtExpr{Expr: call}}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}

func TestVerifyCatchesBinopOperandMismatch(t *testing.T) {
	c := newChecker()
	node := &ast.Expr2{
		Op:    ast.BinAdd,
		Expr1: &ast.ValNum{Number: "1", XType: "u32"},
		Expr2: &ast.ValNum{Number: "2", XType: "s32"},
		XType: "u32",
	}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{&ast.StmtExpr{Expr: node}}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}

func TestVerifyCatchesNonBooleanCondition(t *testing.T) {
	c := newChecker()
	stmt := &ast.StmtIf{
		Cond: &ast.ValNum{Number: "1", XType: "u32"},
		Then: []ast.Node{},
	}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{stmt}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}

func TestVerifyCatchesMissingTypeAnnotation(t *testing.T) {
	c := newChecker()
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{&ast.StmtExpr{Expr: &ast.ValNum{Number: "1"}}}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP008")
}

func TestVerifyCatchesUndiscardedNonVoidExpr(t *testing.T) {
	c := newChecker()
	u32 := c.Corpus.InsertBase(ast.U32)
	stmt := &ast.StmtExpr{Expr: &ast.ValNum{Number: "1", XType: u32.Name}, Discard: false}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{stmt}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}

func TestVerifyCatchesRedundantDiscardOfVoid(t *testing.T) {
	c := newChecker()
	void := c.Corpus.InsertBase(ast.Void)
	stmt := &ast.StmtExpr{Expr: &ast.ValVoid{XType: void.Name}, Discard: true}
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{stmt}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}

func TestVerifyPassesCorrectlyDiscardedAndUndiscardedExprs(t *testing.T) {
	c := newChecker()
	u32 := c.Corpus.InsertBase(ast.U32)
	void := c.Corpus.InsertBase(ast.Void)
	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{
		&ast.StmtExpr{Expr: &ast.ValNum{Number: "1", XType: u32.Name}, Discard: true},
		&ast.StmtExpr{Expr: &ast.ValVoid{XType: void.Name}, Discard: false},
	}}
	assert.NoError(t, c.Verify(mod))
}

func TestVerifyCatchesRecordFieldValueTypeMismatch(t *testing.T) {
	c := newChecker()
	u32 := c.Corpus.InsertBase(ast.U32)
	rec := &ast.DefRec{Name: "point"}
	fx := &ast.RecField{Name: "x", Type: &ast.TypeBase{BaseTypeKind: ast.U32}, XType: u32.Name}
	rec.Fields = []ast.Node{fx}
	recEntry := c.Corpus.InsertRec("m/point", rec)
	rec.XType = recEntry.Name
	require.NoError(t, c.Corpus.SetSizeAndOffsetForRec(recEntry))

	fv := &ast.FieldVal{Value: &ast.ValNum{Number: "1", XType: "s32"}, XField: fx, XType: "s32"}
	val := &ast.ValRec{Type: &ast.Id{Name: "point", XSymbol: rec, XType: recEntry.Name}, Values: []ast.Node{fv}, XType: recEntry.Name}

	mod := &ast.DefMod{Name: "m", BodyMod: []ast.Node{&ast.StmtExpr{Expr: val}}}
	err := c.Verify(mod)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TYP001")
}
