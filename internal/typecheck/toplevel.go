package typecheck

import (
	"fmt"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/typecorpus"
)

func (c *Checker) typeTopLevelDecl(mod *ast.DefMod, n ast.Node) error {
	switch d := n.(type) {
	case *ast.DefRec:
		return c.typeDefRec(mod, d)
	case *ast.DefEnum:
		return c.typeDefEnum(mod, d)
	case *ast.DefType:
		return c.typeDefType(mod, d)
	case *ast.DefGlobal:
		return c.typeDefGlobal(d)
	case *ast.DefConst:
		return c.typeDefConst(d)
	case *ast.DefFun:
		if err := c.typeFunSignature(d); err != nil {
			return err
		}
		if d.Polymorphic {
			return c.Poly.Register(d)
		}
		return nil
	default:
		return nil // Import, DefMacro, StmtStaticAssert, Comment: handled elsewhere
	}
}

func qualify(mod *ast.DefMod, name string) string {
	qualifier := mod.XModName
	if qualifier == "" {
		qualifier = mod.Name
	}
	return fmt.Sprintf("%s/%s", qualifier, name)
}

// typeDefRec inserts the record as a placeholder before typing its fields,
// so a field referencing the record itself resolves to the same entry
// (§8 scenario 5), then types each field and lays out its byte offsets.
func (c *Checker) typeDefRec(mod *ast.DefMod, d *ast.DefRec) error {
	entry := c.Corpus.InsertRec(qualify(mod, d.Name), d)
	d.XType = entry.Name

	for _, f := range d.Fields {
		rf := f.(*ast.RecField)
		fe, err := c.typeType(rf.Type)
		if err != nil {
			return err
		}
		rf.XType = fe.Name
		rf.ByteLen = c.Corpus.ByteSizeOf(fe)
	}
	return c.Corpus.SetSizeAndOffsetForRec(entry)
}

// typeDefEnum inserts the enum, then types every item's explicit value
// expression (if any) against the enum's base scalar type — per §4.7, an
// EnumVal's own type is that base scalar type, not the enum's nominal type.
func (c *Checker) typeDefEnum(mod *ast.DefMod, d *ast.DefEnum) error {
	entry := c.Corpus.InsertEnum(qualify(mod, d.Name), d)
	d.XType = entry.Name

	base := c.Corpus.InsertBase(d.BaseTypeKind)
	for _, it := range d.Items {
		ev := it.(*ast.EnumVal)
		if !isAuto(ev.Value) {
			c.pushTarget(base)
			_, err := c.typeExpr(ev.Value)
			c.popTarget()
			if err != nil {
				return err
			}
		}
		ev.XType = base.Name
	}
	return nil
}

// typeDefType types a plain alias (sharing its underlying entry) or, when
// Wrapped, mints a fresh nominal wrapped(...) entry (§3 "each wrap site
// gets a fresh uniq_id").
func (c *Checker) typeDefType(mod *ast.DefMod, d *ast.DefType) error {
	inner, err := c.typeType(d.Type)
	if err != nil {
		return err
	}
	if d.Wrapped {
		wrapped := c.Corpus.InsertWrapped(inner)
		d.XType = wrapped.Name
		return nil
	}
	d.XType = inner.Name
	return nil
}

func (c *Checker) typeDefGlobal(d *ast.DefGlobal) error {
	entry, err := c.typeDeclaredOrInferred(d.Type, d.Initial)
	if err != nil {
		return err
	}
	d.XType = entry.Name
	return nil
}

func (c *Checker) typeDefConst(d *ast.DefConst) error {
	entry, err := c.typeDeclaredOrInferred(d.Type, d.Value)
	if err != nil {
		return err
	}
	d.XType = entry.Name
	return nil
}

// typeDeclaredOrInferred types an initializer expression, either against an
// explicit declared type or (when declared is TypeAuto/nil) inferring the
// result entirely from the initializer, matching DefVar's own auto rule.
func (c *Checker) typeDeclaredOrInferred(declared, init ast.Node) (*typecorpus.Entry, error) {
	if declared == nil || isAuto(declared) {
		return c.typeExpr(init)
	}
	entry, err := c.typeType(declared)
	if err != nil {
		return nil, err
	}
	c.pushTarget(entry)
	_, err = c.typeExpr(init)
	c.popTarget()
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *Checker) typeFunSignature(fn *ast.DefFun) error {
	params := make([]*typecorpus.Entry, len(fn.Params))
	for i, p := range fn.Params {
		fp := p.(*ast.FunParam)
		pe, err := c.typeType(fp.Type)
		if err != nil {
			return err
		}
		fp.XType = pe.Name
		params[i] = pe
	}
	result, err := c.typeType(fn.Result)
	if err != nil {
		return err
	}
	funEntry := c.Corpus.InsertFun(params, result)
	fn.XType = funEntry.Name
	return nil
}

func (c *Checker) typeFunctionBody(fn *ast.DefFun) error {
	resultEntry, ok := c.Corpus.Lookup(funResultType(fn))
	if !ok {
		return typeErr(verrors.TYP008, fn, "function "+fn.Name+" has no resolved result type")
	}
	prevResult := c.currentResult
	c.currentResult = resultEntry
	defer func() { c.currentResult = prevResult }()

	for _, stmt := range fn.Body {
		if err := c.typeStmt(stmt); err != nil {
			return err
		}
	}
	return nil
}

func funResultType(fn *ast.DefFun) string {
	name, _ := xtypeOf(fn.Result)
	return name
}
