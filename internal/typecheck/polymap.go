package typecheck

import (
	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
)

// PolyMap dispatches a polymorphic ExprCall by (function_name,
// canonical_name_of_first_arg_type) (§4.7 "Polymorphic registry"). It is
// populated during Pass A, once every DefFun signature across every module
// has been typed, and consumed during Pass B.
type PolyMap struct {
	byKey map[string]*ast.DefFun
}

func NewPolyMap() *PolyMap { return &PolyMap{byKey: map[string]*ast.DefFun{}} }

func polyKey(name, canon string) string { return name + "\x00" + canon }

// Register adds fn under (fn.Name, canonical type of its first parameter).
// A second registration under the same key is TYP006 (§4.7 "duplicate keys
// are errors").
func (m *PolyMap) Register(fn *ast.DefFun) error {
	if len(fn.Params) == 0 {
		return typeErr(verrors.TYP006, fn, "polymorphic function "+fn.Name+" must declare at least one parameter")
	}
	p, ok := fn.Params[0].(*ast.FunParam)
	if !ok || p.XType == "" {
		return typeErr(verrors.TYP006, fn, "polymorphic function "+fn.Name+" has an untyped first parameter")
	}
	key := polyKey(fn.Name, p.XType)
	if existing, ok := m.byKey[key]; ok && existing != fn {
		return typeErr(verrors.TYP006, fn, "duplicate polymorphic overload of "+fn.Name+" over "+p.XType)
	}
	m.byKey[key] = fn
	return nil
}

// Lookup finds the polymorphic overload of name dispatching over canon.
func (m *PolyMap) Lookup(name, canon string) (*ast.DefFun, bool) {
	fn, ok := m.byKey[polyKey(name, canon)]
	return fn, ok
}
