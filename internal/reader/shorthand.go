package reader

import (
	"strings"

	"github.com/velalang/velac/internal/ast"
)

// shorthandNodes maps bare atoms to zero-argument node constructors. It is
// built once from ast.ScalarTypeAtoms plus the handful of fixed keywords.
var shorthandNodes = map[string]func(pos ast.SourcePos) ast.Node{
	"auto":    func(pos ast.SourcePos) ast.Node { return &ast.TypeAuto{} },
	"void_val": func(pos ast.SourcePos) ast.Node { return newAt(ast.KindValVoid, pos) },
	"undef":   func(pos ast.SourcePos) ast.Node { return newAt(ast.KindValUndef, pos) },
	"true":    func(pos ast.SourcePos) ast.Node { n := newAt(ast.KindValBool, pos).(*ast.ValBool); n.Value = true; return n },
	"false":   func(pos ast.SourcePos) ast.Node { n := newAt(ast.KindValBool, pos).(*ast.ValBool); n.Value = false; return n },
}

func init() {
	for atom, kind := range ast.ScalarTypeAtoms {
		k := kind
		shorthandNodes[atom] = func(pos ast.SourcePos) ast.Node {
			n := newAt(ast.KindTypeBase, pos).(*ast.TypeBase)
			n.BaseTypeKind = k
			return n
		}
	}
}

func newAt(k ast.Kind, pos ast.SourcePos) ast.Node { return ast.New(k, pos) }

// expandAtom turns a bare (non-paren) token into its node, trying the
// shorthand table first and then the literal and identifier token classes;
// it returns nil if the token matches none of them.
func expandAtom(tok string, pos ast.SourcePos) ast.Node {
	if ctor, ok := shorthandNodes[tok]; ok {
		return ctor(pos)
	}
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		n := newAt(ast.KindValString, pos).(*ast.ValString)
		n.String = tok
		return n
	}
	if tokenID.MatchString(tok) {
		if tok[0] == '$' {
			n := newAt(ast.KindMacroId, pos).(*ast.MacroId)
			n.Name = tok
			return n
		}
		if idx := strings.LastIndex(tok, "::"); idx >= 0 {
			n := newAt(ast.KindId, pos).(*ast.Id)
			n.ModName = tok[:idx]
			n.Name = tok[idx+2:]
			return n
		}
		n := newAt(ast.KindId, pos).(*ast.Id)
		n.Name = tok
		return n
	}
	if tokenNum.MatchString(tok) {
		n := newAt(ast.KindValNum, pos).(*ast.ValNum)
		n.Number = tok
		return n
	}
	if len(tok) >= 3 && tok[0] == '\'' && tok[len(tok)-1] == '\'' {
		n := newAt(ast.KindValNum, pos).(*ast.ValNum)
		n.Number = tok
		return n
	}
	return nil
}
