package typecheck

import (
	"strconv"
	"strings"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/typecorpus"
)

// isAuto reports whether n is the `auto` placeholder, which must never
// reach typeType directly (§4.7 "Id inherits..."; TypeAuto's own doc
// comment: "callers test for it and use the surrounding expected-type
// context instead").
func isAuto(n ast.Node) bool {
	_, ok := n.(*ast.TypeAuto)
	return ok
}

// typeType types a node appearing in type position, interning the
// corresponding corpus entry and writing it back to the node's own XType.
func (c *Checker) typeType(n ast.Node) (*typecorpus.Entry, error) {
	switch node := n.(type) {
	case *ast.TypeBase:
		e := c.Corpus.InsertBase(node.BaseTypeKind)
		node.XType = e.Name
		return e, nil

	case *ast.TypePtr:
		elem, err := c.typeType(node.Type)
		if err != nil {
			return nil, err
		}
		e := c.Corpus.InsertPtr(node.Mut, elem)
		node.XType = e.Name
		return e, nil

	case *ast.TypeSlice:
		elem, err := c.typeType(node.Type)
		if err != nil {
			return nil, err
		}
		e := c.Corpus.InsertSlice(node.Mut, elem)
		node.XType = e.Name
		return e, nil

	case *ast.TypeArray:
		elem, err := c.typeType(node.Type)
		if err != nil {
			return nil, err
		}
		c.pushTarget(c.Corpus.InsertBase(ast.UINT))
		_, err = c.typeExpr(node.Size)
		c.popTarget()
		if err != nil {
			return nil, err
		}
		dim, err := c.computeArrayLength(node.Size)
		if err != nil {
			return nil, err
		}
		node.Dim = dim
		e := c.Corpus.InsertArray(dim, elem)
		node.XType = e.Name
		return e, nil

	case *ast.TypeFun:
		params := make([]*typecorpus.Entry, len(node.Params))
		for i, p := range node.Params {
			fp := p.(*ast.FunParam)
			pe, err := c.typeType(fp.Type)
			if err != nil {
				return nil, err
			}
			fp.XType = pe.Name
			params[i] = pe
		}
		result, err := c.typeType(node.Result)
		if err != nil {
			return nil, err
		}
		e := c.Corpus.InsertFun(params, result)
		node.XType = e.Name
		return e, nil

	case *ast.TypeSum:
		components := make([]*typecorpus.Entry, len(node.Types))
		for i, t := range node.Types {
			ce, err := c.typeType(t)
			if err != nil {
				return nil, err
			}
			components[i] = ce
		}
		e, err := c.Corpus.InsertSum(components)
		if err != nil {
			return nil, err
		}
		node.XType = e.Name
		return e, nil

	case *ast.Id:
		return c.typeNamedRef(node)

	default:
		return nil, typeErr(verrors.TYP002, n, "node is not a type")
	}
}

// typeNamedRef resolves a type-position Id to the corpus entry its bound
// symbol already carries — every symbol an Id can name in type position
// (a builtin scalar, or another module's DefRec/DefEnum/DefType) is typed
// in Pass A strictly before any reference to it is typed, by construction
// of the two-pass strategy across modules.
func (c *Checker) typeNamedRef(id *ast.Id) (*typecorpus.Entry, error) {
	name, ok := xtypeOf(id.XSymbol)
	if !ok || name == "" {
		return nil, typeErr(verrors.TYP002, id, "unknown type name "+id.Name)
	}
	e, ok := c.Corpus.Lookup(name)
	if !ok {
		return nil, typeErr(verrors.TYP002, id, "unknown type name "+id.Name)
	}
	id.XType = e.Name
	return e, nil
}

// computeArrayLength reduces a TypeArray/ValArray size expression to a
// constant dimension (§4.7's "_ComputeArrayLength"): a numeric literal, or a
// reference to an immutable global/const whose own initializer reduces the
// same way.
func (c *Checker) computeArrayLength(n ast.Node) (int, error) {
	switch v := n.(type) {
	case *ast.ValNum:
		return parseIntLiteral(v.Number)
	case *ast.Id:
		switch sym := v.XSymbol.(type) {
		case *ast.DefConst:
			return c.computeArrayLength(sym.Value)
		case *ast.DefGlobal:
			if sym.Mut {
				return 0, typeErr(verrors.TYP005, n, "array dimension references a mutable global")
			}
			return c.computeArrayLength(sym.Initial)
		}
	}
	return 0, typeErr(verrors.TYP005, n, "array dimension did not reduce to a constant")
}

func parseIntLiteral(s string) (int, error) {
	trimmed := strings.TrimRightFunc(s, func(r rune) bool {
		return (r >= 'a' && r <= 'z') || r == '_'
	})
	if trimmed == "" {
		trimmed = s
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0, verrors.New(verrors.TYP005, ast.NoPos, "malformed integer literal: "+s)
	}
	return n, nil
}

// parseNumSuffix splits a ValNum's raw token on a trailing type-suffix atom
// (longest match among ast.ScalarTypeAtoms, with or without a separating
// underscore), per §4.7's ValNum rule "suffix wins, else the current
// expected type".
func parseNumSuffix(s string) (ast.BaseTypeKind, bool) {
	best := ast.BaseTypeKind(0)
	bestLen := 0
	for suffix, kind := range ast.ScalarTypeAtoms {
		if strings.HasSuffix(s, "_"+suffix) && len(suffix)+1 > bestLen {
			best, bestLen = kind, len(suffix)+1
		} else if strings.HasSuffix(s, suffix) && len(suffix) > bestLen {
			best, bestLen = kind, len(suffix)
		}
	}
	return best, bestLen > 0
}

// computeStringSize returns the byte length a string literal's content
// reduces to, used by ValString/ValArrayString to size an array(u8,N)
// (§4.7 ValString rule). Raw (unescaped) text counts bytes directly; escaped
// text counts `\x??` as 4 source characters worth 1 byte and any other `\?`
// escape as 2 source characters worth 1 byte. text includes the surrounding
// quote characters, stripped here.
func computeStringSize(raw bool, text string) int {
	inner := text
	if len(inner) >= 2 {
		inner = inner[1 : len(inner)-1]
	}
	if raw {
		return len(inner)
	}
	n := 0
	for i := 0; i < len(inner); {
		if inner[i] == '\\' && i+1 < len(inner) {
			if inner[i+1] == 'x' && i+3 < len(inner) {
				i += 4
			} else {
				i += 2
			}
			n++
			continue
		}
		i++
		n++
	}
	return n
}
