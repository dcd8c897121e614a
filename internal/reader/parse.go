package reader

import (
	"fmt"
	"io"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
)

// ReadModules parses every top-level (mod ...) form in r and returns the
// resulting DefMod nodes in source order.
func ReadModules(file string, r io.Reader) ([]*ast.DefMod, error) {
	stream := newTokenStream(file, r)
	var mods []*ast.DefMod
	for {
		tok, err := stream.next()
		if err == io.EOF {
			return mods, nil
		}
		if err != nil {
			return nil, err
		}
		if tok != "(" {
			return nil, verrors.New(verrors.PAR001, stream.pos(), fmt.Sprintf("expected start of new node, got %q", tok))
		}
		n, err := readSExpr(stream, ast.KindInvalid)
		if err != nil {
			return nil, err
		}
		mod, ok := n.(*ast.DefMod)
		if !ok {
			return nil, verrors.New(verrors.PAR004, stream.pos(), "top-level forms must be module definitions")
		}
		mods = append(mods, mod)
	}
}

// readSExpr reads one parenthesized form; the leading '(' has already been
// consumed. parentKind is ast.KindInvalid at the top level (only a DefMod
// may appear there).
func readSExpr(stream *tokenStream, parentKind ast.Kind) (ast.Node, error) {
	tag, err := stream.next()
	if err != nil {
		return nil, truncated(stream, err)
	}
	pos := stream.pos()

	if op, ok := ast.UnaryOpShorthand[tag]; ok {
		n := ast.New(ast.KindExpr1, pos).(*ast.Expr1)
		n.Op = op
		fields := n.Fields()[1:] // skip the pre-bound "op" slot
		if err := readRestAndMakeNode(ast.KindExpr1, fields, stream); err != nil {
			return nil, err
		}
		return n, nil
	}
	if op, ok := ast.BinaryOpShorthand[tag]; ok {
		n := ast.New(ast.KindExpr2, pos).(*ast.Expr2)
		n.Op = op
		fields := n.Fields()[1:]
		if err := readRestAndMakeNode(ast.KindExpr2, fields, stream); err != nil {
			return nil, err
		}
		return n, nil
	}
	if op, ok := ast.CompoundAssignShorthand[tag]; ok {
		n := ast.New(ast.KindStmtCompoundAssignment, pos).(*ast.StmtCompoundAssignment)
		n.Op = op
		fields := n.Fields()[1:]
		if err := readRestAndMakeNode(ast.KindStmtCompoundAssignment, fields, stream); err != nil {
			return nil, err
		}
		return n, nil
	}

	kind, known := tagToKind[tag]
	if !known {
		return readMacroInvocation(tag, pos, stream)
	}

	n := ast.New(kind, pos)
	if n.Flags().Has(ast.TopLevel) && parentKind != ast.KindDefMod {
		return nil, verrors.New(verrors.PAR004, pos,
			fmt.Sprintf("top-level node %s not allowed here", kind))
	}
	if err := readRestAndMakeNode(kind, n.Fields(), stream); err != nil {
		return nil, err
	}
	return n, nil
}

// readRestAndMakeNode consumes tokens for each declared field in order,
// binding them directly into the node's own storage (the slots returned by
// Fields() already point at the live struct — no separate assembly step is
// needed). Trailing fields may be omitted when ast.OptionalFields (or, for
// FieldFlag/FieldStrList/FieldList, an implicit empty default) covers them.
func readRestAndMakeNode(kind ast.Kind, fields []ast.Field, stream *tokenStream) error {
	token, err := stream.next()
	if err != nil {
		return truncated(stream, err)
	}

	truncatedTail := false
	for _, f := range fields {
		if token == ")" {
			truncatedTail = true
		}
		if truncatedTail {
			if err := fillDefault(kind.String(), f, stream.pos()); err != nil {
				return err
			}
			continue
		}

		switch f.Kind {
		case ast.FieldFlag:
			if token == f.Name {
				*f.FlagSlot = true
				token, err = stream.next()
				if err != nil {
					return truncated(stream, err)
				}
			} else {
				*f.FlagSlot = false
			}
			continue // flags don't always advance; re-test this token against the next field
		case ast.FieldStr:
			*f.StrSlot = token
		case ast.FieldInt:
			n, perr := parseIntToken(token)
			if perr != nil {
				return verrors.New(verrors.PAR006, stream.pos(), "malformed integer literal: "+token)
			}
			*f.IntSlot = n
		case ast.FieldKindEnum:
			btk, ok := ast.ScalarTypeAtoms[token]
			if !ok {
				return verrors.New(verrors.PAR001, stream.pos(), "unknown base type atom: "+token)
			}
			f.EnumSet(int(btk))
		case ast.FieldNode:
			if token == "(" {
				child, err := readSExpr(stream, kind)
				if err != nil {
					return err
				}
				*f.NodeSlot = child
			} else {
				child := expandAtom(token, stream.pos())
				if child == nil {
					return verrors.New(verrors.PAR001, stream.pos(), "cannot expand token for field "+f.Name+": "+token)
				}
				*f.NodeSlot = child
			}
		case ast.FieldStrList:
			if token != "[" {
				return verrors.New(verrors.PAR001, stream.pos(), "expected list start for field "+f.Name)
			}
			list, err := readStrList(stream)
			if err != nil {
				return err
			}
			*f.StrListSlot = list
		case ast.FieldList:
			if token != "[" {
				return verrors.New(verrors.PAR001, stream.pos(), "expected list start for field "+f.Name)
			}
			list, err := readNodeList(stream, kind)
			if err != nil {
				return err
			}
			*f.ListSlot = list
		}

		token, err = stream.next()
		if err != nil {
			return truncated(stream, err)
		}
	}

	if token != ")" {
		return verrors.New(verrors.PAR002, stream.pos(),
			fmt.Sprintf("while parsing %s: expected node-end but got %q", kind, token))
	}
	return nil
}

func fillDefault(label string, f ast.Field, pos ast.SourcePos) error {
	switch f.Kind {
	case ast.FieldFlag:
		*f.FlagSlot = false
	case ast.FieldStrList:
		*f.StrListSlot = nil
	case ast.FieldList:
		*f.ListSlot = nil
	case ast.FieldNode:
		ctor, ok := ast.OptionalFields[f.Name]
		if !ok {
			return verrors.New(verrors.PAR003, pos, "missing required field "+f.Name+" for "+label)
		}
		*f.NodeSlot = ctor(pos)
	case ast.FieldKindEnum:
		// leave at zero value (Invalid); caller is responsible for
		// rejecting a node whose enum field never got a legal value.
	case ast.FieldStr, ast.FieldInt:
		// zero value is already in place.
	}
	return nil
}

func readStrList(stream *tokenStream) ([]string, error) {
	var out []string
	for {
		tok, err := stream.next()
		if err != nil {
			return nil, truncated(stream, err)
		}
		if tok == "]" {
			return out, nil
		}
		out = append(out, tok)
	}
}

func readNodeList(stream *tokenStream, parentKind ast.Kind) ([]ast.Node, error) {
	var out []ast.Node
	for {
		tok, err := stream.next()
		if err != nil {
			return nil, truncated(stream, err)
		}
		if tok == "]" {
			return out, nil
		}
		if tok == "(" {
			n, err := readSExpr(stream, parentKind)
			if err != nil {
				return nil, err
			}
			out = append(out, n)
			continue
		}
		n := expandAtom(tok, stream.pos())
		if n == nil {
			return nil, verrors.New(verrors.PAR001, stream.pos(), "cannot expand list element: "+tok)
		}
		out = append(out, n)
	}
}

// readMacroInvocation handles a tag that is not a known node name: per
// §5 it is assumed to be a macro call, whose arguments are read generically
// (bracketed groups become *ast.EphemeralList, for MacroListArg splicing).
func readMacroInvocation(tag string, pos ast.SourcePos, stream *tokenStream) (ast.Node, error) {
	n := ast.New(ast.KindMacroInvoke, pos).(*ast.MacroInvoke)
	n.Name = tag
	for {
		tok, err := stream.next()
		if err != nil {
			return nil, truncated(stream, err)
		}
		switch tok {
		case ")":
			return n, nil
		case "(":
			arg, err := readSExpr(stream, ast.KindMacroInvoke)
			if err != nil {
				return nil, err
			}
			n.Args = append(n.Args, arg)
		case "[":
			items, err := readNodeList(stream, ast.KindMacroInvoke)
			if err != nil {
				return nil, err
			}
			el := ast.New(ast.KindEphemeralList, pos).(*ast.EphemeralList)
			el.Items = items
			n.Args = append(n.Args, el)
		default:
			arg := expandAtom(tok, stream.pos())
			if arg == nil {
				return nil, verrors.New(verrors.PAR001, stream.pos(),
					fmt.Sprintf("while processing %s unexpected macro arg: %s", tag, tok))
			}
			n.Args = append(n.Args, arg)
		}
	}
}

func truncated(stream *tokenStream, cause error) error {
	if cause == io.EOF {
		return verrors.New(verrors.PAR005, stream.pos(), "truncated input: unexpected end of file")
	}
	return cause
}

func parseIntToken(tok string) (int, error) {
	neg := false
	i := 0
	if len(tok) > 0 && (tok[0] == '+' || tok[0] == '-') {
		neg = tok[0] == '-'
		i = 1
	}
	if i >= len(tok) {
		return 0, fmt.Errorf("empty integer token")
	}
	n := 0
	for ; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid integer token %q", tok)
		}
		n = n*10 + int(c-'0')
	}
	if neg {
		n = -n
	}
	return n, nil
}
