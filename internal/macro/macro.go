// Package macro implements the hygienic, bounded-depth macro expander
// (§4.5): explicit MacroInvoke forms and the macro-like built-ins
// (ExprSrcLoc, ExprStringify) are rewritten in place, list-typed formals
// splice their bound EphemeralList into the surrounding list slot, and a
// fresh MacroContext mints collision-free names for a macro's gensyms.
package macro

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
)

// MaxNesting bounds recursive macro expansion (§4.5 "MAX_MACRO_NESTING = 4").
const MaxNesting = 4

// Lookup resolves a macro invocation's name to its definition. Callers
// typically close over a symtab.Table (and the $builtin table as a
// fallback), matching §4.3's "macro namespace is separate" rule.
type Lookup func(name string) (*ast.DefMacro, bool)

// Context mints fresh, collision-free names for a macro's gensym
// parameters (§9 "Macro hygiene"). One Context is shared across an
// entire expansion so no two invocations — even of the same macro —
// can collide.
type Context struct{ counter int }

// NewContext returns an empty hygiene context.
func NewContext() *Context { return &Context{} }

// Fresh mints a name derived from base guaranteed unique within this
// context. The result never begins with the hygiene sigil '$', so it
// reads as an ordinary identifier once substituted (the verifier's "no
// $-prefixed identifier survives expansion" assertion, §9, checks this).
func (c *Context) Fresh(base string) string {
	c.counter++
	return fmt.Sprintf("%s_h%d", strings.TrimPrefix(base, "$"), c.counter)
}

// Expand rewrites every ToBeExpanded node reachable from root, in
// rounds, until none remain or MaxNesting rounds have run (at which
// point a surviving ToBeExpanded node is a MAC002 error).
func Expand(root ast.Node, lookup Lookup, ctx *Context) error {
	for round := 0; round < MaxNesting; round++ {
		var expandErr error
		anyExpanded := false

		noop := func(ast.Node) (ast.Node, ast.Node) { return nil, nil }
		splice := func(n ast.Node) ([]ast.Node, bool) {
			if expandErr != nil {
				return nil, false
			}
			if !n.Flags().Has(ast.ToBeExpanded) {
				return nil, false
			}
			repl, err := expandOne(n, lookup, ctx)
			if err != nil {
				expandErr = err
				return nil, true
			}
			anyExpanded = true
			return repl, true
		}
		ast.RewriteSplice(root, noop, splice)

		if expandErr != nil {
			return expandErr
		}
		if !anyExpanded {
			return assertNoneRemain(root)
		}
	}
	return assertNoneRemain(root)
}

func assertNoneRemain(root ast.Node) error {
	var err error
	ast.Walk(root, func(n ast.Node) bool {
		if err != nil {
			return false
		}
		if n.Flags().Has(ast.ToBeExpanded) {
			err = verrors.New(verrors.MAC002, n.Pos(), "macro expansion nesting exceeded")
			return false
		}
		return true
	})
	return err
}

// AssertNoHygieneLeak walks root and fails if any MacroId (a surviving
// `$name` reference) escaped expansion — the verifier-level hygiene
// check from §9.
func AssertNoHygieneLeak(root ast.Node) error {
	var err error
	ast.Walk(root, func(n ast.Node) bool {
		if err != nil {
			return false
		}
		if id, ok := n.(*ast.MacroId); ok {
			err = verrors.New(verrors.MAC005, id.Pos(), "unexpanded hygiene reference survived to type checking: "+id.Name)
			return false
		}
		return true
	})
	return err
}

func expandOne(n ast.Node, lookup Lookup, ctx *Context) ([]ast.Node, error) {
	switch t := n.(type) {
	case *ast.MacroInvoke:
		return expandInvoke(t, lookup, ctx)
	case *ast.ExprSrcLoc:
		lit := ast.New(ast.KindValNum, t.Pos()).(*ast.ValNum)
		lit.Number = strconv.Itoa(encodeLoc(t.Pos()))
		return []ast.Node{lit}, nil
	case *ast.ExprStringify:
		id, ok := t.Expr.(*ast.Id)
		if !ok {
			return nil, verrors.New(verrors.MAC003, t.Pos(), "stringify argument must be an identifier")
		}
		lit := ast.New(ast.KindValString, t.Pos()).(*ast.ValString)
		lit.String = `"` + id.Name + `"`
		return []ast.Node{lit}, nil
	case *ast.MacroId:
		return nil, verrors.New(verrors.MAC003, t.Pos(), "unbound macro parameter outside an expansion: "+t.Name)
	case *ast.MacroListArg:
		return nil, verrors.New(verrors.MAC004, t.Pos(), "unbound list-splice formal outside an expansion: "+t.Name)
	case *ast.EphemeralList:
		return nil, verrors.New(verrors.MAC004, t.Pos(), "bracketed argument list used outside a macro call")
	default:
		return nil, nil
	}
}

// encodeLoc packs a source location into a single integer for ExprSrcLoc
// (§4.5 "yields a numeric literal encoding the location"): line in the
// low bits, a stable hash of the file name in the high bits, so two
// distinct call sites in the same file reliably compare unequal.
func encodeLoc(pos ast.SourcePos) int {
	h := 0
	for _, r := range pos.File {
		h = h*31 + int(r)
	}
	if h < 0 {
		h = -h
	}
	return h*100000 + pos.Line
}

func expandInvoke(t *ast.MacroInvoke, lookup Lookup, ctx *Context) ([]ast.Node, error) {
	def, ok := lookup(t.Name)
	if !ok {
		return nil, verrors.New(verrors.MAC001, t.Pos(), "unknown macro: "+t.Name)
	}
	if len(t.Args) != len(def.ParamNames) {
		return nil, verrors.New(verrors.MAC003, t.Pos(),
			fmt.Sprintf("macro %s expects %d argument(s), got %d", t.Name, len(def.ParamNames), len(t.Args)))
	}

	scalar := map[string]ast.Node{}
	list := map[string][]ast.Node{}
	for i, pname := range def.ParamNames {
		arg := t.Args[i]
		if el, ok := arg.(*ast.EphemeralList); ok {
			list[pname] = el.Items
		} else {
			scalar[pname] = arg
		}
	}

	gensym := map[string]string{}
	for _, g := range def.Gensyms {
		gensym[strings.TrimPrefix(g, "$")] = ctx.Fresh(g)
	}

	var out []ast.Node
	for _, bodyNode := range def.Body {
		substituted, err := substitute(ast.Clone(bodyNode), scalar, list, gensym)
		if err != nil {
			return nil, err
		}
		out = append(out, substituted...)
	}
	return out, nil
}

// substitute applies a macro body's parameter/gensym bindings to n
// (already a private clone), returning the node(s) n becomes. n itself
// may be a MacroId/MacroListArg requiring substitution, so the top node
// is checked before recursing into its children.
func substitute(n ast.Node, scalar map[string]ast.Node, list map[string][]ast.Node, gensym map[string]string) ([]ast.Node, error) {
	if repl, ok, err := substituteOne(n, scalar, list, gensym); err != nil {
		return nil, err
	} else if ok {
		return repl, nil
	}

	var innerErr error
	noop := func(ast.Node) (ast.Node, ast.Node) { return nil, nil }
	splice := func(c ast.Node) ([]ast.Node, bool) {
		if innerErr != nil {
			return nil, false
		}
		repl, ok, err := substituteOne(c, scalar, list, gensym)
		if err != nil {
			innerErr = err
			return nil, true
		}
		if !ok {
			return nil, false
		}
		return repl, true
	}
	ast.RewriteSplice(n, noop, splice)
	if innerErr != nil {
		return nil, innerErr
	}
	return []ast.Node{n}, nil
}

func substituteOne(n ast.Node, scalar map[string]ast.Node, list map[string][]ast.Node, gensym map[string]string) ([]ast.Node, bool, error) {
	switch t := n.(type) {
	case *ast.MacroId:
		name := strings.TrimPrefix(t.Name, "$")
		if bound, ok := scalar[name]; ok {
			return []ast.Node{ast.Clone(bound)}, true, nil
		}
		if fresh, ok := gensym[name]; ok {
			id := ast.New(ast.KindId, t.Pos()).(*ast.Id)
			id.Name = fresh
			return []ast.Node{id}, true, nil
		}
		return nil, false, verrors.New(verrors.MAC003, t.Pos(), "unbound macro parameter: "+t.Name)
	case *ast.MacroListArg:
		items, ok := list[t.Name]
		if !ok {
			return nil, false, verrors.New(verrors.MAC004, t.Pos(), "splice formal not bound to a list argument: "+t.Name)
		}
		cloned := make([]ast.Node, len(items))
		for i, it := range items {
			cloned[i] = ast.Clone(it)
		}
		return cloned, true, nil
	default:
		return nil, false, nil
	}
}
