// Package typecheck implements §4.6's consumer, §4.7 Type Inference and
// §4.8 the Type Verifier: a bidirectional checker that threads an
// expected-type stack through the tree and writes XType (and XField, where
// applicable) on every TYPE_ANNOTATED/FIELD_ANNOTATED node.
//
// Grounded on the teacher's explicit recursive type-switch style
// (internal/elaborate/verify.go's verifyExpr) rather than a generic
// Walk-based visitor, since every node kind here has its own typing rule
// and a single shared dispatch loses the bidirectional target stack. The
// teacher's Hindley-Milner InferenceContext (internal/types/inference.go)
// doesn't fit this compiler's rule set — each node here carries an explicit
// expected type pushed by its parent, not a unification variable — so it
// contributes texture (constraint/error wrapping conventions) rather than
// structure.
package typecheck

import (
	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/symtab"
	"github.com/velalang/velac/internal/typecorpus"
)

// Checker carries the corpus, the builtin table (for bootstrapping scalar
// type entries referenced before any module declares them) and the
// expected-type stack (§4.7 "Model": push_target/pop_target, NO_TYPE when
// the stack is empty).
type Checker struct {
	Corpus *typecorpus.Corpus
	Poly   *PolyMap

	targets       []*typecorpus.Entry
	currentResult *typecorpus.Entry // enclosing function's declared result type
}

// New constructs a checker over corpus, sharing one PolyMap across every
// module in a compilation (§4.7 "Polymorphic registry").
func New(corpus *typecorpus.Corpus) *Checker {
	return &Checker{Corpus: corpus, Poly: NewPolyMap()}
}

// pushTarget/popTarget/target implement the expected-type stack; a nil
// *Entry on top of the stack (or an empty stack) is NO_TYPE.
func (c *Checker) pushTarget(e *typecorpus.Entry) { c.targets = append(c.targets, e) }

func (c *Checker) popTarget() { c.targets = c.targets[:len(c.targets)-1] }

func (c *Checker) target() *typecorpus.Entry {
	if len(c.targets) == 0 {
		return nil
	}
	return c.targets[len(c.targets)-1]
}

// TypeTopLevel runs Pass A of §4.7 over one module: it types every
// top-level declaration except function bodies (populating c.Poly along the
// way); TypeFunctionBodies is Pass B, typing function bodies with the
// now-complete PolyMap available. Callers must run Pass A over every module in topological order
// before running Pass B on any of them (§4.7 "two-pass strategy"), so a
// driver over several modules calls TypeTopLevel(mod) for each module first
// and only then TypeFunctionBodies(mod) for each.
func (c *Checker) TypeTopLevel(mod *ast.DefMod) error {
	for _, n := range mod.BodyMod {
		if err := c.typeTopLevelDecl(mod, n); err != nil {
			return err
		}
	}
	return nil
}

// TypeFunctionBodies types every non-extern function body declared in mod.
func (c *Checker) TypeFunctionBodies(mod *ast.DefMod) error {
	for _, n := range mod.BodyMod {
		fn, ok := n.(*ast.DefFun)
		if !ok || fn.Extern {
			continue
		}
		if err := c.typeFunctionBody(fn); err != nil {
			return err
		}
	}
	return nil
}

// BootstrapBuiltin types every TypeBase node registered in the builtin
// table, so $builtin-qualified scalar references have an XType before any
// module's Pass A runs. The reader/builtin wiring registers these directly
// as *ast.TypeBase nodes (see modpool's tests), which otherwise never pass
// through typeTopLevelDecl since they aren't DefMod body members.
func (c *Checker) BootstrapBuiltin(builtin *symtab.Table, names []string) error {
	for _, name := range names {
		node, ok := builtin.ResolveHere(name, false)
		if !ok {
			continue
		}
		base, ok := node.(*ast.TypeBase)
		if !ok {
			continue
		}
		entry := c.Corpus.InsertBase(base.BaseTypeKind)
		base.XType = entry.Name
	}
	return nil
}

func typeErr(code string, n ast.Node, msg string) error {
	return verrors.New(code, n.Pos(), msg)
}
