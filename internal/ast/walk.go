package ast

// Visitor is called once per node during Walk. Returning false skips that
// node's children (used by passes that stop at NewScope boundaries they
// handle themselves, e.g. the resolver pushing/popping scope around DefFun).
type Visitor func(n Node) (descend bool)

// Walk visits n and, when the visitor returns true, every child reachable
// through n.Fields(), depth-first, in field order. nil child slots and nil
// list elements are skipped.
func Walk(n Node, visit Visitor) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, f := range n.Fields() {
		switch f.Kind {
		case FieldNode:
			if f.NodeSlot != nil && *f.NodeSlot != nil {
				Walk(*f.NodeSlot, visit)
			}
		case FieldList:
			if f.ListSlot == nil {
				continue
			}
			for _, child := range *f.ListSlot {
				if child != nil {
					Walk(child, visit)
				}
			}
		}
	}
}

// Rewriter is called once per node slot during Rewrite; returning a
// non-nil replacement swaps the slot's contents in place (used by macro
// expansion to replace a MacroInvoke/MacroId/EphemeralList-splice with its
// expanded form, and by generic-module specialization to substitute a
// ModParam reference with its bound argument type).
type Rewriter func(n Node) (replacement Node, descendInto Node)

// Rewrite visits n's children in place, depth-first. For each non-nil
// child slot the rewriter is consulted; if it returns a replacement the
// slot is overwritten, and Rewrite recurses into descendInto (typically
// the replacement itself, or nil to stop). n itself is never replaced —
// callers that may need to replace the root hold it through a parent slot
// or rebind it themselves after calling Rewrite on its children.
func Rewrite(n Node, rw Rewriter) {
	if n == nil {
		return
	}
	for _, f := range n.Fields() {
		switch f.Kind {
		case FieldNode:
			if f.NodeSlot == nil || *f.NodeSlot == nil {
				continue
			}
			child := *f.NodeSlot
			if repl, next := rw(child); repl != nil {
				*f.NodeSlot = repl
				if next != nil {
					Rewrite(next, rw)
				}
			} else {
				Rewrite(child, rw)
			}
		case FieldList:
			if f.ListSlot == nil {
				continue
			}
			list := *f.ListSlot
			out := make([]Node, 0, len(list))
			for _, child := range list {
				if child == nil {
					out = append(out, child)
					continue
				}
				if repl, next := rw(child); repl != nil {
					out = append(out, repl)
					if next != nil {
						Rewrite(next, rw)
					}
				} else {
					Rewrite(child, rw)
					out = append(out, child)
				}
			}
			*f.ListSlot = out
		}
	}
}

// RewriteSplice is like Rewrite but a child in a FieldList slot may expand
// to zero or many nodes (splice: v.items of an *EphemeralList bound to a
// MacroListArg formal). splicer returning ok=false leaves the child as-is
// (subject to ordinary rw handling); ok=true replaces it with repl (which
// may be empty) and does not descend into the spliced nodes.
func RewriteSplice(n Node, rw Rewriter, splicer func(n Node) (repl []Node, ok bool)) {
	if n == nil {
		return
	}
	for _, f := range n.Fields() {
		switch f.Kind {
		case FieldNode:
			if f.NodeSlot == nil || *f.NodeSlot == nil {
				continue
			}
			child := *f.NodeSlot
			if repl, ok := splicer(child); ok {
				if len(repl) > 0 {
					*f.NodeSlot = repl[0]
				}
				continue
			}
			if repl, next := rw(child); repl != nil {
				*f.NodeSlot = repl
				if next != nil {
					RewriteSplice(next, rw, splicer)
				}
			} else {
				RewriteSplice(child, rw, splicer)
			}
		case FieldList:
			if f.ListSlot == nil {
				continue
			}
			list := *f.ListSlot
			out := make([]Node, 0, len(list))
			for _, child := range list {
				if child == nil {
					out = append(out, child)
					continue
				}
				if repl, ok := splicer(child); ok {
					out = append(out, repl...)
					continue
				}
				if repl, next := rw(child); repl != nil {
					out = append(out, repl)
					if next != nil {
						RewriteSplice(next, rw, splicer)
					}
				} else {
					RewriteSplice(child, rw, splicer)
					out = append(out, child)
				}
			}
			*f.ListSlot = out
		}
	}
}
