package ast

// Id is a (possibly qualified) identifier occurrence: "name", or
// "mod_name/name" for a qualified reference (the reader rewrites the
// `a::b` shorthand into this two-field form).
type Id struct {
	base
	Name    string
	ModName string // "" for unqualified

	XType   string
	XSymbol Node // defining-node reference, one of the recognized kinds
}

func (n *Id) NodeKind() Kind  { return KindId }
func (n *Id) Flags() FlagSet  { return flags(TypeAnnotated, SymbolAnnotated) }
func (n *Id) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "mod_name", Kind: FieldStr, StrSlot: &n.ModName},
	}
}

// Qualified reports whether this Id carries an explicit module qualifier.
func (n *Id) Qualified() bool { return n.ModName != "" }

// ExprCall is a function call; when Polymorphic the callee id is resolved
// via the PolyMap (keyed by first-argument canonical type) rather than by
// ordinary symbol lookup, so symbol resolution skips it (§4.4).
type ExprCall struct {
	base
	Callee      Node
	Args        []Node
	Polymorphic bool
	XType       string
}

func (n *ExprCall) NodeKind() Kind  { return KindExprCall }
func (n *ExprCall) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprCall) Fields() []Field {
	return []Field{
		{Name: "polymorphic", Kind: FieldFlag, FlagSlot: &n.Polymorphic},
		{Name: "callee", Kind: FieldNode, NodeSlot: &n.Callee},
		{Name: "args", Kind: FieldList, ListSlot: &n.Args},
	}
}

// ExprField is record field access `container.field`.
type ExprField struct {
	base
	Container Node
	Field     string
	XType     string
	XField    Node // *RecField
}

func (n *ExprField) NodeKind() Kind  { return KindExprField }
func (n *ExprField) Flags() FlagSet  { return flags(TypeAnnotated, FieldAnnotated) }
func (n *ExprField) Fields() []Field {
	return []Field{
		{Name: "container", Kind: FieldNode, NodeSlot: &n.Container},
		{Name: "field", Kind: FieldStr, StrSlot: &n.Field},
	}
}

// ExprOffsetof computes a field's byte offset.
type ExprOffsetof struct {
	base
	Type   Node
	Field  string
	XType  string
	XField Node
}

func (n *ExprOffsetof) NodeKind() Kind  { return KindExprOffsetof }
func (n *ExprOffsetof) Flags() FlagSet  { return flags(TypeAnnotated, FieldAnnotated) }
func (n *ExprOffsetof) Fields() []Field {
	return []Field{
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
		{Name: "field", Kind: FieldStr, StrSlot: &n.Field},
	}
}

// ExprIndex is `container[expr_index]`.
type ExprIndex struct {
	base
	Container Node
	ExprIndex Node
	XType     string
}

func (n *ExprIndex) NodeKind() Kind  { return KindExprIndex }
func (n *ExprIndex) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprIndex) Fields() []Field {
	return []Field{
		{Name: "container", Kind: FieldNode, NodeSlot: &n.Container},
		{Name: "expr_index", Kind: FieldNode, NodeSlot: &n.ExprIndex},
	}
}

// ExprDeref dereferences a pointer.
type ExprDeref struct {
	base
	Expr  Node
	XType string
}

func (n *ExprDeref) NodeKind() Kind  { return KindExprDeref }
func (n *ExprDeref) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprDeref) Fields() []Field {
	return []Field{{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr}}
}

// ExprAddrOf takes the address of a proper lhs (when Mut).
type ExprAddrOf struct {
	base
	Mut   bool
	Expr  Node
	XType string
}

func (n *ExprAddrOf) NodeKind() Kind  { return KindExprAddrOf }
func (n *ExprAddrOf) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprAddrOf) Fields() []Field {
	return []Field{
		{Name: "mut", Kind: FieldFlag, FlagSlot: &n.Mut},
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
	}
}

// ExprAs is a checked conversion to an explicit target type.
type ExprAs struct {
	base
	Expr  Node
	Type  Node
	XType string
}

func (n *ExprAs) NodeKind() Kind  { return KindExprAs }
func (n *ExprAs) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprAs) Fields() []Field {
	return []Field{
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// ExprBitCast reinterprets bits as another type of the same size.
type ExprBitCast struct {
	base
	Expr  Node
	Type  Node
	XType string
}

func (n *ExprBitCast) NodeKind() Kind  { return KindExprBitCast }
func (n *ExprBitCast) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprBitCast) Fields() []Field {
	return []Field{
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// ExprUnsafeCast forces a conversion with no compatibility check.
type ExprUnsafeCast struct {
	base
	Expr  Node
	Type  Node
	XType string
}

func (n *ExprUnsafeCast) NodeKind() Kind  { return KindExprUnsafeCast }
func (n *ExprUnsafeCast) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprUnsafeCast) Fields() []Field {
	return []Field{
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// ExprAsNot narrows a sum type by removing a component: result is the
// sum-complement U \ T.
type ExprAsNot struct {
	base
	Expr  Node
	Type  Node
	XType string
}

func (n *ExprAsNot) NodeKind() Kind  { return KindExprAsNot }
func (n *ExprAsNot) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprAsNot) Fields() []Field {
	return []Field{
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// ExprIs is a runtime sum-type tag test; always bool.
type ExprIs struct {
	base
	Expr  Node
	Type  Node
	XType string
}

func (n *ExprIs) NodeKind() Kind  { return KindExprIs }
func (n *ExprIs) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprIs) Fields() []Field {
	return []Field{
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// ExprLen yields the element count of an array/slice; always uint.
type ExprLen struct {
	base
	Expr  Node
	XType string
}

func (n *ExprLen) NodeKind() Kind  { return KindExprLen }
func (n *ExprLen) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprLen) Fields() []Field {
	return []Field{{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr}}
}

// ExprSizeof yields the byte size of a type; always uint.
type ExprSizeof struct {
	base
	Type  Node
	XType string
}

func (n *ExprSizeof) NodeKind() Kind  { return KindExprSizeof }
func (n *ExprSizeof) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprSizeof) Fields() []Field {
	return []Field{{Name: "type", Kind: FieldNode, NodeSlot: &n.Type}}
}

// ExprTryAs attempts a narrowing conversion, yielding Default (if present)
// on failure instead of aborting.
type ExprTryAs struct {
	base
	Expr    Node
	Type    Node
	Default Node // optional
	XType   string
}

func (n *ExprTryAs) NodeKind() Kind  { return KindExprTryAs }
func (n *ExprTryAs) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprTryAs) Fields() []Field {
	return []Field{
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
		{Name: "default", Kind: FieldNode, NodeSlot: &n.Default},
	}
}

// ExprSrcLoc is a macro-like form expanding to a numeric literal encoding
// the invocation's source location.
type ExprSrcLoc struct {
	base
	XType string
}

func (n *ExprSrcLoc) NodeKind() Kind  { return KindExprSrcLoc }
func (n *ExprSrcLoc) Flags() FlagSet  { return flags(ToBeExpanded) }
func (n *ExprSrcLoc) Fields() []Field { return nil }

// ExprStringify is a macro-like form expanding to a string literal of its
// argument identifier's text.
type ExprStringify struct {
	base
	Expr  Node // an *Id
	XType string
}

func (n *ExprStringify) NodeKind() Kind  { return KindExprStringify }
func (n *ExprStringify) Flags() FlagSet  { return flags(ToBeExpanded) }
func (n *ExprStringify) Fields() []Field {
	return []Field{{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr}}
}

// ExprParen is a transparent parenthesization; it forwards its inner
// expression's type (§ SUPPLEMENTED FEATURES 1).
type ExprParen struct {
	base
	Expr  Node
	XType string
}

func (n *ExprParen) NodeKind() Kind  { return KindExprParen }
func (n *ExprParen) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprParen) Fields() []Field {
	return []Field{{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr}}
}

// ExprUnwrap extracts the payload of a wrapped(...) nominal type.
type ExprUnwrap struct {
	base
	Expr  Node
	XType string
}

func (n *ExprUnwrap) NodeKind() Kind  { return KindExprUnwrap }
func (n *ExprUnwrap) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprUnwrap) Fields() []Field {
	return []Field{{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr}}
}

// ExprChop narrows a slice/array to a sub-range [start, start+count).
type ExprChop struct {
	base
	Container Node
	Start     Node
	Count     Node
	XType     string
}

func (n *ExprChop) NodeKind() Kind  { return KindExprChop }
func (n *ExprChop) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprChop) Fields() []Field {
	return []Field{
		{Name: "container", Kind: FieldNode, NodeSlot: &n.Container},
		{Name: "start", Kind: FieldNode, NodeSlot: &n.Start},
		{Name: "count", Kind: FieldNode, NodeSlot: &n.Count},
	}
}

// ExprRange is a `start..end:step` range consumed by StmtFor. End is
// authoritative for typing; Start/Step may be TypeAuto.
type ExprRange struct {
	base
	Start Node
	End   Node
	Step  Node
	XType string
}

func (n *ExprRange) NodeKind() Kind  { return KindExprRange }
func (n *ExprRange) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ExprRange) Fields() []Field {
	return []Field{
		{Name: "start", Kind: FieldNode, NodeSlot: &n.Start},
		{Name: "end", Kind: FieldNode, NodeSlot: &n.End},
		{Name: "step", Kind: FieldNode, NodeSlot: &n.Step},
	}
}

// Expr1 is a unary expression; preserves the operand's type.
type Expr1 struct {
	base
	Op    UnaryOp
	Expr  Node
	XType string
}

func (n *Expr1) NodeKind() Kind  { return KindExpr1 }
func (n *Expr1) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *Expr1) Fields() []Field {
	return []Field{
		{Name: "op", Kind: FieldKindEnum,
			EnumGet: func() int { return int(n.Op) },
			EnumSet: func(v int) { n.Op = UnaryOp(v) }},
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
	}
}

// Expr2 is a binary expression (§4.7 result-type rules).
type Expr2 struct {
	base
	Op    BinaryOp
	Expr1 Node
	Expr2 Node
	XType string
}

func (n *Expr2) NodeKind() Kind  { return KindExpr2 }
func (n *Expr2) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *Expr2) Fields() []Field {
	return []Field{
		{Name: "op", Kind: FieldKindEnum,
			EnumGet: func() int { return int(n.Op) },
			EnumSet: func(v int) { n.Op = BinaryOp(v) }},
		{Name: "expr1", Kind: FieldNode, NodeSlot: &n.Expr1},
		{Name: "expr2", Kind: FieldNode, NodeSlot: &n.Expr2},
	}
}

// Expr3 is a ternary conditional expression; both arms must share a type.
type Expr3 struct {
	base
	Cond  Node
	Expr1 Node
	Expr2 Node
	XType string
}

func (n *Expr3) NodeKind() Kind  { return KindExpr3 }
func (n *Expr3) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *Expr3) Fields() []Field {
	return []Field{
		{Name: "cond", Kind: FieldNode, NodeSlot: &n.Cond},
		{Name: "expr1", Kind: FieldNode, NodeSlot: &n.Expr1},
		{Name: "expr2", Kind: FieldNode, NodeSlot: &n.Expr2},
	}
}
