package ast

// DefVar is a local variable declaration; Type may be TypeAuto when an
// Initial value is present (inferred from it).
type DefVar struct {
	base
	Name    string
	Mut     bool
	Type    Node
	Initial Node

	XType string
}

func (n *DefVar) NodeKind() Kind  { return KindDefVar }
func (n *DefVar) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *DefVar) Fields() []Field {
	return []Field{
		{Name: "mut", Kind: FieldFlag, FlagSlot: &n.Mut},
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
		{Name: "initial", Kind: FieldNode, NodeSlot: &n.Initial},
	}
}

// StmtReturn returns from the enclosing function; Value is nil (or, when
// read from source, the TypeAuto placeholder) for a bare return from a
// void-returning function.
type StmtReturn struct {
	base
	Value Node // optional
}

func (n *StmtReturn) NodeKind() Kind  { return KindStmtReturn }
func (n *StmtReturn) Flags() FlagSet  { return 0 }
func (n *StmtReturn) Fields() []Field {
	return []Field{{Name: "value", Kind: FieldNode, NodeSlot: &n.Value}}
}

// StmtIf is a conditional with a mandatory Then block and optional Else,
// each pushing/popping a resolution scope (§4.4).
type StmtIf struct {
	base
	Cond Node
	Then []Node
	Else []Node // empty if absent
}

func (n *StmtIf) NodeKind() Kind  { return KindStmtIf }
func (n *StmtIf) Flags() FlagSet  { return 0 }
func (n *StmtIf) Fields() []Field {
	return []Field{
		{Name: "cond", Kind: FieldNode, NodeSlot: &n.Cond},
		{Name: "then", Kind: FieldList, ListSlot: &n.Then},
		{Name: "else_", Kind: FieldList, ListSlot: &n.Else},
	}
}

// StmtAssignment is `lhs = rhs`; Lhs must resolve to a proper (addressable,
// mutable) lvalue.
type StmtAssignment struct {
	base
	Lhs Node
	Rhs Node
}

func (n *StmtAssignment) NodeKind() Kind  { return KindStmtAssignment }
func (n *StmtAssignment) Flags() FlagSet  { return 0 }
func (n *StmtAssignment) Fields() []Field {
	return []Field{
		{Name: "lhs", Kind: FieldNode, NodeSlot: &n.Lhs},
		{Name: "rhs", Kind: FieldNode, NodeSlot: &n.Rhs},
	}
}

// StmtCompoundAssignment is `lhs += rhs` and its siblings; Op is one of
// the CompoundAssignShorthand binary operators.
type StmtCompoundAssignment struct {
	base
	Op  BinaryOp
	Lhs Node
	Rhs Node
}

func (n *StmtCompoundAssignment) NodeKind() Kind { return KindStmtCompoundAssignment }
func (n *StmtCompoundAssignment) Flags() FlagSet { return 0 }
func (n *StmtCompoundAssignment) Fields() []Field {
	return []Field{
		{Name: "op", Kind: FieldKindEnum,
			EnumGet: func() int { return int(n.Op) },
			EnumSet: func(v int) { n.Op = BinaryOp(v) }},
		{Name: "lhs", Kind: FieldNode, NodeSlot: &n.Lhs},
		{Name: "rhs", Kind: FieldNode, NodeSlot: &n.Rhs},
	}
}

// StmtExpr is an expression evaluated for its side effects. Discard must
// agree with whether Expr's type is void: a non-void result must be
// explicitly marked Discard, and a void result must not be (§4.8).
type StmtExpr struct {
	base
	Expr    Node
	Discard bool
}

func (n *StmtExpr) NodeKind() Kind  { return KindStmtExpr }
func (n *StmtExpr) Flags() FlagSet  { return 0 }
func (n *StmtExpr) Fields() []Field {
	return []Field{
		{Name: "expr", Kind: FieldNode, NodeSlot: &n.Expr},
		{Name: "discard", Kind: FieldFlag, FlagSlot: &n.Discard},
	}
}

// StmtBlock is a braced statement list introducing its own resolution
// scope.
type StmtBlock struct {
	base
	Body []Node
}

func (n *StmtBlock) NodeKind() Kind  { return KindStmtBlock }
func (n *StmtBlock) Flags() FlagSet  { return flags(NewScope) }
func (n *StmtBlock) Fields() []Field {
	return []Field{{Name: "body", Kind: FieldList, ListSlot: &n.Body}}
}

// StmtBreak exits the nearest enclosing StmtFor.
type StmtBreak struct{ base }

func (n *StmtBreak) NodeKind() Kind  { return KindStmtBreak }
func (n *StmtBreak) Flags() FlagSet  { return 0 }
func (n *StmtBreak) Fields() []Field { return nil }

// StmtContinue advances the nearest enclosing StmtFor.
type StmtContinue struct{ base }

func (n *StmtContinue) NodeKind() Kind  { return KindStmtContinue }
func (n *StmtContinue) Flags() FlagSet  { return 0 }
func (n *StmtContinue) Fields() []Field { return nil }

// StmtFor is a `for name in range { body }` loop; Range is typically an
// *ExprRange, but any expression typed as an iterable degrades to it.
type StmtFor struct {
	base
	Name  string
	Range Node
	Body  []Node

	XType string // element type bound to Name within Body
}

func (n *StmtFor) NodeKind() Kind { return KindStmtFor }
func (n *StmtFor) Flags() FlagSet { return flags(NewScope, TypeAnnotated) }
func (n *StmtFor) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "range", Kind: FieldNode, NodeSlot: &n.Range},
		{Name: "body", Kind: FieldList, ListSlot: &n.Body},
	}
}
