package ast

// FieldKind is the shape of a declared field, per §4.1: it tells the
// reader how to consume tokens and the generic walkers (resolver, macro
// expander, verifier) whether a slot holds a child node, a list of
// children, or inert scalar data they should skip.
type FieldKind int

const (
	FieldFlag FieldKind = iota
	FieldStr
	FieldInt
	FieldKindEnum
	FieldNode
	FieldList
	FieldStrList
)

// Field is one slot of a node, addressed generically so the reader can
// populate it and the resolver/macro-expander/verifier can walk or rewrite
// it without a type switch per node kind. Exactly one of the pointer
// fields is non-nil, matching Kind.
type Field struct {
	Name string
	Kind FieldKind

	NodeSlot *Node   // FieldNode: addressable child slot
	ListSlot *[]Node // FieldList: addressable child list

	// scalar slots, read by the reader/printer only; walkers skip these.
	FlagSlot    *bool
	StrSlot     *string
	IntSlot     *int
	StrListSlot *[]string

	// FieldKindEnum: bound via closures (not a pointer) because the
	// underlying storage is a named int type per node (BaseTypeKind,
	// UnaryOp, BinaryOp, ...), not a plain int.
	EnumGet func() int
	EnumSet func(int)
}

// Node is implemented by every AST node variant.
type Node interface {
	NodeKind() Kind
	Flags() FlagSet
	Pos() SourcePos
	// Fields returns this node's declared fields in source order, each
	// bound to the node's own storage so callers can both read and
	// (for Node/List kinds) rewrite in place.
	Fields() []Field
}

// SymbolTable is the minimal surface DefMod.XSymtab needs. Defined here
// (not in package symtab) so ast has no dependency on symtab and the two
// packages don't form an import cycle; internal/symtab.Table implements it.
type SymbolTable interface {
	ResolveHere(name string, mustBePublic bool) (Node, bool)
}

// OptionalFields registers, per field name, a default-value factory used
// by the reader when a trailing field is omitted from the source text
// (§4.1 "Missing trailing fields are allowed only when the field is in
// the optional fields registry").
var OptionalFields = map[string]func(pos SourcePos) Node{}
