package ast

// ValBool is a `true`/`false` literal.
type ValBool struct {
	base
	Value bool
	XType string
}

func (n *ValBool) NodeKind() Kind  { return KindValBool }
func (n *ValBool) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ValBool) Fields() []Field { return []Field{{Name: "value", Kind: FieldFlag, FlagSlot: &n.Value}} }

// ValVoid is the `void_val` literal.
type ValVoid struct {
	base
	XType string
}

func (n *ValVoid) NodeKind() Kind  { return KindValVoid }
func (n *ValVoid) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ValVoid) Fields() []Field { return nil }

// ValUndef is the `undef` literal; its type comes entirely from context.
type ValUndef struct {
	base
	XType string
}

func (n *ValUndef) NodeKind() Kind  { return KindValUndef }
func (n *ValUndef) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ValUndef) Fields() []Field { return nil }

// ValNum is a numeric literal. Number retains the raw token text (e.g.
// "42_u32", "3.14", "7sint") so the type checker can read a trailing
// type suffix.
type ValNum struct {
	base
	Number string
	XType  string
}

func (n *ValNum) NodeKind() Kind  { return KindValNum }
func (n *ValNum) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ValNum) Fields() []Field {
	return []Field{{Name: "number", Kind: FieldStr, StrSlot: &n.Number}}
}

// ValString is a quoted string literal. Raw strings (r"...") do not
// process escapes; String is the raw source text including quotes.
type ValString struct {
	base
	Raw    bool
	String string
	XType  string
}

func (n *ValString) NodeKind() Kind  { return KindValString }
func (n *ValString) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ValString) Fields() []Field {
	return []Field{
		{Name: "raw", Kind: FieldFlag, FlagSlot: &n.Raw},
		{Name: "string", Kind: FieldStr, StrSlot: &n.String},
	}
}

// ValArrayString is a string literal used directly as an array(u8,N)
// value (distinct from ValString to keep the size computation local).
type ValArrayString struct {
	base
	NoEsc  bool
	String string
	XType  string
}

func (n *ValArrayString) NodeKind() Kind { return KindValArrayString }
func (n *ValArrayString) Flags() FlagSet { return flags(TypeAnnotated) }
func (n *ValArrayString) Fields() []Field {
	return []Field{
		{Name: "noesc", Kind: FieldFlag, FlagSlot: &n.NoEsc},
		{Name: "string", Kind: FieldStr, StrSlot: &n.String},
	}
}

// IndexVal is one element of a ValArray, optionally keyed by an explicit
// index expression.
type IndexVal struct {
	base
	Index Node // nil => positional
	Value Node
	XType string
}

func (n *IndexVal) NodeKind() Kind  { return KindIndexVal }
func (n *IndexVal) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *IndexVal) Fields() []Field {
	return []Field{
		{Name: "index", Kind: FieldNode, NodeSlot: &n.Index},
		{Name: "value", Kind: FieldNode, NodeSlot: &n.Value},
	}
}

// ValArray is an array literal with an explicit element type and size
// expression.
type ValArray struct {
	base
	Type   Node
	Size   Node
	Values []Node // []*IndexVal
	XType  string
}

func (n *ValArray) NodeKind() Kind  { return KindValArray }
func (n *ValArray) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ValArray) Fields() []Field {
	return []Field{
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
		{Name: "size", Kind: FieldNode, NodeSlot: &n.Size},
		{Name: "values", Kind: FieldList, ListSlot: &n.Values},
	}
}

// FieldVal is one value inside a ValRec; Field is "" for positional
// (cursor-advancing) values.
type FieldVal struct {
	base
	Field string
	Value Node
	XType string
	XField Node // *RecField, set during typing
}

func (n *FieldVal) NodeKind() Kind  { return KindFieldVal }
func (n *FieldVal) Flags() FlagSet  { return flags(TypeAnnotated, FieldAnnotated) }
func (n *FieldVal) Fields() []Field {
	return []Field{
		{Name: "field", Kind: FieldStr, StrSlot: &n.Field},
		{Name: "value", Kind: FieldNode, NodeSlot: &n.Value},
	}
}

// ValRec is a record literal.
type ValRec struct {
	base
	Type   Node
	Values []Node // []*FieldVal
	XType  string
}

func (n *ValRec) NodeKind() Kind  { return KindValRec }
func (n *ValRec) Flags() FlagSet  { return flags(TypeAnnotated) }
func (n *ValRec) Fields() []Field {
	return []Field{
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
		{Name: "values", Kind: FieldList, ListSlot: &n.Values},
	}
}
