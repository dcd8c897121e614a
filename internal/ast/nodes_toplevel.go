package ast

// base carries the position every node has; embedded instead of repeated.
type base struct{ P SourcePos }

func (b base) Pos() SourcePos       { return b.P }
func (b *base) setPos(p SourcePos)  { b.P = p }

// DefMod is the root of a module. Its body holds TopLevel nodes.
type DefMod struct {
	base
	Name     string
	Params   []*ModParam // generic module parameters, empty for arity-0 modules
	BodyMod  []Node

	// annotations
	XModName string      // assigned unique name for this (possibly specialized) instance
	XSymtab  SymbolTable // per-module symbol table
}

func (n *DefMod) NodeKind() Kind  { return KindDefMod }
func (n *DefMod) Flags() FlagSet  { return 0 }
func (n *DefMod) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "body_mod", Kind: FieldList, ListSlot: &n.BodyMod},
	}
}

// ModParam is a generic-module parameter declaration, e.g. `(modparam T type)`.
type ModParam struct {
	base
	Name string
	Kind_ string // "type" | "const" — kept simple; normalization lives in modpool
}

func (n *ModParam) NodeKind() Kind { return KindModParam }
func (n *ModParam) Flags() FlagSet { return 0 }
func (n *ModParam) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "kind", Kind: FieldStr, StrSlot: &n.Kind_},
	}
}

// Import is a module import, optionally parameterized (generic module
// instantiation) and optionally aliased.
type Import struct {
	base
	Name    string // the imported module's logical path
	Alias   string // "" if unaliased
	ArgsMod []Node // pending mod-args (cleared once all normalized)

	XModule *DefMod // resolved target module instance
}

func (n *Import) NodeKind() Kind { return KindImport }
func (n *Import) Flags() FlagSet { return flags(TopLevel) }
func (n *Import) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "alias", Kind: FieldStr, StrSlot: &n.Alias},
		{Name: "args_mod", Kind: FieldList, ListSlot: &n.ArgsMod},
	}
}

// FunParam is one parameter of a function or function type.
type FunParam struct {
	base
	Name string
	Type Node

	XType string
}

func (n *FunParam) NodeKind() Kind { return KindFunParam }
func (n *FunParam) Flags() FlagSet { return flags(TypeAnnotated) }
func (n *FunParam) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// DefFun is a (possibly polymorphic, possibly extern) function definition.
type DefFun struct {
	base
	Name        string
	Pub         bool
	Extern      bool
	Polymorphic bool
	Params      []Node // []*FunParam, as Node so Fields() can expose a LIST slot
	Result      Node
	Body        []Node

	XType string
}

func (n *DefFun) NodeKind() Kind { return KindDefFun }
func (n *DefFun) Flags() FlagSet {
	return flags(TopLevel, TypeAnnotated, NewScope)
}
func (n *DefFun) Fields() []Field {
	return []Field{
		{Name: "pub", Kind: FieldFlag, FlagSlot: &n.Pub},
		{Name: "extern", Kind: FieldFlag, FlagSlot: &n.Extern},
		{Name: "polymorphic", Kind: FieldFlag, FlagSlot: &n.Polymorphic},
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "params", Kind: FieldList, ListSlot: &n.Params},
		{Name: "result", Kind: FieldNode, NodeSlot: &n.Result},
		{Name: "body", Kind: FieldList, ListSlot: &n.Body},
	}
}

// DefMacro defines a hygienic macro: a name, formal parameter names (each
// either an expression-arg or a bracketed list-arg) and a replacement body
// of ephemeral nodes, expanded by internal/macro.
type DefMacro struct {
	base
	Name       string
	Pub        bool
	ParamNames []string
	Gensyms    []string // $-prefixed names requiring fresh hygiene ids per expansion
	Body       []Node
}

func (n *DefMacro) NodeKind() Kind { return KindDefMacro }
func (n *DefMacro) Flags() FlagSet { return flags(TopLevel) }
func (n *DefMacro) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "pub", Kind: FieldFlag, FlagSlot: &n.Pub},
		{Name: "params", Kind: FieldStrList, StrListSlot: &n.ParamNames},
		{Name: "gensyms", Kind: FieldStrList, StrListSlot: &n.Gensyms},
		{Name: "body", Kind: FieldList, ListSlot: &n.Body},
	}
}

// DefGlobal is a module-level mutable/immutable variable.
type DefGlobal struct {
	base
	Name    string
	Pub     bool
	Mut     bool
	Type    Node
	Initial Node

	XType string
}

func (n *DefGlobal) NodeKind() Kind { return KindDefGlobal }
func (n *DefGlobal) Flags() FlagSet { return flags(TopLevel, TypeAnnotated) }
func (n *DefGlobal) Fields() []Field {
	return []Field{
		{Name: "pub", Kind: FieldFlag, FlagSlot: &n.Pub},
		{Name: "mut", Kind: FieldFlag, FlagSlot: &n.Mut},
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
		{Name: "initial", Kind: FieldNode, NodeSlot: &n.Initial},
	}
}

// DefConst is a compile-time constant; its value must reduce to a literal
// wherever it feeds an array dimension (§4.7 TypeArray / _ComputeArrayLength).
type DefConst struct {
	base
	Name  string
	Pub   bool
	Type  Node
	Value Node

	XType string
}

func (n *DefConst) NodeKind() Kind { return KindDefConst }
func (n *DefConst) Flags() FlagSet { return flags(TopLevel, TypeAnnotated) }
func (n *DefConst) Fields() []Field {
	return []Field{
		{Name: "pub", Kind: FieldFlag, FlagSlot: &n.Pub},
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
		{Name: "value", Kind: FieldNode, NodeSlot: &n.Value},
	}
}

// RecField is one field of a DefRec.
type RecField struct {
	base
	Name string
	Type Node

	XType   string
	Offset  int // set by TypeCorpus.SetSizeAndOffsetForRec
	ByteLen int
}

func (n *RecField) NodeKind() Kind { return KindRecField }
func (n *RecField) Flags() FlagSet { return flags(TypeAnnotated) }
func (n *RecField) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// DefRec is a record (struct) type definition. It is inserted into the
// type corpus as a placeholder before its fields are typed, so fields may
// reference the record itself (§8 scenario 5).
type DefRec struct {
	base
	Name   string
	Pub    bool
	Fields []Node // []*RecField

	XType     string
	ByteSize  int
}

func (n *DefRec) NodeKind() Kind { return KindDefRec }
func (n *DefRec) Flags() FlagSet { return flags(TopLevel, TypeCorpus, TypeAnnotated) }
func (n *DefRec) Fields() []Field {
	return []Field{
		{Name: "pub", Kind: FieldFlag, FlagSlot: &n.Pub},
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "fields", Kind: FieldList, ListSlot: &n.Fields},
	}
}

// EnumVal is one entry of a DefEnum; Value is Auto-typed (TypeAuto) when
// the entry has no explicit value.
type EnumVal struct {
	base
	Name  string
	Value Node

	XType string
}

func (n *EnumVal) NodeKind() Kind { return KindEnumVal }
func (n *EnumVal) Flags() FlagSet { return flags(TypeAnnotated) }
func (n *EnumVal) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "value", Kind: FieldNode, NodeSlot: &n.Value},
	}
}

// DefEnum is an enum type definition over a base scalar kind.
type DefEnum struct {
	base
	Name         string
	Pub          bool
	BaseTypeKind BaseTypeKind
	Items        []Node // []*EnumVal

	XType string
}

func (n *DefEnum) NodeKind() Kind { return KindDefEnum }
func (n *DefEnum) Flags() FlagSet { return flags(TopLevel, TypeCorpus, TypeAnnotated) }
func (n *DefEnum) Fields() []Field {
	return []Field{
		{Name: "pub", Kind: FieldFlag, FlagSlot: &n.Pub},
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "base_type_kind", Kind: FieldKindEnum,
			EnumGet: func() int { return int(n.BaseTypeKind) },
			EnumSet: func(v int) { n.BaseTypeKind = BaseTypeKind(v) }},
		{Name: "items", Kind: FieldList, ListSlot: &n.Items},
	}
}

// DefType is a type alias, or (when Wrapped) a nominal newtype — each
// wrap site gets a fresh uniq_id from the type corpus.
type DefType struct {
	base
	Name    string
	Pub     bool
	Wrapped bool
	Type    Node

	XType string
}

func (n *DefType) NodeKind() Kind { return KindDefType }
func (n *DefType) Flags() FlagSet { return flags(TopLevel, TypeCorpus, TypeAnnotated) }
func (n *DefType) Fields() []Field {
	return []Field{
		{Name: "pub", Kind: FieldFlag, FlagSlot: &n.Pub},
		{Name: "wrapped", Kind: FieldFlag, FlagSlot: &n.Wrapped},
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// StmtStaticAssert is a compile-time assertion; it is skipped by the
// global symbol pass (§4.4 pass 1 excludes it) but still type-checked.
type StmtStaticAssert struct {
	base
	Cond Node
}

func (n *StmtStaticAssert) NodeKind() Kind { return KindStmtStaticAssert }
func (n *StmtStaticAssert) Flags() FlagSet { return flags(TopLevel) }
func (n *StmtStaticAssert) Fields() []Field {
	return []Field{{Name: "cond", Kind: FieldNode, NodeSlot: &n.Cond}}
}

// Comment is its own node kind, ignored by every semantic pass (§6).
type Comment struct {
	base
	Text string
}

func (n *Comment) NodeKind() Kind { return KindComment }
func (n *Comment) Flags() FlagSet { return flags(TopLevel) }
func (n *Comment) Fields() []Field {
	return []Field{{Name: "text", Kind: FieldStr, StrSlot: &n.Text}}
}
