package ast

// TypeAuto stands for "infer this" (the `auto` shorthand atom). It must
// never reach type inference directly — callers test for it and use the
// surrounding expected-type context instead (mirrors the original's
// "Must not try to typify AUTO" assertion).
type TypeAuto struct{ base }

func (n *TypeAuto) NodeKind() Kind    { return KindTypeAuto }
func (n *TypeAuto) Flags() FlagSet    { return 0 }
func (n *TypeAuto) Fields() []Field   { return nil }

// TypeBase is a primitive scalar type atom.
type TypeBase struct {
	base
	BaseTypeKind BaseTypeKind
	XType        string
}

func (n *TypeBase) NodeKind() Kind  { return KindTypeBase }
func (n *TypeBase) Flags() FlagSet  { return flags(TypeCorpus, TypeAnnotated) }
func (n *TypeBase) Fields() []Field {
	return []Field{{Name: "base_type_kind", Kind: FieldKindEnum,
		EnumGet: func() int { return int(n.BaseTypeKind) },
		EnumSet: func(v int) { n.BaseTypeKind = BaseTypeKind(v) }}}
}

// TypePtr is `ptr(T)` / `ptr-mut(T)`.
type TypePtr struct {
	base
	Mut   bool
	Type  Node
	XType string
}

func (n *TypePtr) NodeKind() Kind  { return KindTypePtr }
func (n *TypePtr) Flags() FlagSet  { return flags(TypeCorpus, TypeAnnotated) }
func (n *TypePtr) Fields() []Field {
	return []Field{
		{Name: "mut", Kind: FieldFlag, FlagSlot: &n.Mut},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// TypeSlice is `slice(T)` / `slice-mut(T)`.
type TypeSlice struct {
	base
	Mut   bool
	Type  Node
	XType string
}

func (n *TypeSlice) NodeKind() Kind  { return KindTypeSlice }
func (n *TypeSlice) Flags() FlagSet  { return flags(TypeCorpus, TypeAnnotated) }
func (n *TypeSlice) Fields() []Field {
	return []Field{
		{Name: "mut", Kind: FieldFlag, FlagSlot: &n.Mut},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// TypeArray is `array(T,N)`; Size is typed under `uint` and then reduced
// to a constant dimension by the type checker's ComputeArrayLength.
type TypeArray struct {
	base
	Size  Node
	Type  Node
	XType string
	Dim   int // resolved dimension, set alongside XType
}

func (n *TypeArray) NodeKind() Kind  { return KindTypeArray }
func (n *TypeArray) Flags() FlagSet  { return flags(TypeCorpus, TypeAnnotated) }
func (n *TypeArray) Fields() []Field {
	return []Field{
		{Name: "size", Kind: FieldNode, NodeSlot: &n.Size},
		{Name: "type", Kind: FieldNode, NodeSlot: &n.Type},
	}
}

// TypeFun is `fun(P1,...,Pn,R)`.
type TypeFun struct {
	base
	Params []Node // []*FunParam
	Result Node
	XType  string
}

func (n *TypeFun) NodeKind() Kind  { return KindTypeFun }
func (n *TypeFun) Flags() FlagSet  { return flags(TypeCorpus, TypeAnnotated) }
func (n *TypeFun) Fields() []Field {
	return []Field{
		{Name: "params", Kind: FieldList, ListSlot: &n.Params},
		{Name: "result", Kind: FieldNode, NodeSlot: &n.Result},
	}
}

// TypeSum is a tagged union over ≥2 flattened, sorted, distinct, non-sum
// component types.
type TypeSum struct {
	base
	Types []Node
	XType string
}

func (n *TypeSum) NodeKind() Kind  { return KindTypeSum }
func (n *TypeSum) Flags() FlagSet  { return flags(TypeCorpus, TypeAnnotated) }
func (n *TypeSum) Fields() []Field {
	return []Field{{Name: "types", Kind: FieldList, ListSlot: &n.Types}}
}
