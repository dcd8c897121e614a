package ast

// MacroInvoke is an unresolved call-shaped form whose head is not a known
// tag; the reader defers judgment and the macro expander decides whether
// it resolves to a DefMacro or is left as an error (§5).
type MacroInvoke struct {
	base
	Name string
	Args []Node
}

func (n *MacroInvoke) NodeKind() Kind  { return KindMacroInvoke }
func (n *MacroInvoke) Flags() FlagSet  { return flags(ToBeExpanded) }
func (n *MacroInvoke) Fields() []Field {
	return []Field{
		{Name: "name", Kind: FieldStr, StrSlot: &n.Name},
		{Name: "args", Kind: FieldList, ListSlot: &n.Args},
	}
}

// MacroId is a `$name` hygienic placeholder inside a macro body; each
// expansion of the enclosing DefMacro maps it to a single fresh Id.
type MacroId struct {
	base
	Name string
}

func (n *MacroId) NodeKind() Kind  { return KindMacroId }
func (n *MacroId) Flags() FlagSet  { return flags(ToBeExpanded) }
func (n *MacroId) Fields() []Field {
	return []Field{{Name: "name", Kind: FieldStr, StrSlot: &n.Name}}
}

// EphemeralList is a macro-body list-argument placeholder that a
// MacroListArg formal binds to; it exists only between expansion passes
// and never appears after macro expansion completes.
type EphemeralList struct {
	base
	Items []Node
}

func (n *EphemeralList) NodeKind() Kind  { return KindEphemeralList }
func (n *EphemeralList) Flags() FlagSet  { return flags(ToBeExpanded) }
func (n *EphemeralList) Fields() []Field {
	return []Field{{Name: "items", Kind: FieldList, ListSlot: &n.Items}}
}

// MacroListArg is a macro formal parameter declared to splice a whole
// argument list (rather than bind a single expression) into the body.
type MacroListArg struct {
	base
	Name string
}

func (n *MacroListArg) NodeKind() Kind  { return KindMacroListArg }
func (n *MacroListArg) Flags() FlagSet  { return flags(ToBeExpanded) }
func (n *MacroListArg) Fields() []Field {
	return []Field{{Name: "name", Kind: FieldStr, StrSlot: &n.Name}}
}
