// Package errors provides centralized diagnostic code definitions for velac.
// Codes are phase-prefixed so a reader can tell which pass produced a
// failure without reading the message.
package errors

const (
	// ============================================================================
	// Reader errors (PAR###)
	// ============================================================================

	PAR001 = "PAR001" // unexpected token
	PAR002 = "PAR002" // missing closing paren/bracket
	PAR003 = "PAR003" // unknown field for node kind
	PAR004 = "PAR004" // top-level node outside DefMod
	PAR005 = "PAR005" // truncated input (EOF mid-node)
	PAR006 = "PAR006" // malformed numeric or string literal token

	// ============================================================================
	// Module pool errors (IMP###)
	// ============================================================================

	IMP001 = "IMP001" // imported file not found
	IMP002 = "IMP002" // import cycle
	IMP003 = "IMP003" // generic module argument count mismatch
	IMP004 = "IMP004" // import-resolution fixed point did not converge
	IMP005 = "IMP005" // duplicate module path after canonicalization

	// ============================================================================
	// Symbol resolution errors (SYM###)
	// ============================================================================

	SYM001 = "SYM001" // unresolved identifier
	SYM002 = "SYM002" // duplicate global definition
	SYM003 = "SYM003" // local shadows an enclosing binding
	SYM004 = "SYM004" // access to a non-public cross-module symbol
	SYM005 = "SYM005" // ambiguous enum value reference

	// ============================================================================
	// Macro expansion errors (MAC###)
	// ============================================================================

	MAC001 = "MAC001" // unknown macro name
	MAC002 = "MAC002" // expansion nesting exceeded
	MAC003 = "MAC003" // macro argument arity mismatch
	MAC004 = "MAC004" // list-arg formal spliced with a non-list argument
	MAC005 = "MAC005" // unexpanded macro form survived to type checking

	// ============================================================================
	// Type inference / verification errors (TYP###)
	// ============================================================================

	TYP001 = "TYP001" // type mismatch
	TYP002 = "TYP002" // unknown type name
	TYP003 = "TYP003" // field not found on record type
	TYP004 = "TYP004" // assignment to a non-proper lvalue
	TYP005 = "TYP005" // array dimension did not reduce to a constant
	TYP006 = "TYP006" // no matching polymorphic overload
	TYP007 = "TYP007" // sum type has fewer than two distinct components
	TYP008 = "TYP008" // verifier found a node missing its XType annotation
)

// Info describes one diagnostic code for tooling and documentation.
type Info struct {
	Code        string
	Phase       string
	Description string
}

// Registry maps every code to its Info.
var Registry = map[string]Info{
	PAR001: {PAR001, "reader", "unexpected token"},
	PAR002: {PAR002, "reader", "missing closing delimiter"},
	PAR003: {PAR003, "reader", "unknown field for node kind"},
	PAR004: {PAR004, "reader", "top-level node outside module"},
	PAR005: {PAR005, "reader", "truncated input"},
	PAR006: {PAR006, "reader", "malformed literal token"},

	IMP001: {IMP001, "modpool", "imported file not found"},
	IMP002: {IMP002, "modpool", "import cycle"},
	IMP003: {IMP003, "modpool", "generic module argument count mismatch"},
	IMP004: {IMP004, "modpool", "import resolution did not converge"},
	IMP005: {IMP005, "modpool", "duplicate module path"},

	SYM001: {SYM001, "symtab", "unresolved identifier"},
	SYM002: {SYM002, "symtab", "duplicate global definition"},
	SYM003: {SYM003, "symtab", "local shadows enclosing binding"},
	SYM004: {SYM004, "symtab", "non-public cross-module access"},
	SYM005: {SYM005, "symtab", "ambiguous enum value"},

	MAC001: {MAC001, "macro", "unknown macro"},
	MAC002: {MAC002, "macro", "expansion nesting exceeded"},
	MAC003: {MAC003, "macro", "argument arity mismatch"},
	MAC004: {MAC004, "macro", "list splice on non-list argument"},
	MAC005: {MAC005, "macro", "unexpanded macro form"},

	TYP001: {TYP001, "typecheck", "type mismatch"},
	TYP002: {TYP002, "typecheck", "unknown type name"},
	TYP003: {TYP003, "typecheck", "field not found"},
	TYP004: {TYP004, "typecheck", "not a proper lvalue"},
	TYP005: {TYP005, "typecheck", "array dimension not constant"},
	TYP006: {TYP006, "typecheck", "no matching overload"},
	TYP007: {TYP007, "typecheck", "degenerate sum type"},
	TYP008: {TYP008, "typecheck", "missing type annotation"},
}

// Phase returns the phase name for a code, or "" if unknown.
func Phase(code string) string {
	return Registry[code].Phase
}
