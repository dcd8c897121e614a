// Package symtab implements the per-module symbol table (§4.3): separate
// maps per declaration kind plus a union occupancy set for duplicate
// detection, and the qualified-name resolution rules consumed by the
// resolver (internal/resolver, which walks this table while holding its
// own local scope stack — §4.4).
package symtab

import (
	"sort"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
)

// DeclKind tags which declaration map an entry lives in.
type DeclKind int

const (
	DeclType DeclKind = iota
	DeclRec
	DeclEnum
	DeclFun
	DeclMacro
	DeclGlobal
	DeclImport
	DeclLocal
)

func (k DeclKind) String() string {
	switch k {
	case DeclType:
		return "type"
	case DeclRec:
		return "record"
	case DeclEnum:
		return "enum"
	case DeclFun:
		return "function"
	case DeclMacro:
		return "macro"
	case DeclGlobal:
		return "global"
	case DeclImport:
		return "import"
	case DeclLocal:
		return "local"
	default:
		return "?"
	}
}

type entry struct {
	kind DeclKind
	node ast.Node
	pub  bool
}

// Table is one module's symbol table. It implements ast.SymbolTable via
// ResolveHere, so a *Table can be stored directly in DefMod.XSymtab.
type Table struct {
	ModuleName string

	types   map[string]*entry
	recs    map[string]*entry
	enums   map[string]*entry
	funs    map[string]*entry
	macros  map[string]*entry
	globals map[string]*entry
	imports map[string]*entry

	all map[string]*entry // union, for duplicate-name detection (§3 invariant)
}

// New creates an empty table for the named module.
func New(moduleName string) *Table {
	return &Table{
		ModuleName: moduleName,
		types:      map[string]*entry{},
		recs:       map[string]*entry{},
		enums:      map[string]*entry{},
		funs:       map[string]*entry{},
		macros:     map[string]*entry{},
		globals:    map[string]*entry{},
		imports:    map[string]*entry{},
		all:        map[string]*entry{},
	}
}

func (t *Table) declare(m map[string]*entry, kind DeclKind, name string, node ast.Node, pub bool) error {
	if existing, ok := t.all[name]; ok {
		return verrors.New(verrors.SYM002, node.Pos(),
			"duplicate global definition: "+name+" (already declared as a "+existing.kind.String()+")")
	}
	e := &entry{kind: kind, node: node, pub: pub}
	m[name] = e
	t.all[name] = e
	return nil
}

// DeclareType registers a DefType/TypeBase-style named type.
func (t *Table) DeclareType(name string, node ast.Node, pub bool) error {
	return t.declare(t.types, DeclType, name, node, pub)
}

// DeclareRec registers a DefRec.
func (t *Table) DeclareRec(name string, node ast.Node, pub bool) error {
	return t.declare(t.recs, DeclRec, name, node, pub)
}

// DeclareEnum registers a DefEnum.
func (t *Table) DeclareEnum(name string, node ast.Node, pub bool) error {
	return t.declare(t.enums, DeclEnum, name, node, pub)
}

// DeclareFun registers a DefFun.
func (t *Table) DeclareFun(name string, node ast.Node, pub bool) error {
	return t.declare(t.funs, DeclFun, name, node, pub)
}

// DeclareMacro registers a DefMacro, into its own namespace (§4.3 "macro
// namespace is separate") as well as the shared occupancy set.
func (t *Table) DeclareMacro(name string, node ast.Node, pub bool) error {
	return t.declare(t.macros, DeclMacro, name, node, pub)
}

// DeclareGlobal registers a DefGlobal or DefConst.
func (t *Table) DeclareGlobal(name string, node ast.Node, pub bool) error {
	return t.declare(t.globals, DeclGlobal, name, node, pub)
}

// DeclareImport registers an import under its declared name or alias
// (§4.3 "Imports register the imported module under either its declared
// name or an alias").
func (t *Table) DeclareImport(name string, imp *ast.Import) error {
	return t.declare(t.imports, DeclImport, name, imp, false)
}

// declareLocal writes name into the shared occupancy set (§3 "names are
// unique across the chain at the time of declaration") without touching
// any of the permanent per-kind maps; releaseLocal undoes it on scope
// exit. Conflicting with anything currently occupying the name — a
// global or another still-active local — is SYM003, distinct from the
// SYM002 raised by declare for two conflicting globals.
func (t *Table) declareLocal(name string, node ast.Node) error {
	if existing, ok := t.all[name]; ok {
		return verrors.New(verrors.SYM003, node.Pos(),
			"local "+name+" shadows an enclosing "+existing.kind.String()+" binding")
	}
	t.all[name] = &entry{kind: DeclLocal, node: node, pub: false}
	return nil
}

func (t *Table) releaseLocal(name string) {
	if e, ok := t.all[name]; ok && e.kind == DeclLocal {
		delete(t.all, name)
	}
}

// ResolveHere looks up a single-component name in this module's union
// occupancy map, honoring the pub requirement for cross-module callers.
// This is the method internal/ast.SymbolTable requires.
func (t *Table) ResolveHere(name string, mustBePublic bool) (ast.Node, bool) {
	e, ok := t.all[name]
	if !ok {
		return nil, false
	}
	if mustBePublic && !e.pub {
		return nil, false
	}
	return e.node, true
}

// ResolveMacro looks up a single-component name in the macro namespace
// only (§4.3 "the macro namespace is separate").
func (t *Table) ResolveMacro(name string, mustBePublic bool) (ast.Node, bool) {
	e, ok := t.macros[name]
	if !ok {
		return nil, false
	}
	if mustBePublic && !e.pub {
		return nil, false
	}
	return e.node, true
}

// Names returns every name currently in this table's occupancy set, sorted;
// KindOf reports the declaration kind of each. Used by the debug REPL
// (cmd/velac explore) to list a module's symbols; no semantic pass needs it.
func (t *Table) Names() []string {
	names := make([]string, 0, len(t.all))
	for name := range t.all {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// KindOf reports the declaration kind a name was registered under.
func (t *Table) KindOf(name string) (DeclKind, bool) {
	e, ok := t.all[name]
	if !ok {
		return 0, false
	}
	return e.kind, true
}

// ResolveImportTable returns the symbol table of a module registered
// under name (its declared name or alias), once the module pool has
// bound that import's XModule.
func (t *Table) ResolveImportTable(name string) (*Table, bool) {
	e, ok := t.imports[name]
	if !ok {
		return nil, false
	}
	imp, ok := e.node.(*ast.Import)
	if !ok || imp.XModule == nil || imp.XModule.XSymtab == nil {
		return nil, false
	}
	tbl, ok := imp.XModule.XSymtab.(*Table)
	return tbl, ok
}
