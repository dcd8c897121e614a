package modpool

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
	"github.com/velalang/velac/internal/reader"
	"github.com/velalang/velac/internal/symtab"
)

// Reader parses one source file into its (per §6 "one module per file")
// single DefMod. Production code passes readFile; tests substitute an
// in-memory map.
type Reader func(path string) (*ast.DefMod, error)

func readFile(path string) (*ast.DefMod, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, verrors.New(verrors.IMP001, ast.NoPos, "cannot open module file "+path+": "+err.Error())
	}
	defer f.Close()
	mods, err := reader.ReadModules(path, f)
	if err != nil {
		return nil, err
	}
	if len(mods) != 1 {
		return nil, verrors.New(verrors.IMP001, ast.NoPos,
			fmt.Sprintf("%s must declare exactly one module, found %d", path, len(mods)))
	}
	return mods[0], nil
}

// Instance is one loaded, possibly-specialized module in the pool.
type Instance struct {
	Identity Identity
	Dir      string // directory of the source file, for relative imports
	Mod      *ast.DefMod
	Table    *symtab.Table
}

// Pool turns a set of seed module paths into a fully loaded, resolved,
// topologically ordered module graph (§4.2).
type Pool struct {
	Root    string
	read    Reader
	builtin *symtab.Table

	instances map[string]*Instance // by Identity.Key()
	templates map[string]*ast.DefMod // raw parse cache by source file, for specialization
	seeds     []string               // identity keys, in LoadSeed call order
	deps      map[string][]string    // importer key -> importee keys
}

// New creates an empty pool rooted at root, using read to load source files
// (pass nil to use the default filesystem reader) and builtin as the
// $builtin module's pre-populated symbol table.
func New(root string, read Reader, builtin *symtab.Table) *Pool {
	if read == nil {
		read = readFile
	}
	return &Pool{
		Root:      root,
		read:      read,
		builtin:   builtin,
		instances: map[string]*Instance{},
		templates: map[string]*ast.DefMod{},
		deps:      map[string][]string{},
	}
}

// LoadSeed canonicalizes and loads path as a root module (a compiler
// invocation's entry file, or an explicit library seed).
func (p *Pool) LoadSeed(importPath string) (*Instance, error) {
	abs := canonicalizePath(p.Root, p.Root, importPath)
	inst, err := p.loadPlain(abs)
	if err != nil {
		return nil, err
	}
	p.seeds = append(p.seeds, inst.Identity.Key())
	return inst, nil
}

func (p *Pool) loadPlain(canonicalPath string) (*Instance, error) {
	id := Identity{Path: canonicalPath}
	if existing, ok := p.instances[id.Key()]; ok {
		return existing, nil
	}

	mod, err := p.parse(canonicalPath)
	if err != nil {
		return nil, err
	}
	inst := &Instance{
		Identity: id,
		Dir:      filepath.Dir(canonicalPath),
		Mod:      mod,
		Table:    symtab.New(canonicalPath),
	}
	if err := declareTopLevel(inst.Mod, inst.Table); err != nil {
		return nil, err
	}
	inst.Mod.XSymtab = inst.Table
	inst.Mod.XModName = canonicalPath
	p.instances[id.Key()] = inst
	return inst, nil
}

func (p *Pool) parse(canonicalPath string) (*ast.DefMod, error) {
	file := sourceFile(canonicalPath)
	if cached, ok := p.templates[file]; ok {
		return cached, nil
	}
	mod, err := p.read(file)
	if err != nil {
		return nil, err
	}
	p.templates[file] = mod
	return mod, nil
}

// declareTopLevel registers every top-level declaration of mod into table,
// including imports (whose XModule is bound later, §4.2's fixed point).
func declareTopLevel(mod *ast.DefMod, table *symtab.Table) error {
	for _, n := range mod.BodyMod {
		var err error
		switch d := n.(type) {
		case *ast.DefFun:
			err = table.DeclareFun(d.Name, d, d.Pub)
		case *ast.DefRec:
			err = table.DeclareRec(d.Name, d, d.Pub)
		case *ast.DefEnum:
			err = table.DeclareEnum(d.Name, d, d.Pub)
		case *ast.DefType:
			err = table.DeclareType(d.Name, d, d.Pub)
		case *ast.DefMacro:
			err = table.DeclareMacro(d.Name, d, d.Pub)
		case *ast.DefGlobal:
			err = table.DeclareGlobal(d.Name, d, d.Pub)
		case *ast.DefConst:
			err = table.DeclareGlobal(d.Name, d, d.Pub)
		case *ast.Import:
			err = table.DeclareImport(registeredName(d.Name, d.Alias), d)
		default:
			// comments and other non-declaring top-level nodes
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func pendingImports(mod *ast.DefMod) []*ast.Import {
	var out []*ast.Import
	for _, n := range mod.BodyMod {
		if imp, ok := n.(*ast.Import); ok && imp.XModule == nil {
			out = append(out, imp)
		}
	}
	return out
}

// Resolve runs the §4.2 fixed-point loop to bind every import (loading and
// specializing modules as needed) and then computes the deterministic
// topological order. Unlike the seed-only reading of the spec's pseudocode,
// each round re-scans every module currently in the pool — including ones
// just loaded as a side effect of resolving someone else's import — so a
// freshly-loaded module's own pending imports get a turn on the next round
// instead of being silently skipped.
func (p *Pool) Resolve() ([]*Instance, error) {
	for {
		progress := false
		for _, key := range p.sortedKeys() {
			mi := p.instances[key]
			for _, imp := range pendingImports(mi.Mod) {
				madeProgress, _, err := p.resolveImport(mi, imp)
				if err != nil {
					return nil, err
				}
				if madeProgress {
					progress = true
				}
			}
		}

		if !p.hasPending() {
			break
		}
		if !progress {
			return nil, verrors.New(verrors.IMP004, ast.NoPos, "module import does not terminate")
		}
	}

	return p.orderedInstances()
}

func (p *Pool) sortedKeys() []string {
	keys := make([]string, 0, len(p.instances))
	for k := range p.instances {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (p *Pool) hasPending() bool {
	for _, mi := range p.instances {
		if len(pendingImports(mi.Mod)) > 0 {
			return true
		}
	}
	return false
}

// resolveImport attempts to bind one pending import of mi, returning
// (madeProgress, resolved, err). resolved is true once imp.XModule is bound
// (whether that happened just now or on a previous round); madeProgress is
// true only if this call is what bound it.
func (p *Pool) resolveImport(mi *Instance, imp *ast.Import) (madeProgress, resolved bool, err error) {
	if imp.XModule != nil {
		return false, true, nil
	}

	if len(imp.ArgsMod) == 0 {
		target := canonicalizePath(p.Root, mi.Dir, imp.Name)
		targetInst, loadErr := p.loadPlain(target)
		if loadErr != nil {
			return false, false, loadErr
		}
		imp.XModule = targetInst.Mod
		p.recordDep(mi.Identity.Key(), targetInst.Identity.Key())
		return true, true, nil
	}

	canonArgs := make([]string, len(imp.ArgsMod))
	for i, arg := range imp.ArgsMod {
		canon, _, ok := p.normalizeArg(mi, arg)
		if !ok {
			return false, false, nil // keep pending, another round may resolve it
		}
		canonArgs[i] = canon
	}

	target := canonicalizePath(p.Root, mi.Dir, imp.Name)
	id := Identity{Path: target, Args: canonArgs}
	targetInst, ok := p.instances[id.Key()]
	if !ok {
		// substitute with the import's own argument expressions (already
		// confirmed resolvable above), not the resolved declarations
		// themselves — the specialized module should still refer to its
		// argument by name, resolved normally wherever it's used.
		specialized, specErr := p.specialize(target, id, imp.ArgsMod)
		if specErr != nil {
			return false, false, specErr
		}
		targetInst = specialized
	}

	imp.XModule = targetInst.Mod
	imp.ArgsMod = nil
	p.recordDep(mi.Identity.Key(), targetInst.Identity.Key())
	return true, true, nil
}

func (p *Pool) recordDep(importerKey, importeeKey string) {
	for _, existing := range p.deps[importerKey] {
		if existing == importeeKey {
			return
		}
	}
	p.deps[importerKey] = append(p.deps[importerKey], importeeKey)
}

// normalizeArg reduces a pending mod-arg to its canonical identity string
// and resolved declaration node, or reports ok=false if the symbol it
// references isn't resolvable yet.
func (p *Pool) normalizeArg(mi *Instance, arg ast.Node) (string, ast.Node, bool) {
	id, ok := arg.(*ast.Id)
	if !ok {
		return "", nil, false
	}
	node, err := symtab.ResolveQualified(mi.Table, p.builtin, nil, id.ModName, id.Name, id.Pos())
	if err != nil {
		return "", nil, false
	}

	qualifier := id.ModName
	if qualifier == "" {
		qualifier = mi.Identity.Path
		if p.builtin != nil {
			if _, fromBuiltin := p.builtin.ResolveHere(id.Name, false); fromBuiltin {
				if _, local := mi.Table.ResolveHere(id.Name, false); !local {
					qualifier = "$builtin"
				}
			}
		}
	}
	return qualifier + "::" + id.Name, node, true
}

// specialize clones the template module at templatePath, substitutes each
// ModParam reference with its argument expression, extracts a fresh symbol
// table, and registers the resulting instance under id (§4.2 "Generic
// module specialization clones the template AST ... and substitutes mod
// parameters with their normalized arguments").
func (p *Pool) specialize(templatePath string, id Identity, args []ast.Node) (*Instance, error) {
	template, err := p.parse(templatePath)
	if err != nil {
		return nil, err
	}
	if len(template.Params) != len(args) {
		return nil, verrors.New(verrors.IMP003, template.Pos(),
			fmt.Sprintf("module %s expects %d argument(s), got %d", template.Name, len(template.Params), len(args)))
	}

	cloned := ast.Clone(template).(*ast.DefMod)
	for i, param := range template.Params {
		replacement := args[i]
		name := param.Name
		ast.Rewrite(cloned, func(n ast.Node) (ast.Node, ast.Node) {
			idNode, ok := n.(*ast.Id)
			if !ok || idNode.ModName != "" || idNode.Name != name {
				return nil, nil
			}
			return ast.Clone(replacement), nil
		})
	}
	cloned.XModName = fmt.Sprintf("%s%s", cloned.Name, identitySuffix(id))

	inst := &Instance{
		Identity: id,
		Dir:      filepath.Dir(templatePath),
		Mod:      cloned,
		Table:    symtab.New(cloned.XModName),
	}
	if err := declareTopLevel(inst.Mod, inst.Table); err != nil {
		return nil, err
	}
	inst.Mod.XSymtab = inst.Table
	p.instances[id.Key()] = inst
	return inst, nil
}

func identitySuffix(id Identity) string {
	if len(id.Args) == 0 {
		return ""
	}
	var buf bytes.Buffer
	buf.WriteByte('<')
	for i, a := range id.Args {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(a)
	}
	buf.WriteByte('>')
	return buf.String()
}

// orderedInstances computes the deterministic topological order over every
// loaded instance (§4.2 "Topological ordering").
func (p *Pool) orderedInstances() ([]*Instance, error) {
	nodes := make([]string, 0, len(p.instances))
	for k := range p.instances {
		nodes = append(nodes, k)
	}
	order, err := topoSort(nodes, p.deps)
	if err != nil {
		return nil, err
	}
	out := make([]*Instance, len(order))
	for i, k := range order {
		out[i] = p.instances[k]
	}
	return out, nil
}

// Instances returns every loaded instance, keyed by Identity.Key(), in no
// particular order; callers needing determinism should use the result of
// Resolve instead.
func (p *Pool) Instances() map[string]*Instance {
	return p.instances
}
