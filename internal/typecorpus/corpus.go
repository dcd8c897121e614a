// Package typecorpus interns structural (and nominal) canonical types for
// one compilation, keyed by a total, injective textual name (§3, §4.6).
// Grounded on the teacher's types.Builder fluent-constructor idiom
// (internal/types/builder.go) adapted from a fresh-type-per-call builder
// to an interning corpus returning shared *Entry pointers.
package typecorpus

import (
	"fmt"
	"sort"
	"strings"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
)

// Kind tags the structural shape of a corpus Entry.
type Kind int

const (
	KindBase Kind = iota
	KindPtr
	KindSlice
	KindArray
	KindFun
	KindRec
	KindEnum
	KindSum
	KindWrapped
)

// Entry is one interned canonical type. Entries are never mutated after
// insertion except RecFields/ByteSize, which SetSizeAndOffsetForRec fills
// in once the record's fields are all typed (§4.7 DefRec rule).
type Entry struct {
	Kind Kind
	Name string // the canonical key; corpus lookup by Name is a bijection (§8)

	Base BaseTypeKind

	Mut  bool  // ptr-mut / slice-mut
	Elem *Entry // ptr, slice, array elem; wrapped underlying

	Dim int // array size

	Params []*Entry // fun params
	Result *Entry   // fun result

	QualifiedName string       // rec/enum "Mod/Name"
	RecNode       *ast.DefRec  // nil for enum
	EnumNode      *ast.DefEnum // nil for rec

	Components []*Entry // sum, sorted/deduped/flattened

	WrapID int // wrapped: fresh per insertion, makes it non-idempotent (§8)
}

// BaseTypeKind re-exports ast.BaseTypeKind so callers need not import ast
// just to name a primitive kind when talking to the corpus.
type BaseTypeKind = ast.BaseTypeKind

// Corpus is the process-global (per-compilation) type store (§4.6).
type Corpus struct {
	byName map[string]*Entry
	wrapID int

	uintWidth BaseTypeKind // UINT resolves to this
	sintWidth BaseTypeKind // SINT resolves to this
}

// New constructs a corpus with UINT/SINT resolved to the given machine
// widths (§4.6 "configured at corpus construction, e.g. u64/s64") and every
// primitive scalar type already interned, so Lookup finds a scalar's
// canonical name before any node has inserted it.
func New(uintWidth, sintWidth BaseTypeKind) *Corpus {
	c := &Corpus{byName: map[string]*Entry{}, uintWidth: uintWidth, sintWidth: sintWidth}
	for k := range baseByteWidth {
		c.InsertBase(k)
	}
	return c
}

func (c *Corpus) resolveAlias(k BaseTypeKind) BaseTypeKind {
	switch k {
	case ast.UINT:
		return c.uintWidth
	case ast.SINT:
		return c.sintWidth
	default:
		return k
	}
}

func (c *Corpus) intern(e *Entry) *Entry {
	if existing, ok := c.byName[e.Name]; ok {
		return existing
	}
	c.byName[e.Name] = e
	return e
}

// Lookup returns the entry registered under name, for round-trip testing
// (§8 "corpus lookup by s yields a node whose canon_name returns s").
func (c *Corpus) Lookup(name string) (*Entry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// InsertBase interns a primitive scalar type, resolving UINT/SINT aliases.
func (c *Corpus) InsertBase(k BaseTypeKind) *Entry {
	k = c.resolveAlias(k)
	return c.intern(&Entry{Kind: KindBase, Name: k.String(), Base: k})
}

func mutSuffix(mut bool) string {
	if mut {
		return "-mut"
	}
	return ""
}

// InsertPtr interns `ptr(T)` / `ptr-mut(T)`.
func (c *Corpus) InsertPtr(mut bool, t *Entry) *Entry {
	name := fmt.Sprintf("ptr%s(%s)", mutSuffix(mut), t.Name)
	return c.intern(&Entry{Kind: KindPtr, Name: name, Mut: mut, Elem: t})
}

// InsertSlice interns `slice(T)` / `slice-mut(T)`.
func (c *Corpus) InsertSlice(mut bool, t *Entry) *Entry {
	name := fmt.Sprintf("slice%s(%s)", mutSuffix(mut), t.Name)
	return c.intern(&Entry{Kind: KindSlice, Name: name, Mut: mut, Elem: t})
}

// InsertArray interns `array(T,N)`.
func (c *Corpus) InsertArray(n int, t *Entry) *Entry {
	name := fmt.Sprintf("array(%s,%d)", t.Name, n)
	return c.intern(&Entry{Kind: KindArray, Name: name, Dim: n, Elem: t})
}

// InsertFun interns `fun(P1,...,Pn,R)`.
func (c *Corpus) InsertFun(params []*Entry, result *Entry) *Entry {
	parts := make([]string, 0, len(params)+1)
	for _, p := range params {
		parts = append(parts, p.Name)
	}
	parts = append(parts, result.Name)
	name := fmt.Sprintf("fun(%s)", strings.Join(parts, ","))
	return c.intern(&Entry{Kind: KindFun, Name: name, Params: params, Result: result})
}

// InsertRec interns `rec(ModName/RecName)`. The placeholder must be
// inserted before the record's fields are typed so self-references
// (§8 scenario 5) resolve to the same entry.
func (c *Corpus) InsertRec(qualifiedName string, node *ast.DefRec) *Entry {
	name := fmt.Sprintf("rec(%s)", qualifiedName)
	if e, ok := c.byName[name]; ok {
		return e
	}
	e := &Entry{Kind: KindRec, Name: name, QualifiedName: qualifiedName, RecNode: node}
	c.byName[name] = e
	return e
}

// InsertEnum interns `enum(ModName/EnumName)`.
func (c *Corpus) InsertEnum(qualifiedName string, node *ast.DefEnum) *Entry {
	name := fmt.Sprintf("enum(%s)", qualifiedName)
	if e, ok := c.byName[name]; ok {
		return e
	}
	e := &Entry{Kind: KindEnum, Name: name, QualifiedName: qualifiedName, EnumNode: node}
	c.byName[name] = e
	return e
}

// InsertSum interns a tagged union, flattening nested sums, sorting and
// deduping the flattened component set (§4.7 TypeSum rule, §8 scenario 2).
// Fewer than 2 distinct components after flattening is a TYP error.
func (c *Corpus) InsertSum(components []*Entry) (*Entry, error) {
	flat := flattenSum(components)
	if len(flat) < 2 {
		return nil, verrors.New(verrors.TYP007, ast.SourcePos{}, "sum type requires at least 2 distinct components")
	}
	sort.Strings(flat)
	name := fmt.Sprintf("sum(%s)", strings.Join(flat, ","))
	if e, ok := c.byName[name]; ok {
		return e, nil
	}
	members := make([]*Entry, len(flat))
	for i, n := range flat {
		members[i] = c.byName[n]
	}
	e := &Entry{Kind: KindSum, Name: name, Components: members}
	c.byName[name] = e
	return e, nil
}

func flattenSum(components []*Entry) []string {
	seen := map[string]bool{}
	var flat []string
	var visit func(*Entry)
	visit = func(e *Entry) {
		if e.Kind == KindSum {
			for _, c := range e.Components {
				visit(c)
			}
			return
		}
		if !seen[e.Name] {
			seen[e.Name] = true
			flat = append(flat, e.Name)
		}
	}
	for _, c := range components {
		visit(c)
	}
	return flat
}

// InsertWrapped interns a nominal newtype over t. Unlike every other
// Insert*, this is deliberately non-idempotent: each call mints a fresh
// uniq_id, so two wraps of the same underlying type remain distinct
// corpus entries (§3, §8 scenario "Wrap insertion is non-idempotent").
func (c *Corpus) InsertWrapped(t *Entry) *Entry {
	c.wrapID++
	name := fmt.Sprintf("wrapped(%d,%s)", c.wrapID, t.Name)
	e := &Entry{Kind: KindWrapped, Name: name, WrapID: c.wrapID, Elem: t}
	c.byName[name] = e
	return e
}

// InsertSumComplement returns U \ T: U must be a sum type containing T as
// a (direct, flattened) component; the result is the sum of the remaining
// components, or — if exactly one remains — that component type itself
// (ExprAsNot's result is never itself a unary sum).
func (c *Corpus) InsertSumComplement(u, t *Entry) (*Entry, error) {
	if u.Kind != KindSum {
		return nil, verrors.New(verrors.TYP001, ast.SourcePos{}, "asnot target is not a sum type: "+u.Name)
	}
	var remaining []*Entry
	found := false
	for _, m := range u.Components {
		if m.Name == t.Name {
			found = true
			continue
		}
		remaining = append(remaining, m)
	}
	if !found {
		return nil, verrors.New(verrors.TYP001, ast.SourcePos{}, "type "+t.Name+" is not a member of sum "+u.Name)
	}
	if len(remaining) == 1 {
		return remaining[0], nil
	}
	return c.InsertSum(remaining)
}

// CanonName returns the entry's canonical textual key.
func (c *Corpus) CanonName(e *Entry) string { return e.Name }

// LookupRecField finds a named field on a record entry, returning the
// field node and its zero-based index for FieldVal cursor advancement
// (§4.7 ValRec rule).
func (c *Corpus) LookupRecField(rec *Entry, name string) (*ast.RecField, int, error) {
	if rec.Kind != KindRec || rec.RecNode == nil {
		return nil, 0, verrors.New(verrors.TYP003, ast.SourcePos{}, "not a record type: "+rec.Name)
	}
	for i, f := range rec.RecNode.Fields {
		rf := f.(*ast.RecField)
		if rf.Name == name {
			return rf, i, nil
		}
	}
	return nil, 0, verrors.New(verrors.TYP003, ast.SourcePos{}, "unknown field "+name+" on "+rec.Name)
}

// GetContainedType returns the element type of an array or slice entry.
func (c *Corpus) GetContainedType(e *Entry) (*Entry, error) {
	switch e.Kind {
	case KindArray, KindSlice:
		return e.Elem, nil
	default:
		return nil, verrors.New(verrors.TYP001, ast.SourcePos{}, "not an array or slice type: "+e.Name)
	}
}

// SetSizeAndOffsetForRec lays out byte offsets for every field of rec in
// declaration order, given each field's already-resolved size (ByteLen),
// and records the record's total ByteSize. Grounded on §4.7's "compute
// record size/offset layout" step of the DefRec typing rule. No padding
// or alignment is modeled — a deliberate simplification since spec.md's
// scope (§1) is semantic analysis, not codegen/ABI layout.
func (c *Corpus) SetSizeAndOffsetForRec(rec *Entry) error {
	if rec.Kind != KindRec || rec.RecNode == nil {
		return verrors.New(verrors.TYP003, ast.SourcePos{}, "not a record type: "+rec.Name)
	}
	offset := 0
	for _, f := range rec.RecNode.Fields {
		rf := f.(*ast.RecField)
		rf.Offset = offset
		offset += rf.ByteLen
	}
	rec.RecNode.ByteSize = offset
	return nil
}

// baseByteWidth gives each primitive scalar kind its storage width; used by
// ByteSizeOf to compute RecField.ByteLen ahead of SetSizeAndOffsetForRec.
var baseByteWidth = map[BaseTypeKind]int{
	ast.U8: 1, ast.U16: 2, ast.U32: 4, ast.U64: 8,
	ast.S8: 1, ast.S16: 2, ast.S32: 4, ast.S64: 8,
	ast.R32: 4, ast.R64: 8, ast.Bool: 1, ast.Void: 0, ast.NoRet: 0,
}

// ByteSizeOf returns the storage size of e in bytes, resolving UINT/SINT and
// nested entries recursively. Slices are a (ptr,len) fat pointer; sums are a
// uint-width discriminant plus the largest component (no padding modeled,
// same simplification as SetSizeAndOffsetForRec). Grounded on §4.7's DefRec
// rule, which needs each field's byte size before computing offsets.
func (c *Corpus) ByteSizeOf(e *Entry) int {
	switch e.Kind {
	case KindBase:
		return baseByteWidth[c.resolveAlias(e.Base)]
	case KindPtr:
		return baseByteWidth[c.uintWidth]
	case KindSlice:
		return 2 * baseByteWidth[c.uintWidth]
	case KindArray:
		return e.Dim * c.ByteSizeOf(e.Elem)
	case KindRec:
		return e.RecNode.ByteSize
	case KindEnum:
		return baseByteWidth[c.resolveAlias(e.EnumNode.BaseTypeKind)]
	case KindWrapped:
		return c.ByteSizeOf(e.Elem)
	case KindSum:
		max := 0
		for _, m := range e.Components {
			if s := c.ByteSizeOf(m); s > max {
				max = s
			}
		}
		return baseByteWidth[c.uintWidth] + max
	default:
		return 0
	}
}
