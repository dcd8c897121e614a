package typecorpus

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velalang/velac/internal/ast"
)

func newTestCorpus() *Corpus { return New(ast.U64, ast.S64) }

func TestInsertBasePrimitives(t *testing.T) {
	c := newTestCorpus()
	tests := []struct {
		name string
		kind BaseTypeKind
		want string
	}{
		{"u8", ast.U8, "u8"},
		{"bool", ast.Bool, "bool"},
		{"uint alias resolves to u64", ast.UINT, "u64"},
		{"sint alias resolves to s64", ast.SINT, "s64"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := c.InsertBase(tt.kind)
			assert.Equal(t, tt.want, e.Name)
		})
	}
}

func TestInsertPtrIsInterned(t *testing.T) {
	c := newTestCorpus()
	u32 := c.InsertBase(ast.U32)

	a := c.InsertPtr(false, u32)
	b := c.InsertPtr(false, u32)
	require.Same(t, a, b, "ptr(u32) inserted twice must yield the same corpus entry")
	assert.Equal(t, "ptr(u32)", c.CanonName(a))

	mut := c.InsertPtr(true, u32)
	assert.Equal(t, "ptr-mut(u32)", mut.Name)
	assert.NotSame(t, a, mut)
}

func TestInsertSumFlattensSortsAndDedupes(t *testing.T) {
	c := newTestCorpus()
	u8 := c.InsertBase(ast.U8)
	u16 := c.InsertBase(ast.U16)
	u32 := c.InsertBase(ast.U32)

	inner, err := c.InsertSum([]*Entry{u8, u16})
	require.NoError(t, err)

	outer, err := c.InsertSum([]*Entry{inner, u32})
	require.NoError(t, err)
	assert.Equal(t, "sum(u16,u32,u8)", outer.Name)

	// permutation invariance (§8): same set, different insertion order
	c2 := newTestCorpus()
	u8b := c2.InsertBase(ast.U8)
	u16b := c2.InsertBase(ast.U16)
	u32b := c2.InsertBase(ast.U32)
	alt, err := c2.InsertSum([]*Entry{u32b, u8b, u16b})
	require.NoError(t, err)
	assert.Equal(t, outer.Name, alt.Name)
}

func TestInsertSumRejectsDegenerateSet(t *testing.T) {
	c := newTestCorpus()
	u8 := c.InsertBase(ast.U8)
	_, err := c.InsertSum([]*Entry{u8, u8})
	require.Error(t, err)
}

func TestInsertWrappedIsNonIdempotent(t *testing.T) {
	c := newTestCorpus()
	u32 := c.InsertBase(ast.U32)
	a := c.InsertWrapped(u32)
	b := c.InsertWrapped(u32)
	assert.NotEqual(t, a.Name, b.Name, "each wrap site must get a fresh uniq_id")
}

func TestInsertSumComplement(t *testing.T) {
	c := newTestCorpus()
	u8 := c.InsertBase(ast.U8)
	u16 := c.InsertBase(ast.U16)
	u32 := c.InsertBase(ast.U32)
	sum, err := c.InsertSum([]*Entry{u8, u16, u32})
	require.NoError(t, err)

	rest, err := c.InsertSumComplement(sum, u16)
	require.NoError(t, err)
	assert.Equal(t, "sum(u32,u8)", rest.Name)

	// complement down to a single member collapses to that member, not sum(x)
	pair, err := c.InsertSum([]*Entry{u8, u16})
	require.NoError(t, err)
	single, err := c.InsertSumComplement(pair, u8)
	require.NoError(t, err)
	assert.Equal(t, "u16", single.Name)

	_, err = c.InsertSumComplement(sum, c.InsertBase(ast.Bool))
	assert.Error(t, err, "bool is not a member of the sum")
}

func TestArrayRoundTripLookup(t *testing.T) {
	c := newTestCorpus()
	u8 := c.InsertBase(ast.U8)
	arr := c.InsertArray(10, u8)
	got, ok := c.Lookup(arr.Name)
	require.True(t, ok)
	if diff := cmp.Diff(arr, got); diff != "" {
		t.Errorf("corpus lookup by canonical name mismatch (-want +got):\n%s", diff)
	}

	elem, err := c.GetContainedType(arr)
	require.NoError(t, err)
	assert.Equal(t, u8, elem)
}

func TestInsertRecIsPlaceholderedBeforeFieldsAreTyped(t *testing.T) {
	c := newTestCorpus()
	node := &ast.DefRec{Name: "Node"}
	a := c.InsertRec("geo/Node", node)
	b := c.InsertRec("geo/Node", node)
	require.Same(t, a, b, "self-referencing insert must return the same placeholder entry")
	assert.Equal(t, "rec(geo/Node)", a.Name)
}

func TestLookupRecFieldAdvancesByName(t *testing.T) {
	c := newTestCorpus()
	node := &ast.DefRec{
		Name: "Point",
		Fields: []ast.Node{
			&ast.RecField{Name: "x"},
			&ast.RecField{Name: "y"},
		},
	}
	rec := c.InsertRec("geo/Point", node)

	f, idx, err := c.LookupRecField(rec, "y")
	require.NoError(t, err)
	assert.Equal(t, 1, idx)
	assert.Equal(t, "y", f.Name)

	_, _, err = c.LookupRecField(rec, "z")
	assert.Error(t, err)
}

func TestSetSizeAndOffsetForRec(t *testing.T) {
	c := newTestCorpus()
	node := &ast.DefRec{
		Name: "Point",
		Fields: []ast.Node{
			&ast.RecField{Name: "x", ByteLen: 4},
			&ast.RecField{Name: "y", ByteLen: 4},
			&ast.RecField{Name: "flag", ByteLen: 1},
		},
	}
	rec := c.InsertRec("geo/Point", node)
	require.NoError(t, c.SetSizeAndOffsetForRec(rec))

	assert.Equal(t, 0, node.Fields[0].(*ast.RecField).Offset)
	assert.Equal(t, 4, node.Fields[1].(*ast.RecField).Offset)
	assert.Equal(t, 8, node.Fields[2].(*ast.RecField).Offset)
	assert.Equal(t, 9, node.ByteSize)
}
