package modpool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopoSortOrdersImporteeBeforeImporter(t *testing.T) {
	nodes := []string{"app", "geo", "math"}
	deps := map[string][]string{
		"app": {"geo"},
		"geo": {"math"},
	}
	order, err := topoSort(nodes, deps)
	require.NoError(t, err)
	assert.Equal(t, []string{"math", "geo", "app"}, order)
}

func TestTopoSortIsDeterministicAcrossTieBreaks(t *testing.T) {
	// b, c, d all depend only on a; with no other constraint the min-heap
	// must always emit them in name order.
	nodes := []string{"d", "b", "a", "c"}
	deps := map[string][]string{
		"b": {"a"},
		"c": {"a"},
		"d": {"a"},
	}
	order, err := topoSort(nodes, deps)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, order)
}

func TestTopoSortDetectsCycle(t *testing.T) {
	nodes := []string{"a", "b"}
	deps := map[string][]string{
		"a": {"b"},
		"b": {"a"},
	}
	_, err := topoSort(nodes, deps)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "IMP002")
}

func TestTopoSortPreservesCountForAcyclicSet(t *testing.T) {
	nodes := []string{"a", "b", "c"}
	order, err := topoSort(nodes, map[string][]string{})
	require.NoError(t, err)
	assert.Len(t, order, len(nodes))
}
