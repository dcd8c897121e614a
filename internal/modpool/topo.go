package modpool

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/velalang/velac/internal/ast"
	verrors "github.com/velalang/velac/internal/errors"
)

// nameHeap is a min-heap of module keys, used to break ties in topological
// order deterministically (§4.2 "walk a min-heap keyed by module name for
// determinism").
type nameHeap []string

func (h nameHeap) Len() int            { return len(h) }
func (h nameHeap) Less(i, j int) bool  { return h[i] < h[j] }
func (h nameHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *nameHeap) Push(x interface{}) { *h = append(*h, x.(string)) }
func (h *nameHeap) Pop() interface{} {
	old := *h
	n := len(old)
	v := old[n-1]
	*h = old[:n-1]
	return v
}

// topoSort performs Kahn's algorithm over the (importee -> importer) edge
// set using a min-heap of ready nodes instead of a plain queue, so that the
// resulting order depends only on the graph's structure and node names, not
// on map iteration order or insertion order (§8 "topological order is
// deterministic across runs given the same module set").
//
// nodes is every module key; deps maps a module key to the keys of the
// modules it imports (edges run importer -> importee; a node becomes ready
// once every module it depends on has been emitted).
func topoSort(nodes []string, deps map[string][]string) ([]string, error) {
	indegree := make(map[string]int, len(nodes))
	dependents := make(map[string][]string, len(nodes))
	for _, n := range nodes {
		indegree[n] = 0
	}
	for importer, importees := range deps {
		for _, importee := range importees {
			indegree[importer]++
			dependents[importee] = append(dependents[importee], importer)
		}
	}

	var ready nameHeap
	for _, n := range nodes {
		if indegree[n] == 0 {
			ready = append(ready, n)
		}
	}
	heap.Init(&ready)

	var order []string
	for ready.Len() > 0 {
		n := heap.Pop(&ready).(string)
		order = append(order, n)
		// dependents are sorted by insertion order of deps, not by name;
		// re-heapify each newly-ready node individually to keep the pop
		// order a pure function of names.
		for _, dep := range dependents[n] {
			indegree[dep]--
			if indegree[dep] == 0 {
				heap.Push(&ready, dep)
			}
		}
	}

	if len(order) != len(nodes) {
		var stuck []string
		for n, deg := range indegree {
			if deg > 0 {
				stuck = append(stuck, n)
			}
		}
		sort.Strings(stuck)
		return nil, verrors.New(verrors.IMP002, ast.NoPos, "import cycle among: "+strings.Join(stuck, ", "))
	}
	return order, nil
}
