package symtab

import "github.com/velalang/velac/internal/ast"

// ScopeStack tracks the nested local scopes of a single function body
// (§4.4): pushed on entry to any NewScope node and on then/else blocks,
// popped on every exit path, releasing the names it declared from the
// owning Table's shared occupancy set as it goes.
type ScopeStack struct {
	table  *Table
	scopes []map[string]ast.Node
}

// NewScopeStack returns an empty stack bound to table's occupancy set.
func NewScopeStack(table *Table) *ScopeStack {
	return &ScopeStack{table: table}
}

// Push opens a new innermost scope.
func (s *ScopeStack) Push() {
	s.scopes = append(s.scopes, map[string]ast.Node{})
}

// Pop closes the innermost scope, releasing every name it declared back
// into the table's occupancy set.
func (s *ScopeStack) Pop() {
	top := s.scopes[len(s.scopes)-1]
	for name := range top {
		s.table.releaseLocal(name)
	}
	s.scopes = s.scopes[:len(s.scopes)-1]
}

// Depth reports the number of currently open scopes.
func (s *ScopeStack) Depth() int { return len(s.scopes) }

// Declare binds name to node in the innermost open scope, rejecting a
// conflict with any name currently occupying the table (global or
// active local) as SYM003.
func (s *ScopeStack) Declare(name string, node ast.Node) error {
	if err := s.table.declareLocal(name, node); err != nil {
		return err
	}
	s.scopes[len(s.scopes)-1][name] = node
	return nil
}

// Lookup walks the stack innermost-first (§4.4 "Id resolution walks the
// stack innermost-first, then delegates to the module's symbol table").
func (s *ScopeStack) Lookup(name string) (ast.Node, bool) {
	for i := len(s.scopes) - 1; i >= 0; i-- {
		if n, ok := s.scopes[i][name]; ok {
			return n, true
		}
	}
	return nil, false
}
