// Package ast defines the closed set of AST node kinds produced by the
// reader and annotated by the resolver, macro expander and type checker.
package ast

import "fmt"

// SourcePos is a location for diagnostics: a file and a line. The reader
// works from a line-buffered token stream (see internal/reader) and does
// not track columns.
type SourcePos struct {
	File string
	Line int
}

func (p SourcePos) String() string {
	if p.File == "" {
		return fmt.Sprintf("line %d", p.Line)
	}
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// NoPos is used for synthesized nodes (macro expansion output, specialized
// module clones before re-stamping) that have not been assigned a position.
var NoPos = SourcePos{}
