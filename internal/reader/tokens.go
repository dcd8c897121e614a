// Package reader implements the s-expression reader: a line-buffered
// tokenizer plus a field-schema-driven parser that turns source text
// into the internal/ast node tree (§4.1).
package reader

import (
	"bufio"
	"io"
	"regexp"

	"github.com/velalang/velac/internal/ast"
)

var (
	tokenChar    = `['][^\\']*(?:[\\].[^\\']*)*(?:[']|$)`
	tokenStr     = `["][^\\"]*(?:[\\].[^\\"]*)*(?:["]|$)`
	tokenNameNum = `[^\[\]\(\)' \r\n\t]+`
	tokenOp      = `[\[\]\(\)]`

	tokensAll = regexp.MustCompile(
		"(?:" + tokenStr + ")|(?:" + tokenChar + ")|(?:" + tokenOp + ")|(?:" + tokenNameNum + ")")

	tokenID  = regexp.MustCompile(`^[_A-Za-z$][_A-Za-z$0-9]*(::[_A-Za-z$][_A-Za-z$0-9]*)*$`)
	tokenNum = regexp.MustCompile(`^[.0-9][_.a-zA-Z0-9]*$`)
)

// tokenStream pulls tokens lazily from successive lines, matching the
// original reader's one-line-lookahead buffering (no column tracking).
type tokenStream struct {
	file    string
	scanner *bufio.Scanner
	lineNo  int
	pending []string
}

func newTokenStream(file string, r io.Reader) *tokenStream {
	return &tokenStream{file: file, scanner: bufio.NewScanner(r)}
}

func (s *tokenStream) pos() ast.SourcePos { return ast.SourcePos{File: s.file, Line: s.lineNo} }

// next returns the next token, or io.EOF when the input is exhausted.
func (s *tokenStream) next() (string, error) {
	for len(s.pending) == 0 {
		if !s.scanner.Scan() {
			if err := s.scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		s.lineNo++
		s.pending = tokensAll.FindAllString(s.scanner.Text(), -1)
	}
	tok := s.pending[0]
	s.pending = s.pending[1:]
	return tok, nil
}
