package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSnippetPadsShortLines(t *testing.T) {
	got := FormatSnippet("let x", 10)
	assert.Equal(t, "let x     ", got)
}

func TestFormatSnippetTruncatesLongLines(t *testing.T) {
	got := FormatSnippet("this line is far too long", 9)
	assert.Equal(t, "this line", got)
}

func TestFormatSnippetFoldsFullwidthVariants(t *testing.T) {
	// U+FF41 LATIN FULLWIDTH A folds to 'a'.
	got := FormatSnippet("ａ", 1)
	assert.Equal(t, "a", got)
}

func TestFormatSnippetZeroColsSkipsPadding(t *testing.T) {
	got := FormatSnippet("abc", 0)
	assert.Equal(t, "abc", got)
}
