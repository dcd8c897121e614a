package errors

import (
	"strings"

	"golang.org/x/text/width"
)

// FormatSnippet renders one source line for a text-format diagnostic
// report: fullwidth/halfwidth character variants are folded to their
// canonical narrow form (golang.org/x/text/width) so a line mixing ASCII
// and CJK punctuation lines up under a fixed-width terminal the same way
// an all-ASCII line would, then the result is padded or truncated to cols.
func FormatSnippet(line string, cols int) string {
	folded := width.Fold.String(line)
	if cols <= 0 {
		return folded
	}
	runes := []rune(folded)
	if len(runes) > cols {
		return string(runes[:cols])
	}
	return folded + strings.Repeat(" ", cols-len(runes))
}
