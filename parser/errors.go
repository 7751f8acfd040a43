package parser

import (
	"fmt"
	"strings"

	"github.com/vippsas/sgmlcode/token"
)

// Error is a syntactic parse failure. It carries
// the position where parsing stopped, the accumulated context-label
// trail built up through the recursive descent, and optionally the
// single character that was expected.
type Error struct {
	Pos      token.Pos
	Context  []string
	Expected string
	Message  string
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d:%d: %s", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Message)
	if e.Expected != "" {
		fmt.Fprintf(&b, " (expected %q)", e.Expected)
	}
	if len(e.Context) > 0 {
		b.WriteString(" in ")
		b.WriteString(strings.Join(e.Context, " → "))
	}
	return b.String()
}

// Display renders a human-readable trace of e against the original
// source text: the message, an excerpt of the offending line trimmed to
// at most 80 characters centered on the column, and a caret pointing at
// the column.
func (e *Error) Display(source string) string {
	lines := strings.Split(source, "\n")
	lineIdx := e.Pos.Line - 1
	if lineIdx < 0 || lineIdx >= len(lines) {
		return e.Error()
	}
	line := lines[lineIdx]

	const maxWidth = 80
	col := e.Pos.Col - 1
	if col < 0 {
		col = 0
	}
	excerpt := line
	caretCol := col
	leadingEllipsis := false
	trailingEllipsis := false
	if len(line) > maxWidth {
		half := maxWidth / 2
		start := col - half
		if start < 0 {
			start = 0
		}
		end := start + maxWidth
		if end > len(line) {
			end = len(line)
			start = end - maxWidth
			if start < 0 {
				start = 0
			}
		}
		leadingEllipsis = start > 0
		trailingEllipsis = end < len(line)
		excerpt = line[start:end]
		caretCol = col - start
	}

	var b strings.Builder
	b.WriteString(e.Error())
	b.WriteByte('\n')
	if leadingEllipsis {
		b.WriteString("...")
		caretCol += 3
	}
	b.WriteString(excerpt)
	if trailingEllipsis {
		b.WriteString("...")
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(" ", caretCol))
	b.WriteByte('^')
	return b.String()
}

// withContext prepends label to e's context trail (outermost-first
// ordering) and returns e itself, used as the recursive descent
// unwinds.
func (e *Error) withContext(label string) *Error {
	ctx := make([]string, 0, len(e.Context)+1)
	ctx = append(ctx, label)
	ctx = append(ctx, e.Context...)
	e.Context = ctx
	return e
}

// InvalidMarkedSectionKeyword reports an unrecognized or rejected
// status-keyword string encountered at the start of a marked section.
type InvalidMarkedSectionKeyword struct {
	Pos     token.Pos
	Keyword string
}

func (e InvalidMarkedSectionKeyword) Error() string {
	return fmt.Sprintf("%s:%d:%d: invalid marked section keyword %q", e.Pos.File, e.Pos.Line, e.Pos.Col, e.Keyword)
}
