package model

import "strings"

// DefaultIndent prefixes every rendered literal line.
const DefaultIndent = "    "

// Terminator closes the literal statement.
const Terminator = ";"

// EncodedLiteral is an asset rendered as a sequence of escaped string lines.
// Lines hold the escaped content without quotes or the trailing \n escape.
type EncodedLiteral struct {
	Lines  []string
	Indent string
}

// LineCount returns the number of literal lines.
func (l EncodedLiteral) LineCount() int {
	return len(l.Lines)
}

// Render formats the literal for insertion: one quoted line per asset line,
// joined with newlines, the terminator after the last line and one blank line
// of padding.
func (l EncodedLiteral) Render() string {
	var b strings.Builder

	for i, line := range l.Lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		b.WriteString(l.Indent)
		b.WriteByte('"')
		b.WriteString(line)
		b.WriteString(`\n"`)
	}

	b.WriteString(Terminator)
	b.WriteString("\n\n")

	return b.String()
}

// Span is a half-open byte range [Start, End) inside a host document.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Within reports whether the span is well formed for a text of length n.
func (s Span) Within(n int) bool {
	return s.Start >= 0 && s.Start <= s.End && s.End <= n
}

// ReplacementBlock is the text spliced into the host document.
type ReplacementBlock struct {
	Header  string
	Literal EncodedLiteral
	Text    string
}
