// Package domain contains the encode, locate and splice pipeline and the
// workflow that drives it over configured targets.
package domain

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"

	m "github.com/mouse-blink/litsplice/internal/model"
	"golang.org/x/text/encoding/ianaindex"
)

// EncodeOptions controls how asset bytes are turned into a literal.
type EncodeOptions struct {
	// Encoding is the IANA name of the asset's character set. Empty means UTF-8.
	Encoding string
	// Indent prefixes each rendered line. Empty means m.DefaultIndent.
	Indent string
}

// Encode converts raw asset bytes into an escaped literal, one entry per
// asset line. An empty asset yields a single empty line.
func Encode(asset []byte, opts EncodeOptions) (m.EncodedLiteral, error) {
	text, err := decodeText(asset, opts.Encoding)
	if err != nil {
		return m.EncodedLiteral{}, err
	}

	if i := strings.IndexByte(text, 0); i >= 0 {
		return m.EncodedLiteral{}, fmt.Errorf("%w: NUL character at offset %d", ErrEncoding, i)
	}

	lines := splitLines(text)
	escaped := make([]string, len(lines))

	for i, line := range lines {
		escaped[i] = escapeLine(line)
	}

	indent := opts.Indent
	if indent == "" {
		indent = m.DefaultIndent
	}

	return m.EncodedLiteral{Lines: escaped, Indent: indent}, nil
}

// Decode reverses Encode: it unescapes every line and joins them with
// newlines. The result carries no trailing line terminator.
func Decode(literal m.EncodedLiteral) string {
	lines := make([]string, len(literal.Lines))
	for i, line := range literal.Lines {
		lines[i] = unescapeLine(line)
	}

	return strings.Join(lines, "\n")
}

// escapeLine doubles backslashes before escaping quotes so the backslashes
// added for quotes are not doubled again.
func escapeLine(line string) string {
	line = strings.ReplaceAll(line, `\`, `\\`)
	line = strings.ReplaceAll(line, `"`, `\"`)

	return line
}

func unescapeLine(line string) string {
	if !strings.Contains(line, `\`) {
		return line
	}

	var b strings.Builder

	b.Grow(len(line))

	for i := 0; i < len(line); i++ {
		if line[i] == '\\' && i+1 < len(line) {
			i++
		}

		b.WriteByte(line[i])
	}

	return b.String()
}

// splitLines normalizes CRLF and CR to LF, drops one trailing LF and splits
// on the remaining ones.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.TrimSuffix(text, "\n")

	return strings.Split(text, "\n")
}

func decodeText(raw []byte, encoding string) (string, error) {
	if isUTF8(encoding) {
		if !utf8.Valid(raw) {
			return "", fmt.Errorf("%w: asset is not valid UTF-8", ErrEncoding)
		}

		return string(raw), nil
	}

	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return "", fmt.Errorf("%w: unsupported encoding %q", ErrEncoding, encoding)
	}

	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return "", fmt.Errorf("%w: decode %s: %w", ErrEncoding, encoding, err)
	}

	// Decoders substitute U+FFFD for undefined bytes, so only a lossless
	// round trip proves the asset is valid in the declared encoding.
	encoded, err := enc.NewEncoder().Bytes(decoded)
	if err != nil || !bytes.Equal(encoded, raw) {
		return "", fmt.Errorf("%w: asset is not valid %s", ErrEncoding, encoding)
	}

	return string(decoded), nil
}

func isUTF8(encoding string) bool {
	switch strings.ToLower(strings.TrimSpace(encoding)) {
	case "", "utf-8", "utf8":
		return true
	default:
		return false
	}
}
