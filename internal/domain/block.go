package domain

import (
	"fmt"
	"strings"

	m "github.com/mouse-blink/litsplice/internal/model"
)

const headerCommentPrefix = "//"

// Header returns the comment line describing an embedded asset.
func Header(asset m.Asset, literal m.EncodedLiteral) string {
	return fmt.Sprintf("%s %s embedded (%d bytes, %d lines)",
		headerCommentPrefix, asset.Path.Base(), asset.ByteCount(), literal.LineCount())
}

// BuildBlock assembles the text inserted into the host document. When the
// target does not keep the start marker line, the block opens with the start
// marker so the next run finds it again.
func BuildBlock(target m.Target, asset m.Asset, literal m.EncodedLiteral) m.ReplacementBlock {
	header := Header(asset, literal)

	var b strings.Builder

	if !target.KeepStartMarkerLine {
		b.WriteString(target.StartMarker)

		if !strings.HasSuffix(target.StartMarker, "\n") {
			b.WriteByte('\n')
		}
	}

	b.WriteString(header)
	b.WriteByte('\n')

	if target.Declaration != "" {
		b.WriteString(target.Declaration)
		b.WriteByte('\n')
	}

	b.WriteString(literal.Render())

	return m.ReplacementBlock{
		Header:  header,
		Literal: literal,
		Text:    b.String(),
	}
}

// Rendered is the in-memory outcome of the encode, locate and splice steps.
type Rendered struct {
	Text  string
	Span  m.Span
	Block m.ReplacementBlock
}

// Render runs the pipeline for one target without touching the filesystem.
// It also re-locates the markers in the result and fails with
// ErrMarkerConflict when they no longer enclose exactly the inserted block,
// which happens when the asset itself contains the end marker.
func Render(target m.Target, asset m.Asset, host m.HostDocument) (Rendered, error) {
	literal, err := Encode(asset.Bytes, EncodeOptions{Encoding: target.Encoding, Indent: target.Indent})
	if err != nil {
		return Rendered{}, fmt.Errorf("encode %s: %w", asset.Path, err)
	}

	span, err := Locate(host.Text, host.StartMarker, host.EndMarker, target.KeepStartMarkerLine)
	if err != nil {
		return Rendered{}, fmt.Errorf("locate in %s: %w", host.Path, err)
	}

	block := BuildBlock(target, asset, literal)
	if markerLineEnding(host.Text, host.StartMarker) == "\r\n" {
		block.Text = toCRLF(block.Text)
	}

	text, err := Splice(host.Text, span, block.Text)
	if err != nil {
		return Rendered{}, fmt.Errorf("splice %s: %w", host.Path, err)
	}

	want := m.Span{Start: span.Start, End: span.Start + len(block.Text)}

	got, err := Locate(text, host.StartMarker, host.EndMarker, target.KeepStartMarkerLine)
	if err != nil || got != want {
		return Rendered{}, fmt.Errorf("%w: markers %q and %q would not enclose the embedded %s in %s",
			ErrMarkerConflict, host.StartMarker, host.EndMarker, asset.Path.Base(), host.Path)
	}

	return Rendered{Text: text, Span: span, Block: block}, nil
}

// markerLineEnding reports the line ending of the line holding the first
// start marker: "\r\n" or "\n".
func markerLineEnding(text, marker string) string {
	idx := strings.Index(text, marker)
	if idx == -1 || marker == "" {
		return "\n"
	}

	end := idx + len(marker)
	if strings.HasSuffix(marker, "\n") {
		end--
	} else {
		nl := strings.IndexByte(text[end:], '\n')
		if nl == -1 {
			return "\n"
		}

		end += nl
	}

	if end > 0 && text[end-1] == '\r' {
		return "\r\n"
	}

	return "\n"
}

func toCRLF(text string) string {
	return strings.ReplaceAll(strings.ReplaceAll(text, "\r\n", "\n"), "\n", "\r\n")
}
