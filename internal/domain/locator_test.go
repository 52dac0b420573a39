package domain

import (
	"strings"
	"testing"

	m "github.com/mouse-blink/litsplice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocate_KeepStartMarkerLine(t *testing.T) {
	text := "...\nSTART\nOLD\nEND\n..."

	span, err := Locate(text, "START", "END", true)
	require.NoError(t, err)

	assert.Equal(t, m.Span{Start: 10, End: 14}, span)
	assert.Equal(t, "OLD\n", text[span.Start:span.End])
}

func TestLocate_ReplaceStartMarker(t *testing.T) {
	text := "...\nSTART\nOLD\nEND\n..."

	span, err := Locate(text, "START", "END", false)
	require.NoError(t, err)

	assert.Equal(t, m.Span{Start: 4, End: 14}, span)
	assert.Equal(t, "START\nOLD\n", text[span.Start:span.End])
}

func TestLocate_FirstEndAfterFirstStart(t *testing.T) {
	text := "END early\nSTART\nbody\nEND one\nmore\nEND two\n"

	span, err := Locate(text, "START", "END", true)
	require.NoError(t, err)

	first := strings.Index(text, "END one")
	second := strings.LastIndex(text, "END")

	assert.Equal(t, first, span.End)
	assert.NotEqual(t, second, span.End)
	assert.Equal(t, "body\n", text[span.Start:span.End])
}

func TestLocate_FirstStartOccurrence(t *testing.T) {
	text := "START a\nSTART b\nEND\n"

	span, err := Locate(text, "START", "END", true)
	require.NoError(t, err)

	assert.Equal(t, "START b\n", text[span.Start:span.End])
}

func TestLocate_MarkerEndingWithNewline(t *testing.T) {
	text := "// BEGIN\nold\n// END\n"

	span, err := Locate(text, "// BEGIN\n", "// END", true)
	require.NoError(t, err)

	assert.Equal(t, "old\n", text[span.Start:span.End])
}

func TestLocate_EmptyRegion(t *testing.T) {
	text := "START\nEND\n"

	span, err := Locate(text, "START", "END", true)
	require.NoError(t, err)

	assert.Equal(t, 0, span.Len())
	assert.Equal(t, 6, span.Start)
}

func TestLocate_Errors(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		start string
		end   string
		keep  bool
		msg   string
	}{
		{name: "missing start", text: "a\nEND\n", start: "START", end: "END", keep: true, msg: `start marker "START"`},
		{name: "missing end", text: "START\nbody\n", start: "START", end: "END", keep: true, msg: `end marker "END"`},
		{name: "end only before start", text: "END\nSTART\nbody\n", start: "START", end: "END", keep: true, msg: `end marker "END"`},
		{name: "end on the start line", text: "START END\nbody\n", start: "START", end: "END", keep: true, msg: "must start after the line"},
		{name: "start line without newline", text: "START END", start: "START", end: "END", keep: true, msg: "must start after the line"},
		{name: "empty end", text: "START\nEND\n", start: "START", end: "", keep: true, msg: "must not be empty"},
		{name: "empty start", text: "START\nEND\n", start: "", end: "END", keep: false, msg: "must not be empty"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Locate(tt.text, tt.start, tt.end, tt.keep)
			require.ErrorIs(t, err, ErrMarkerNotFound)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLocate_EndOnStartLineAllowedWhenReplacingMarker(t *testing.T) {
	text := "START END\n"

	span, err := Locate(text, "START", "END", false)
	require.NoError(t, err)

	assert.Equal(t, m.Span{Start: 0, End: 6}, span)
}
