package domain

import (
	"testing"

	m "github.com/mouse-blink/litsplice/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioTarget(keep bool) m.Target {
	return m.Target{
		Name:                "app",
		Asset:               "web/app.js",
		Host:                "main/host.c",
		StartMarker:         "START",
		EndMarker:           "END",
		KeepStartMarkerLine: keep,
	}.WithDefaults()
}

func scenarioHost(text string) m.HostDocument {
	return m.HostDocument{Path: "main/host.c", Text: text, StartMarker: "START", EndMarker: "END"}
}

func TestHeader(t *testing.T) {
	literal, err := Encode([]byte("a\nb\n"), EncodeOptions{})
	require.NoError(t, err)

	got := Header(m.Asset{Path: "components/web_server_task/chess_app.js", Bytes: []byte("a\nb\n")}, literal)

	assert.Equal(t, "// chess_app.js embedded (4 bytes, 2 lines)", got)
}

func TestBuildBlock(t *testing.T) {
	asset := m.Asset{Path: "app.js", Bytes: []byte("x\n")}
	literal, err := Encode(asset.Bytes, EncodeOptions{})
	require.NoError(t, err)

	t.Run("keep marker line", func(t *testing.T) {
		block := BuildBlock(scenarioTarget(true), asset, literal)

		assert.Equal(t, "// app.js embedded (2 bytes, 1 lines)\n    \"x\\n\";\n\n", block.Text)
		assert.Equal(t, "// app.js embedded (2 bytes, 1 lines)", block.Header)
	})

	t.Run("replace marker re-emits it", func(t *testing.T) {
		block := BuildBlock(scenarioTarget(false), asset, literal)

		assert.Equal(t, "START\n// app.js embedded (2 bytes, 1 lines)\n    \"x\\n\";\n\n", block.Text)
	})

	t.Run("multi-line marker and declaration", func(t *testing.T) {
		target := scenarioTarget(false)
		target.StartMarker = "// ====\n// TEST PAGE\n"
		target.Declaration = "static const char app_js[] ="

		block := BuildBlock(target, asset, literal)

		assert.Equal(t, "// ====\n// TEST PAGE\n"+
			"// app.js embedded (2 bytes, 1 lines)\n"+
			"static const char app_js[] =\n"+
			"    \"x\\n\";\n\n", block.Text)
	})
}

func TestRender_Scenario(t *testing.T) {
	asset := m.Asset{Path: "web/app.js", Bytes: []byte("x\n")}
	before, after := "...\n", "END\n..."

	t.Run("keep marker line", func(t *testing.T) {
		host := scenarioHost(before + "START\nOLD\n" + after)

		got, err := Render(scenarioTarget(true), asset, host)
		require.NoError(t, err)

		want := before + "START\n" + "// app.js embedded (2 bytes, 1 lines)\n    \"x\\n\";\n\n" + after
		assert.Equal(t, want, got.Text)
		assert.Equal(t, m.Span{Start: 10, End: 14}, got.Span)
	})

	t.Run("replace marker", func(t *testing.T) {
		host := scenarioHost(before + "START\nOLD\n" + after)

		got, err := Render(scenarioTarget(false), asset, host)
		require.NoError(t, err)

		want := before + "START\n// app.js embedded (2 bytes, 1 lines)\n    \"x\\n\";\n\n" + after
		assert.Equal(t, want, got.Text)
	})
}

func TestRender_SpliceThenLocateIsStable(t *testing.T) {
	asset := m.Asset{Path: "app.js", Bytes: []byte("const s = \"a\\\\b\";\n\nfunction f() {}\n")}
	host := scenarioHost("#include <x.h>\n/* START here */\nstale\nEND of region */\nint main;\n")

	for _, keep := range []bool{true, false} {
		target := scenarioTarget(keep)

		first, err := Render(target, asset, host)
		require.NoError(t, err)

		span, err := Locate(first.Text, host.StartMarker, host.EndMarker, keep)
		require.NoError(t, err)
		assert.Equal(t, first.Block.Text, first.Text[span.Start:span.End], "keep=%v", keep)

		again := host
		again.Text = first.Text

		second, err := Render(target, asset, again)
		require.NoError(t, err)
		assert.Equal(t, first.Text, second.Text, "keep=%v", keep)
	}
}

func TestRender_Errors(t *testing.T) {
	t.Run("asset containing the end marker", func(t *testing.T) {
		asset := m.Asset{Path: "app.js", Bytes: []byte("// END of script\n")}

		_, err := Render(scenarioTarget(true), asset, scenarioHost("START\nold\nEND\n"))
		require.ErrorIs(t, err, ErrMarkerConflict)
	})

	t.Run("missing marker", func(t *testing.T) {
		asset := m.Asset{Path: "app.js", Bytes: []byte("x\n")}

		_, err := Render(scenarioTarget(true), asset, scenarioHost("nothing here\n"))
		require.ErrorIs(t, err, ErrMarkerNotFound)
		assert.Contains(t, err.Error(), "main/host.c")
	})

	t.Run("encoding failure", func(t *testing.T) {
		asset := m.Asset{Path: "app.js", Bytes: []byte{0}}

		_, err := Render(scenarioTarget(true), asset, scenarioHost("START\nEND\n"))
		require.ErrorIs(t, err, ErrEncoding)
		assert.Contains(t, err.Error(), "app.js")
	})
}

func TestRender_CRLFHost(t *testing.T) {
	asset := m.Asset{Path: "web/x.js", Bytes: []byte("x\n")}
	host := "a\r\nSTART\r\nOLD\r\nEND\r\n"

	for _, keep := range []bool{true, false} {
		target := scenarioTarget(keep)

		first, err := Render(target, asset, scenarioHost(host))
		require.NoError(t, err)
		assert.Equal(t, "a\r\nSTART\r\n// x.js embedded (2 bytes, 1 lines)\r\n    \"x\\n\";\r\n\r\nEND\r\n", first.Text)

		second, err := Render(target, asset, scenarioHost(first.Text))
		require.NoError(t, err)
		assert.Equal(t, first.Text, second.Text)
	}
}

func TestMarkerLineEnding(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		marker string
		want   string
	}{
		{name: "lf", text: "START\nEND", marker: "START", want: "\n"},
		{name: "crlf", text: "x\r\nSTART =\r\nEND", marker: "START", want: "\r\n"},
		{name: "marker with newline", text: "START\r\nEND", marker: "START\r\n", want: "\r\n"},
		{name: "no newline", text: "START END", marker: "START", want: "\n"},
		{name: "missing marker", text: "a\r\n", marker: "START", want: "\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, markerLineEnding(tt.text, tt.marker))
		})
	}
}
