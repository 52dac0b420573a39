package domain

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/mouse-blink/litsplice/internal/adapter"
	"github.com/mouse-blink/litsplice/internal/ctxlog"
	m "github.com/mouse-blink/litsplice/internal/model"
)

// Mode selects whether the embedder rewrites host documents or only
// compares them with what it would write.
type Mode int

// Available Mode values.
const (
	ModeWrite Mode = iota
	ModeCheck
)

// Embedder runs the read, encode, locate, splice and write steps for a
// single target.
type Embedder interface {
	Embed(ctx context.Context, target m.Target, mode Mode) (m.RunResult, error)
	// Literal reads the target's asset and returns the standalone literal
	// (header, optional declaration and body) without touching the host.
	Literal(ctx context.Context, target m.Target) (string, m.RunResult, error)
}

type embedder struct {
	fsAdapter adapter.SourceFSAdapter
}

// NewEmbedder constructs an Embedder backed by the provided filesystem adapter.
func NewEmbedder(fsAdapter adapter.SourceFSAdapter) Embedder {
	return &embedder{fsAdapter: fsAdapter}
}

// Embed processes one target. Every failure before the final write leaves
// the host document untouched.
func (e *embedder) Embed(ctx context.Context, target m.Target, mode Mode) (m.RunResult, error) {
	logger := ctxlog.FromContext(ctx).With("target", target.Name)

	if err := target.Validate(); err != nil {
		return m.RunResult{}, fmt.Errorf("%w %s: %w", ErrInvalidTarget, target.Name, err)
	}

	asset, err := e.readAsset(target.Asset)
	if err != nil {
		return m.RunResult{}, err
	}

	hostBytes, err := e.readFile("host", target.Host)
	if err != nil {
		return m.RunResult{}, err
	}

	host := m.HostDocument{
		Path:        target.Host,
		Text:        string(hostBytes),
		StartMarker: target.StartMarker,
		EndMarker:   target.EndMarker,
	}

	rendered, err := Render(target, asset, host)
	if err != nil {
		return m.RunResult{}, err
	}

	logger.Debug("Rendered host document.",
		"span_start", rendered.Span.Start,
		"span_end", rendered.Span.End,
		"block_bytes", len(rendered.Block.Text))

	result := m.RunResult{
		Target:    target.Name,
		Asset:     target.Asset,
		Host:      target.Host,
		ByteCount: asset.ByteCount(),
		LineCount: rendered.Block.Literal.LineCount(),
	}

	upToDate := rendered.Text == host.Text

	switch {
	case mode == ModeCheck && upToDate:
		result.Status = m.StatusUpToDate
		return result, nil
	case mode == ModeCheck:
		result.Status = m.StatusStale
		return result, nil
	case upToDate:
		result.Status = m.StatusUnchanged
		logger.Info("Host document already up to date.", "host", target.Host)

		return result, nil
	}

	if err := ctx.Err(); err != nil {
		return m.RunResult{}, fmt.Errorf("skip writing %s: %w", target.Host, err)
	}

	if err := e.writeHost(target.Host, rendered.Text); err != nil {
		return m.RunResult{}, err
	}

	result.Status = m.StatusUpdated
	logger.Info("Embedded asset.", "host", target.Host, "bytes", result.ByteCount, "lines", result.LineCount)

	return result, nil
}

func (e *embedder) Literal(ctx context.Context, target m.Target) (string, m.RunResult, error) {
	if target.Asset == "" {
		return "", m.RunResult{}, fmt.Errorf("%w: asset path is required", ErrInvalidTarget)
	}

	asset, err := e.readAsset(target.Asset)
	if err != nil {
		return "", m.RunResult{}, err
	}

	literal, err := Encode(asset.Bytes, EncodeOptions{Encoding: target.Encoding, Indent: target.Indent})
	if err != nil {
		return "", m.RunResult{}, fmt.Errorf("encode %s: %w", asset.Path, err)
	}

	standalone := target
	if standalone.Declaration == "" && target.KeepStartMarkerLine {
		standalone.Declaration = strings.TrimRight(target.StartMarker, "\r\n")
	}

	standalone.KeepStartMarkerLine = true
	block := BuildBlock(standalone, asset, literal)

	ctxlog.FromContext(ctx).Debug("Encoded asset.", "asset", target.Asset, "lines", literal.LineCount())

	return block.Text, m.RunResult{
		Target:    target.Name,
		Asset:     target.Asset,
		ByteCount: asset.ByteCount(),
		LineCount: literal.LineCount(),
	}, nil
}

func (e *embedder) readAsset(path m.Path) (m.Asset, error) {
	data, err := e.readFile("asset", path)
	if err != nil {
		return m.Asset{}, err
	}

	return m.Asset{Path: path, Bytes: data}, nil
}

// readFile maps every read failure, including a directory in place of a
// file, to ErrFileNotFound.
func (e *embedder) readFile(role string, path m.Path) ([]byte, error) {
	info, err := e.fsAdapter.FileInfo(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrFileNotFound, role, path, err)
	}

	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s %s is a directory", ErrFileNotFound, role, path)
	}

	data, err := e.fsAdapter.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %s: %w", ErrFileNotFound, role, path, err)
	}

	return data, nil
}

func (e *embedder) writeHost(path m.Path, text string) error {
	perm := fs.FileMode(0o644)

	info, err := e.fsAdapter.FileInfo(path)
	if err == nil {
		perm = info.Mode().Perm()
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat host %s: %w", path, err)
	}

	if err := e.fsAdapter.WriteFile(path, []byte(text), perm); err != nil {
		return fmt.Errorf("write host %s: %w", path, err)
	}

	return nil
}
