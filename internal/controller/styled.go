package controller

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/litsplice/internal/model"
)

// StyledUI implements UI with lipgloss styling for interactive terminals.
type StyledUI struct {
	output io.Writer

	titleStyle   lipgloss.Style
	pathStyle    lipgloss.Style
	countStyle   lipgloss.Style
	summaryStyle lipgloss.Style
}

// NewStyledUI creates a new StyledUI writing to output.
func NewStyledUI(output io.Writer) *StyledUI {
	return &StyledUI{
		output: output,
		titleStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true),
		pathStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
		countStyle: lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")).
			Bold(true),
		summaryStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// DisplayResults prints a styled line per target and a summary.
func (t *StyledUI) DisplayResults(results []m.RunResult) error {
	totalBytes := 0

	for _, res := range results {
		_, _ = fmt.Fprintf(t.output, "%s %s\n", statusStyle(res.Status).Render(statusBadge(res.Status)), resultMessage(res))
		totalBytes += res.ByteCount
	}

	if len(results) > 1 {
		summary := fmt.Sprintf("%s targets, %s bytes embedded",
			t.countStyle.Render(fmt.Sprintf("%d", len(results))),
			t.countStyle.Render(fmt.Sprintf("%d", totalBytes)))
		_, _ = fmt.Fprintln(t.output, t.summaryStyle.Render(summary))
	}

	return nil
}

// DisplayLiteral writes the literal unstyled so it can be pasted into source.
func (t *StyledUI) DisplayLiteral(text string) error {
	_, err := fmt.Fprint(t.output, text)
	return err
}

// DisplayTargets prints each target with its asset, host and span policy.
func (t *StyledUI) DisplayTargets(targets []m.Target) error {
	if len(targets) == 0 {
		_, _ = fmt.Fprintln(t.output, "No targets configured")
		return nil
	}

	for _, target := range targets {
		_, _ = fmt.Fprintf(t.output, "%s\n  %s -> %s (%s, %s)\n",
			t.titleStyle.Render(target.Name),
			t.pathStyle.Render(string(target.Asset)),
			t.pathStyle.Render(string(target.Host)),
			target.Encoding,
			spanPolicy(target))
	}

	return nil
}

func statusBadge(status m.Status) string {
	switch status {
	case m.StatusUpdated:
		return "updated"
	case m.StatusUnchanged, m.StatusUpToDate:
		return "ok"
	case m.StatusStale:
		return "stale"
	default:
		return string(status)
	}
}

func statusStyle(status m.Status) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)

	switch status {
	case m.StatusUpdated:
		return style.Foreground(lipgloss.Color("42"))
	case m.StatusStale:
		return style.Foreground(lipgloss.Color("214"))
	default:
		return style.Foreground(lipgloss.Color("245"))
	}
}
