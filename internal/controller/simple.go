package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/litsplice/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayResults prints one summary line per target, followed by a table
// when more than one target ran.
func (s *SimpleUI) DisplayResults(results []m.RunResult) error {
	for _, res := range results {
		s.printf("%s\n", resultMessage(res))
	}

	if len(results) < 2 {
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "Host", "Bytes", "Lines", "Status"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_CENTER,
	})

	totalBytes, totalLines := 0, 0

	for _, res := range results {
		table.Append([]string{
			res.Target,
			string(res.Host),
			fmt.Sprintf("%d", res.ByteCount),
			fmt.Sprintf("%d", res.LineCount),
			string(res.Status),
		})

		totalBytes += res.ByteCount
		totalLines += res.LineCount
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Targets %d", len(results)),
		"",
		fmt.Sprintf("%d", totalBytes),
		fmt.Sprintf("%d", totalLines),
		"",
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayLiteral writes the literal as is.
func (s *SimpleUI) DisplayLiteral(text string) error {
	_, err := fmt.Fprint(s.cmd.OutOrStdout(), text)
	return err
}

// DisplayTargets prints a table of configured targets.
func (s *SimpleUI) DisplayTargets(targets []m.Target) error {
	if len(targets) == 0 {
		s.printf("No targets configured\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Target", "Asset", "Host", "Encoding", "Span"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	for _, target := range targets {
		table.Append([]string{
			target.Name,
			string(target.Asset),
			string(target.Host),
			target.Encoding,
			spanPolicy(target),
		})
	}

	table.Render()
	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
