package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// NewUI picks the result renderer for the command: colored status badges
// when stdout is a terminal, plain lines and tables when the output is
// captured by a build script or CI log.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewStyledUI(cmd.OutOrStdout())
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a character device. Buffers, pipes and regular
// files are not.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
