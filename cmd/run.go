package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/litsplice/internal/domain"
)

const runLongDescription = `Embed every target and rewrite the host files whose content changed.

A host file is only replaced after the asset was encoded and both markers
were found; any failure leaves it untouched.`

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Embed assets into their host files",
		Long:  runLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := resolveTargets(cmd)
			if err != nil {
				return err
			}

			return workflow.Run(cmd.Context(), domain.RunArgs{Targets: targets, Threads: parallelFlag})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}
