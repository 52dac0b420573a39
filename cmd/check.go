package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/litsplice/internal/domain"
)

// checkCmd represents the check command.
var checkCmd = newCheckCmd()

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Verify host files already embed the current assets",
		Long:  "Run the embedding pipeline without writing and exit non-zero if any host file is stale.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := resolveTargets(cmd)
			if err != nil {
				return err
			}

			return workflow.Check(cmd.Context(), domain.RunArgs{Targets: targets, Threads: parallelFlag})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
