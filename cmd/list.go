package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/litsplice/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the configured targets",
		Long:  "List the targets from --config, or the single target described by the flags.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targets, err := resolveTargets(cmd)
			if err != nil {
				return err
			}

			return workflow.List(cmd.Context(), domain.ListArgs{Targets: targets})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
