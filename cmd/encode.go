package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/litsplice/internal/domain"
	m "github.com/mouse-blink/litsplice/internal/model"
)

// encodeCmd represents the encode command.
var encodeCmd = newEncodeCmd()

func newEncodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "encode [asset]",
		Short: "Print an asset as a C string literal",
		Long:  "Print the header comment, optional declaration and literal lines for an asset without touching any host file.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			target := targetFromFlags()
			if len(args) == 1 {
				target.Asset = m.Path(args[0])
				target.Name = ""
				target = target.WithDefaults()
			}

			return workflow.Encode(cmd.Context(), domain.EncodeArgs{Target: target})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(encodeCmd)
}
