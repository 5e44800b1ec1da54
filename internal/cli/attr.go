package cli

import (
	"fmt"

	"github.com/agentx-labs/hostpal/internal/diag"
	"github.com/agentx-labs/hostpal/internal/platform"
	"github.com/spf13/cobra"
)

func newAttrCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attr",
		Short: "Read and write file attributes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get <path>",
		Short: "Print the attributes of path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diag.ClearError()
			attrs := platform.GetFileAttributes(args[0])
			if !attrs.Valid() {
				return failure("reading attributes of %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (0x%X)\n", attrs, uint32(attrs))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "set <path> <attributes>",
		Short: "Apply attributes to path",
		Long: `Apply attributes to path. Attributes are a number (decimal or 0x hex) or
names joined by "|" or ",", e.g. "readonly|hidden".`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			attrs, err := platform.ParseAttributes(args[1])
			if err != nil {
				return fmt.Errorf("parsing attributes: %w", err)
			}
			diag.ClearError()
			if !platform.SetFileAttributes(args[0], attrs) {
				return failure("setting attributes of %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s on %s\n", attrs, args[0])
			return nil
		},
	})

	return cmd
}
