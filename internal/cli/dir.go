package cli

import (
	"fmt"

	"github.com/agentx-labs/hostpal/internal/diag"
	"github.com/agentx-labs/hostpal/internal/platform"
	"github.com/spf13/cobra"
)

func newDirCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dir",
		Short: "Query and create directories",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "exists <path>",
		Short: "Print whether path is an existing directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), platform.DirectoryExists(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "create <path>",
		Short: "Create a directory (one level, succeeds if it already exists)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			diag.ClearError()
			if !platform.CreateDirectory(args[0]) {
				return failure("creating directory %s", args[0])
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", args[0])
			return nil
		},
	})

	return cmd
}
