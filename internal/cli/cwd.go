package cli

import (
	"fmt"

	"github.com/agentx-labs/hostpal/internal/diag"
	"github.com/agentx-labs/hostpal/internal/pathenc"
	"github.com/agentx-labs/hostpal/internal/platform"
	"github.com/spf13/cobra"
)

func newCwdCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "cwd",
		Short: "Print the current working directory",
		Long: `Print the current working directory as reported by the host.

--size sets the capacity of the receiving buffer in bytes, including the
terminator. A directory that does not fit is reported as an error.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("--size must be at least 1")
			}
			diag.ClearError()
			buf := make([]byte, size)
			platform.GetCurrentDirectory(buf)
			dir := pathenc.CString(buf)
			if dir == "" {
				return failure("getting current directory")
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir)
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 4096, "Buffer capacity in bytes")
	return cmd
}

func newExedirCmd() *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "exedir",
		Short: "Print the directory containing this executable",
		Long: `Print the directory containing the running executable, with its trailing
separator. The process aborts if the directory cannot be determined or does not
fit in --size bytes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if size < 1 {
				return fmt.Errorf("--size must be at least 1")
			}
			buf := make([]byte, size)
			platform.GetExecutableDirectory(buf)
			fmt.Fprintln(cmd.OutOrStdout(), pathenc.CString(buf))
			return nil
		},
	}

	cmd.Flags().IntVar(&size, "size", 4096, "Buffer capacity in bytes")
	return cmd
}
