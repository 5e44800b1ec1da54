package cli

import (
	"fmt"
	"strconv"

	"github.com/agentx-labs/hostpal/internal/diag"
	"github.com/spf13/cobra"
)

func newErrmsgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "errmsg [code]",
		Short: "Print the host message for an error code",
		Long: `Print the host's human-readable message for an error code (decimal or 0x hex).
Without an argument the last error recorded in this process is used. Code 0
prints nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := diag.LastError()
			if len(args) == 1 {
				n, err := strconv.ParseUint(args[0], 0, 32)
				if err != nil {
					return fmt.Errorf("parsing error code %q: %w", args[0], err)
				}
				code = diag.Code(n)
			}
			if code == 0 {
				return nil
			}

			size := settings.Diag.BufferSize
			if size <= 0 {
				size = diag.DefaultBufferSize
			}
			r := diag.NewRenderer(size)
			defer r.Close()
			msg := r.Render(code)
			if msg == nil {
				return fmt.Errorf("no message for error %d fits in %d bytes", code, size)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", msg)
			return nil
		},
	}
}
