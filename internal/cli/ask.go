package cli

import (
	"fmt"
	"log/slog"

	"github.com/agentx-labs/hostpal/internal/notify"
	"github.com/spf13/cobra"
)

func newAskCmd() *cobra.Command {
	var (
		caption string
		buttons string
		backend string
	)

	cmd := &cobra.Command{
		Use:   "ask <message>",
		Short: "Show a native dialog and print the answer",
		Long: `Show a blocking dialog and print the answer: yes, no, cancel, abort, retry,
ignore or none. A dialog that cannot be shown answers none.

Button sets: info, yescancel, yesnocancel, error, abortretryignore.
Backends: auto, terminal, zenity, osascript, messagebox (default from
notify.backend).`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := notify.ParseButtonSet(buttons)
			if err != nil {
				return err
			}

			name := backend
			if name == "" {
				name = settings.Notify.Backend
			}
			renderer, err := rendererFor(cmd, name)
			if err != nil {
				return err
			}

			n := notify.New(notify.WithRenderer(renderer), notify.WithLogger(slog.Default()))
			fmt.Fprintln(cmd.OutOrStdout(), n.Ask(args[0], caption, set))
			return nil
		},
	}

	cmd.Flags().StringVar(&caption, "caption", "", "Dialog title")
	cmd.Flags().StringVar(&buttons, "buttons", "info", "Button set")
	cmd.Flags().StringVar(&backend, "backend", "", "Notification backend")
	return cmd
}

// rendererFor resolves a backend name. The terminal backend talks to the
// command's own streams.
func rendererFor(cmd *cobra.Command, name string) (notify.Renderer, error) {
	if name == "terminal" {
		return notify.NewTerminalRenderer(cmd.InOrStdin(), cmd.ErrOrStderr()), nil
	}
	return notify.NewBackend(name)
}
