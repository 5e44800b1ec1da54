package cli

import (
	"fmt"
	"os"

	"github.com/agentx-labs/hostpal/internal/config"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage user settings",
		Long:  `Read, write and validate configuration stored at ` + config.FilePath() + `.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], args[1]
			if err := config.Set(key, value); err != nil {
				return fmt.Errorf("setting config key %q: %w", key, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "validate",
		Short: "Validate the configuration file against its schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigCheck(cmd)
		},
	})

	return cmd
}

// runConfigCheck validates the config file and prints the outcome. A missing
// file is valid.
func runConfigCheck(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	path := config.FilePath()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Fprintf(out, "  [ OK ] No config file at %s, using defaults\n", path)
		return nil
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return fmt.Errorf("config validation failed: %w", err)
	}
	if result.Valid {
		fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
		return nil
	}

	fmt.Fprintf(out, "  [FAIL] %s:\n", result.Summary())
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "    - %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "    - %s\n", issue.Message)
		}
	}
	return fmt.Errorf("config %s has %d validation issue(s)", path, len(result.Issues))
}
