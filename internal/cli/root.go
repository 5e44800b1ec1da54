package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/agentx-labs/hostpal/internal/branding"
	"github.com/agentx-labs/hostpal/internal/config"
	"github.com/agentx-labs/hostpal/internal/diag"
	"github.com/agentx-labs/hostpal/internal/logging"
	"github.com/spf13/cobra"
)

var (
	buildVersion = "dev"
	buildCommit  = "unknown"
	buildDate    = "unknown"
)

// settings holds the configuration loaded by the root pre-run hook.
var settings config.Settings

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   branding.CLIName(),
		Short: branding.Description(),
		Long: branding.DisplayName() + ` exposes the host platform layer: directory and attribute queries,
executable location, system error messages and native notification dialogs.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: loadSettings,
	}

	root.AddCommand(
		newDirCmd(),
		newCwdCmd(),
		newExedirCmd(),
		newAttrCmd(),
		newErrmsgCmd(),
		newAskCmd(),
		newDoctorCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)
	return root
}

// loadSettings reads the config file and installs the logger. The config
// commands tolerate a broken file so it can be inspected and repaired.
func loadSettings(cmd *cobra.Command, args []string) error {
	loadErr := config.Load()
	if loadErr != nil && !isConfigCmd(cmd) {
		return loadErr
	}

	s, err := config.Current()
	if err != nil && !isConfigCmd(cmd) {
		return err
	}
	settings = s

	if _, err := logging.Setup(s.Log.Level, s.Log.Format, cmd.ErrOrStderr()); err != nil {
		// Fall back to defaults so a bad log setting does not hide other output.
		_, _ = logging.Setup("info", "text", cmd.ErrOrStderr())
		slog.Warn("ignoring log settings", "err", err)
	}
	if loadErr != nil {
		slog.Warn("config file could not be loaded", "path", config.FilePath(), "err", loadErr)
	}
	return nil
}

func isConfigCmd(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return true
		}
	}
	return false
}

// failure reports a failed soft operation. The host message for the last
// recorded error, when there is one, is appended.
func failure(format string, args ...any) error {
	msg := fmt.Sprintf(format, args...)
	if detail := diag.Message(diag.LastError()); detail != "" {
		return fmt.Errorf("%s: %s", msg, detail)
	}
	return fmt.Errorf("%s", msg)
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	root := newRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
