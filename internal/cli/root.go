package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "qfg",
	Short: "QA Framework Generator: scaffold pytest automation projects",
	Long: `qfg generates pytest-based test automation projects with Selenium,
Playwright or both, and adds page objects, tests and locator models to
projects it generated.

Tool settings are read from flags, QFG_* environment variables and
$XDG_CONFIG_HOME/qfg/config.yaml, in that order.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupDependencies,
}

// Execute runs the root command and prints any error to stderr.
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext is Execute with a caller-supplied context.
func ExecuteContext(ctx context.Context) error {
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(rootCmd.ErrOrStderr(), renderError(err))
	}
	return err
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("qfg %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("log-mode", "", "Log format: json or local (default: local)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (default: info)")
	rootCmd.PersistentFlags().String("config", "", "Settings file (default: $XDG_CONFIG_HOME/qfg/config.yaml)")
}

// setupDependencies loads tool settings and builds the composition root
// unless dependencies were injected already.
func setupDependencies(cmd *cobra.Command, _ []string) error {
	if deps != nil {
		return nil
	}

	overrides := map[string]any{}
	if f := cmd.Flags().Lookup("log-mode"); f != nil && f.Changed {
		overrides[config.KeyLogMode] = f.Value.String()
	}
	if f := cmd.Flags().Lookup("log-level"); f != nil && f.Changed {
		overrides[config.KeyLogLevel] = f.Value.String()
	}

	settings, err := config.LoadSettings(getStringFlag(cmd, "config"), overrides)
	if err != nil {
		return err
	}

	d, err := NewDependencies(settings, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	deps = d
	deps.Logger.Debug("settings loaded", "log_mode", settings.LogMode, "log_level", settings.LogLevel)
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}
