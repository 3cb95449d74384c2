package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qfg-dev/qfg/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	// No dependencies needed.
	PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintf(cmd.OutOrStdout(), "qfg %s\ngenerator: %s\n", version.GetFullVersion(), version.GeneratorName)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
