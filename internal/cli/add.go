package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qfg-dev/qfg/internal/cli/wizard"
	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/internal/core/project"
	"github.com/qfg-dev/qfg/pkg/models"
	"github.com/qfg-dev/qfg/pkg/naming"
)

var addPageCmd = &cobra.Command{
	Use:   "add-page NAME",
	Short: "Add a page object to the current project",
	Long: `Add a page object to the project containing the working directory.

The URL is the base URL plus --url when it starts with "/", --url itself
when it is absolute, and the base URL plus "/<name-slug>" when omitted.
Projects configured with both drivers ask which one to target unless
--driver is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runAddPage,
}

var addTestCmd = &cobra.Command{
	Use:   "add-test NAME",
	Short: "Add a UI or API test to the current project",
	Args:  cobra.ExactArgs(1),
	RunE:  runAddTest,
}

func init() {
	rootCmd.AddCommand(addPageCmd)
	rootCmd.AddCommand(addTestCmd)

	addPageCmd.Flags().String("url", "", "URL path (e.g. /login) or absolute URL of the page")
	addPageCmd.Flags().String("driver", "", "Target driver: selenium, playwright or both (default: from config)")

	addTestCmd.Flags().String("type", "", "Test type: ui or api (default: ui)")
	addTestCmd.Flags().String("driver", "", "Driver for UI tests: selenium, playwright or both (default: from config)")
}

// driverFlag reads and validates the --driver flag.
func driverFlag(cmd *cobra.Command) (models.DriverType, error) {
	v := strings.ToLower(getStringFlag(cmd, "driver"))
	if v == "" {
		return "", nil
	}
	d := models.DriverType(v)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid --driver value %q: must be one of: selenium, playwright, both", v)
	}
	return d, nil
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func runAddPage(cmd *cobra.Command, args []string) error {
	d := deps
	ctx := commandContext(cmd)

	driver, err := driverFlag(cmd)
	if err != nil {
		return err
	}
	root, err := project.FindProjectRoot("")
	if err != nil {
		return err
	}

	path := getStringFlag(cmd, "url")
	if !cmd.Flags().Changed("url") && d.Interactive() {
		def := "/" + naming.Slugify(args[0])
		if path, err = wizard.Ask(ctx, d.Asker, wizard.PagePathQuestion(def), def); err != nil {
			return err
		}
	}

	result, err := d.NewAdder().AddPage(ctx, project.AddPageOptions{
		Root:   root,
		Name:   args[0],
		Path:   path,
		Driver: driver,
	})
	printAddResult(cmd.OutOrStdout(), result, "Created page object")
	return err
}

func runAddTest(cmd *cobra.Command, args []string) error {
	d := deps
	ctx := commandContext(cmd)

	driver, err := driverFlag(cmd)
	if err != nil {
		return err
	}
	kind := models.TestKind(strings.ToLower(getStringFlag(cmd, "type")))
	if kind != "" && !kind.IsValid() {
		return fmt.Errorf("invalid --type value %q: must be ui or api", kind)
	}

	root, err := project.FindProjectRoot("")
	if err != nil {
		return err
	}

	if kind == "" && d.Interactive() {
		cfg, err := config.Load(root)
		if err != nil {
			return err
		}
		answer, err := wizard.Ask(ctx, d.Asker, wizard.TestKindQuestion(cfg.Features.APITesting), string(models.TestKindUI))
		if err != nil {
			return err
		}
		kind = models.TestKind(answer)
	}

	result, err := d.NewAdder().AddTest(ctx, project.AddTestOptions{
		Root:   root,
		Name:   args[0],
		Kind:   kind,
		Driver: driver,
	})
	printAddResult(cmd.OutOrStdout(), result, "Created test")
	return err
}

// printAddResult lists what an add command changed.
func printAddResult(w io.Writer, result *project.AddResult, verb string) {
	if result == nil {
		return
	}
	theme := deps.Theme
	for _, msg := range result.Warnings {
		_, _ = fmt.Fprintln(w, theme.Warning.Render("Warning: "+msg))
	}
	for _, p := range result.Written {
		_, _ = fmt.Fprintf(w, "%s %s: %s\n", theme.Success.Render("✓"), verb, p)
	}
	for _, p := range result.Updated {
		_, _ = fmt.Fprintf(w, "%s Updated %s\n", theme.Success.Render("✓"), p)
	}
	for _, p := range result.Skipped {
		_, _ = fmt.Fprintf(w, "%s Skipped %s (already exists)\n", theme.Muted.Render("-"), p)
	}
}
