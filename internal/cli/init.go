package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/qfg-dev/qfg/internal/cli/wizard"
	"github.com/qfg-dev/qfg/internal/core/project"
	"github.com/qfg-dev/qfg/internal/ui"
	"github.com/qfg-dev/qfg/pkg/models"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a new test automation project",
	Long: `Generate a new pytest automation project.

The project is created in <directory>/<project_identifier>. Options not
given as flags are asked interactively; with --non-interactive (or without
a terminal) they take their defaults.

Examples:
  qfg init
  qfg init --name "Shop QA" --base-url https://shop.example.com --driver both
  qfg init --name shop --features allure,api_testing --non-interactive
  qfg init --name shop --features none -d ./projects -f`,
	Args:    cobra.NoArgs,
	PreRunE: validateInitFlags,
	RunE:    runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)

	initCmd.Flags().String("name", "", "Project name")
	initCmd.Flags().String("base-url", "", "Base URL of the application under test")
	initCmd.Flags().StringP("directory", "d", "", "Directory in which the project is created (default: current directory)")
	initCmd.Flags().BoolP("force", "f", false, "Write into an existing non-empty project directory")
	initCmd.Flags().String("driver", "", "Driver: selenium, playwright or both")
	initCmd.Flags().String("browsers", "", "Comma-separated Selenium browsers: chrome, firefox, edge")
	initCmd.Flags().String("features", "", "Comma-separated features, or \"none\"")
	initCmd.Flags().Bool("non-interactive", false, "Skip interactive prompts; use flags and defaults")
}

// splitList splits a comma-separated flag value. "none" yields an empty,
// non-nil list.
func splitList(v string) []string {
	out := []string{}
	if strings.EqualFold(strings.TrimSpace(v), "none") {
		return out
	}
	for p := range strings.SplitSeq(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, strings.ToLower(p))
		}
	}
	return out
}

// validateInitFlags validates flag values before execution.
func validateInitFlags(cmd *cobra.Command, _ []string) error {
	if d := getStringFlag(cmd, "driver"); d != "" && !models.DriverType(strings.ToLower(d)).IsValid() {
		return fmt.Errorf("invalid --driver value %q: must be one of: selenium, playwright, both", d)
	}
	for _, b := range splitList(getStringFlag(cmd, "browsers")) {
		if !models.IsSeleniumBrowser(models.Browser(b)) {
			return fmt.Errorf("invalid --browsers value %q: must be chrome, firefox or edge", b)
		}
	}
	for _, f := range splitList(getStringFlag(cmd, "features")) {
		if !models.Feature(f).IsValid() {
			return fmt.Errorf("invalid --features value %q: must be one of: %s", f, featureList())
		}
	}
	return nil
}

func featureList() string {
	names := make([]string, 0, len(models.AllFeatures()))
	for _, f := range models.AllFeatures() {
		names = append(names, string(f))
	}
	return strings.Join(names, ", ")
}

// presetAnswers turns the flags that were set into scripted wizard answers.
func presetAnswers(cmd *cobra.Command) map[string][]string {
	preset := map[string][]string{}
	set := func(flag, question string, vals []string) {
		if cmd.Flags().Changed(flag) {
			preset[question] = vals
		}
	}
	set("name", wizard.QuestionName, []string{getStringFlag(cmd, "name")})
	set("base-url", wizard.QuestionBaseURL, []string{getStringFlag(cmd, "base-url")})
	set("driver", wizard.QuestionDriver, []string{strings.ToLower(getStringFlag(cmd, "driver"))})
	set("browsers", wizard.QuestionBrowsers, splitList(getStringFlag(cmd, "browsers")))
	set("features", wizard.QuestionFeatures, splitList(getStringFlag(cmd, "features")))
	return preset
}

// runInit collects the configuration and generates the project.
func runInit(cmd *cobra.Command, _ []string) error {
	d := deps
	ctx := commandContext(cmd)
	out := cmd.OutOrStdout()

	asker := &wizard.ScriptedAsker{Answers: presetAnswers(cmd)}
	if !getBoolFlag(cmd, "non-interactive") && d.Interactive() {
		asker.Fallback = d.Asker
		_, _ = fmt.Fprintln(out, d.Theme.Title.Render("QA Framework Generator"))
		_, _ = fmt.Fprintln(out)
	}

	answers, err := wizard.Run(ctx, asker, wizard.DefaultQuestions(wizard.Defaults{BaseURL: d.Settings.DefaultBaseURL}))
	if err != nil {
		if isCancelled(err) {
			_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Initialization cancelled.")
			return nil
		}
		if errors.Is(err, wizard.ErrUnanswered) {
			return fmt.Errorf("%w; pass it as a flag when running non-interactively", err)
		}
		return err
	}

	cfg, err := wizard.BuildConfig(*answers)
	if err != nil {
		return err
	}

	dir := getStringFlag(cmd, "directory")
	if dir == "" {
		dir = d.Settings.DefaultDirectory
	}

	result, err := d.Initializer.Initialize(ctx, project.InitOptions{
		Config:    cfg,
		TargetDir: dir,
		Force:     getBoolFlag(cmd, "force"),
		Reporter:  ui.NewReporter(d.Progress, "Generating project"),
	})
	if err != nil {
		return fmt.Errorf("initialization failed: %w", err)
	}

	features := "none"
	if list := cfg.Features.List(); len(list) > 0 {
		names := make([]string, len(list))
		for i, f := range list {
			names[i] = string(f)
		}
		features = strings.Join(names, ", ")
	}
	browsers := make([]string, len(cfg.Browsers))
	for i, b := range cfg.Browsers {
		browsers[i] = string(b)
	}

	details := renderKeyValueLines(d.Theme, []kvPair{
		{"Location", result.ProjectDir},
		{"Driver", string(cfg.Driver)},
		{"Browsers", strings.Join(browsers, ", ")},
		{"Features", features},
		{"Files", fmt.Sprintf("%d created", len(result.CreatedFiles))},
	})
	_, _ = fmt.Fprintln(out)
	_, _ = fmt.Fprintln(out, renderSuccessCard(d.Theme, fmt.Sprintf("Project '%s' created", cfg.Name), details))
	_, _ = fmt.Fprint(out, renderMarkdown(d.Theme, d.Headless.IsHeadless(),
		nextStepsMarkdown(filepath.Base(result.ProjectDir), cfg.Driver)))
	return nil
}
