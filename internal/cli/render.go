package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/qfg-dev/qfg/internal/cli/wizard"
	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/internal/core/project"
	"github.com/qfg-dev/qfg/internal/ui"
	"github.com/qfg-dev/qfg/pkg/models"
)

// kvPair is one aligned line of a summary card.
type kvPair struct {
	Key   string
	Value string
}

// renderKeyValueLines aligns keys in a column.
func renderKeyValueLines(theme *ui.Theme, pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.Key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		key := p.Key + strings.Repeat(" ", width-lipgloss.Width(p.Key))
		lines[i] = theme.Muted.Render(key) + "  " + p.Value
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a success message inside a rounded border card.
func renderSuccessCard(theme *ui.Theme, title string, details ...string) string {
	var body strings.Builder
	body.WriteString(theme.Success.Render("✓") + " " + theme.Title.Render(title))
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return theme.Card.Render(body.String())
}

// renderError formats a command error with a hint for the known failures.
func renderError(err error) string {
	theme := ui.DefaultTheme()
	if deps != nil {
		theme = deps.Theme
	}

	msg := theme.Error.Render("Error:") + " " + err.Error()
	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		hint = "Run this command from a directory generated by 'qfg init'."
	case errors.Is(err, project.ErrDirectoryConflict):
		hint = "Choose another directory or re-run with --force."
	case errors.Is(err, project.ErrFeatureDisabled):
		hint = "Re-run 'qfg init' with the feature enabled."
	}
	if hint != "" {
		msg += "\n" + theme.Muted.Render(hint)
	}
	return msg
}

// nextStepsMarkdown lists what to do after init.
func nextStepsMarkdown(dirName string, driver models.DriverType) string {
	var b strings.Builder
	b.WriteString("## Next steps\n\n")
	fmt.Fprintf(&b, "1. `cd %s`\n", dirName)
	b.WriteString("2. `pip install -r requirements.txt`\n")
	n := 3
	if driver.Includes(models.FamilyPlaywright) {
		fmt.Fprintf(&b, "%d. `playwright install`\n", n)
		n++
	}
	fmt.Fprintf(&b, "%d. `qfg add-page login`\n", n)
	fmt.Fprintf(&b, "%d. `qfg add-test login`\n", n+1)
	return b.String()
}

// renderMarkdown renders markdown for the terminal, or returns it as-is
// when rendering fails.
func renderMarkdown(theme *ui.Theme, headless bool, md string) string {
	style := glamour.WithAutoStyle()
	if theme.NoColor || headless {
		style = glamour.WithStandardStyle("notty")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(80))
	if err != nil {
		return md
	}
	out, err := r.Render(md)
	if err != nil {
		return md
	}
	return out
}

// isCancelled reports whether the user aborted the wizard.
func isCancelled(err error) bool {
	return errors.Is(err, wizard.ErrCancelled)
}
