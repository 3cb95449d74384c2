// Package cli provides the Cobra command tree and dependency injection
// wiring for qfg. This file defines the Dependencies struct (Composition
// Root) that wires all domain modules together.
package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/log"

	"github.com/qfg-dev/qfg/internal/cli/wizard"
	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/internal/core/project"
	"github.com/qfg-dev/qfg/internal/logging"
	"github.com/qfg-dev/qfg/internal/template"
	"github.com/qfg-dev/qfg/internal/ui"
)

// Dependencies holds the services used by CLI commands.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Settings    config.Settings
	Logger      *log.Logger
	Theme       *ui.Theme
	Headless    *ui.HeadlessManager
	Progress    ui.Progress
	Catalogue   *template.Catalogue
	Initializer project.Initializer
	// Asker prompts the user; nil means questions take their defaults.
	Asker wizard.Asker
}

// deps is the global dependencies instance, initialized by the root
// command's PersistentPreRunE.
var deps *Dependencies

// NewDependencies creates and wires all dependencies. Logs go to logOut,
// progress to os.Stdout.
func NewDependencies(settings config.Settings, logOut io.Writer) (*Dependencies, error) {
	logger, err := logging.New(logging.Options{
		Mode:   settings.LogMode,
		Level:  settings.LogLevel,
		Writer: logOut,
	})
	if err != nil {
		return nil, err
	}

	theme := ui.DefaultTheme()
	hm := ui.NewHeadlessManager()
	catalogue := template.Default()

	d := &Dependencies{
		Settings:    settings,
		Logger:      logger,
		Theme:       theme,
		Headless:    hm,
		Progress:    ui.NewProgressWithWriter(theme, hm, os.Stdout),
		Catalogue:   catalogue,
		Initializer: project.NewInitializer(catalogue, logging.Slog(logger)),
	}
	if !hm.IsHeadless() {
		d.Asker = wizard.NewHuhAsker(theme)
	}
	return d, nil
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// slogger returns the logger in the form the core packages accept.
func (d *Dependencies) slogger() *slog.Logger {
	return logging.Slog(d.Logger)
}

// Interactive reports whether questions can be put to the user.
func (d *Dependencies) Interactive() bool {
	return d.Asker != nil
}

// NewAdder returns an Adder whose prompt asks the user when interactive.
func (d *Dependencies) NewAdder() project.Adder {
	var prompt project.Prompt
	if d.Interactive() {
		prompt = wizard.NewPrompt(d.Asker)
	}
	return project.NewAdder(d.Catalogue, prompt, d.slogger())
}
