// Package logging builds the process logger from tool settings.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/qfg-dev/qfg/pkg/models"
)

// Options configures New.
type Options struct {
	Mode   models.LogMode // json or local; empty means local.
	Level  string         // debug, info, warn, error; empty means info.
	Writer io.Writer      // Defaults to os.Stderr.
	Prefix string
}

// New returns a logger writing JSON lines in json mode and human-readable
// timestamped lines in local mode.
func New(opts Options) (*log.Logger, error) {
	mode := opts.Mode
	if mode == "" {
		mode = models.LogModeLocal
	}
	if !mode.IsValid() {
		return nil, fmt.Errorf("logging: unknown mode %q (want json or local)", mode)
	}

	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	w := opts.Writer
	if w == nil {
		w = os.Stderr
	}

	o := log.Options{
		Level:           level,
		Prefix:          opts.Prefix,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Formatter:       log.TextFormatter,
	}
	if mode == models.LogModeJSON {
		o.TimeFormat = time.RFC3339
		o.Formatter = log.JSONFormatter
	}
	return log.NewWithOptions(w, o), nil
}

// ParseLevel parses a level name. An empty name means info.
func ParseLevel(name string) (log.Level, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return log.InfoLevel, nil
	}
	level, err := log.ParseLevel(name)
	if err != nil {
		return 0, fmt.Errorf("logging: level %q: %w", name, err)
	}
	return level, nil
}

// Slog adapts l for packages that accept a *slog.Logger.
func Slog(l *log.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(l)
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{Level: log.FatalLevel})
}
