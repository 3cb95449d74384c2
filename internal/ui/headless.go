package ui

import (
	"os"

	"github.com/mattn/go-isatty"
)

// HeadlessManager decides whether prompts and animations may be shown.
type HeadlessManager struct {
	forced *bool
	getenv func(string) string
	isTTY  func(fd uintptr) bool
}

// NewHeadlessManager creates a HeadlessManager that detects headless mode
// from the TTY state of os.Stdin and os.Stdout and the CI environment
// variable.
func NewHeadlessManager() *HeadlessManager {
	return &HeadlessManager{
		getenv: os.Getenv,
		isTTY: func(fd uintptr) bool {
			return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
		},
	}
}

// IsHeadless returns true when no user can answer a prompt: a forced
// override, CI=true, or stdin or stdout not being a terminal.
func (h *HeadlessManager) IsHeadless() bool {
	if h.forced != nil {
		return *h.forced
	}
	if v := h.getenv("CI"); v == "true" || v == "1" {
		return true
	}
	return !h.isTTY(os.Stdin.Fd()) || !h.isTTY(os.Stdout.Fd())
}

// ForceHeadless overrides detection. Pass true to force headless mode,
// or false to force interactive mode regardless of TTY state.
func (h *HeadlessManager) ForceHeadless(force bool) {
	h.forced = &force
}

// ClearForce reverts to automatic detection.
func (h *HeadlessManager) ClearForce() {
	h.forced = nil
}
