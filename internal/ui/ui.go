// Package ui provides terminal helpers shared by the commands: theme and
// styles, headless detection and progress display.
package ui

// Progress creates progress indicators.
type Progress interface {
	// Start creates a determinate progress bar with the given total.
	Start(title string, total int) ProgressBar
}

// ProgressBar tracks a determinate operation.
type ProgressBar interface {
	Increment(n int)
	SetTitle(title string)
	// Done completes the bar and releases its terminal. Safe to call twice.
	Done()
}
