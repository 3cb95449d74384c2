package ui

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/goleak"
)

// testProgramOptions run a tea.Program without a TTY.
var testProgramOptions = []tea.ProgramOption{
	tea.WithInput(nil),
	tea.WithoutRenderer(),
	tea.WithoutSignalHandler(),
}

func testTheme() *Theme {
	return NewTheme(ThemeConfig{Mode: "dark"})
}

func interactiveManager() *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(false)
	return hm
}

func headlessManager() *HeadlessManager {
	hm := NewHeadlessManager()
	hm.ForceHeadless(true)
	return hm
}

func TestHeadlessProgressBar_Lines(t *testing.T) {
	var buf strings.Builder
	bar := newProgressImpl(testTheme(), headlessManager(), &buf).Start("Generating", 3)

	bar.Increment(1)
	bar.SetTitle("pages/base_page.py")
	bar.Increment(1)
	bar.Increment(5)
	bar.Done()
	bar.Done()

	want := "[1/3] Generating\n[2/3] pages/base_page.py\n[3/3] pages/base_page.py\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestHeadlessProgressBar_DoneCompletes(t *testing.T) {
	var buf strings.Builder
	bar := newProgressImpl(testTheme(), headlessManager(), &buf).Start("Generating", 4)

	bar.Increment(1)
	bar.Done()

	if got := buf.String(); !strings.HasSuffix(got, "[4/4] Generating\n") {
		t.Errorf("Done() should report completion, got %q", got)
	}
}

func TestProgress_NoColorIsHeadless(t *testing.T) {
	var buf strings.Builder
	theme := NewTheme(ThemeConfig{NoColor: true})
	bar := newProgressImpl(theme, interactiveManager(), &buf).Start("Plain", 1)

	if _, ok := bar.(*headlessProgressBar); !ok {
		t.Fatalf("NoColor theme should select the headless bar, got %T", bar)
	}
	bar.Increment(1)
	bar.Done()
}

func TestInteractiveProgressBar_StopsGoroutine(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	prog := newProgressImpl(testTheme(), interactiveManager(), io.Discard, testProgramOptions...)
	bar := prog.Start("Generating", 4)
	if _, ok := bar.(*interactiveProgressBar); !ok {
		t.Fatalf("expected interactive bar, got %T", bar)
	}

	bar.Increment(2)
	bar.SetTitle("tests/test_example.py")
	bar.Increment(2)
	bar.Done()
	bar.Done()
}

func TestReporter(t *testing.T) {
	var buf strings.Builder
	rep := NewReporter(newProgressImpl(testTheme(), headlessManager(), &buf), "Writing files")

	rep.Wrote("ignored before Begin")
	rep.Begin(2)
	rep.Wrote("README.md")
	rep.Wrote("pytest.ini")
	rep.End()

	want := "[1/2] README.md\n[2/2] pytest.ini\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestReporter_Interactive(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	rep := NewReporter(newProgressImpl(testTheme(), interactiveManager(), io.Discard, testProgramOptions...), "Writing files")
	rep.Begin(1)
	rep.Wrote("README.md")
	rep.End()
}

func TestProgressModel_Update(t *testing.T) {
	m := newProgressModel(testTheme(), "Generating", 3)

	updated, _ := m.Update(progressIncrMsg(5))
	m = updated.(progressModel)
	if m.current != 3 {
		t.Errorf("current = %d, want clamped 3", m.current)
	}

	updated, _ = m.Update(progressTitleMsg("README.md"))
	m = updated.(progressModel)
	if !strings.Contains(m.View(), "[3/3] README.md") {
		t.Errorf("View() = %q", m.View())
	}

	updated, _ = m.Update(progress.FrameMsg{})
	if updated.(progressModel).done {
		t.Error("FrameMsg should not finish the bar")
	}

	updated, cmd := m.Update(progressDoneMsg{})
	m = updated.(progressModel)
	if !m.done || cmd == nil {
		t.Error("progressDoneMsg should finish the bar and quit")
	}
	if m.View() != "" {
		t.Errorf("finished bar should render nothing, got %q", m.View())
	}
}

func TestProgressModel_CtrlC(t *testing.T) {
	m := newProgressModel(NewTheme(ThemeConfig{NoColor: true}), "x", 1)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if !updated.(progressModel).done || cmd == nil {
		t.Error("ctrl+c should quit")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct{ v, limit, want int }{
		{2, 5, 2},
		{7, 5, 5},
		{-1, 5, 0},
	}
	for _, tt := range tests {
		if got := clamp(tt.v, tt.limit); got != tt.want {
			t.Errorf("clamp(%d, %d) = %d, want %d", tt.v, tt.limit, got, tt.want)
		}
	}
}
