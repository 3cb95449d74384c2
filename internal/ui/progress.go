package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// progressImpl implements the Progress interface.
type progressImpl struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
	opts     []tea.ProgramOption
}

// NewProgressWithWriter creates a Progress writing to w.
func NewProgressWithWriter(theme *Theme, hm *HeadlessManager, w io.Writer) Progress {
	return &progressImpl{theme: theme, headless: hm, writer: w}
}

// newProgressImpl creates a progressImpl with a custom writer and program
// options (for testing).
func newProgressImpl(theme *Theme, hm *HeadlessManager, w io.Writer, opts ...tea.ProgramOption) *progressImpl {
	return &progressImpl{theme: theme, headless: hm, writer: w, opts: opts}
}

// Start creates a determinate progress bar with the given total.
// In headless mode it returns a line-based progress bar.
func (p *progressImpl) Start(title string, total int) ProgressBar {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newHeadlessProgressBar(title, total, p.writer)
	}
	opts := append([]tea.ProgramOption{tea.WithOutput(p.writer)}, p.opts...)
	return newInteractiveProgressBar(p.theme, title, total, opts...)
}

// --- interactiveProgressBar ---

// progressIncrMsg is sent to increment the progress bar.
type progressIncrMsg int

// progressTitleMsg is sent to update the progress bar title.
type progressTitleMsg string

// progressDoneMsg is sent to complete the progress bar.
type progressDoneMsg struct{}

// progressModel is the bubbletea Model for the animated progress bar.
type progressModel struct {
	bar     progress.Model
	title   string
	current int
	total   int
	done    bool
}

func newProgressModel(theme *Theme, title string, total int) progressModel {
	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(40),
	)
	if !theme.NoColor {
		bar = progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(40),
		)
	}
	return progressModel{bar: bar, title: title, total: total}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressIncrMsg:
		m.current = clamp(m.current+int(msg), m.total)
		return m, nil
	case progressTitleMsg:
		m.title = string(msg)
		return m, nil
	case progressDoneMsg:
		m.current = m.total
		m.done = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.current) / float64(m.total)
	}
	return m.bar.ViewAs(pct) + " " + progressLine(m.current, m.total, m.title) + "\n"
}

// interactiveProgressBar implements ProgressBar with an animated bubbles
// progress bar. The program runs in its own goroutine until Done.
type interactiveProgressBar struct {
	program *tea.Program
	done    chan struct{}
	once    sync.Once
}

func newInteractiveProgressBar(theme *Theme, title string, total int, opts ...tea.ProgramOption) *interactiveProgressBar {
	p := tea.NewProgram(newProgressModel(theme, title, total), opts...)
	pb := &interactiveProgressBar{program: p, done: make(chan struct{})}

	go func() {
		defer close(pb.done)
		_, _ = p.Run()
	}()

	return pb
}

// Increment advances the progress by n.
func (b *interactiveProgressBar) Increment(n int) {
	b.program.Send(progressIncrMsg(n))
}

// SetTitle updates the progress bar title.
func (b *interactiveProgressBar) SetTitle(title string) {
	b.program.Send(progressTitleMsg(title))
}

// Done completes the progress bar and waits for the program goroutine.
func (b *interactiveProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		<-b.done
	})
}

// --- headlessProgressBar ---

// headlessProgressBar implements ProgressBar with plain text lines.
type headlessProgressBar struct {
	title   string
	total   int
	current int
	writer  io.Writer
	done    bool
}

func newHeadlessProgressBar(title string, total int, w io.Writer) *headlessProgressBar {
	return &headlessProgressBar{title: title, total: total, writer: w}
}

// Increment advances the progress by n and writes a line.
func (b *headlessProgressBar) Increment(n int) {
	b.current = clamp(b.current+n, b.total)
	_, _ = fmt.Fprintln(b.writer, progressLine(b.current, b.total, b.title))
}

// SetTitle updates the progress bar title.
func (b *headlessProgressBar) SetTitle(title string) {
	b.title = title
}

// Done is a no-op once every step was reported; otherwise it writes the
// final line.
func (b *headlessProgressBar) Done() {
	if b.done {
		return
	}
	b.done = true
	if b.current == b.total {
		return
	}
	b.current = b.total
	_, _ = fmt.Fprintln(b.writer, progressLine(b.current, b.total, b.title))
}

// --- Reporter ---

// Reporter adapts a ProgressBar to the Begin/Wrote/End callbacks of the
// project generator.
type Reporter struct {
	progress Progress
	title    string
	bar      ProgressBar
}

// NewReporter returns a Reporter that starts a bar titled title on Begin.
func NewReporter(p Progress, title string) *Reporter {
	return &Reporter{progress: p, title: title}
}

// Begin starts the bar.
func (r *Reporter) Begin(total int) {
	r.bar = r.progress.Start(r.title, total)
}

// Wrote advances the bar and shows the written path.
func (r *Reporter) Wrote(relPath string) {
	if r.bar == nil {
		return
	}
	r.bar.SetTitle(relPath)
	r.bar.Increment(1)
}

// End completes the bar.
func (r *Reporter) End() {
	if r.bar != nil {
		r.bar.Done()
	}
}

func progressLine(current, total int, title string) string {
	return fmt.Sprintf("[%d/%d] %s", current, total, title)
}

func clamp(v, limit int) int {
	if v > limit {
		return limit
	}
	if v < 0 {
		return 0
	}
	return v
}
