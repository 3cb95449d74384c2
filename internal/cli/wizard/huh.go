package wizard

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/qfg-dev/qfg/internal/ui"
)

// huhAsker asks each question as its own huh.Form.
type huhAsker struct {
	theme *huh.Theme
}

// NewHuhAsker returns an Asker that prompts on the terminal.
func NewHuhAsker(theme *ui.Theme) Asker {
	if theme == nil {
		theme = ui.DefaultTheme()
	}
	return &huhAsker{theme: newWizardTheme(theme)}
}

// Ask implements Asker. Each question runs as its own independent huh.Form
// to avoid the huh v0.8.x YOffset scroll bug that occurs when multiple
// groups share a single viewport.
func (h *huhAsker) Ask(ctx context.Context, q Question) ([]string, error) {
	var (
		field   huh.Field
		collect func() []string
	)

	switch q.Type {
	case QuestionTypeInput:
		field, collect = buildInputField(&q)
	case QuestionTypeSelect:
		field, collect = buildSelectField(&q)
	case QuestionTypeMultiSelect:
		field, collect = buildMultiSelectField(&q)
	case QuestionTypeConfirm:
		field, collect = buildConfirmField(&q)
	default:
		return nil, fmt.Errorf("wizard: question %q has unknown type %d", q.ID, q.Type)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(h.theme).
		WithAccessible(false)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("wizard error: %w", err)
	}
	return collect(), nil
}

// buildInputField creates a huh.Input for an input question. An empty
// answer takes the default.
func buildInputField(q *Question) (huh.Field, func() []string) {
	var value string

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	resolve := func(val string) string {
		v := strings.TrimSpace(val)
		if v == "" {
			v = q.Default
		}
		return v
	}

	inp = inp.Validate(func(val string) error {
		v := resolve(val)
		if q.Required && v == "" {
			return errors.New("this field is required")
		}
		if q.Validate != nil && v != "" {
			return q.Validate(v)
		}
		return nil
	})

	return inp, func() []string { return []string{resolve(value)} }
}

// buildSelectField creates a huh.Select for a select question.
//
// Options are static (no OptionsFunc and no Height call) so huh sizes the
// viewport to the option count and never resets its YOffset.
func buildSelectField(q *Question) (huh.Field, func() []string) {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(optionKey(opt), opt.Value)
	}

	sel := huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)

	return sel, func() []string { return []string{selected} }
}

// buildMultiSelectField creates a huh.MultiSelect with checked options
// preselected.
func buildMultiSelectField(q *Question) (huh.Field, func() []string) {
	var selected []string

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		opts[i] = huh.NewOption(optionKey(opt), opt.Value).Selected(opt.Checked)
	}

	ms := huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected)
	if q.Required {
		ms = ms.Validate(func(vals []string) error {
			if len(vals) == 0 {
				return errors.New("select at least one option")
			}
			return nil
		})
	}

	return ms, func() []string { return append([]string{}, selected...) }
}

// buildConfirmField creates a huh.Confirm answered with "true" or "false".
func buildConfirmField(q *Question) (huh.Field, func() []string) {
	value := q.Default == "true"

	c := huh.NewConfirm().
		Title(q.Title).
		Description(q.Description).
		Value(&value)

	return c, func() []string { return []string{strconv.FormatBool(value)} }
}

func optionKey(opt Option) string {
	if opt.Desc != "" {
		return opt.Label + " - " + opt.Desc
	}
	return opt.Label
}

// newWizardTheme maps a ui.Theme onto a huh.Theme.
func newWizardTheme(th *ui.Theme) *huh.Theme {
	t := huh.ThemeBase()
	if th.NoColor {
		return t
	}

	c := th.Colors
	primary := lipgloss.Color(c.Primary)
	secondary := lipgloss.Color(c.Secondary)
	green := lipgloss.Color(c.Success)
	red := lipgloss.Color(c.Error)
	text := lipgloss.Color(c.Text)
	muted := lipgloss.Color(c.Muted)
	border := lipgloss.Color(c.Border)

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.NoteTitle = t.Focused.NoteTitle.Foreground(primary).Bold(true).MarginBottom(1)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(primary).SetString("▸ ")
	t.Focused.NextIndicator = t.Focused.NextIndicator.Foreground(primary)
	t.Focused.PrevIndicator = t.Focused.PrevIndicator.Foreground(primary)
	t.Focused.Option = t.Focused.Option.Foreground(text)
	t.Focused.MultiSelectSelector = t.Focused.MultiSelectSelector.Foreground(primary)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(green)
	t.Focused.SelectedPrefix = lipgloss.NewStyle().Foreground(green).SetString("◆ ")
	t.Focused.UnselectedOption = t.Focused.UnselectedOption.Foreground(text)
	t.Focused.UnselectedPrefix = lipgloss.NewStyle().Foreground(muted).SetString("◇ ")
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)
	t.Focused.FocusedButton = t.Focused.FocusedButton.Foreground(lipgloss.Color("#FFFFFF")).Background(primary)
	t.Focused.BlurredButton = t.Focused.BlurredButton.Foreground(text).Background(border)
	t.Focused.Next = t.Focused.FocusedButton

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base
	t.Blurred.NextIndicator = lipgloss.NewStyle()
	t.Blurred.PrevIndicator = lipgloss.NewStyle()

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description

	return t
}
