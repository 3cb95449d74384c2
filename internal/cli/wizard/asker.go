package wizard

import (
	"context"
	"fmt"
	"strings"
)

// Asker answers one question at a time. Input, select and confirm questions
// yield one value; multi-select questions yield the selected values.
type Asker interface {
	Ask(ctx context.Context, q Question) ([]string, error)
}

// Run asks every question whose condition holds, in order, and collects the
// answers.
func Run(ctx context.Context, asker Asker, questions []Question) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := &Answers{}
	for i := range questions {
		q := &questions[i]

		if q.Condition != nil && !q.Condition(answers) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vals, err := asker.Ask(ctx, *q)
		if err != nil {
			return nil, err
		}
		if q.Required && (len(vals) == 0 || (q.Type != QuestionTypeMultiSelect && strings.TrimSpace(vals[0]) == "")) {
			return nil, fmt.Errorf("%w: %s", ErrUnanswered, q.ID)
		}
		saveAnswer(q.ID, vals, answers)
	}

	return answers, nil
}

// saveAnswer stores an answer in the result.
func saveAnswer(id string, vals []string, a *Answers) {
	first := ""
	if len(vals) > 0 {
		first = strings.TrimSpace(vals[0])
	}

	switch id {
	case QuestionName:
		a.Name = first
	case QuestionBaseURL:
		a.BaseURL = first
	case QuestionDriver:
		a.Driver = first
	case QuestionBrowsers:
		a.Browsers = append([]string(nil), vals...)
	case QuestionFeatures:
		a.Features = append([]string(nil), vals...)
	case QuestionTestDataFormat:
		a.TestDataFormat = first
	case QuestionLoggingMode:
		a.LoggingMode = first
	}
}

// ScriptedAsker answers from a fixed map of question IDs to values. Questions
// without a scripted answer go to Fallback, or take their defaults when
// Fallback is nil. It backs non-interactive runs and tests.
type ScriptedAsker struct {
	Answers  map[string][]string
	Fallback Asker

	asked []string
}

// Ask implements Asker.
func (s *ScriptedAsker) Ask(ctx context.Context, q Question) ([]string, error) {
	s.asked = append(s.asked, q.ID)

	if vals, ok := s.Answers[q.ID]; ok {
		if q.Validate != nil && len(vals) > 0 {
			if err := q.Validate(vals[0]); err != nil {
				return nil, err
			}
		}
		return vals, nil
	}
	if s.Fallback != nil {
		return s.Fallback.Ask(ctx, q)
	}
	return q.Defaults(), nil
}

// Asked returns the IDs of the questions asked so far.
func (s *ScriptedAsker) Asked() []string {
	return append([]string(nil), s.asked...)
}
