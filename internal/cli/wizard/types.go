// Package wizard collects the answers for a new project and turns them into
// a validated configuration.
package wizard

import (
	"errors"
)

// Answers holds the raw selections of the init wizard.
type Answers struct {
	Name           string
	BaseURL        string
	Driver         string
	Browsers       []string
	Features       []string
	TestDataFormat string
	LoggingMode    string
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect is a multiple-choice question.
	QuestionTypeMultiSelect
	// QuestionTypeConfirm is a yes/no question answered with "true" or "false".
	QuestionTypeConfirm
)

// Question defines a single wizard question.
type Question struct {
	ID          string              // Unique identifier
	Type        QuestionType        // Select, Input, MultiSelect or Confirm
	Title       string              // Question title
	Description string              // Additional description
	Options     []Option            // Options for select questions
	Default     string              // Default value (input, select, confirm)
	Required    bool                // Whether an answer is required
	Validate    func(string) error  // Optional input validation
	Condition   func(*Answers) bool // Condition for asking this question
}

// Option represents a selectable option.
type Option struct {
	Label   string // Display label
	Value   string // Actual value stored
	Desc    string // Optional description
	Checked bool   // Preselected in multi-select questions
}

// Defaults returns the answer used when the user accepts the defaults.
func (q Question) Defaults() []string {
	if q.Type == QuestionTypeMultiSelect {
		vals := []string{}
		for _, o := range q.Options {
			if o.Checked {
				vals = append(vals, o.Value)
			}
		}
		return vals
	}
	if q.Default == "" {
		return nil
	}
	return []string{q.Default}
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrUnanswered is returned when a required question has no answer.
	ErrUnanswered = errors.New("required question has no answer")
)
