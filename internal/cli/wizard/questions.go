package wizard

import (
	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/pkg/models"
)

// Question IDs.
const (
	QuestionName           = "name"
	QuestionBaseURL        = "base_url"
	QuestionDriver         = "driver"
	QuestionBrowsers       = "browsers"
	QuestionFeatures       = "features"
	QuestionTestDataFormat = "test_data_format"
	QuestionLoggingMode    = "logging_mode"
	QuestionTargetDriver   = "target_driver"
	QuestionOverwrite      = "overwrite"
	QuestionPagePath       = "page_path"
	QuestionTestKind       = "test_kind"
)

// Defaults seeds the default answers of DefaultQuestions.
type Defaults struct {
	Name    string
	BaseURL string
}

// DefaultQuestions returns the init questions in the order they are asked:
// project name, base URL, driver, Selenium browsers, features, test data
// format and logging mode.
func DefaultQuestions(d Defaults) []Question {
	return []Question{
		{
			ID:       QuestionName,
			Type:     QuestionTypeInput,
			Title:    "Project name",
			Default:  d.Name,
			Required: true,
		},
		{
			ID:          QuestionBaseURL,
			Type:        QuestionTypeInput,
			Title:       "Base URL",
			Description: "The application under test.",
			Default:     d.BaseURL,
			Required:    true,
			Validate: func(v string) error {
				_, err := config.NormalizeBaseURL(v)
				return err
			},
		},
		{
			ID:    QuestionDriver,
			Type:  QuestionTypeSelect,
			Title: "Which driver(s) do you want to use?",
			// The default option comes first; see huh's select viewport handling.
			Options: []Option{
				{Label: "Selenium WebDriver", Value: string(models.DriverSelenium)},
				{Label: "Playwright", Value: string(models.DriverPlaywright)},
				{Label: "Both (Selenium + Playwright)", Value: string(models.DriverBoth)},
			},
			Default:  string(models.DriverSelenium),
			Required: true,
		},
		{
			ID:    QuestionBrowsers,
			Type:  QuestionTypeMultiSelect,
			Title: "Select browsers to support",
			Options: []Option{
				{Label: "Chrome", Value: string(models.BrowserChrome), Checked: true},
				{Label: "Firefox", Value: string(models.BrowserFirefox)},
				{Label: "Edge", Value: string(models.BrowserEdge)},
			},
			Required: true,
			Condition: func(a *Answers) bool {
				return models.DriverType(a.Driver) != models.DriverPlaywright
			},
		},
		{
			ID:    QuestionFeatures,
			Type:  QuestionTypeMultiSelect,
			Title: "Select features to include",
			Options: []Option{
				{Label: "Docker Compose", Value: string(models.FeatureDocker), Desc: "Selenium Grid", Checked: true},
				{Label: "CI/CD", Value: string(models.FeatureCICD), Desc: "GitHub Actions", Checked: true},
				{Label: "Allure Reporting", Value: string(models.FeatureAllure), Checked: true},
				{Label: "Quality Tools", Value: string(models.FeatureQualityTools), Desc: "black, flake8, mypy, bandit", Checked: true},
				{Label: "Pre-commit Hooks", Value: string(models.FeaturePreCommit), Checked: true},
				{Label: "Parallel Execution", Value: string(models.FeatureParallel), Desc: "pytest-xdist", Checked: true},
				{Label: "Flaky Test Retry", Value: string(models.FeatureFlakyRetry)},
				{Label: "API Testing Support", Value: string(models.FeatureAPITesting), Desc: "requests"},
			},
		},
		{
			ID:    QuestionTestDataFormat,
			Type:  QuestionTypeSelect,
			Title: "Test data format",
			Options: []Option{
				{Label: "YAML", Value: string(models.DataFormatYAML)},
				{Label: "JSON", Value: string(models.DataFormatJSON)},
			},
			Default: string(models.DataFormatYAML),
		},
		{
			ID:          QuestionLoggingMode,
			Type:        QuestionTypeSelect,
			Title:       "Logging mode of the generated framework",
			Description: "json writes structured lines for CI, local writes readable console output.",
			Options: []Option{
				{Label: "JSON", Value: string(models.LogModeJSON)},
				{Label: "Local", Value: string(models.LogModeLocal)},
			},
			Default: string(models.LogModeJSON),
		},
	}
}

// TargetDriverQuestion asks which family an added artifact targets.
func TargetDriverQuestion(title string) Question {
	return Question{
		ID:    QuestionTargetDriver,
		Type:  QuestionTypeSelect,
		Title: title,
		Options: []Option{
			{Label: "Both", Value: string(models.DriverBoth)},
			{Label: "Selenium", Value: string(models.DriverSelenium)},
			{Label: "Playwright", Value: string(models.DriverPlaywright)},
		},
		Default:  string(models.DriverBoth),
		Required: true,
	}
}

// OverwriteQuestion asks before replacing an existing file, showing the
// pending change as its description.
func OverwriteQuestion(relPath, diff string) Question {
	return Question{
		ID:          QuestionOverwrite,
		Type:        QuestionTypeConfirm,
		Title:       relPath + " already exists. Overwrite?",
		Description: diff,
		Default:     "false",
	}
}

// PagePathQuestion asks for the URL path of a new page object.
func PagePathQuestion(defaultPath string) Question {
	return Question{
		ID:          QuestionPagePath,
		Type:        QuestionTypeInput,
		Title:       "Page URL path",
		Description: "Relative to the base URL (e.g. /login), or an absolute URL.",
		Default:     defaultPath,
	}
}

// TestKindQuestion asks for the kind of a new test. API is offered only
// when the project enabled API testing.
func TestKindQuestion(apiEnabled bool) Question {
	opts := []Option{{Label: "UI", Value: string(models.TestKindUI)}}
	if apiEnabled {
		opts = append(opts, Option{Label: "API", Value: string(models.TestKindAPI)})
	}
	return Question{
		ID:       QuestionTestKind,
		Type:     QuestionTypeSelect,
		Title:    "What type of test?",
		Options:  opts,
		Default:  string(models.TestKindUI),
		Required: true,
	}
}

// FilteredQuestions returns questions filtered by their conditions.
// Questions whose conditions return false are excluded.
func FilteredQuestions(questions []Question, answers *Answers) []Question {
	filtered := make([]Question, 0, len(questions))
	for _, q := range questions {
		if q.Condition == nil || q.Condition(answers) {
			filtered = append(filtered, q)
		}
	}
	return filtered
}

// QuestionByID finds a question by its ID.
func QuestionByID(questions []Question, id string) *Question {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i]
		}
	}
	return nil
}
