package template

import (
	"github.com/qfg-dev/qfg/internal/defs"
	"github.com/qfg-dev/qfg/pkg/models"
	"github.com/qfg-dev/qfg/pkg/naming"
)

// BasePageContext feeds the base page templates.
type BasePageContext struct {
	BaseURL string
}

// Validate reports the first missing required field.
func (c BasePageContext) Validate() error {
	if c.BaseURL == "" {
		return missingField("", "BaseURL")
	}
	return nil
}

// PageContext feeds page object templates.
type PageContext struct {
	DisplayName string
	TypeName    string
	Identifier  string
	URL         string
}

// NewPageContext derives the page names from a display name.
func NewPageContext(name, url string) PageContext {
	tok := naming.Tokenize(name)
	return PageContext{
		DisplayName: tok.Display,
		TypeName:    tok.TypeName,
		Identifier:  tok.Identifier,
		URL:         url,
	}
}

// Validate reports the first missing required field.
func (c PageContext) Validate() error {
	switch {
	case c.TypeName == "":
		return missingField("", "TypeName")
	case c.URL == "":
		return missingField("", "URL")
	case c.DisplayName == "":
		return missingField("", "DisplayName")
	}
	return nil
}

// TestContext feeds UI and API test templates.
type TestContext struct {
	DisplayName string
	SuiteName   string
	Identifier  string
	BaseURL     string
}

// NewTestContext derives the suite names from a display name.
func NewTestContext(name, baseURL string) TestContext {
	tok := naming.Tokenize(name)
	return TestContext{
		DisplayName: tok.Display,
		SuiteName:   naming.ToSuiteName(name),
		Identifier:  tok.Identifier,
		BaseURL:     baseURL,
	}
}

// Validate reports the first missing required field.
func (c TestContext) Validate() error {
	switch {
	case c.SuiteName == "":
		return missingField("", "SuiteName")
	case c.DisplayName == "":
		return missingField("", "DisplayName")
	}
	return nil
}

// FixtureContext feeds the conftest.py templates.
type FixtureContext struct {
	BaseURL        string
	Browsers       []string
	DefaultBrowser string
}

// NewFixtureContext selects the browsers cfg runs with under family f.
func NewFixtureContext(cfg models.ProjectConfig, f models.Family) FixtureContext {
	browsers := cfg.BrowsersFor(f)
	names := make([]string, len(browsers))
	for i, b := range browsers {
		names[i] = string(b)
	}
	fc := FixtureContext{BaseURL: cfg.BaseURL, Browsers: names}
	if len(names) > 0 {
		fc.DefaultBrowser = names[0]
	}
	return fc
}

// Validate reports the first missing required field.
func (c FixtureContext) Validate() error {
	switch {
	case c.BaseURL == "":
		return missingField("", "BaseURL")
	case len(c.Browsers) == 0:
		return missingField("", "Browsers")
	case c.DefaultBrowser == "":
		return missingField("", "DefaultBrowser")
	}
	return nil
}

// ProjectContext feeds the project-level support files.
type ProjectContext struct {
	Name             string
	BaseURL          string
	Driver           string
	Selenium         bool
	Playwright       bool
	SeleniumBrowsers []string
	Features         models.FeatureSet
	Requirements     []string
	TestPaths        []string
	DataFormat       string
}

// ProjectOption configures a ProjectContext.
type ProjectOption func(*ProjectContext)

// WithRequirements sets the requirement lines written to requirements.txt.
func WithRequirements(reqs []string) ProjectOption {
	return func(c *ProjectContext) {
		c.Requirements = append([]string(nil), reqs...)
	}
}

// NewProjectContext builds the context for cfg, then applies any options.
func NewProjectContext(cfg models.ProjectConfig, opts ...ProjectOption) *ProjectContext {
	c := &ProjectContext{
		Name:       cfg.Name,
		BaseURL:    cfg.BaseURL,
		Driver:     string(cfg.Driver),
		Selenium:   cfg.Driver.Includes(models.FamilySelenium),
		Playwright: cfg.Driver.Includes(models.FamilyPlaywright),
		Features:   cfg.Features,
		DataFormat: string(cfg.Settings.TestDataFormat),
	}
	if c.Selenium {
		for _, b := range cfg.BrowsersFor(models.FamilySelenium) {
			c.SeleniumBrowsers = append(c.SeleniumBrowsers, string(b))
		}
		c.TestPaths = append(c.TestPaths, defs.TestsDir)
	}
	if c.Playwright {
		c.TestPaths = append(c.TestPaths, defs.PlaywrightTestsDir)
	}
	if c.DataFormat == "" {
		c.DataFormat = string(models.DataFormatYAML)
	}

	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Validate reports the first missing required field.
func (c *ProjectContext) Validate() error {
	switch {
	case c == nil:
		return missingField("", "ProjectContext")
	case c.Name == "":
		return missingField("", "Name")
	case c.BaseURL == "":
		return missingField("", "BaseURL")
	case len(c.TestPaths) == 0:
		return missingField("", "TestPaths")
	}
	return nil
}
