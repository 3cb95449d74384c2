package models

import "slices"

// LogMode selects the logging format of a generated project.
type LogMode string

const (
	LogModeJSON  LogMode = "json"
	LogModeLocal LogMode = "local"
)

// IsValid checks if the log mode is a valid value.
func (m LogMode) IsValid() bool {
	return m == LogModeJSON || m == LogModeLocal
}

// DataFormat is the file format of generated test data.
type DataFormat string

const (
	DataFormatYAML DataFormat = "yaml"
	DataFormatJSON DataFormat = "json"
)

// IsValid checks if the data format is a valid value.
func (f DataFormat) IsValid() bool {
	return f == DataFormatYAML || f == DataFormatJSON
}

// Settings are the generated project's runtime preferences.
type Settings struct {
	LoggingMode     LogMode    `yaml:"logging_mode"`
	TestDataFormat  DataFormat `yaml:"test_data_format"`
	PlaywrightAsync bool       `yaml:"playwright_async"`
}

// DefaultSettings returns the settings written when none are chosen.
func DefaultSettings() Settings {
	return Settings{
		LoggingMode:     LogModeJSON,
		TestDataFormat:  DataFormatYAML,
		PlaywrightAsync: true,
	}
}

// ProjectConfig is the validated description of a generated project.
// Values are built by internal/config and never mutated; the With helpers
// return modified copies.
type ProjectConfig struct {
	Name     string
	BaseURL  string
	Driver   DriverType
	Browsers []Browser
	Features FeatureSet
	Settings Settings
}

// Clone returns a deep copy of c.
func (c ProjectConfig) Clone() ProjectConfig {
	c.Browsers = slices.Clone(c.Browsers)
	return c
}

// WithDriver returns a copy of c using driver d.
func (c ProjectConfig) WithDriver(d DriverType) ProjectConfig {
	out := c.Clone()
	out.Driver = d
	return out
}

// WithBrowsers returns a copy of c with the given browser selection.
func (c ProjectConfig) WithBrowsers(browsers ...Browser) ProjectConfig {
	out := c.Clone()
	out.Browsers = slices.Clone(browsers)
	return out
}

// WithFeatures returns a copy of c with fs as its feature set.
func (c ProjectConfig) WithFeatures(fs FeatureSet) ProjectConfig {
	out := c.Clone()
	out.Features = fs
	return out
}

// WithSettings returns a copy of c with s as its settings.
func (c ProjectConfig) WithSettings(s Settings) ProjectConfig {
	out := c.Clone()
	out.Settings = s
	return out
}

// Equal reports whether c and other describe the same project.
func (c ProjectConfig) Equal(other ProjectConfig) bool {
	return c.Name == other.Name &&
		c.BaseURL == other.BaseURL &&
		c.Driver == other.Driver &&
		slices.Equal(c.Browsers, other.Browsers) &&
		c.Features == other.Features &&
		c.Settings == other.Settings
}

// BrowsersFor returns the browsers a family runs against. Playwright always
// uses its fixed set; Selenium uses the configured selection.
func (c ProjectConfig) BrowsersFor(f Family) []Browser {
	if f == FamilyPlaywright {
		return PlaywrightBrowsers()
	}
	var out []Browser
	for _, b := range c.Browsers {
		if IsSeleniumBrowser(b) {
			out = append(out, b)
		}
	}
	return out
}
