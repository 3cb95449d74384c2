package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/qfg-dev/qfg/pkg/models"
	"github.com/qfg-dev/qfg/pkg/naming"
)

// Parse builds a validated ProjectConfig from a generic manifest mapping,
// as produced by Decode or Manifest.ToMapping. Unknown keys are ignored.
func Parse(mapping map[string]any) (models.ProjectConfig, error) {
	var draft models.ProjectConfig

	project, err := section(mapping, "project", true)
	if err != nil {
		return models.ProjectConfig{}, err
	}
	if draft.Name, err = stringField(project, "project", "name"); err != nil {
		return models.ProjectConfig{}, err
	}
	if draft.BaseURL, err = stringField(project, "project", "base_url"); err != nil {
		return models.ProjectConfig{}, err
	}

	driver, err := section(mapping, "driver", false)
	if err != nil {
		return models.ProjectConfig{}, err
	}
	draft.Driver = models.DriverSelenium
	draft.Browsers = []models.Browser{models.BrowserChrome}
	if driver != nil {
		if v, ok := driver["type"]; ok && v != nil {
			s, ok := v.(string)
			if !ok {
				return models.ProjectConfig{}, invalid("driver.type", "must be a string", v)
			}
			draft.Driver = models.DriverType(strings.TrimSpace(s))
		}
		if v, ok := driver["browsers"]; ok && v != nil {
			if draft.Browsers, err = browserList(v); err != nil {
				return models.ProjectConfig{}, err
			}
		}
	}

	if draft.Features, err = parseFeatures(mapping); err != nil {
		return models.ProjectConfig{}, err
	}
	if draft.Settings, err = parseSettings(mapping); err != nil {
		return models.ProjectConfig{}, err
	}

	return Build(draft)
}

// Build validates and normalizes a draft configuration. The name is trimmed
// and NFC-normalized, the base URL loses its trailing slash, browsers are
// deduplicated and Playwright-only projects get the fixed Playwright set.
func Build(draft models.ProjectConfig) (models.ProjectConfig, error) {
	cfg := draft.Clone()

	cfg.Name = naming.NormalizeDisplay(cfg.Name)
	if cfg.Name == "" {
		return models.ProjectConfig{}, invalid("project.name", "required field is empty", nil)
	}

	baseURL, err := NormalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return models.ProjectConfig{}, err
	}
	cfg.BaseURL = baseURL

	if !cfg.Driver.IsValid() {
		return models.ProjectConfig{}, invalid("driver.type",
			fmt.Sprintf("must be one of: %s", driverTypeList()), string(cfg.Driver))
	}

	if cfg.Driver == models.DriverPlaywright {
		cfg.Browsers = models.PlaywrightBrowsers()
	} else {
		cfg.Browsers = dedupe(cfg.Browsers)
		if len(cfg.Browsers) == 0 {
			return models.ProjectConfig{}, invalid("driver.browsers",
				"at least one browser is required for Selenium projects", nil)
		}
		for _, b := range cfg.Browsers {
			if !models.IsSeleniumBrowser(b) {
				return models.ProjectConfig{}, invalid("driver.browsers",
					"Selenium browsers must be chrome, firefox or edge", string(b))
			}
		}
	}

	if cfg.Settings.LoggingMode == "" {
		cfg.Settings.LoggingMode = models.LogModeJSON
	}
	if !cfg.Settings.LoggingMode.IsValid() {
		return models.ProjectConfig{}, invalid("settings.logging_mode",
			"must be one of: json, local", string(cfg.Settings.LoggingMode))
	}
	if cfg.Settings.TestDataFormat == "" {
		cfg.Settings.TestDataFormat = models.DataFormatYAML
	}
	if !cfg.Settings.TestDataFormat.IsValid() {
		return models.ProjectConfig{}, invalid("settings.test_data_format",
			"must be one of: yaml, json", string(cfg.Settings.TestDataFormat))
	}

	return cfg, nil
}

// NormalizeBaseURL trims whitespace and trailing slashes and requires an
// absolute http(s) URL.
func NormalizeBaseURL(raw string) (string, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return "", invalid("project.base_url", "required field is empty", nil)
	}
	u, err := url.Parse(trimmed)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", invalid("project.base_url", "must be an absolute http(s) URL", raw)
	}
	return trimmed, nil
}

func section(mapping map[string]any, key string, required bool) (map[string]any, error) {
	v, ok := mapping[key]
	if !ok || v == nil {
		if required {
			return nil, invalid(key, "required section is missing", nil)
		}
		return nil, nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, invalid(key, "must be a mapping", v)
	}
	return m, nil
}

func stringField(m map[string]any, sectionName, key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	s, ok := v.(string)
	if !ok {
		return "", invalid(sectionName+"."+key, "must be a string", v)
	}
	return s, nil
}

func browserList(v any) ([]models.Browser, error) {
	items, ok := v.([]any)
	if !ok {
		return nil, invalid("driver.browsers", "must be a list", v)
	}
	out := make([]models.Browser, 0, len(items))
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			return nil, invalid("driver.browsers", "entries must be strings", item)
		}
		out = append(out, models.Browser(strings.ToLower(strings.TrimSpace(s))))
	}
	return out, nil
}

func parseFeatures(mapping map[string]any) (models.FeatureSet, error) {
	var fs models.FeatureSet
	features, err := section(mapping, "features", false)
	if err != nil || features == nil {
		return fs, err
	}
	for _, f := range models.AllFeatures() {
		v, ok := features[string(f)]
		if !ok || v == nil {
			continue
		}
		on, ok := v.(bool)
		if !ok {
			return fs, invalid("features."+string(f), "must be a boolean", v)
		}
		fs = fs.With(f, on)
	}
	return fs, nil
}

func parseSettings(mapping map[string]any) (models.Settings, error) {
	s := models.DefaultSettings()
	settings, err := section(mapping, "settings", false)
	if err != nil || settings == nil {
		return s, err
	}
	mode, err := stringField(settings, "settings", "logging_mode")
	if err != nil {
		return s, err
	}
	if mode != "" {
		s.LoggingMode = models.LogMode(mode)
	}
	format, err := stringField(settings, "settings", "test_data_format")
	if err != nil {
		return s, err
	}
	if format != "" {
		s.TestDataFormat = models.DataFormat(format)
	}
	if v, ok := settings["playwright_async"]; ok && v != nil {
		async, ok := v.(bool)
		if !ok {
			return s, invalid("settings.playwright_async", "must be a boolean", v)
		}
		s.PlaywrightAsync = async
	}
	return s, nil
}

func dedupe(browsers []models.Browser) []models.Browser {
	seen := make(map[models.Browser]bool, len(browsers))
	out := make([]models.Browser, 0, len(browsers))
	for _, b := range browsers {
		if seen[b] {
			continue
		}
		seen[b] = true
		out = append(out, b)
	}
	return out
}

func driverTypeList() string {
	valid := models.ValidDriverTypes()
	names := make([]string, len(valid))
	for i, d := range valid {
		names[i] = string(d)
	}
	return strings.Join(names, ", ")
}
