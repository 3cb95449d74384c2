package wizard

import (
	"strings"

	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/pkg/models"
)

// BuildConfig turns wizard answers into a validated project configuration.
// It has no side effects; unknown features fail with a
// *config.ValidationError.
func BuildConfig(a Answers) (models.ProjectConfig, error) {
	driver := models.DriverType(normalize(a.Driver))
	if driver == "" {
		driver = models.DriverSelenium
	}

	var browsers []models.Browser
	for _, b := range a.Browsers {
		if b = normalize(b); b != "" {
			browsers = append(browsers, models.Browser(b))
		}
	}

	var features models.FeatureSet
	for _, f := range a.Features {
		feat := models.Feature(normalize(f))
		if feat == "" {
			continue
		}
		if !feat.IsValid() {
			return models.ProjectConfig{}, &config.ValidationError{
				Field:   "features",
				Message: "unknown feature",
				Value:   f,
			}
		}
		features = features.With(feat, true)
	}

	settings := models.DefaultSettings()
	if v := normalize(a.LoggingMode); v != "" {
		settings.LoggingMode = models.LogMode(v)
	}
	if v := normalize(a.TestDataFormat); v != "" {
		settings.TestDataFormat = models.DataFormat(v)
	}

	return config.Build(models.ProjectConfig{
		Name:     a.Name,
		BaseURL:  a.BaseURL,
		Driver:   driver,
		Browsers: browsers,
		Features: features,
		Settings: settings,
	})
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
