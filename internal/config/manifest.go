package config

import (
	"time"

	"github.com/qfg-dev/qfg/pkg/models"
	"github.com/qfg-dev/qfg/pkg/version"
)

// ManifestVersion is the schema version written to framework.version.
const ManifestVersion = "1.0.0"

// Manifest is the on-disk shape of .framework-config.yml. Field order is the
// order sections and keys are written in.
type Manifest struct {
	Framework FrameworkSection  `yaml:"framework"`
	Project   ProjectSection    `yaml:"project"`
	Driver    DriverSection     `yaml:"driver"`
	Features  models.FeatureSet `yaml:"features"`
	Settings  models.Settings   `yaml:"settings"`
}

// FrameworkSection records which generator produced the project.
type FrameworkSection struct {
	Version   string `yaml:"version"`
	Generator string `yaml:"generator"`
	Created   string `yaml:"created"`
}

// ProjectSection holds the project identity.
type ProjectSection struct {
	Name    string `yaml:"name"`
	BaseURL string `yaml:"base_url"`
}

// DriverSection holds the driver choice and Selenium browser selection.
type DriverSection struct {
	Type     models.DriverType `yaml:"type"`
	Browsers []models.Browser  `yaml:"browsers"`
}

// Serialize converts cfg into its manifest form stamped with generatedAt.
func Serialize(cfg models.ProjectConfig, generatedAt time.Time) Manifest {
	return Manifest{
		Framework: FrameworkSection{
			Version:   ManifestVersion,
			Generator: version.GeneratorName,
			Created:   generatedAt.Format(time.RFC3339),
		},
		Project: ProjectSection{
			Name:    cfg.Name,
			BaseURL: cfg.BaseURL,
		},
		Driver: DriverSection{
			Type:     cfg.Driver,
			Browsers: append([]models.Browser(nil), cfg.Browsers...),
		},
		Features: cfg.Features,
		Settings: cfg.Settings,
	}
}

// ToMapping returns the manifest as the generic mapping Parse accepts.
func (m Manifest) ToMapping() map[string]any {
	browsers := make([]any, len(m.Driver.Browsers))
	for i, b := range m.Driver.Browsers {
		browsers[i] = string(b)
	}

	features := make(map[string]any, len(models.AllFeatures()))
	for _, f := range models.AllFeatures() {
		features[string(f)] = m.Features.Enabled(f)
	}

	return map[string]any{
		"framework": map[string]any{
			"version":   m.Framework.Version,
			"generator": m.Framework.Generator,
			"created":   m.Framework.Created,
		},
		"project": map[string]any{
			"name":     m.Project.Name,
			"base_url": m.Project.BaseURL,
		},
		"driver": map[string]any{
			"type":     string(m.Driver.Type),
			"browsers": browsers,
		},
		"features": features,
		"settings": map[string]any{
			"logging_mode":     string(m.Settings.LoggingMode),
			"test_data_format": string(m.Settings.TestDataFormat),
			"playwright_async": m.Settings.PlaywrightAsync,
		},
	}
}
