package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/qfg-dev/qfg/internal/defs"
	"github.com/qfg-dev/qfg/pkg/models"
)

// Encode renders the manifest as YAML with two-space indentation.
func Encode(m Manifest) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(m); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses manifest YAML into a generic mapping for Parse.
func Decode(data []byte) (map[string]any, error) {
	var mapping map[string]any
	if err := yaml.Unmarshal(data, &mapping); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}
	if mapping == nil {
		mapping = map[string]any{}
	}
	return mapping, nil
}

// ManifestPath returns the manifest location for a project root.
func ManifestPath(root string) string {
	return filepath.Join(filepath.Clean(root), defs.ManifestYAML)
}

// Save writes cfg as the manifest of the project at root.
func Save(root string, cfg models.ProjectConfig, now time.Time) error {
	data, err := Encode(Serialize(cfg, now))
	if err != nil {
		return err
	}
	path := ManifestPath(root)
	if err := os.WriteFile(path, data, defs.FilePerm); err != nil {
		return fmt.Errorf("write %s: %w", defs.ManifestYAML, err)
	}
	return nil
}

// Load reads and validates the manifest of the project at root.
func Load(root string) (models.ProjectConfig, error) {
	path := ManifestPath(root)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return models.ProjectConfig{}, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return models.ProjectConfig{}, fmt.Errorf("read %s: %w", defs.ManifestYAML, err)
	}

	mapping, err := Decode(data)
	if err != nil {
		return models.ProjectConfig{}, fmt.Errorf("parse %s: %w", defs.ManifestYAML, err)
	}
	cfg, err := Parse(mapping)
	if err != nil {
		return models.ProjectConfig{}, fmt.Errorf("parse %s: %w", defs.ManifestYAML, err)
	}
	return cfg, nil
}
