package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/internal/defs"
)

// FindProjectRoot locates the generated project containing start by walking
// upward until a directory holding .framework-config.yml is found. An empty
// start means the working directory.
func FindProjectRoot(start string) (string, error) {
	if start == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		start = wd
	}

	absDir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for dir := absDir; ; {
		if info, err := os.Stat(filepath.Join(dir, defs.ManifestYAML)); err == nil && !info.IsDir() {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("%w in %s or any parent directory; run this command from a generated project",
				config.ErrConfigNotFound, absDir)
		}
		dir = parent
	}
}
