package defs

import "io/fs"

// Common file names used across the project.
const (
	// ManifestYAML is the persisted generation manifest at the project root.
	ManifestYAML = ".framework-config.yml"

	// PackageMarker makes a generated directory importable as a Python package.
	PackageMarker = "__init__.py"

	// Requirements is the generated dependency manifest.
	Requirements = "requirements.txt"

	// PytestINI is the generated test-runner configuration.
	PytestINI = "pytest.ini"

	// ReadmeMD is the generated usage document.
	ReadmeMD = "README.md"

	// GitIgnore is the generated version-control ignore list.
	GitIgnore = ".gitignore"

	// RootConftest is the fixture file for the Selenium family.
	RootConftest = "conftest.py"
)

// Generated package directories.
const (
	PagesDir            = "pages"
	TestsDir            = "tests"
	PlaywrightPagesDir  = "pages_pw"
	PlaywrightTestsDir  = "tests_pw"
	TestDataSubdir      = "data"
	FrameworkModelsPath = "framework/models"
)

// Permissions for generated files and directories.
const (
	DirPerm  fs.FileMode = 0o755
	FilePerm fs.FileMode = 0o644
)
