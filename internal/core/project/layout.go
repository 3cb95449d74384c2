package project

import (
	"fmt"
	"path"
	"strings"

	"github.com/qfg-dev/qfg/internal/defs"
	"github.com/qfg-dev/qfg/pkg/models"
	"github.com/qfg-dev/qfg/pkg/naming"
)

// rootPackageDoc is the content of the generated root __init__.py.
const rootPackageDoc = "\"\"\"Test automation framework package.\"\"\"\n"

// modelsPackageDoc is the content of framework/models/__init__.py.
const modelsPackageDoc = "\"\"\"Models for the automation framework.\"\"\"\n"

// pagesPackageExports is the initial pages __init__.py of each family.
const pagesPackageExports = "from .base_page import BasePage\nfrom .example_page import ExamplePage\n"

// ArtifactKind classifies a generated file.
type ArtifactKind string

const (
	KindPage    ArtifactKind = "page"
	KindTest    ArtifactKind = "test"
	KindFixture ArtifactKind = "fixture"
	KindConfig  ArtifactKind = "config"
	KindDoc     ArtifactKind = "doc"
)

// artifact is one rendered file waiting to be written.
type artifact struct {
	kind    ArtifactKind
	relPath string // slash-separated, relative to the project root
	content []byte
}

// pagesDir returns the page-object directory of a family.
func pagesDir(f models.Family) string {
	if f == models.FamilyPlaywright {
		return defs.PlaywrightPagesDir
	}
	return defs.PagesDir
}

// testsDir returns the test directory of a family.
func testsDir(f models.Family) string {
	if f == models.FamilyPlaywright {
		return defs.PlaywrightTestsDir
	}
	return defs.TestsDir
}

// fixturePath returns where a family's conftest.py lives.
func fixturePath(f models.Family) string {
	if f == models.FamilyPlaywright {
		return path.Join(defs.PlaywrightTestsDir, defs.RootConftest)
	}
	return defs.RootConftest
}

// exampleTestPath returns the example test written by Initialize.
func exampleTestPath(f models.Family) string {
	if f == models.FamilyPlaywright {
		return path.Join(defs.PlaywrightTestsDir, "test_example_pw.py")
	}
	return path.Join(defs.TestsDir, "test_example.py")
}

// pageModule returns the module name for a page: the identifier with one
// trailing "_page" folded into the suffix, so "Login Page" and "login" both
// become login_page.
func pageModule(name string) string {
	return strings.TrimSuffix(naming.ToIdentifier(name), "_page") + "_page"
}

// reservedPages are the page modules and types Initialize writes; added
// pages must not replace or shadow them.
var reservedPages = map[string]bool{
	"base_page":    true,
	"example_page": true,
	"BasePage":     true,
	"ExamplePage":  true,
}

// checkPageName rejects page names whose module or type collides with the
// generated base and example pages, or that Python cannot import.
func checkPageName(name string) error {
	module, typeName := pageModule(name), naming.ToTypeName(name)
	if reservedPages[module] || reservedPages[typeName] {
		return fmt.Errorf("%w: page %q would replace the generated %s.py", ErrInvalidOptions, name, module)
	}
	if !naming.IsValidIdentifier(module) {
		return fmt.Errorf("%w: page %q maps to module %q, which is not a valid Python identifier (names must not start with a digit)",
			ErrInvalidOptions, name, module)
	}
	return nil
}

// uiTestPath returns the file of a UI test for a family.
func uiTestPath(f models.Family, name string) string {
	id := naming.ToIdentifier(name)
	if f == models.FamilyPlaywright {
		return path.Join(defs.PlaywrightTestsDir, "test_"+id+"_pw.py")
	}
	return path.Join(defs.TestsDir, "test_"+id+".py")
}

// apiTestPath returns the file of an API test.
func apiTestPath(name string) string {
	return path.Join(defs.TestsDir, "test_"+naming.ToIdentifier(name)+"_api.py")
}

// exportLine is the package-marker line that re-exports a page type.
func exportLine(module, typeName string) string {
	return "from ." + module + " import " + typeName
}
