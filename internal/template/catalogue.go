package template

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sort"

	"github.com/qfg-dev/qfg/pkg/models"
)

//go:embed templates
var embedded embed.FS

// EmbeddedFS returns the built-in template tree rooted at templates/.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embedded, "templates")
	if err != nil {
		// templates/ is embedded at build time; Sub cannot fail for it.
		panic(err)
	}
	return sub
}

// ProjectFile names a project-level support file.
type ProjectFile string

const (
	FileReadme        ProjectFile = "README.md"
	FilePytestINI     ProjectFile = "pytest.ini"
	FileRequirements  ProjectFile = "requirements.txt"
	FileGitIgnore     ProjectFile = "gitignore"
	FileTestData      ProjectFile = "example_data"
	FileDockerCompose ProjectFile = "docker-compose.yml"
	FileCIWorkflow    ProjectFile = "tests.yml"
	FilePreCommit     ProjectFile = "pre-commit-config.yaml"
	FileSetupCfg      ProjectFile = "setup.cfg"
)

// Catalogue renders the fixed set of generated files. Every method is a pure
// function of its arguments.
type Catalogue struct {
	fsys fs.FS
	r    Renderer
}

// NewCatalogue creates a Catalogue over a template tree laid out like
// EmbeddedFS.
func NewCatalogue(fsys fs.FS) *Catalogue {
	return &Catalogue{fsys: fsys, r: NewRenderer(fsys)}
}

// Default returns a Catalogue over the embedded templates.
func Default() *Catalogue {
	return NewCatalogue(EmbeddedFS())
}

// BasePage renders the family's base page class.
func (c *Catalogue) BasePage(f models.Family, data BasePageContext) ([]byte, error) {
	return c.render(familyPath(f, "base_page.py"), data)
}

// ExamplePage renders the example page object written by init.
func (c *Catalogue) ExamplePage(f models.Family, data PageContext) ([]byte, error) {
	return c.render(familyPath(f, "example_page.py"), data)
}

// Page renders a page object added to an existing project.
func (c *Catalogue) Page(f models.Family, data PageContext) ([]byte, error) {
	return c.render(familyPath(f, "page.py"), data)
}

// ExampleTest renders the example test written by init. It takes no
// context fields.
func (c *Catalogue) ExampleTest(f models.Family, data TestContext) ([]byte, error) {
	return c.renderUnchecked(familyPath(f, "example_test.py"), data)
}

// UITest renders a UI test added to an existing project.
func (c *Catalogue) UITest(f models.Family, data TestContext) ([]byte, error) {
	return c.render(familyPath(f, "ui_test.py"), data)
}

// APITest renders an API test. API tests use requests and are
// driver-independent.
func (c *Catalogue) APITest(data TestContext) ([]byte, error) {
	const name = "api/api_test.py.tmpl"
	if data.BaseURL == "" {
		return nil, missingField(name, "BaseURL")
	}
	return c.render(name, data)
}

// Fixture renders the family's conftest.py.
func (c *Catalogue) Fixture(f models.Family, data FixtureContext) ([]byte, error) {
	return c.render(familyPath(f, "conftest.py"), data)
}

// LocatorModel renders framework/models/locator.py.
func (c *Catalogue) LocatorModel() ([]byte, error) {
	return c.renderUnchecked("locators/locator.py.tmpl", nil)
}

// ExampleLocators renders pages/locators.py.
func (c *Catalogue) ExampleLocators() ([]byte, error) {
	return c.renderUnchecked("locators/locators.py.tmpl", nil)
}

// ProjectFile renders one project-level support file.
func (c *Catalogue) ProjectFile(name ProjectFile, data *ProjectContext) ([]byte, error) {
	tmpl := "project/" + string(name) + ".tmpl"
	if name == FileTestData && data != nil {
		tmpl = "project/" + string(name) + "." + data.DataFormat + ".tmpl"
	}
	return c.render(tmpl, data)
}

// Templates lists every template in the catalogue, sorted.
func (c *Catalogue) Templates() ([]string, error) {
	var names []string
	err := fs.WalkDir(c.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && path.Ext(p) == ".tmpl" {
			names = append(names, p)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	sort.Strings(names)
	return names, nil
}

type validator interface {
	Validate() error
}

func (c *Catalogue) render(name string, data validator) ([]byte, error) {
	if err := data.Validate(); err != nil {
		var te *TemplateError
		if errors.As(err, &te) {
			te.Template = name
		}
		return nil, err
	}
	return c.renderUnchecked(name, data)
}

func (c *Catalogue) renderUnchecked(name string, data any) ([]byte, error) {
	out, err := c.r.Render(name, data)
	if err != nil {
		return nil, &TemplateError{Template: name, Err: err}
	}
	return out, nil
}

func familyPath(f models.Family, file string) string {
	return string(f) + "/" + file + ".tmpl"
}
