package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/internal/defs"
	"github.com/qfg-dev/qfg/internal/template"
	"github.com/qfg-dev/qfg/pkg/models"
	"github.com/qfg-dev/qfg/pkg/naming"
)

// Prompt asks the user the questions artifact generation may need. Either
// method may be skipped by passing a nil Prompt: the driver then defaults to
// every configured family and existing files are kept.
type Prompt interface {
	// ChooseDriver picks the families for a project configured with "both".
	ChooseDriver(ctx context.Context, question string) (models.DriverType, error)
	// ConfirmOverwrite asks whether an existing file may be replaced; diff
	// is the unified diff from its current content to the generated one.
	ConfirmOverwrite(ctx context.Context, relPath, diff string) (bool, error)
}

// AddPageOptions configures AddPage.
type AddPageOptions struct {
	Root   string            // Project root holding .framework-config.yml.
	Name   string            // Display name, e.g. "Login Page".
	Path   string            // URL path ("/login") or absolute URL; empty means /<slug>.
	Driver models.DriverType // Empty means the configured driver.
}

// AddTestOptions configures AddTest.
type AddTestOptions struct {
	Root   string
	Name   string
	Kind   models.TestKind   // Empty means ui.
	Driver models.DriverType // UI tests only; empty means the configured driver.
}

// AddLocatorsOptions configures AddLocators.
type AddLocatorsOptions struct {
	Root      string
	Overwrite bool // Replace existing locator files without asking.
}

// AddResult lists what an add operation changed, relative to the root.
type AddResult struct {
	Written  []string
	Updated  []string // Package markers that gained an export line.
	Skipped  []string // Existing files left untouched.
	Warnings []string
}

// Adder adds artifacts to an existing project.
type Adder interface {
	AddPage(ctx context.Context, opts AddPageOptions) (*AddResult, error)
	AddTest(ctx context.Context, opts AddTestOptions) (*AddResult, error)
	AddLocators(ctx context.Context, opts AddLocatorsOptions) (*AddResult, error)
}

// artifactAdder is the concrete implementation of Adder.
type artifactAdder struct {
	catalogue *template.Catalogue
	prompt    Prompt
	logger    *slog.Logger
}

// NewAdder creates an Adder. A nil catalogue selects the embedded templates,
// a nil prompt never asks, and a nil logger discards output.
func NewAdder(catalogue *template.Catalogue, prompt Prompt, logger *slog.Logger) Adder {
	if catalogue == nil {
		catalogue = template.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &artifactAdder{catalogue: catalogue, prompt: prompt, logger: logger}
}

// AddPage writes one page object per selected family and exports it from
// the family's pages package.
func (a *artifactAdder) AddPage(ctx context.Context, opts AddPageOptions) (*AddResult, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return nil, fmt.Errorf("%w: page name is required", ErrInvalidOptions)
	}
	if err := checkPageName(opts.Name); err != nil {
		return nil, err
	}
	cfg, err := config.Load(opts.Root)
	if err != nil {
		return nil, err
	}
	families, err := a.families(ctx, opts.Driver, cfg.Driver, "Which driver should this page object target?")
	if err != nil {
		return nil, err
	}

	data := template.NewPageContext(opts.Name, resolvePageURL(cfg.BaseURL, opts.Path, opts.Name))
	module := pageModule(opts.Name)
	a.logger.Info("adding page", "name", data.DisplayName, "type", data.TypeName, "url", data.URL, "families", families)

	var arts []artifact
	for _, fam := range families {
		content, err := a.catalogue.Page(fam, data)
		if err != nil {
			return nil, err
		}
		arts = append(arts, artifact{kind: KindPage, relPath: path.Join(pagesDir(fam), module+".py"), content: content})
	}

	result := &AddResult{}
	if result.Written, err = writeArtifacts(ctx, opts.Root, arts, a.logger, nopReporter{}); err != nil {
		return result, err
	}

	line := exportLine(module, data.TypeName)
	for _, fam := range families {
		marker := path.Join(pagesDir(fam), defs.PackageMarker)
		changed, err := ensureLine(opts.Root, marker, line)
		if err != nil {
			return result, err
		}
		if changed {
			result.Updated = append(result.Updated, marker)
			a.logger.Debug("exported page", "marker", marker, "line", line)
		}
	}
	return result, nil
}

// AddTest writes a UI test per selected family, or one API test.
func (a *artifactAdder) AddTest(ctx context.Context, opts AddTestOptions) (*AddResult, error) {
	if strings.TrimSpace(opts.Name) == "" {
		return nil, fmt.Errorf("%w: test name is required", ErrInvalidOptions)
	}
	kind := opts.Kind
	if kind == "" {
		kind = models.TestKindUI
	}
	if !kind.IsValid() {
		return nil, fmt.Errorf("%w: unknown test type %q (want ui or api)", ErrInvalidOptions, kind)
	}

	cfg, err := config.Load(opts.Root)
	if err != nil {
		return nil, err
	}
	data := template.NewTestContext(opts.Name, cfg.BaseURL)

	var arts []artifact
	if kind == models.TestKindAPI {
		if !cfg.Features.APITesting {
			return nil, fmt.Errorf("%w: api_testing is not enabled in this project; re-run init with API testing enabled",
				ErrFeatureDisabled)
		}
		content, err := a.catalogue.APITest(data)
		if err != nil {
			return nil, err
		}
		arts = append(arts, artifact{kind: KindTest, relPath: apiTestPath(opts.Name), content: content})
	} else {
		families, err := a.families(ctx, opts.Driver, cfg.Driver, "Which driver should this test use?")
		if err != nil {
			return nil, err
		}
		for _, fam := range families {
			content, err := a.catalogue.UITest(fam, data)
			if err != nil {
				return nil, err
			}
			arts = append(arts, artifact{kind: KindTest, relPath: uiTestPath(fam, opts.Name), content: content})
		}
	}

	a.logger.Info("adding test", "name", data.DisplayName, "suite", data.SuiteName, "kind", kind)
	result := &AddResult{}
	result.Written, err = writeArtifacts(ctx, opts.Root, arts, a.logger, nopReporter{})
	return result, err
}

// AddLocators writes the Locator model and, for projects with a pages
// directory, example locator definitions.
func (a *artifactAdder) AddLocators(ctx context.Context, opts AddLocatorsOptions) (*AddResult, error) {
	cfg, err := config.Load(opts.Root)
	if err != nil {
		return nil, err
	}

	result := &AddResult{}
	if cfg.Driver == models.DriverPlaywright {
		result.Warnings = append(result.Warnings,
			"locator models target Selenium; Playwright pages use plain string selectors")
	}

	model, err := a.catalogue.LocatorModel()
	if err != nil {
		return nil, err
	}
	examples, err := a.catalogue.ExampleLocators()
	if err != nil {
		return nil, err
	}

	var arts []artifact
	for _, pkg := range []struct{ dir, doc string }{
		{"framework", ""},
		{defs.FrameworkModelsPath, modelsPackageDoc},
	} {
		marker := path.Join(pkg.dir, defs.PackageMarker)
		if !fileExists(opts.Root, marker) {
			arts = append(arts, artifact{kind: KindConfig, relPath: marker, content: []byte(pkg.doc)})
		}
	}

	candidates := []artifact{{kind: KindPage, relPath: path.Join(defs.FrameworkModelsPath, "locator.py"), content: model}}
	if fileExists(opts.Root, defs.PagesDir) {
		candidates = append(candidates, artifact{kind: KindPage, relPath: path.Join(defs.PagesDir, "locators.py"), content: examples})
	}
	for _, c := range candidates {
		ok, err := a.mayWrite(ctx, opts.Root, c, opts.Overwrite)
		if err != nil {
			return result, err
		}
		if !ok {
			result.Skipped = append(result.Skipped, c.relPath)
			continue
		}
		arts = append(arts, c)
	}

	result.Written, err = writeArtifacts(ctx, opts.Root, arts, a.logger, nopReporter{})
	return result, err
}

// mayWrite reports whether art may be written: it is new, overwrite was
// requested, or the prompt confirmed it. Files that already hold the
// generated content are left alone without asking.
func (a *artifactAdder) mayWrite(ctx context.Context, root string, art artifact, overwrite bool) (bool, error) {
	if overwrite {
		return true, nil
	}
	current, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(art.relPath)))
	if errors.Is(err, fs.ErrNotExist) {
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", art.relPath, err)
	}
	diff := unifiedDiff(art.relPath, current, art.content)
	if diff == "" || a.prompt == nil {
		return false, nil
	}
	return a.prompt.ConfirmOverwrite(ctx, art.relPath, diff)
}

// families resolves the families an added artifact targets. An explicit
// driver wins; a project configured with "both" asks the prompt.
func (a *artifactAdder) families(ctx context.Context, explicit, configured models.DriverType, question string) ([]models.Family, error) {
	driver := explicit
	if driver == "" {
		driver = configured
		if configured == models.DriverBoth && a.prompt != nil {
			chosen, err := a.prompt.ChooseDriver(ctx, question)
			if err != nil {
				return nil, err
			}
			if chosen != "" {
				driver = chosen
			}
		}
	}
	if !driver.IsValid() {
		return nil, fmt.Errorf("%w: unknown driver %q", ErrInvalidOptions, driver)
	}
	return driver.Families(), nil
}

// resolvePageURL joins a path onto the base URL. Paths starting with "/" are
// appended, anything else is used as an absolute URL, and an empty path
// becomes "/" + slug of the page name.
func resolvePageURL(baseURL, p, name string) string {
	base := strings.TrimRight(baseURL, "/")
	p = strings.TrimSpace(p)
	switch {
	case p == "":
		return base + "/" + naming.Slugify(name)
	case strings.HasPrefix(p, "/"):
		return base + p
	default:
		return p
	}
}
