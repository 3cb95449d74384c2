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
	"time"

	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/internal/defs"
	"github.com/qfg-dev/qfg/internal/template"
	"github.com/qfg-dev/qfg/pkg/models"
	"github.com/qfg-dev/qfg/pkg/naming"
)

// InitOptions configures project generation.
type InitOptions struct {
	Config    models.ProjectConfig // Validated project configuration.
	TargetDir string               // Parent directory; the project is created in TargetDir/<identifier>.
	Force     bool                 // Write into an existing non-empty directory.
	Reporter  Reporter             // Optional progress sink.
}

// InitResult summarizes the outcome of project generation.
type InitResult struct {
	ProjectDir   string   // Absolute path of the generated project.
	CreatedDirs  []string // Package directories, relative to ProjectDir.
	CreatedFiles []string // Written files, relative to ProjectDir, in write order.
}

// Initializer generates new projects.
type Initializer interface {
	// Initialize writes a complete project for opts.Config.
	Initialize(ctx context.Context, opts InitOptions) (*InitResult, error)
}

// projectInitializer is the concrete implementation of Initializer.
type projectInitializer struct {
	catalogue *template.Catalogue
	logger    *slog.Logger
	now       func() time.Time
}

// InitializerOption configures an Initializer.
type InitializerOption func(*projectInitializer)

// WithClock overrides the clock used for the manifest timestamp.
func WithClock(now func() time.Time) InitializerOption {
	return func(i *projectInitializer) {
		i.now = now
	}
}

// NewInitializer creates an Initializer. A nil catalogue selects the
// embedded templates; a nil logger discards output.
func NewInitializer(catalogue *template.Catalogue, logger *slog.Logger, opts ...InitializerOption) Initializer {
	if catalogue == nil {
		catalogue = template.Default()
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	i := &projectInitializer{
		catalogue: catalogue,
		logger:    logger,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// Initialize generates the project. Nothing is written when the target is in
// conflict or a template fails to render; a failing write leaves the files
// written so far in place.
func (i *projectInitializer) Initialize(ctx context.Context, opts InitOptions) (*InitResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg, err := config.Build(opts.Config)
	if err != nil {
		return nil, err
	}

	targetDir := opts.TargetDir
	if targetDir == "" {
		targetDir = "."
	}
	projectDir, err := filepath.Abs(filepath.Join(targetDir, naming.ToIdentifier(cfg.Name)))
	if err != nil {
		return nil, fmt.Errorf("resolve project directory: %w", err)
	}

	i.logger.Info("initializing project",
		"dir", projectDir,
		"name", cfg.Name,
		"driver", cfg.Driver,
		"features", cfg.Features.List(),
	)

	// Step 1: Refuse to write into an occupied directory
	if err := checkTarget(projectDir, opts.Force); err != nil {
		return nil, err
	}

	// Step 2: Render everything before touching the filesystem
	arts, err := i.plan(cfg)
	if err != nil {
		return nil, err
	}

	// Step 3: Create package directories
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	result := &InitResult{ProjectDir: projectDir}
	for _, dir := range packageDirs(cfg.Driver) {
		if err := os.MkdirAll(filepath.Join(projectDir, filepath.FromSlash(dir)), defs.DirPerm); err != nil {
			return nil, fmt.Errorf("create %s: %w", dir, err)
		}
		result.CreatedDirs = append(result.CreatedDirs, dir)
	}

	// Step 4: Write the manifest
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := config.Save(projectDir, cfg, i.now()); err != nil {
		return nil, err
	}
	result.CreatedFiles = append(result.CreatedFiles, defs.ManifestYAML)

	// Step 5: Write markers, family files and support files
	rep := opts.Reporter
	if rep == nil {
		rep = nopReporter{}
	}
	written, err := writeArtifacts(ctx, projectDir, arts, i.logger, rep)
	result.CreatedFiles = append(result.CreatedFiles, written...)
	if err != nil {
		return result, err
	}

	i.logger.Info("project initialized",
		"dir", projectDir,
		"dirs", len(result.CreatedDirs),
		"files", len(result.CreatedFiles),
	)
	return result, nil
}

// checkTarget fails when dir is a file, or a non-empty directory without force.
func checkTarget(dir string, force bool) error {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("inspect %s: %w", dir, err)
	}
	if !info.IsDir() {
		return &ConflictError{Path: dir}
	}
	if force {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	if len(entries) > 0 {
		return &ConflictError{Path: dir}
	}
	return nil
}

// packageDirs lists the directories Initialize creates, in creation order.
func packageDirs(driver models.DriverType) []string {
	var dirs []string
	for _, fam := range driver.Families() {
		dirs = append(dirs, pagesDir(fam), testsDir(fam))
	}
	return append(dirs, path.Join(defs.TestsDir, defs.TestDataSubdir))
}

// plan renders every file of a new project except the manifest.
func (i *projectInitializer) plan(cfg models.ProjectConfig) ([]artifact, error) {
	arts := []artifact{
		{kind: KindConfig, relPath: defs.PackageMarker, content: []byte(rootPackageDoc)},
	}

	for _, fam := range cfg.Driver.Families() {
		famArts, err := i.planFamily(cfg, fam)
		if err != nil {
			return nil, err
		}
		arts = append(arts, famArts...)
	}

	// tests/ always exists as the parent of tests/data.
	if !cfg.Driver.Includes(models.FamilySelenium) {
		arts = append(arts, artifact{kind: KindConfig, relPath: path.Join(defs.TestsDir, defs.PackageMarker)})
	}

	support, err := i.planSupport(cfg)
	if err != nil {
		return nil, err
	}
	return append(arts, support...), nil
}

func (i *projectInitializer) planFamily(cfg models.ProjectConfig, fam models.Family) ([]artifact, error) {
	c := i.catalogue
	pages, tests := pagesDir(fam), testsDir(fam)

	basePage, err := c.BasePage(fam, template.BasePageContext{BaseURL: cfg.BaseURL})
	if err != nil {
		return nil, err
	}
	examplePage, err := c.ExamplePage(fam, template.NewPageContext("Example", cfg.BaseURL))
	if err != nil {
		return nil, err
	}
	exampleTest, err := c.ExampleTest(fam, template.TestContext{})
	if err != nil {
		return nil, err
	}
	fixture, err := c.Fixture(fam, template.NewFixtureContext(cfg, fam))
	if err != nil {
		return nil, err
	}

	return []artifact{
		{kind: KindConfig, relPath: path.Join(pages, defs.PackageMarker), content: []byte(pagesPackageExports)},
		{kind: KindConfig, relPath: path.Join(tests, defs.PackageMarker), content: nil},
		{kind: KindPage, relPath: path.Join(pages, "base_page.py"), content: basePage},
		{kind: KindPage, relPath: path.Join(pages, "example_page.py"), content: examplePage},
		{kind: KindTest, relPath: exampleTestPath(fam), content: exampleTest},
		{kind: KindFixture, relPath: fixturePath(fam), content: fixture},
	}, nil
}

func (i *projectInitializer) planSupport(cfg models.ProjectConfig) ([]artifact, error) {
	data := template.NewProjectContext(cfg, template.WithRequirements(Requirements(cfg.Driver, cfg.Features)))

	files := []struct {
		name    template.ProjectFile
		kind    ArtifactKind
		relPath string
		enabled bool
	}{
		{template.FileRequirements, KindConfig, defs.Requirements, true},
		{template.FilePytestINI, KindConfig, defs.PytestINI, true},
		{template.FileReadme, KindDoc, defs.ReadmeMD, true},
		{template.FileGitIgnore, KindConfig, defs.GitIgnore, true},
		{template.FileTestData, KindConfig, path.Join(defs.TestsDir, defs.TestDataSubdir, "example_data."+data.DataFormat), true},
		{template.FileDockerCompose, KindConfig, "docker-compose.yml", cfg.Features.Docker},
		{template.FileCIWorkflow, KindConfig, ".github/workflows/tests.yml", cfg.Features.CICD},
		{template.FilePreCommit, KindConfig, ".pre-commit-config.yaml", cfg.Features.PreCommit},
		{template.FileSetupCfg, KindConfig, "setup.cfg", cfg.Features.QualityTools},
	}

	var arts []artifact
	for _, f := range files {
		if !f.enabled {
			continue
		}
		content, err := i.catalogue.ProjectFile(f.name, data)
		if err != nil {
			return nil, err
		}
		arts = append(arts, artifact{kind: f.kind, relPath: f.relPath, content: content})
	}
	return arts, nil
}
