package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qfg-dev/qfg/internal/config"
	"github.com/qfg-dev/qfg/pkg/models"
)

// fakePrompt answers prompts from fixed values and records the questions.
type fakePrompt struct {
	driver    models.DriverType
	overwrite bool
	err       error
	asked     []string
	diffs     []string
}

func (p *fakePrompt) ChooseDriver(_ context.Context, question string) (models.DriverType, error) {
	p.asked = append(p.asked, question)
	return p.driver, p.err
}

func (p *fakePrompt) ConfirmOverwrite(_ context.Context, relPath, diff string) (bool, error) {
	p.asked = append(p.asked, relPath)
	p.diffs = append(p.diffs, diff)
	return p.overwrite, p.err
}

// newProject generates a project in a temp dir and returns its root.
func newProject(t *testing.T, cfg models.ProjectConfig) string {
	t.Helper()
	result, err := newTestInitializer().Initialize(context.Background(), InitOptions{
		Config:    cfg,
		TargetDir: t.TempDir(),
	})
	require.NoError(t, err)
	return result.ProjectDir
}

func TestAddPage_DefaultURL(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))

	result, err := NewAdder(nil, nil, nil).AddPage(context.Background(), AddPageOptions{Root: root, Name: "Login Page"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/login_page.py"}, result.Written)
	assert.Equal(t, []string{"pages/__init__.py"}, result.Updated)

	page := readFile(t, filepath.Join(root, "pages", "login_page.py"))
	assert.Contains(t, page, "class LoginPage(BasePage):")
	assert.Contains(t, page, "https://shop.example.com/login-page")

	marker := readFile(t, filepath.Join(root, "pages", "__init__.py"))
	assert.True(t, strings.HasSuffix(marker, "from .login_page import LoginPage\n"), marker)
}

func TestAddPage_ExplicitPath(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))

	_, err := NewAdder(nil, nil, nil).AddPage(context.Background(), AddPageOptions{Root: root, Name: "Cart", Path: "/cart.html"})
	require.NoError(t, err)

	page := readFile(t, filepath.Join(root, "pages", "cart_page.py"))
	assert.Contains(t, page, "class CartPage(BasePage):")
	assert.Contains(t, page, "https://shop.example.com/cart.html")
}

func TestAddPage_Idempotent(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))
	adder := NewAdder(nil, nil, nil)
	opts := AddPageOptions{Root: root, Name: "Login Page"}

	_, err := adder.AddPage(context.Background(), opts)
	require.NoError(t, err)
	first := readFile(t, filepath.Join(root, "pages", "login_page.py"))

	result, err := adder.AddPage(context.Background(), opts)
	require.NoError(t, err)
	assert.Empty(t, result.Updated)
	assert.Equal(t, first, readFile(t, filepath.Join(root, "pages", "login_page.py")))

	marker := readFile(t, filepath.Join(root, "pages", "__init__.py"))
	assert.Equal(t, 1, strings.Count(marker, "from .login_page import LoginPage"))
}

func TestAddPage_BothAsksPrompt(t *testing.T) {
	root := newProject(t, testConfig(models.DriverBoth))
	prompt := &fakePrompt{driver: models.DriverPlaywright}

	result, err := NewAdder(nil, prompt, nil).AddPage(context.Background(), AddPageOptions{Root: root, Name: "Login"})
	require.NoError(t, err)
	assert.Len(t, prompt.asked, 1)
	assert.Equal(t, []string{"pages_pw/login_page.py"}, result.Written)
	assert.NoFileExists(t, filepath.Join(root, "pages", "login_page.py"))
}

func TestAddPage_BothWithoutPromptWritesBoth(t *testing.T) {
	root := newProject(t, testConfig(models.DriverBoth))

	result, err := NewAdder(nil, nil, nil).AddPage(context.Background(), AddPageOptions{Root: root, Name: "Login"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/login_page.py", "pages_pw/login_page.py"}, result.Written)
	assert.Equal(t, []string{"pages/__init__.py", "pages_pw/__init__.py"}, result.Updated)
}

func TestAddPage_ExplicitDriverSkipsPrompt(t *testing.T) {
	root := newProject(t, testConfig(models.DriverBoth))
	prompt := &fakePrompt{driver: models.DriverPlaywright}

	result, err := NewAdder(nil, prompt, nil).AddPage(context.Background(), AddPageOptions{
		Root: root, Name: "Login", Driver: models.DriverSelenium,
	})
	require.NoError(t, err)
	assert.Empty(t, prompt.asked)
	assert.Equal(t, []string{"pages/login_page.py"}, result.Written)
}

func TestAddPage_PromptError(t *testing.T) {
	root := newProject(t, testConfig(models.DriverBoth))
	boom := errors.New("aborted")

	_, err := NewAdder(nil, &fakePrompt{err: boom}, nil).AddPage(context.Background(), AddPageOptions{Root: root, Name: "Login"})
	assert.ErrorIs(t, err, boom)
	assert.NoFileExists(t, filepath.Join(root, "pages", "login_page.py"))
}

func TestAddPage_Errors(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))
	adder := NewAdder(nil, nil, nil)

	_, err := adder.AddPage(context.Background(), AddPageOptions{Root: root, Name: "  "})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = adder.AddPage(context.Background(), AddPageOptions{Root: root, Name: "Login", Driver: "cypress"})
	assert.ErrorIs(t, err, ErrInvalidOptions)

	_, err = adder.AddPage(context.Background(), AddPageOptions{Root: t.TempDir(), Name: "Login"})
	assert.ErrorIs(t, err, config.ErrConfigNotFound)
}

func TestAddPage_ReservedNames(t *testing.T) {
	root := newProject(t, testConfig(models.DriverBoth))
	basePage := readFile(t, filepath.Join(root, "pages", "base_page.py"))
	marker := readFile(t, filepath.Join(root, "pages", "__init__.py"))
	adder := NewAdder(nil, nil, nil)

	for _, name := range []string{"Base Page", "base", "Example Page", "Example", "BasePage", "ExamplePage"} {
		t.Run(name, func(t *testing.T) {
			result, err := adder.AddPage(context.Background(), AddPageOptions{Root: root, Name: name})
			assert.ErrorIs(t, err, ErrInvalidOptions)
			assert.Nil(t, result)
		})
	}

	assert.Equal(t, basePage, readFile(t, filepath.Join(root, "pages", "base_page.py")))
	assert.Contains(t, basePage, "_wait_with_retry")
	assert.Equal(t, marker, readFile(t, filepath.Join(root, "pages", "__init__.py")))
	assert.NoFileExists(t, filepath.Join(root, "pages", "basepage_page.py"))
}

func TestAddPage_LeadingDigit(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))
	marker := readFile(t, filepath.Join(root, "pages", "__init__.py"))

	_, err := NewAdder(nil, nil, nil).AddPage(context.Background(), AddPageOptions{Root: root, Name: "2FA Setup"})
	assert.ErrorIs(t, err, ErrInvalidOptions)
	assert.Contains(t, err.Error(), "2fa_setup_page")
	assert.NoFileExists(t, filepath.Join(root, "pages", "2fa_setup_page.py"))
	assert.Equal(t, marker, readFile(t, filepath.Join(root, "pages", "__init__.py")))

	// A digit after the first token is fine.
	result, err := NewAdder(nil, nil, nil).AddPage(context.Background(), AddPageOptions{Root: root, Name: "Setup 2FA"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/setup_2fa_page.py"}, result.Written)
	assert.Contains(t, readFile(t, filepath.Join(root, "pages", "__init__.py")), "from .setup_2fa_page import Setup2FAPage\n")
}

func TestAddTest_LeadingDigit(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))

	// Test modules carry a test_ prefix, so a leading digit stays importable.
	result, err := NewAdder(nil, nil, nil).AddTest(context.Background(), AddTestOptions{Root: root, Name: "2FA Setup"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tests/test_2fa_setup.py"}, result.Written)
	assert.Contains(t, readFile(t, filepath.Join(root, "tests", "test_2fa_setup.py")), "class Test2FASetup")
}

func TestAddTest_UI(t *testing.T) {
	root := newProject(t, testConfig(models.DriverBoth))

	result, err := NewAdder(nil, nil, nil).AddTest(context.Background(), AddTestOptions{Root: root, Name: "User Login"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tests/test_user_login.py", "tests_pw/test_user_login_pw.py"}, result.Written)

	assert.Contains(t, readFile(t, filepath.Join(root, "tests", "test_user_login.py")), "class TestUserLogin")
	assert.Contains(t, readFile(t, filepath.Join(root, "tests_pw", "test_user_login_pw.py")), "class TestUserLoginPlaywright")
}

func TestAddTest_APIRequiresFeature(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))

	_, err := NewAdder(nil, nil, nil).AddTest(context.Background(), AddTestOptions{
		Root: root, Name: "Users", Kind: models.TestKindAPI,
	})
	assert.ErrorIs(t, err, ErrFeatureDisabled)
	assert.NoFileExists(t, filepath.Join(root, "tests", "test_users_api.py"))
}

func TestAddTest_API(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium, models.FeatureAPITesting))

	result, err := NewAdder(nil, nil, nil).AddTest(context.Background(), AddTestOptions{
		Root: root, Name: "Users", Kind: models.TestKindAPI,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"tests/test_users_api.py"}, result.Written)

	content := readFile(t, filepath.Join(root, "tests", "test_users_api.py"))
	assert.Contains(t, content, "class TestUsersAPI:")
	assert.Contains(t, content, "https://shop.example.com")
}

func TestAddTest_UnknownKind(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))

	_, err := NewAdder(nil, nil, nil).AddTest(context.Background(), AddTestOptions{Root: root, Name: "x", Kind: "e2e"})
	assert.ErrorIs(t, err, ErrInvalidOptions)
}

func TestAddLocators_Fresh(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))

	result, err := NewAdder(nil, nil, nil).AddLocators(context.Background(), AddLocatorsOptions{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"framework/__init__.py",
		"framework/models/__init__.py",
		"framework/models/locator.py",
		"pages/locators.py",
	}, result.Written)
	assert.Empty(t, result.Warnings)
}

func TestAddLocators_KeepsExistingWithoutConsent(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))
	custom := filepath.Join(root, "pages", "locators.py")
	require.NoError(t, os.WriteFile(custom, []byte("# mine\n"), 0o644))

	prompt := &fakePrompt{overwrite: false}
	result, err := NewAdder(nil, prompt, nil).AddLocators(context.Background(), AddLocatorsOptions{Root: root})
	require.NoError(t, err)
	assert.Equal(t, []string{"pages/locators.py"}, result.Skipped)
	assert.Equal(t, []string{"pages/locators.py"}, prompt.asked)
	require.Len(t, prompt.diffs, 1)
	assert.Contains(t, prompt.diffs[0], "-# mine\n")
	assert.Contains(t, prompt.diffs[0], "+class LoginPageLocators:\n")
	assert.Equal(t, "# mine\n", readFile(t, custom))

	// Without a prompt the file is kept as well.
	result, err = NewAdder(nil, nil, nil).AddLocators(context.Background(), AddLocatorsOptions{Root: root})
	require.NoError(t, err)
	assert.Contains(t, result.Skipped, "pages/locators.py")
	assert.Equal(t, "# mine\n", readFile(t, custom))
}

func TestAddLocators_UnchangedFilesAreNotAsked(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))
	_, err := NewAdder(nil, nil, nil).AddLocators(context.Background(), AddLocatorsOptions{Root: root})
	require.NoError(t, err)

	prompt := &fakePrompt{overwrite: true}
	result, err := NewAdder(nil, prompt, nil).AddLocators(context.Background(), AddLocatorsOptions{Root: root})
	require.NoError(t, err)
	assert.Empty(t, prompt.asked)
	assert.Empty(t, result.Written)
	assert.Equal(t, []string{"framework/models/locator.py", "pages/locators.py"}, result.Skipped)
}

func TestAddLocators_Overwrite(t *testing.T) {
	root := newProject(t, testConfig(models.DriverSelenium))
	custom := filepath.Join(root, "pages", "locators.py")
	require.NoError(t, os.WriteFile(custom, []byte("# mine\n"), 0o644))

	result, err := NewAdder(nil, nil, nil).AddLocators(context.Background(), AddLocatorsOptions{Root: root, Overwrite: true})
	require.NoError(t, err)
	assert.Empty(t, result.Skipped)
	assert.NotEqual(t, "# mine\n", readFile(t, custom))
}

func TestAddLocators_PlaywrightWarns(t *testing.T) {
	root := newProject(t, testConfig(models.DriverPlaywright))

	result, err := NewAdder(nil, nil, nil).AddLocators(context.Background(), AddLocatorsOptions{Root: root})
	require.NoError(t, err)
	assert.Len(t, result.Warnings, 1)
	assert.NotContains(t, result.Written, "pages/locators.py")
	assert.FileExists(t, filepath.Join(root, "framework", "models", "locator.py"))
}

func TestResolvePageURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		base, path, name, want string
	}{
		{"https://a.test", "", "Login Page", "https://a.test/login-page"},
		{"https://a.test/", "/cart", "Cart", "https://a.test/cart"},
		{"https://a.test", "https://b.test/x", "X", "https://b.test/x"},
		{"https://a.test", "  /trim  ", "X", "https://a.test/trim"},
	}
	for _, tt := range tests {
		if got := resolvePageURL(tt.base, tt.path, tt.name); got != tt.want {
			t.Errorf("resolvePageURL(%q, %q, %q) = %q, want %q", tt.base, tt.path, tt.name, got, tt.want)
		}
	}
}

func TestPageModule(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Login Page": "login_page",
		"login":      "login_page",
		"Checkout":   "checkout_page",
		"Page":       "page_page",
	}
	for in, want := range tests {
		if got := pageModule(in); got != want {
			t.Errorf("pageModule(%q) = %q, want %q", in, got, want)
		}
	}
}
