package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/qfg-dev/qfg/internal/core/project"
)

var addLocatorsCmd = &cobra.Command{
	Use:   "add-locators",
	Short: "Add the Locator model for centralized selectors",
	Long: `Add locator model support to the current project:

  framework/models/locator.py   Locator dataclass for Selenium selectors
  pages/locators.py             example locator definitions

Existing files are kept unless --force is given or you confirm the
overwrite when asked.`,
	Args: cobra.NoArgs,
	RunE: runAddLocators,
}

func init() {
	rootCmd.AddCommand(addLocatorsCmd)

	addLocatorsCmd.Flags().Bool("force", false, "Overwrite existing locator files without asking")
}

const locatorUsage = `## Using locators

Define locators in ` + "`pages/locators.py`" + `:

` + "```python" + `
from framework.models.locator import Locator
from selenium.webdriver.common.by import By

class LoginPageLocators:
    USERNAME = Locator(By.ID, "username")
    PASSWORD = Locator(By.ID, "password")
` + "```" + `

and pass them to the base page helpers, e.g.
` + "`self.send_keys_to_element(LoginPageLocators.USERNAME, value)`" + `.
`

func runAddLocators(cmd *cobra.Command, _ []string) error {
	d := deps
	ctx := commandContext(cmd)

	root, err := project.FindProjectRoot("")
	if err != nil {
		return err
	}

	result, err := d.NewAdder().AddLocators(ctx, project.AddLocatorsOptions{
		Root:      root,
		Overwrite: getBoolFlag(cmd, "force"),
	})
	out := cmd.OutOrStdout()
	printAddResult(out, result, "Created")
	if err != nil {
		return err
	}
	if len(result.Written) > 0 {
		_, _ = fmt.Fprint(out, renderMarkdown(d.Theme, d.Headless.IsHeadless(), locatorUsage))
	}
	return nil
}
