package models

// DriverType selects which browser automation stack a project uses.
type DriverType string

const (
	DriverSelenium   DriverType = "selenium"
	DriverPlaywright DriverType = "playwright"
	DriverBoth       DriverType = "both"
)

// ValidDriverTypes returns all valid driver type values.
func ValidDriverTypes() []DriverType {
	return []DriverType{DriverSelenium, DriverPlaywright, DriverBoth}
}

// IsValid checks if the driver type is a valid value.
func (d DriverType) IsValid() bool {
	switch d {
	case DriverSelenium, DriverPlaywright, DriverBoth:
		return true
	}
	return false
}

// Families returns the driver families implied by d, Selenium first.
func (d DriverType) Families() []Family {
	switch d {
	case DriverSelenium:
		return []Family{FamilySelenium}
	case DriverPlaywright:
		return []Family{FamilyPlaywright}
	case DriverBoth:
		return []Family{FamilySelenium, FamilyPlaywright}
	}
	return nil
}

// Includes reports whether f is one of the families of d.
func (d DriverType) Includes(f Family) bool {
	for _, fam := range d.Families() {
		if fam == f {
			return true
		}
	}
	return false
}

// Family is one concrete driver stack. It is the tagged variant that
// templates are selected by.
type Family string

const (
	FamilySelenium   Family = "selenium"
	FamilyPlaywright Family = "playwright"
)

// IsValid checks if the family is a valid value.
func (f Family) IsValid() bool {
	return f == FamilySelenium || f == FamilyPlaywright
}

// Async reports whether generated code for this family uses async/await.
func (f Family) Async() bool {
	return f == FamilyPlaywright
}

// Browser identifies a browser a generated project can run against.
type Browser string

const (
	BrowserChrome   Browser = "chrome"
	BrowserFirefox  Browser = "firefox"
	BrowserEdge     Browser = "edge"
	BrowserChromium Browser = "chromium"
	BrowserWebKit   Browser = "webkit"
)

// SeleniumBrowsers returns the browsers selectable for the Selenium family.
func SeleniumBrowsers() []Browser {
	return []Browser{BrowserChrome, BrowserFirefox, BrowserEdge}
}

// PlaywrightBrowsers returns the fixed browser set of the Playwright family.
func PlaywrightBrowsers() []Browser {
	return []Browser{BrowserChromium, BrowserFirefox, BrowserWebKit}
}

// IsSeleniumBrowser reports whether b can drive a Selenium project.
func IsSeleniumBrowser(b Browser) bool {
	for _, sb := range SeleniumBrowsers() {
		if sb == b {
			return true
		}
	}
	return false
}

// TestKind is the category of a generated test file.
type TestKind string

const (
	TestKindUI  TestKind = "ui"
	TestKindAPI TestKind = "api"
)

// IsValid checks if the test kind is a valid value.
func (k TestKind) IsValid() bool {
	return k == TestKindUI || k == TestKindAPI
}
