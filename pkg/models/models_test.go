package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverType_IsValid(t *testing.T) {
	tests := []struct {
		driver DriverType
		want   bool
	}{
		{DriverSelenium, true},
		{DriverPlaywright, true},
		{DriverBoth, true},
		{"", false},
		{"cypress", false},
		{"Selenium", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.driver), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.driver.IsValid())
		})
	}
}

func TestDriverType_Families(t *testing.T) {
	assert.Equal(t, []Family{FamilySelenium}, DriverSelenium.Families())
	assert.Equal(t, []Family{FamilyPlaywright}, DriverPlaywright.Families())
	assert.Equal(t, []Family{FamilySelenium, FamilyPlaywright}, DriverBoth.Families())
	assert.Nil(t, DriverType("bogus").Families())

	assert.True(t, DriverBoth.Includes(FamilyPlaywright))
	assert.False(t, DriverSelenium.Includes(FamilyPlaywright))
}

func TestValidDriverTypes(t *testing.T) {
	for _, d := range ValidDriverTypes() {
		assert.True(t, d.IsValid(), d)
	}
}

func TestFamily(t *testing.T) {
	assert.True(t, FamilyPlaywright.Async())
	assert.False(t, FamilySelenium.Async())
	assert.False(t, Family("puppeteer").IsValid())
}

func TestIsSeleniumBrowser(t *testing.T) {
	assert.True(t, IsSeleniumBrowser(BrowserChrome))
	assert.True(t, IsSeleniumBrowser(BrowserEdge))
	assert.False(t, IsSeleniumBrowser(BrowserWebKit))
	assert.False(t, IsSeleniumBrowser(BrowserChromium))
}

func TestFeatureSet(t *testing.T) {
	fs := FeaturesOf(FeatureDocker, FeatureAPITesting)
	assert.True(t, fs.Enabled(FeatureDocker))
	assert.True(t, fs.Enabled(FeatureAPITesting))
	assert.False(t, fs.Enabled(FeatureAllure))
	assert.Equal(t, []Feature{FeatureDocker, FeatureAPITesting}, fs.List())

	off := fs.With(FeatureDocker, false)
	assert.False(t, off.Enabled(FeatureDocker))
	assert.True(t, fs.Enabled(FeatureDocker), "With must not modify the receiver")

	assert.Equal(t, fs, fs.With("unknown", true))
	assert.False(t, fs.Enabled("unknown"))
}

func TestAllFeatures(t *testing.T) {
	all := AllFeatures()
	assert.Len(t, all, 8)
	for _, f := range all {
		assert.True(t, f.IsValid(), f)
	}
	full := FeaturesOf(all...)
	assert.Equal(t, all, full.List())
}

func TestProjectConfig_WithHelpersCopy(t *testing.T) {
	base := ProjectConfig{
		Name:     "Shop",
		BaseURL:  "https://shop.example",
		Driver:   DriverSelenium,
		Browsers: []Browser{BrowserChrome},
		Settings: DefaultSettings(),
	}

	next := base.WithBrowsers(BrowserFirefox, BrowserEdge)
	assert.Equal(t, []Browser{BrowserChrome}, base.Browsers)
	assert.Equal(t, []Browser{BrowserFirefox, BrowserEdge}, next.Browsers)

	clone := base.Clone()
	clone.Browsers[0] = BrowserEdge
	assert.Equal(t, BrowserChrome, base.Browsers[0])

	assert.Equal(t, DriverBoth, base.WithDriver(DriverBoth).Driver)
	assert.Equal(t, DriverSelenium, base.Driver)

	assert.True(t, base.Equal(base.Clone()))
	assert.False(t, base.Equal(base.WithFeatures(FeaturesOf(FeatureAllure))))
	assert.False(t, base.Equal(base.WithSettings(Settings{LoggingMode: LogModeLocal})))
}

func TestProjectConfig_BrowsersFor(t *testing.T) {
	cfg := ProjectConfig{Driver: DriverBoth, Browsers: []Browser{BrowserFirefox, BrowserChrome}}
	assert.Equal(t, []Browser{BrowserFirefox, BrowserChrome}, cfg.BrowsersFor(FamilySelenium))
	assert.Equal(t, PlaywrightBrowsers(), cfg.BrowsersFor(FamilyPlaywright))
}

func TestSettingsEnums(t *testing.T) {
	d := DefaultSettings()
	assert.True(t, d.LoggingMode.IsValid())
	assert.True(t, d.TestDataFormat.IsValid())
	assert.True(t, d.PlaywrightAsync)
	assert.False(t, LogMode("xml").IsValid())
	assert.False(t, DataFormat("toml").IsValid())
}
