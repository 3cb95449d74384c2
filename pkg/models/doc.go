// Package models provides the shared data model of qfg.
//
// # Drivers
//
// A generated project targets one of three driver types:
//   - selenium: synchronous WebDriver page objects under pages/ and tests/
//   - playwright: async Playwright page objects under pages_pw/ and tests_pw/
//   - both: the two families side by side
//
// Rendering code never branches on [DriverType] directly. It iterates the
// driver families instead:
//
//	for _, fam := range cfg.Driver.Families() {
//	    // fam is FamilySelenium or FamilyPlaywright
//	}
//
// # Features
//
// [FeatureSet] carries the eight optional capabilities (docker, ci_cd, allure,
// quality_tools, pre_commit, parallel, flaky_retry, api_testing). It is a
// plain value; [FeatureSet.With] returns a modified copy.
//
// # Project configuration
//
// [ProjectConfig] is built and validated by internal/config and treated as
// immutable afterwards.
package models
