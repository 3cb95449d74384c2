package project

import (
	"sort"

	"github.com/qfg-dev/qfg/pkg/models"
)

// Pinned requirement ranges written to requirements.txt.
var (
	baseRequirements = []string{
		"pytest>=7.4,<9",
		"pyyaml>=6.0,<7",
		"structlog>=23.1,<25",
	}

	familyRequirements = map[models.Family][]string{
		models.FamilySelenium: {"selenium>=4.14,<5"},
		models.FamilyPlaywright: {
			"playwright>=1.41,<2",
			"pytest-asyncio>=0.21,<1",
			"pytest-playwright>=0.4.4,<0.5",
		},
	}

	featureRequirements = map[models.Feature][]string{
		models.FeatureAllure:       {"allure-pytest>=2.13,<3"},
		models.FeatureParallel:     {"pytest-xdist>=3.3,<4"},
		models.FeatureFlakyRetry:   {"pytest-retry>=1.5,<2"},
		models.FeatureAPITesting:   {"requests>=2.31,<3"},
		models.FeaturePreCommit:    {"pre-commit>=3.4,<5"},
		models.FeatureQualityTools: {"bandit>=1.7,<2", "black>=23.7,<25", "flake8>=6.1,<8", "mypy>=1.5,<2"},
	}
)

// Requirements returns the sorted, duplicate-free requirement lines for a
// driver type and feature set.
func Requirements(driver models.DriverType, features models.FeatureSet) []string {
	set := make(map[string]struct{})
	add := func(reqs []string) {
		for _, r := range reqs {
			set[r] = struct{}{}
		}
	}

	add(baseRequirements)
	for _, fam := range driver.Families() {
		add(familyRequirements[fam])
	}
	for _, f := range features.List() {
		add(featureRequirements[f])
	}

	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, r)
	}
	sort.Strings(out)
	return out
}
