package models

// Feature is one optional capability of a generated project.
type Feature string

const (
	FeatureDocker       Feature = "docker"
	FeatureCICD         Feature = "ci_cd"
	FeatureAllure       Feature = "allure"
	FeatureQualityTools Feature = "quality_tools"
	FeaturePreCommit    Feature = "pre_commit"
	FeatureParallel     Feature = "parallel"
	FeatureFlakyRetry   Feature = "flaky_retry"
	FeatureAPITesting   Feature = "api_testing"
)

// AllFeatures returns the feature vocabulary in manifest order.
func AllFeatures() []Feature {
	return []Feature{
		FeatureDocker,
		FeatureCICD,
		FeatureAllure,
		FeatureQualityTools,
		FeaturePreCommit,
		FeatureParallel,
		FeatureFlakyRetry,
		FeatureAPITesting,
	}
}

// IsValid checks if the feature belongs to the vocabulary.
func (f Feature) IsValid() bool {
	for _, known := range AllFeatures() {
		if f == known {
			return true
		}
	}
	return false
}

// FeatureSet holds one boolean per feature. Field order matches the
// manifest's features section.
type FeatureSet struct {
	Docker       bool `yaml:"docker"`
	CICD         bool `yaml:"ci_cd"`
	Allure       bool `yaml:"allure"`
	QualityTools bool `yaml:"quality_tools"`
	PreCommit    bool `yaml:"pre_commit"`
	Parallel     bool `yaml:"parallel"`
	FlakyRetry   bool `yaml:"flaky_retry"`
	APITesting   bool `yaml:"api_testing"`
}

// FeaturesOf returns a FeatureSet with exactly the given features enabled.
// Unknown features are ignored.
func FeaturesOf(features ...Feature) FeatureSet {
	var fs FeatureSet
	for _, f := range features {
		fs = fs.With(f, true)
	}
	return fs
}

// Enabled reports whether f is switched on.
func (fs FeatureSet) Enabled(f Feature) bool {
	if p := fs.field(f); p != nil {
		return *p
	}
	return false
}

// With returns a copy of fs with f set to on.
func (fs FeatureSet) With(f Feature, on bool) FeatureSet {
	if p := fs.field(f); p != nil {
		*p = on
	}
	return fs
}

// List returns the enabled features in manifest order.
func (fs FeatureSet) List() []Feature {
	var out []Feature
	for _, f := range AllFeatures() {
		if fs.Enabled(f) {
			out = append(out, f)
		}
	}
	return out
}

// field returns a pointer into the receiver copy; callers only mutate copies.
func (fs *FeatureSet) field(f Feature) *bool {
	switch f {
	case FeatureDocker:
		return &fs.Docker
	case FeatureCICD:
		return &fs.CICD
	case FeatureAllure:
		return &fs.Allure
	case FeatureQualityTools:
		return &fs.QualityTools
	case FeaturePreCommit:
		return &fs.PreCommit
	case FeatureParallel:
		return &fs.Parallel
	case FeatureFlakyRetry:
		return &fs.FlakyRetry
	case FeatureAPITesting:
		return &fs.APITesting
	}
	return nil
}
