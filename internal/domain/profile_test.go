package domain_test

import (
	"testing"

	"github.com/IanSimon23/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMergeDefaults_ProfileWins(t *testing.T) {
	global := map[string]string{
		"overview": "global overview",
		"testing":  "global testing",
	}
	profile := map[string]string{
		"overview": "profile overview",
	}

	merged := domain.MergeDefaults(global, profile)

	assert.Equal(t, "profile overview", merged["overview"], "profile value overrides global")
	assert.Equal(t, "global testing", merged["testing"], "global fills unset keys")
}

func TestMergeDefaults_DoesNotMutateInputs(t *testing.T) {
	global := map[string]string{"a": "g"}
	profile := map[string]string{"a": "p"}

	_ = domain.MergeDefaults(global, profile)

	assert.Equal(t, "g", global["a"])
	assert.Equal(t, "p", profile["a"])
}

func TestMergeDefaults_NilInputs(t *testing.T) {
	assert.Empty(t, domain.MergeDefaults(nil, nil))
	assert.Equal(t, map[string]string{"k": "v"}, domain.MergeDefaults(map[string]string{"k": "v"}, nil))
	assert.Equal(t, map[string]string{"k": "v"}, domain.MergeDefaults(nil, map[string]string{"k": "v"}))
}

func TestProfileConfig_DefaultsFor(t *testing.T) {
	cfg := domain.ProfileConfig{
		Profiles: map[string]domain.Profile{
			"frontend": {Name: "frontend", Sections: map[string]string{"overview": "SPA"}},
		},
		GlobalDefaults: map[string]string{"overview": "generic", "ci": "GitHub Actions"},
	}

	merged := cfg.DefaultsFor("frontend")
	assert.Equal(t, "SPA", merged["overview"])
	assert.Equal(t, "GitHub Actions", merged["ci"])

	fallback := cfg.DefaultsFor("nonexistent")
	assert.Equal(t, "generic", fallback["overview"])
}
