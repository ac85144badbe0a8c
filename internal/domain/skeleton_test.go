package domain_test

import (
	"testing"

	"github.com/IanSimon23/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestGenerateSkeleton_FromDetectedFacts(t *testing.T) {
	info := npmProject()
	info.CI = &domain.CIInfo{
		Platform:   domain.CIPlatformGitHubActions,
		ConfigPath: ".github/workflows",
	}

	doc := domain.GenerateSkeleton(info, nil)

	assert.Contains(t, doc, "# My App")
	assert.Contains(t, doc, "## Tech Stack")
	assert.Contains(t, doc, "**Package manager**: npm (package.json)")
	assert.Contains(t, doc, "react ^18.2.0")
	assert.Contains(t, doc, "src/")
	assert.Contains(t, doc, "public/")
	assert.Contains(t, doc, "`npm run build`")
	assert.Contains(t, doc, "github-actions")
}

func TestGenerateSkeleton_AnswersOverrideFacts(t *testing.T) {
	info := npmProject()
	answers := map[string]string{
		domain.SectionOverview:  "A drift checker.",
		domain.SectionTechStack: "- React everywhere",
	}

	doc := domain.GenerateSkeleton(info, answers)

	assert.Contains(t, doc, "A drift checker.")
	assert.Contains(t, doc, "- React everywhere")
	assert.NotContains(t, doc, "**Package manager**")
}

func TestGenerateSkeleton_MinimalProject(t *testing.T) {
	info := &domain.ProjectInfo{Name: "bare", RootPath: "/tmp/bare"}

	doc := domain.GenerateSkeleton(info, nil)

	assert.Contains(t, doc, "# Bare")
	assert.Contains(t, doc, "_No package manifest detected._")
	assert.Contains(t, doc, "_No test setup detected._")
	assert.NotContains(t, doc, "## Commands")
	assert.NotContains(t, doc, "## CI/CD")
}

func TestHumanizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"my-app", "My App"},
		{"myCoolApp", "My Cool App"},
		{"snake_case_name", "Snake Case Name"},
		{"plain", "Plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.HumanizeName(tt.in))
	}
}
