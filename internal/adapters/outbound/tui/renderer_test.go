package tui_test

import (
	"testing"

	"github.com/IanSimon23/doccheck/internal/adapters/outbound/tui"
	"github.com/IanSimon23/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleFindings() []domain.Finding {
	return []domain.Finding{
		{
			Rule:       domain.RuleTDDClaimedButAbsent,
			Severity:   domain.SeverityError,
			Message:    "Documentation claims a TDD/test-driven practice but no tests were found",
			Suggestion: "Add tests or remove the test-driven claim",
		},
		{
			Rule:     domain.RuleReadmeDrift,
			Severity: domain.SeverityWarning,
			Message:  `README claims "Angular" but no matching dependency was found`,
		},
		{
			Rule:     domain.RuleReadmeIncomplete,
			Severity: domain.SeverityInfo,
			Message:  `Dependency "prisma" is not mentioned in the README tech stack`,
		},
	}
}

func TestRenderFindings_ContainsProjectAndMessages(t *testing.T) {
	output := tui.RenderFindings("my-app", sampleFindings())
	assert.Contains(t, output, "my-app")
	assert.Contains(t, output, "no tests were found")
	assert.Contains(t, output, "Angular")
}

func TestRenderFindings_ContainsSeverityCounts(t *testing.T) {
	output := tui.RenderFindings("my-app", sampleFindings())
	assert.Contains(t, output, "1 errors")
	assert.Contains(t, output, "1 warnings")
	assert.Contains(t, output, "1 info")
}

func TestRenderFindings_ContainsRuleTags(t *testing.T) {
	output := tui.RenderFindings("my-app", sampleFindings())
	assert.Contains(t, output, "tdd-claimed-but-absent")
	assert.Contains(t, output, "readme-drift")
}

func TestRenderFindings_CleanRun(t *testing.T) {
	output := tui.RenderFindings("my-app", nil)
	assert.Contains(t, output, "No drift found")
}
