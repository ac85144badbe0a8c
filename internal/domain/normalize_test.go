package domain_test

import (
	"testing"

	"github.com/IanSimon23/doccheck/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeTech_Equivalences(t *testing.T) {
	tests := []struct {
		a, b string
	}{
		{"Tailwind CSS", "tailwindcss"},
		{"Node.js", "nodejs"},
		{"node js", "NodeJS"},
		{"date-fns", "datefns"},
		{"styled_components", "styledcomponents"},
	}
	for _, tt := range tests {
		assert.Equal(t, domain.NormalizeTech(tt.a), domain.NormalizeTech(tt.b),
			"%q and %q should normalize equal", tt.a, tt.b)
	}
}

func TestNormalizeTech_Idempotent(t *testing.T) {
	inputs := []string{"Tailwind CSS", "Node.js", "React", "vue-router", "NEXT.JS"}
	for _, in := range inputs {
		once := domain.NormalizeTech(in)
		assert.Equal(t, once, domain.NormalizeTech(once), "normalize(normalize(%q))", in)
	}
}

func TestCleanTechClaim(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"React 18", "React"},
		{"Next.js v14", "Next.js"},
		{"**React**", "React"},
		{"React (UI library)", "React"},
		{"Vue 3.2.1", "Vue"},
		{"R", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, domain.CleanTechClaim(tt.in), "clean %q", tt.in)
	}
}
