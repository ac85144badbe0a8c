package domain

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/camelcase"
)

// Section names the generator knows; profile defaults are keyed by these.
const (
	SectionOverview  = "overview"
	SectionTechStack = "tech_stack"
	SectionStructure = "structure"
	SectionTesting   = "testing"
	SectionCommands  = "commands"
	SectionCI        = "ci"
)

// GenerateSkeleton renders a documentation skeleton from a project
// snapshot. Answers pre-fill section bodies (typically the merged
// profile/global defaults); sections without an answer fall back to
// detected facts or a placeholder.
func GenerateSkeleton(info *ProjectInfo, answers map[string]string) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", HumanizeName(info.Name))

	b.WriteString("## Overview\n\n")
	b.WriteString(answerOr(answers, SectionOverview, "_Describe what this project does and why it exists._"))
	b.WriteString("\n\n")

	b.WriteString("## Tech Stack\n\n")
	if body, ok := answers[SectionTechStack]; ok {
		b.WriteString(body + "\n")
	} else if pm := info.PackageManager; pm != nil {
		fmt.Fprintf(&b, "- **Package manager**: %s (%s)\n", pm.Type, pm.ManifestFile)
		for _, dep := range sortedKeys(pm.Dependencies) {
			fmt.Fprintf(&b, "- %s %s\n", dep, pm.Dependencies[dep])
		}
	} else {
		b.WriteString("_No package manifest detected._\n")
	}
	b.WriteString("\n")

	b.WriteString("## Project Structure\n\n")
	if body, ok := answers[SectionStructure]; ok {
		b.WriteString(body + "\n")
	} else if len(info.Structure.Directories) > 0 {
		b.WriteString("```\n")
		for _, dir := range info.Structure.Directories {
			fmt.Fprintf(&b, "%s/\n", dir)
		}
		b.WriteString("```\n")
	} else {
		b.WriteString("_No top-level directories detected._\n")
	}
	b.WriteString("\n")

	b.WriteString("## Testing\n\n")
	if body, ok := answers[SectionTesting]; ok {
		b.WriteString(body + "\n")
	} else if info.HasTests {
		b.WriteString("Tests are present. Patterns detected:\n")
		for _, p := range info.TestPatterns {
			fmt.Fprintf(&b, "- `%s`\n", p)
		}
	} else {
		b.WriteString("_No test setup detected._\n")
	}
	b.WriteString("\n")

	if pm := info.PackageManager; pm != nil && len(pm.Scripts) > 0 {
		b.WriteString("## Commands\n\n")
		if body, ok := answers[SectionCommands]; ok {
			b.WriteString(body + "\n")
		} else {
			for _, name := range sortedKeys(pm.Scripts) {
				fmt.Fprintf(&b, "- `%s run %s` — %s\n", pm.Type, name, pm.Scripts[name])
			}
		}
		b.WriteString("\n")
	}

	if info.CI != nil {
		b.WriteString("## CI/CD\n\n")
		if body, ok := answers[SectionCI]; ok {
			b.WriteString(body + "\n")
		} else {
			fmt.Fprintf(&b, "Configured via %s (`%s`).\n", info.CI.Platform, info.CI.ConfigPath)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// HumanizeName turns a repo-style project name into a title:
// "my-cool_app" or "myCoolApp" becomes "My Cool App".
func HumanizeName(name string) string {
	fields := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_' || r == ' '
	})
	var words []string
	for _, f := range fields {
		words = append(words, camelcase.Split(f)...)
	}
	if len(words) == 0 {
		return name
	}
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func answerOr(answers map[string]string, key, fallback string) string {
	if v, ok := answers[key]; ok {
		return v
	}
	return fallback
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
