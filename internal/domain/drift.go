package domain

import (
	"fmt"
	"sort"
	"strings"
)

// nonPackageTech lists technologies a README may legitimately claim even
// though no package dependency backs them: hosting platforms, runtimes,
// languages, AI services, serverless concepts, and hosted backends.
// Keys are normalized names.
var nonPackageTech = map[string]bool{
	// hosting / cloud
	"vercel": true, "netlify": true, "heroku": true, "railway": true,
	"render": true, "aws": true, "azure": true, "gcp": true,
	"googlecloud": true, "cloudflare": true, "digitalocean": true,
	// runtimes / languages
	"nodejs": true, "deno": true, "bun": true, "docker": true,
	"kubernetes": true, "javascript": true, "html": true, "css": true,
	"python": true, "rust": true, "go": true, "golang": true,
	// AI services
	"openai": true, "anthropic": true, "claude": true, "chatgpt": true,
	"gpt": true, "gemini": true, "ollama": true,
	// serverless concepts
	"serverless": true, "lambda": true, "edgefunctions": true,
	// hosted backends
	"firebase": true, "supabase": true, "planetscale": true,
	"mongodbatlas": true, "auth0": true, "stripe": true,
}

// utilityPackages lists common helper dependencies that do not belong in a
// README tech-stack section; their absence there is not drift.
var utilityPackages = map[string]bool{
	"lodash": true, "underscore": true, "ramda": true,
	"axios": true, "node-fetch": true, "got": true,
	"dayjs": true, "moment": true, "date-fns": true, "luxon": true,
	"chalk": true, "debug": true, "dotenv": true,
	"uuid": true, "nanoid": true,
	"classnames": true, "clsx": true,
	"fs-extra": true, "rimraf": true, "cross-env": true,
}

// commonScripts are script names worth surfacing in a README when present
// in the manifest, checked in this fixed order.
var commonScripts = []string{"dev", "build", "start", "test", "lint"}

// PathExistsFunc reports whether a path relative to the project root exists.
type PathExistsFunc func(rel string) bool

// driftRule is one entry in the validation rule table: a precondition and
// an evaluator producing zero or more findings. Rules run in table order
// and each is independently testable.
type driftRule struct {
	rule  Rule
	check func(v *validation) []Finding
}

// validation carries the immutable inputs one run operates on.
type validation struct {
	doc      string
	lowerDoc string
	info     *ProjectInfo
	exists   PathExistsFunc
}

// Validate reconciles the documentation text against the project snapshot
// and returns findings in stable rule-table order. Two calls on identical
// inputs yield identical output.
func Validate(doc string, info *ProjectInfo, exists PathExistsFunc) []Finding {
	v := &validation{
		doc:      doc,
		lowerDoc: strings.ToLower(doc),
		info:     info,
		exists:   exists,
	}

	var findings []Finding
	for _, r := range driftRules {
		findings = append(findings, r.check(v)...)
	}
	return findings
}

// driftRules is the complete rule table: tech-stack rules first, then
// testing, then structure, then the README-claim family.
var driftRules = []driftRule{
	{RuleTechStackUndocumented, checkTechStackUndocumented},
	{RuleTDDClaimedButAbsent, checkTDDClaimedButAbsent},
	{RuleTestsPresentUndocumented, checkTestsPresentUndocumented},
	{RuleSourceDirUndocumented, checkSourceDirUndocumented},
	{RuleReadmeDrift, checkReadmeDrift},
	{RuleReadmeIncomplete, checkReadmeIncomplete},
	{RuleReadmeCommandDrift, checkReadmeCommandDrift},
	{RuleReadmeCommandIncomplete, checkReadmeCommandIncomplete},
	{RuleReadmeStructureDrift, checkReadmeStructureDrift},
	{RuleReadmeStructureIncomplete, checkReadmeStructureIncomplete},
}

func checkTechStackUndocumented(v *validation) []Finding {
	pm := v.info.PackageManager
	if pm == nil {
		return nil
	}
	if strings.Contains(v.lowerDoc, strings.ToLower(string(pm.Type))) {
		return nil
	}
	return []Finding{{
		Rule:       RuleTechStackUndocumented,
		Severity:   SeverityWarning,
		Message:    fmt.Sprintf("Project uses %s but the documentation never mentions it", pm.Type),
		Suggestion: fmt.Sprintf("Document the %s-based workflow (manifest: %s)", pm.Type, pm.ManifestFile),
	}}
}

func mentionsTDD(lowerDoc string) bool {
	return strings.Contains(lowerDoc, "tdd") || strings.Contains(lowerDoc, "test-driven")
}

func checkTDDClaimedButAbsent(v *validation) []Finding {
	if !mentionsTDD(v.lowerDoc) || v.info.HasTests {
		return nil
	}
	return []Finding{{
		Rule:       RuleTDDClaimedButAbsent,
		Severity:   SeverityError,
		Message:    "Documentation claims a TDD/test-driven practice but no tests were found",
		Suggestion: "Add tests or remove the test-driven claim",
	}}
}

func checkTestsPresentUndocumented(v *validation) []Finding {
	if !v.info.HasTests || mentionsTDD(v.lowerDoc) {
		return nil
	}
	return []Finding{{
		Rule:       RuleTestsPresentUndocumented,
		Severity:   SeverityInfo,
		Message:    "Tests exist but the documentation does not describe the testing approach",
		Suggestion: "Describe how tests are organized and run",
	}}
}

func checkSourceDirUndocumented(v *validation) []Finding {
	s := v.info.Structure
	if !s.HasSourceDir || strings.Contains(v.doc, s.SourceDir) {
		return nil
	}
	return []Finding{{
		Rule:       RuleSourceDirUndocumented,
		Severity:   SeverityInfo,
		Message:    fmt.Sprintf("Source directory %q is not mentioned in the documentation", s.SourceDir),
		Suggestion: fmt.Sprintf("Document the role of the %s/ directory", s.SourceDir),
	}}
}

// matchesDependency applies the six permissive claim-to-dependency tests:
// lowercase equality, lowercase substring either direction, normalized
// equality, and normalized substring either direction. Any hit is a match;
// this trades false negatives for fewer false positives.
func matchesDependency(claim, dep string) bool {
	cl, dl := strings.ToLower(claim), strings.ToLower(dep)
	cn, dn := NormalizeTech(claim), NormalizeTech(dep)
	switch {
	case cl == dl:
		return true
	case strings.Contains(cl, dl), strings.Contains(dl, cl):
		return true
	case cn == dn:
		return true
	case cn != "" && dn != "" && (strings.Contains(cn, dn) || strings.Contains(dn, cn)):
		return true
	}
	return false
}

// allDependencyNames returns runtime and dev dependency names combined.
func allDependencyNames(pm *PackageManagerInfo) []string {
	names := make([]string, 0, len(pm.Dependencies)+len(pm.DevDependencies))
	for name := range pm.Dependencies {
		names = append(names, name)
	}
	for name := range pm.DevDependencies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func checkReadmeDrift(v *validation) []Finding {
	pm := v.info.PackageManager
	if pm == nil || v.info.Claims == nil {
		return nil
	}

	deps := allDependencyNames(pm)
	var findings []Finding
	for _, claim := range v.info.Claims.TechStack {
		if nonPackageTech[NormalizeTech(claim)] {
			continue
		}
		matched := false
		for _, dep := range deps {
			if matchesDependency(claim, dep) {
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		findings = append(findings, Finding{
			Rule:       RuleReadmeDrift,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("README claims %q but no matching dependency was found", claim),
			Suggestion: fmt.Sprintf("Remove %q from the README tech stack or add the dependency", claim),
		})
	}
	return findings
}

func checkReadmeIncomplete(v *validation) []Finding {
	pm := v.info.PackageManager
	if pm == nil || v.info.Claims == nil {
		return nil
	}

	// Runtime dependencies only; dev tooling is not tech-stack material.
	deps := make([]string, 0, len(pm.Dependencies))
	for name := range pm.Dependencies {
		deps = append(deps, name)
	}
	sort.Strings(deps)

	var findings []Finding
	for _, dep := range deps {
		if utilityPackages[dep] {
			continue
		}
		mentioned := false
		for _, claim := range v.info.Claims.TechStack {
			if matchesDependency(claim, dep) {
				mentioned = true
				break
			}
		}
		if mentioned {
			continue
		}
		findings = append(findings, Finding{
			Rule:       RuleReadmeIncomplete,
			Severity:   SeverityInfo,
			Message:    fmt.Sprintf("Dependency %q is not mentioned in the README tech stack", dep),
			Suggestion: fmt.Sprintf("Consider documenting %q in the README", dep),
		})
	}
	return findings
}

func checkReadmeCommandDrift(v *validation) []Finding {
	pm := v.info.PackageManager
	if pm == nil || v.info.Claims == nil {
		return nil
	}

	var findings []Finding
	for _, cmd := range v.info.Claims.Commands {
		if _, ok := pm.Scripts[cmd]; ok {
			continue
		}
		findings = append(findings, Finding{
			Rule:       RuleReadmeCommandDrift,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("README references script %q which does not exist in %s", cmd, pm.ManifestFile),
			Suggestion: fmt.Sprintf("Update the README or add a %q script", cmd),
		})
	}
	return findings
}

func checkReadmeCommandIncomplete(v *validation) []Finding {
	pm := v.info.PackageManager
	if pm == nil || v.info.Claims == nil {
		return nil
	}

	claimed := make(map[string]bool, len(v.info.Claims.Commands))
	for _, c := range v.info.Claims.Commands {
		claimed[c] = true
	}

	var findings []Finding
	for _, name := range commonScripts {
		if _, ok := pm.Scripts[name]; !ok || claimed[name] {
			continue
		}
		findings = append(findings, Finding{
			Rule:       RuleReadmeCommandIncomplete,
			Severity:   SeverityInfo,
			Message:    fmt.Sprintf("Script %q exists but is not documented in the README", name),
			Suggestion: fmt.Sprintf("Document how to run %q", name),
		})
	}
	return findings
}

// relStructurePath strips a leading "<project-name>/" prefix and then the
// trailing slash from a structure claim, yielding a root-relative path.
// The bare root claim "<project-name>/" reduces to "".
func relStructurePath(claim, projectName string) string {
	p := strings.TrimPrefix(claim, projectName+"/")
	return strings.TrimSuffix(p, "/")
}

func checkReadmeStructureDrift(v *validation) []Finding {
	if v.info.Claims == nil || len(v.info.Claims.Structure) == 0 {
		return nil
	}

	var findings []Finding
	for _, claim := range v.info.Claims.Structure {
		rel := relStructurePath(claim, v.info.Name)
		if rel == "" || (v.exists != nil && v.exists(rel)) {
			continue
		}
		findings = append(findings, Finding{
			Rule:       RuleReadmeStructureDrift,
			Severity:   SeverityWarning,
			Message:    fmt.Sprintf("README structure mentions %q which does not exist", claim),
			Suggestion: fmt.Sprintf("Update the README structure section or create %s", rel),
		})
	}
	return findings
}

func checkReadmeStructureIncomplete(v *validation) []Finding {
	if v.info.Claims == nil || len(v.info.Claims.Structure) == 0 {
		return nil
	}

	var findings []Finding
	for _, dir := range v.info.Structure.Directories {
		covered := false
		for _, claim := range v.info.Claims.Structure {
			rel := relStructurePath(claim, v.info.Name)
			if rel == dir || strings.HasPrefix(rel, dir+"/") || strings.HasPrefix(dir, rel+"/") {
				covered = true
				break
			}
		}
		if covered {
			continue
		}
		findings = append(findings, Finding{
			Rule:       RuleReadmeStructureIncomplete,
			Severity:   SeverityInfo,
			Message:    fmt.Sprintf("Directory %q is not covered by the README structure section", dir),
			Suggestion: fmt.Sprintf("Add %s/ to the README structure tree", dir),
		})
	}
	return findings
}
