package domain

// PackageManagerType identifies the package manager that owns a manifest.
type PackageManagerType string

const (
	PackageManagerNpm   PackageManagerType = "npm"
	PackageManagerYarn  PackageManagerType = "yarn"
	PackageManagerPnpm  PackageManagerType = "pnpm"
	PackageManagerPip   PackageManagerType = "pip"
	PackageManagerCargo PackageManagerType = "cargo"
	PackageManagerGo    PackageManagerType = "go"
)

// ValidPackageManagers enumerates all recognized package manager types.
var ValidPackageManagers = []PackageManagerType{
	PackageManagerNpm,
	PackageManagerYarn,
	PackageManagerPnpm,
	PackageManagerPip,
	PackageManagerCargo,
	PackageManagerGo,
}

// ProjectInfo is an immutable snapshot of one project, produced by a scan.
type ProjectInfo struct {
	Name           string              `json:"name"`
	RootPath       string              `json:"root_path"`
	PackageManager *PackageManagerInfo `json:"package_manager,omitempty"`
	Structure      DirectoryStructure  `json:"structure"`
	HasTests       bool                `json:"has_tests"`
	TestPatterns   []string            `json:"test_patterns,omitempty"`
	CI             *CIInfo             `json:"ci,omitempty"`
	Readme         string              `json:"readme,omitempty"`
	Claims         *ReadmeClaims       `json:"readme_claims,omitempty"`
	CommitHash     string              `json:"commit_hash,omitempty"`
}

// PackageManagerInfo holds the facts parsed from a package manifest.
type PackageManagerInfo struct {
	Type            PackageManagerType `json:"type"`
	ManifestFile    string             `json:"manifest_file"`
	Dependencies    map[string]string  `json:"dependencies,omitempty"`
	DevDependencies map[string]string  `json:"dev_dependencies,omitempty"`
	Scripts         map[string]string  `json:"scripts,omitempty"`
}

// DirectoryStructure describes the project's top-level layout.
// Directories are sorted alphabetically so the snapshot is deterministic
// across platforms; SourceDir is the first alphabetical match of a known
// source-directory alias.
type DirectoryStructure struct {
	Directories  []string `json:"directories"`
	HasSourceDir bool     `json:"has_source_dir"`
	SourceDir    string   `json:"source_dir,omitempty"`
}

// CIInfo records a detected CI/CD configuration.
type CIInfo struct {
	Platform   string `json:"platform"`
	ConfigPath string `json:"config_path"`
}

const (
	CIPlatformGitHubActions = "github-actions"
	CIPlatformGitLabCI      = "gitlab-ci"
)

// ReadmeClaims holds the three claim categories extracted from README text.
// Each list is ordered and deduplicated; all three may be empty.
type ReadmeClaims struct {
	TechStack []string `json:"tech_stack"`
	Structure []string `json:"structure"`
	Commands  []string `json:"commands"`
}

// Finding is one reported drift or completeness observation.
// Identity for deduplication purposes is the (Rule, Message) pair.
type Finding struct {
	Rule       Rule   `json:"rule"`
	Severity   string `json:"severity"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

const (
	SeverityError   = "error"
	SeverityWarning = "warning"
	SeverityInfo    = "info"
)

// Rule tags the drift rule that produced a finding.
type Rule string

const (
	RuleTechStackUndocumented     Rule = "tech-stack-undocumented"
	RuleTDDClaimedButAbsent       Rule = "tdd-claimed-but-absent"
	RuleTestsPresentUndocumented  Rule = "tests-present-undocumented"
	RuleSourceDirUndocumented     Rule = "source-dir-undocumented"
	RuleReadmeDrift               Rule = "readme-drift"
	RuleReadmeIncomplete          Rule = "readme-incomplete"
	RuleReadmeCommandDrift        Rule = "readme-command-drift"
	RuleReadmeCommandIncomplete   Rule = "readme-command-incomplete"
	RuleReadmeStructureDrift      Rule = "readme-structure-drift"
	RuleReadmeStructureIncomplete Rule = "readme-structure-incomplete"
)

// ValidRules enumerates the fixed finding taxonomy.
var ValidRules = []Rule{
	RuleTechStackUndocumented,
	RuleTDDClaimedButAbsent,
	RuleTestsPresentUndocumented,
	RuleSourceDirUndocumented,
	RuleReadmeDrift,
	RuleReadmeIncomplete,
	RuleReadmeCommandDrift,
	RuleReadmeCommandIncomplete,
	RuleReadmeStructureDrift,
	RuleReadmeStructureIncomplete,
}

// HasErrors reports whether any finding carries error severity.
// The CLI exit-code contract depends on this: exit 1 iff true.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}

// CountSeverities returns the number of error, warning, and info findings.
func CountSeverities(findings []Finding) (errors, warnings, infos int) {
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		case SeverityInfo:
			infos++
		}
	}
	return errors, warnings, infos
}
